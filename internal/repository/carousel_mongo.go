package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CarouselsCollection = "carousels"

type carouselDocument struct {
	ID           string    `bson:"_id"`
	Title        string    `bson:"title"`
	Description  string    `bson:"description"`
	PosterImages []string  `bson:"posterImages"`
	CreatedAt    time.Time `bson:"createdAt"`
}

type MongoCarouselRepository struct {
	coll *mongo.Collection
}

func NewMongoCarouselRepository(db *mongo.Database) *MongoCarouselRepository {
	return &MongoCarouselRepository{coll: db.Collection(CarouselsCollection)}
}

func (r *MongoCarouselRepository) List(ctx context.Context) ([]model.CarouselItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}

	var docs []carouselDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	items := make([]model.CarouselItem, 0, len(docs))
	for _, d := range docs {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, model.CarouselItem{
			ID:           id,
			Title:        d.Title,
			Description:  d.Description,
			PosterImages: d.PosterImages,
			CreatedAt:    d.CreatedAt,
		})
	}
	return items, nil
}

func (r *MongoCarouselRepository) Create(ctx context.Context, item *model.CarouselItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, carouselDocument{
		ID:           item.ID.String(),
		Title:        item.Title,
		Description:  item.Description,
		PosterImages: item.PosterImages,
		CreatedAt:    item.CreatedAt,
	})
	return err
}

func (r *MongoCarouselRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
