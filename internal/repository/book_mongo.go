package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const BooksCollection = "books"

type bookDocument struct {
	ID            string    `bson:"_id"`
	Title         string    `bson:"title"`
	Author        []string  `bson:"author"`
	Rating        float64   `bson:"rating"`
	Genre         string    `bson:"genre"`
	City          string    `bson:"city"`
	Country       string    `bson:"country"`
	YearPublished int       `bson:"yearPublished"`
	Languages     []string  `bson:"languages"`
	BookPage      int       `bson:"bookPage"`
	Description   string    `bson:"description"`
	BuyLink       string    `bson:"buyLink"`
	PosterImages  []string  `bson:"posterImages"`
	CreatedAt     time.Time `bson:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt"`
}

func toBookDocument(b *model.Book) bookDocument {
	return bookDocument{
		ID:            b.ID.String(),
		Title:         b.Title,
		Author:        b.Author,
		Rating:        b.Rating,
		Genre:         b.Genre,
		City:          b.City,
		Country:       b.Country,
		YearPublished: b.YearPublished,
		Languages:     b.Languages,
		BookPage:      b.BookPage,
		Description:   b.Description,
		BuyLink:       b.BuyLink,
		PosterImages:  b.PosterImages,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (d bookDocument) toModel() (model.Book, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return model.Book{}, fmt.Errorf("decode book id %q: %w", d.ID, err)
	}
	return model.Book{
		ID:            id,
		Title:         d.Title,
		Author:        d.Author,
		Rating:        d.Rating,
		Genre:         d.Genre,
		City:          d.City,
		Country:       d.Country,
		YearPublished: d.YearPublished,
		Languages:     d.Languages,
		BookPage:      d.BookPage,
		Description:   d.Description,
		BuyLink:       d.BuyLink,
		PosterImages:  d.PosterImages,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}, nil
}

// bookFilterDocument mirrors GormBookRepository.filtered. A regex on the
// author array matches when any element matches.
func bookFilterDocument(filter BookFilter) bson.M {
	doc := bson.M{}

	if filter.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		doc["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"author": re},
			bson.M{"description": re},
			bson.M{"genre": re},
		}
	}

	if filter.Genre != "" {
		doc["genre"] = filter.Genre
	}

	return doc
}

func bookSortDocument(sort BookSort) bson.D {
	switch sort {
	case SortRatingDesc:
		return bson.D{{Key: "rating", Value: -1}, {Key: "createdAt", Value: 1}}
	case SortYearDesc:
		return bson.D{{Key: "yearPublished", Value: -1}, {Key: "createdAt", Value: 1}}
	default:
		return bson.D{{Key: "createdAt", Value: 1}}
	}
}

func groupCountPipeline(field string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
	}
}

type MongoBookRepository struct {
	coll *mongo.Collection
}

func NewMongoBookRepository(db *mongo.Database) *MongoBookRepository {
	return &MongoBookRepository{coll: db.Collection(BooksCollection)}
}

func (r *MongoBookRepository) CountAll(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoBookRepository) Count(ctx context.Context, filter BookFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, bookFilterDocument(filter))
}

func (r *MongoBookRepository) Find(ctx context.Context, filter BookFilter, sort BookSort, skip, limit int) ([]model.Book, error) {
	if skip < 0 {
		skip = 0
	}

	opts := options.Find().
		SetSort(bookSortDocument(sort)).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bookFilterDocument(filter), opts)
	if err != nil {
		return nil, err
	}

	var docs []bookDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	books := make([]model.Book, 0, len(docs))
	for _, d := range docs {
		b, err := d.toModel()
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}

func (r *MongoBookRepository) GroupCount(ctx context.Context, field string) ([]GroupCount, error) {
	name, ok := groupableFields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedField, field)
	}

	cur, err := r.coll.Aggregate(ctx, groupCountPipeline(name))
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make([]GroupCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, GroupCount{Key: row.Key, Count: row.Count})
	}
	return out, nil
}

func (r *MongoBookRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var doc bookDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	book, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func stampNew(b *model.Book, now time.Time) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func (r *MongoBookRepository) Create(ctx context.Context, book *model.Book) error {
	stampNew(book, time.Now())
	_, err := r.coll.InsertOne(ctx, toBookDocument(book))
	return err
}

func (r *MongoBookRepository) CreateBatch(ctx context.Context, books []model.Book) error {
	if len(books) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]any, 0, len(books))
	for i := range books {
		stampNew(&books[i], now)
		docs = append(docs, toBookDocument(&books[i]))
	}

	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *MongoBookRepository) Update(ctx context.Context, book *model.Book) error {
	book.UpdatedAt = time.Now()
	doc := toBookDocument(book)

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$set": bson.M{
			"title":         doc.Title,
			"author":        doc.Author,
			"rating":        doc.Rating,
			"genre":         doc.Genre,
			"city":          doc.City,
			"country":       doc.Country,
			"yearPublished": doc.YearPublished,
			"languages":     doc.Languages,
			"bookPage":      doc.BookPage,
			"description":   doc.Description,
			"buyLink":       doc.BuyLink,
			"posterImages":  doc.PosterImages,
			"updatedAt":     doc.UpdatedAt,
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBookRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var doc bookDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	book, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func (r *MongoBookRepository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (r *MongoBookRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
