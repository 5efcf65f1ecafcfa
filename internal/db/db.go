package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/snnyvrz/bookify/internal/config"
	"github.com/snnyvrz/bookify/internal/model"
	"github.com/snnyvrz/bookify/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	defaultMaxAttempts     = 10
	defaultDelayBetweenTry = 2 * time.Second
)

// Retry bounds the startup connection loop.
type Retry struct {
	Attempts int
	Delay    time.Duration
}

var DefaultRetry = Retry{Attempts: defaultMaxAttempts, Delay: defaultDelayBetweenTry}

// Do calls fn until it succeeds, the attempts are exhausted or ctx is done.
func (r Retry) Do(ctx context.Context, logger *slog.Logger, what string, fn func(ctx context.Context) error) error {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}

		logger.Warn(what+" not ready", "attempt", attempt, "max_attempts", attempts, "error", err)
		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.Delay):
		}
	}

	return fmt.Errorf("could not connect to %s after %d attempts: %w", what, attempts, err)
}

// Store bundles the repositories of one backend with its lifecycle hooks.
type Store struct {
	Books     repository.BookRepository
	Carousels repository.CarouselRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open connects to the backend selected by cfg.Driver and prepares its schema.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, retry Retry) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		gdb, err := ConnectWithRetry(ctx, postgres.Open(cfg.DSN()), logger, retry)
		if err != nil {
			return nil, err
		}
		return NewGormStore(gdb)
	case config.DriverSQLite:
		gdb, err := ConnectWithRetry(ctx, sqlite.Open(cfg.SQLitePath), logger, retry)
		if err != nil {
			return nil, err
		}
		return NewGormStore(gdb)
	case config.DriverMongo:
		return OpenMongo(ctx, cfg.MongoURL, cfg.MongoDatabase, logger, retry)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func ConnectWithRetry(ctx context.Context, dialector gorm.Dialector, logger *slog.Logger, retry Retry) (*gorm.DB, error) {
	var db *gorm.DB

	err := retry.Do(ctx, logger, dialector.Name(), func(ctx context.Context) error {
		gdb, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
		if err != nil {
			return err
		}

		sqlDB, err := gdb.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}

		db = gdb
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("connected to database", "driver", dialector.Name())
	return db, nil
}

// NewGormStore migrates the schema and wraps gdb in a Store.
func NewGormStore(gdb *gorm.DB) (*Store, error) {
	if err := gdb.AutoMigrate(&model.Book{}, &model.CarouselItem{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	return &Store{
		Books:     repository.NewGormBookRepository(gdb),
		Carousels: repository.NewGormCarouselRepository(gdb),
		ping:      sqlDB.PingContext,
		close:     func(context.Context) error { return sqlDB.Close() },
	}, nil
}

func OpenMongo(ctx context.Context, uri, database string, logger *slog.Logger, retry Retry) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	err = retry.Do(ctx, logger, "mongo", func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	mdb := client.Database(database)
	if err := ensureMongoIndexes(ctx, mdb); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("connected to database", "driver", "mongo", "database", database)

	return &Store{
		Books:     repository.NewMongoBookRepository(mdb),
		Carousels: repository.NewMongoCarouselRepository(mdb),
		ping:      func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) },
		close:     client.Disconnect,
	}, nil
}

func ensureMongoIndexes(ctx context.Context, mdb *mongo.Database) error {
	_, err := mdb.Collection(repository.BooksCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "genre", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create book indexes: %w", err)
	}
	return nil
}
