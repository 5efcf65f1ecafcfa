// Command seed replaces the book collection with the contents of a JSON file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/snnyvrz/bookify/internal/catalog"
	"github.com/snnyvrz/bookify/internal/config"
	"github.com/snnyvrz/bookify/internal/db"
	"github.com/snnyvrz/bookify/internal/logger"
)

func main() {
	path := flag.String("file", "books.json", "path to a JSON array of books")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.Log)

	if err := run(context.Background(), cfg, log, db.DefaultRetry, *path); err != nil {
		log.Error("seeding failed", "path", *path, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger, retry db.Retry, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	books, err := decodeBooks(f)
	if err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	store, err := db.Open(ctx, cfg, log, retry)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Driver, err)
	}
	defer func() {
		if err := store.Close(ctx); err != nil {
			log.Error("store close", "error", err)
		}
	}()

	n, err := catalog.NewService(store.Books, log, catalog.Options{}).Replace(ctx, books)
	if err != nil {
		return err
	}

	log.Info("database seeded", "books", n, "path", path)
	return nil
}
