package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/snnyvrz/bookify/internal/config"
	"github.com/snnyvrz/bookify/internal/db"
)

const seedFile = `[
	{
		"title": "Noli Me Tangere",
		"author": ["Rizal, José"],
		"rating": 9.5,
		"genre": "Historical Fiction",
		"city": "Berlin",
		"country": "Germany",
		"yearPublished": 1887,
		"languages": "Spanish",
		"bookPage": 438,
		"description": "A novel of colonial Philippines",
		"buyLink": "https://example.com/noli",
		"posterImages": ["https://img.example.com/noli.jpg"]
	}
]`

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{Store: config.Store{
		Driver:     config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "seed.db"),
	}}
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_SeedsStore(t *testing.T) {
	ctx := context.Background()
	cfg := sqliteConfig(t)

	if err := run(ctx, cfg, discardLogger(), db.Retry{Attempts: 1}, writeSeedFile(t, seedFile)); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	store, err := db.Open(ctx, cfg, discardLogger(), db.Retry{Attempts: 1})
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close(ctx) })

	total, err := store.Books.CountAll(ctx)
	if err != nil {
		t.Fatalf("CountAll returned error: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 seeded book, got %d", total)
	}
}

func TestRun_ReturnsErrors(t *testing.T) {
	ctx := context.Background()

	missing := filepath.Join(t.TempDir(), "nope.json")
	if err := run(ctx, sqliteConfig(t), discardLogger(), db.Retry{Attempts: 1}, missing); err == nil {
		t.Errorf("expected an error for a missing seed file")
	}

	invalid := writeSeedFile(t, `[{"title": "No genre", "author": "Someone"}]`)
	if err := run(ctx, sqliteConfig(t), discardLogger(), db.Retry{Attempts: 1}, invalid); err == nil {
		t.Errorf("expected an error for an invalid book")
	}

	bad := &config.Config{Store: config.Store{Driver: "cassandra"}}
	if err := run(ctx, bad, discardLogger(), db.Retry{Attempts: 1}, writeSeedFile(t, seedFile)); err == nil {
		t.Errorf("expected an error for an unknown driver")
	}
}
