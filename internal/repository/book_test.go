package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/bookify/internal/model"
	"github.com/snnyvrz/bookify/internal/testutil"
)

func seedCatalog(t *testing.T, repo *GormBookRepository) []model.Book {
	t.Helper()

	dune := testutil.NewBook("Dune", "Science Fiction", 9.1, 1965)
	dune.Author = []string{"Frank Herbert"}

	earthsea := testutil.NewBook("A Wizard of Earthsea", "Fantasy", 8.7, 1968)
	earthsea.Author = []string{"Ursula K. Le Guin"}

	leaves := testutil.NewBook("Leaves of Grass", "Poetry", 7.5, 1855)
	leaves.Description = "A collection that sings of the self"

	gatsby := testutil.NewBook("The Great Gatsby", "Fiction", 8.2, 1925)

	return testutil.SeedBooks(t, repo.db, dune, earthsea, leaves, gatsby)
}

func TestGormBookRepository_Find_SearchMatchesAnyTextField(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	seedCatalog(t, repo)

	ctx := context.Background()

	cases := []struct {
		search string
		want   string
	}{
		{"dune", "Dune"},
		{"LE GUIN", "A Wizard of Earthsea"},
		{"sings of the", "Leaves of Grass"},
		{"poetry", "Leaves of Grass"},
	}

	for _, tc := range cases {
		books, err := repo.Find(ctx, BookFilter{Search: tc.search}, SortNatural, 0, 10)
		if err != nil {
			t.Fatalf("Find(%q) returned error: %v", tc.search, err)
		}
		if len(books) != 1 || books[0].Title != tc.want {
			t.Fatalf("Find(%q): expected [%s], got %d books", tc.search, tc.want, len(books))
		}
	}
}

func TestGormBookRepository_Find_EscapesLikeWildcards(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	seedCatalog(t, repo)

	books, err := repo.Find(context.Background(), BookFilter{Search: "%"}, SortNatural, 0, 10)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected literal %% to match nothing, got %d books", len(books))
	}
}

func TestGormBookRepository_Find_SearchMatchesAuthorsOneAtATime(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	dune := testutil.NewBook("Dune Messiah", "Science Fiction", 8, 1969)
	dune.Author = []string{"Frank Herbert", "Brian Herbert"}

	emile := testutil.NewBook("Émile", "Philosophy", 7, 1762)
	emile.Author = []string{`AC\DC`}

	testutil.SeedBooks(t, db, dune, emile)

	ctx := context.Background()

	cases := []struct {
		search string
		want   []string
	}{
		{"brian herbert", []string{"Dune Messiah"}},
		{`AC\DC`, []string{"Émile"}},
		{"Émile", []string{"Émile"}},
		{`"`, nil},
		{`["`, nil},
		{`Herbert","Brian`, nil},
		{"Herbert, Brian", nil},
	}

	for _, tc := range cases {
		books, err := repo.Find(ctx, BookFilter{Search: tc.search}, SortNatural, 0, 10)
		if err != nil {
			t.Fatalf("Find(%q) returned error: %v", tc.search, err)
		}

		var got []string
		for _, b := range books {
			got = append(got, b.Title)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("Find(%q): expected %v, got %v", tc.search, tc.want, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Find(%q): expected %v, got %v", tc.search, tc.want, got)
			}
		}

		total, err := repo.Count(ctx, BookFilter{Search: tc.search})
		if err != nil {
			t.Fatalf("Count(%q) returned error: %v", tc.search, err)
		}
		if total != int64(len(tc.want)) {
			t.Fatalf("Count(%q): expected %d, got %d", tc.search, len(tc.want), total)
		}
	}
}

func TestGormBookRepository_Find_GenreAndSearchCombine(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	seedCatalog(t, repo)

	ctx := context.Background()

	books, err := repo.Find(ctx, BookFilter{Search: "of", Genre: "Poetry"}, SortNatural, 0, 10)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if len(books) != 1 || books[0].Genre != "Poetry" {
		t.Fatalf("expected only the poetry book, got %+v", books)
	}
}

func TestGormBookRepository_Find_Sorts(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	seeded := seedCatalog(t, repo)

	ctx := context.Background()

	natural, err := repo.Find(ctx, BookFilter{}, SortNatural, 0, 10)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	for i := range seeded {
		if natural[i].ID != seeded[i].ID {
			t.Fatalf("expected insertion order at %d: %s, got %s", i, seeded[i].Title, natural[i].Title)
		}
	}

	byRating, err := repo.Find(ctx, BookFilter{}, SortRatingDesc, 0, 10)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	for i := 1; i < len(byRating); i++ {
		if byRating[i-1].Rating < byRating[i].Rating {
			t.Fatalf("ratings not non-increasing: %v then %v", byRating[i-1].Rating, byRating[i].Rating)
		}
	}

	byYear, err := repo.Find(ctx, BookFilter{}, SortYearDesc, 0, 10)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	for i := 1; i < len(byYear); i++ {
		if byYear[i-1].YearPublished < byYear[i].YearPublished {
			t.Fatalf("years not non-increasing: %d then %d", byYear[i-1].YearPublished, byYear[i].YearPublished)
		}
	}
}

func TestGormBookRepository_Find_SkipAndLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	testutil.SeedNumbered(t, db, 12)

	ctx := context.Background()

	page2, err := repo.Find(ctx, BookFilter{}, SortNatural, 10, 10)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if len(page2) != 2 || page2[0].Title != "Book 11" {
		t.Fatalf("expected [Book 11, Book 12], got %d books", len(page2))
	}

	beyond, err := repo.Find(ctx, BookFilter{}, SortNatural, 50, 10)
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if len(beyond) != 0 {
		t.Fatalf("expected empty page, got %d books", len(beyond))
	}

	negative, err := repo.Find(ctx, BookFilter{}, SortNatural, -10, 10)
	if err != nil {
		t.Fatalf("Find with negative skip returned error: %v", err)
	}
	if len(negative) != 10 {
		t.Fatalf("expected negative skip to behave as 0, got %d books", len(negative))
	}
}

func TestGormBookRepository_CountAllIgnoresFilter(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	seedCatalog(t, repo)

	ctx := context.Background()

	all, err := repo.CountAll(ctx)
	if err != nil {
		t.Fatalf("CountAll returned error: %v", err)
	}
	if all != 4 {
		t.Fatalf("expected 4, got %d", all)
	}

	filtered, err := repo.Count(ctx, BookFilter{Genre: "Fantasy"})
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if filtered != 1 {
		t.Fatalf("expected 1 fantasy book, got %d", filtered)
	}
}

func TestGormBookRepository_GroupCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	testutil.SeedBooks(t, db,
		testutil.NewBook("P1", "Poetry", 5, 2000),
		testutil.NewBook("F1", "Fiction", 5, 2000),
		testutil.NewBook("P2", "Poetry", 5, 2000),
		testutil.NewBook("H1", "Horror", 5, 2000),
		testutil.NewBook("P3", "Poetry", 5, 2000),
		testutil.NewBook("F2", "Fiction", 5, 2000),
	)

	rows, err := repo.GroupCount(context.Background(), "genre")
	if err != nil {
		t.Fatalf("GroupCount returned error: %v", err)
	}

	want := []GroupCount{{"Poetry", 3}, {"Fiction", 2}, {"Horror", 1}}
	if len(rows) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("group %d: expected %+v, got %+v", i, want[i], rows[i])
		}
	}
}

func TestGormBookRepository_GroupCount_UnsupportedField(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	_, err := repo.GroupCount(context.Background(), "description; DROP TABLE books")
	if !errors.Is(err, ErrUnsupportedField) {
		t.Fatalf("expected ErrUnsupportedField, got %v", err)
	}
}

func TestGormBookRepository_UpdateReplacesFields(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	seeded := seedCatalog(t, repo)

	ctx := context.Background()

	book := seeded[0]
	book.Title = "Dune Messiah"
	book.Languages = []string{"English", "Spanish"}

	if err := repo.Update(ctx, &book); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	got, err := repo.FindByID(ctx, book.ID)
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if got.Title != "Dune Messiah" {
		t.Errorf("expected updated title, got %q", got.Title)
	}
	if len(got.Languages) != 2 || got.Languages[1] != "Spanish" {
		t.Errorf("expected replaced languages, got %v", got.Languages)
	}
	if len(got.Author) != 1 || got.Author[0] != "Frank Herbert" {
		t.Errorf("expected author preserved, got %v", got.Author)
	}
}

func TestGormBookRepository_MissingIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	ctx := context.Background()
	missing := testutil.NewBook("Ghost", "Horror", 1, 1900)
	missing.ID = uuid.New()

	if _, err := repo.FindByID(ctx, missing.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, &missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: expected ErrNotFound, got %v", err)
	}
	if _, err := repo.Delete(ctx, missing.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: expected ErrNotFound, got %v", err)
	}
}

func TestGormBookRepository_DeleteReturnsRecord(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	seeded := seedCatalog(t, repo)

	ctx := context.Background()

	deleted, err := repo.Delete(ctx, seeded[1].ID)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.Title != seeded[1].Title {
		t.Errorf("expected deleted %q, got %q", seeded[1].Title, deleted.Title)
	}

	total, _ := repo.CountAll(ctx)
	if total != 3 {
		t.Errorf("expected 3 remaining, got %d", total)
	}
}

func TestGormBookRepository_DeleteManyDeletesExactlyThoseIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)
	seeded := seedCatalog(t, repo)

	ctx := context.Background()

	n, err := repo.DeleteMany(ctx, []uuid.UUID{seeded[0].ID, seeded[2].ID, uuid.New()})
	if err != nil {
		t.Fatalf("DeleteMany returned error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted, got %d", n)
	}

	remaining, _ := repo.Find(ctx, BookFilter{}, SortNatural, 0, 10)
	if len(remaining) != 2 || remaining[0].ID != seeded[1].ID || remaining[1].ID != seeded[3].ID {
		t.Fatalf("unexpected remaining books: %+v", remaining)
	}
}

func TestGormBookRepository_CreateBatchAndDeleteAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewGormBookRepository(db)

	ctx := context.Background()

	books := []model.Book{
		testutil.NewBook("One", "Fiction", 1, 2001),
		testutil.NewBook("Two", "Fiction", 2, 2002),
	}
	if err := repo.CreateBatch(ctx, books); err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}

	total, _ := repo.CountAll(ctx)
	if total != 2 {
		t.Fatalf("expected 2 books, got %d", total)
	}

	n, err := repo.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll returned error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 deleted, got %d", n)
	}
}
