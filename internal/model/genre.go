package model

// BookGenres is the closed set of genres a book may carry.
var BookGenres = []string{
	"Fiction",
	"Non-Fiction",
	"Mystery",
	"Thriller",
	"Romance",
	"Science Fiction",
	"Fantasy",
	"Horror",
	"Historical Fiction",
	"Biography",
	"History",
	"Poetry",
	"Self-Help",
	"Philosophy",
	"Young Adult",
	"Children",
}

// SortOptions are the sortBy values the catalog understands.
var SortOptions = []string{
	SortMostPopular,
	SortLatest,
}

const (
	SortMostPopular = "Most Popular"
	SortLatest      = "Latest"
)

func IsValidSort(sortBy string) bool {
	for _, s := range SortOptions {
		if s == sortBy {
			return true
		}
	}
	return false
}

func IsValidGenre(genre string) bool {
	for _, g := range BookGenres {
		if g == genre {
			return true
		}
	}
	return false
}
