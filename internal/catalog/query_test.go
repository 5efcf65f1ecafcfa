package catalog

import (
	"net/url"
	"testing"

	"github.com/snnyvrz/bookify/internal/repository"
	"github.com/stretchr/testify/assert"
)

func TestParseQuery_Defaults(t *testing.T) {
	q := ParseQuery(url.Values{})

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, repository.BookFilter{}, q.Filter())
	assert.Equal(t, repository.SortNatural, q.Sort())
	assert.Equal(t, 0, q.Skip())
}

func TestParseQuery_MalformedPageDefaultsToOne(t *testing.T) {
	for _, raw := range []string{"", "abc", " ", "-", "x2", "99999999999999999999999"} {
		q := ParseQuery(url.Values{"page": {raw}})
		assert.Equal(t, 1, q.Page, "page=%q", raw)
	}
}

func TestParseQuery_PageUsesLeadingDigits(t *testing.T) {
	cases := map[string]int{
		"2abc": 2,
		"2.5":  2,
		" 3 ":  3,
		"+4":   4,
		"-3x":  -3,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseQuery(url.Values{"page": {raw}}).Page, "page=%q", raw)
	}
}

func TestParseQuery_UnknownSortIsDropped(t *testing.T) {
	assert.Equal(t, "Latest", ParseQuery(url.Values{"sortBy": {"Latest"}}).SortBy)
	assert.Equal(t, "Most Popular", ParseQuery(url.Values{"sortBy": {"Most Popular"}}).SortBy)
	assert.Equal(t, "", ParseQuery(url.Values{"sortBy": {"latest"}}).SortBy)
	assert.Equal(t, repository.SortNatural, ParseQuery(url.Values{"sortBy": {"Oldest"}}).Sort())
}

func TestParseQuery_PageIsNotClamped(t *testing.T) {
	assert.Equal(t, 99, ParseQuery(url.Values{"page": {"99"}}).Page)
	assert.Equal(t, 0, ParseQuery(url.Values{"page": {"0"}}).Page)
	assert.Equal(t, -3, ParseQuery(url.Values{"page": {"-3"}}).Page)
}

func TestQuery_FilterByWinsOverBookGenre(t *testing.T) {
	q := ParseQuery(url.Values{"bookGenre": {"Fiction"}, "filterBy": {"Poetry"}})
	assert.Equal(t, "Poetry", q.Filter().Genre)

	q = ParseQuery(url.Values{"bookGenre": {"Fiction"}})
	assert.Equal(t, "Fiction", q.Filter().Genre)
}

func TestQuery_Sort(t *testing.T) {
	cases := map[string]repository.BookSort{
		"Most Popular": repository.SortRatingDesc,
		"Latest":       repository.SortYearDesc,
		"Oldest":       repository.SortNatural,
		"":             repository.SortNatural,
	}
	for sortBy, want := range cases {
		assert.Equal(t, want, Query{SortBy: sortBy}.Sort(), "sortBy=%q", sortBy)
	}
}

func TestQuery_Skip(t *testing.T) {
	assert.Equal(t, 0, Query{Page: 1}.Skip())
	assert.Equal(t, 20, Query{Page: 3}.Skip())
	assert.Equal(t, 0, Query{Page: 0}.Skip())
	assert.Equal(t, 0, Query{Page: -5}.Skip())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0))
	assert.Equal(t, 1, totalPages(1))
	assert.Equal(t, 1, totalPages(10))
	assert.Equal(t, 2, totalPages(11))
	assert.Equal(t, 10, totalPages(100))
}
