package catalog

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/snnyvrz/bookify/internal/model"
	"github.com/snnyvrz/bookify/internal/repository"
)

// PageSize is the fixed number of books per listing page.
const PageSize = 10

const DistinctGenre = "genre"

// Query is the loosely typed listing request as received from a query string.
type Query struct {
	Search       string
	BookGenre    string
	FilterBy     string
	SortBy       string
	Page         int
	DistinctItem string
}

// ParseQuery reads listing parameters from values. It never fails: a page
// without a leading number becomes 1, an unknown sortBy means natural order,
// and unknown keys are ignored.
func ParseQuery(values url.Values) Query {
	return Query{
		Search:       values.Get("search"),
		BookGenre:    values.Get("bookGenre"),
		FilterBy:     values.Get("filterBy"),
		SortBy:       parseSort(values.Get("sortBy")),
		Page:         parsePage(values.Get("page")),
		DistinctItem: values.Get("distinctItem"),
	}
}

// parseSort keeps only the sort names the catalog knows; anything else means
// natural order.
func parseSort(s string) string {
	if model.IsValidSort(s) {
		return s
	}
	return ""
}

// parsePage reads the leading integer of s, so "2abc" and "2.5" are page 2.
// Input without one, or one that overflows, is page 1.
func parsePage(s string) int {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 1
	}

	page, err := strconv.Atoi(s[:end])
	if err != nil {
		return 1
	}
	return page
}

// Filter builds the store predicate. filterBy is applied after bookGenre and
// therefore wins when both are set.
func (q Query) Filter() repository.BookFilter {
	f := repository.BookFilter{Search: q.Search}
	if q.BookGenre != "" {
		f.Genre = q.BookGenre
	}
	if q.FilterBy != "" {
		f.Genre = q.FilterBy
	}
	return f
}

func (q Query) Sort() repository.BookSort {
	switch q.SortBy {
	case model.SortMostPopular:
		return repository.SortRatingDesc
	case model.SortLatest:
		return repository.SortYearDesc
	default:
		return repository.SortNatural
	}
}

// Skip is the number of records before the requested page. Pages below 1
// are not rejected; they simply start at the first record.
func (q Query) Skip() int {
	skip := (q.Page - 1) * PageSize
	if skip < 0 {
		return 0
	}
	return skip
}

func totalPages(totalDocuments int64) int {
	return int((totalDocuments + PageSize - 1) / PageSize)
}
