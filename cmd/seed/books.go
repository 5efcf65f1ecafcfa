package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/snnyvrz/bookify/internal/catalog"
	"github.com/snnyvrz/bookify/internal/model"
)

// stringList accepts either a JSON array of strings, kept element for
// element, or a single comma-delimited string.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = catalog.TrimList(arr)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected string or array of strings: %w", err)
	}
	*l = catalog.SplitDelimited(s)
	return nil
}

type seedBook struct {
	Title         string     `json:"title"`
	Author        stringList `json:"author"`
	Rating        float64    `json:"rating"`
	Genre         string     `json:"genre"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	YearPublished int        `json:"yearPublished"`
	Languages     stringList `json:"languages"`
	BookPage      int        `json:"bookPage"`
	Description   string     `json:"description"`
	BuyLink       string     `json:"buyLink"`
	PosterImages  stringList `json:"posterImages"`
}

func decodeBooks(r io.Reader) ([]model.Book, error) {
	var raw []seedBook
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}

	books := make([]model.Book, 0, len(raw))
	for _, s := range raw {
		books = append(books, model.Book{
			Title:         s.Title,
			Author:        s.Author,
			Rating:        s.Rating,
			Genre:         s.Genre,
			City:          s.City,
			Country:       s.Country,
			YearPublished: s.YearPublished,
			Languages:     s.Languages,
			BookPage:      s.BookPage,
			Description:   s.Description,
			BuyLink:       s.BuyLink,
			PosterImages:  s.PosterImages,
		})
	}
	return books, nil
}
