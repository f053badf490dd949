// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BooksTable represents the 'books' table
type BooksTable struct {
	Table             string
	ID                string
	Title             string
	AuthorID          string
	Pages             string
	Rating            string
	PublisherName     string
	PublisherCategory string
	CreatedAt         string
	UpdatedAt         string
}

// Books is the schema definition for books
var Books = BooksTable{
	Table:             "books",
	ID:                "id",
	Title:             "title",
	AuthorID:          "author_id",
	Pages:             "pages",
	Rating:            "rating",
	PublisherName:     "publisher_name",
	PublisherCategory: "publisher_category",
	CreatedAt:         "created_at",
	UpdatedAt:         "updated_at",
}

// Columns lists every column in scan order.
func (t BooksTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.AuthorID, t.Pages, t.Rating,
		t.PublisherName, t.PublisherCategory, t.CreatedAt, t.UpdatedAt,
	}
}
