// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package book manages the book catalogue. A book may reference its author.
package book

import (
	"context"
	"strings"
	"time"

	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/dberr"
	"github.com/arokeji/library-api/internal/platform/validate"
)

// Book is one catalogue entry.
type Book struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"               validate:"required,min=3,max=50"`
	AuthorID  *string        `json:"authorId"`
	Author    *AuthorSummary `json:"author,omitempty"`
	Pages     *int           `json:"pages,omitempty"     validate:"omitempty,min=1,max=15000"`
	Rating    *float64       `json:"rating,omitempty"    validate:"omitempty,gte=0,lte=10"`
	Publisher *Publisher     `json:"publisher,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// AuthorSummary is the author as embedded in book responses. It is read-only.
type AuthorSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Publisher is the optional publishing house of a book.
type Publisher struct {
	Name     string `json:"name"     validate:"required,max=50"`
	Category string `json:"category" validate:"max=50"`
}

// Patch lists the fields a book update may carry. An empty authorId
// detaches the book from its author.
type Patch struct {
	Title     *string    `json:"title"`
	AuthorID  *string    `json:"authorId"`
	Pages     *int       `json:"pages"`
	Rating    *float64   `json:"rating"`
	Publisher *Publisher `json:"publisher"`
}

// Apply implements collection.Patch.
func (p *Patch) Apply(book *Book) {
	if p.Title != nil {
		book.Title = *p.Title
	}
	if p.AuthorID != nil {
		book.AuthorID = p.AuthorID
	}
	if p.Pages != nil {
		book.Pages = p.Pages
	}
	if p.Rating != nil {
		book.Rating = p.Rating
	}
	if p.Publisher != nil {
		book.Publisher = p.Publisher
	}
}

// AuthorDirectory answers whether an author exists.
type AuthorDirectory interface {
	AuthorExists(ctx context.Context, id string) (bool, error)
}

// Field names used in validation messages
const (
	FieldAuthorID = "authorId"
)

// Resource returns the collection rules for books. Referenced authors are
// checked against authors.
func Resource(authors AuthorDirectory) collection.Resource[Book, string] {
	return collection.Resource[Book, string]{
		Name:      "Book",
		IDOf:      func(book *Book) string { return book.ID },
		Normalize: normalize,
		Validate: func(ctx context.Context, book *Book) error {
			return validateAuthor(ctx, authors, book)
		},
		Generated: func(book *Book) []string { return collection.GeneratedTimestamps(book.CreatedAt, book.UpdatedAt) },
	}
}

func normalize(book *Book) {
	book.Title = strings.TrimSpace(book.Title)
	book.Author = nil

	if book.AuthorID != nil {
		id := strings.ToLower(strings.TrimSpace(*book.AuthorID))
		if id == "" {
			book.AuthorID = nil
		} else {
			book.AuthorID = &id
		}
	}

	if book.Publisher != nil {
		book.Publisher.Name = strings.TrimSpace(book.Publisher.Name)
		book.Publisher.Category = strings.TrimSpace(book.Publisher.Category)
	}
}

func validateAuthor(ctx context.Context, authors AuthorDirectory, book *Book) error {
	if book.AuthorID == nil {
		return nil
	}

	validator := &validate.Validator{}
	if validator.UUID(FieldAuthorID, *book.AuthorID).HasErrors() {
		return validator.Err()
	}

	exists, err := authors.AuthorExists(ctx, *book.AuthorID)
	if err != nil {
		return dberr.Wrap(err, "check_author")
	}

	return validator.Custom(FieldAuthorID, !exists, "Author does not exist").Err()
}
