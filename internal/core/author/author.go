// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package author manages authors: the only identity-owned resource, and the
// accounts that sign in to the API.
package author

import (
	"context"
	"strings"
	"time"

	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/sec"
	"github.com/arokeji/library-api/internal/platform/validate"
)

// Author is a writer who can also sign in.
//
// Password is write-only: it is accepted on input, hashed before storage and
// never serialized back.
type Author struct {
	ID           string    `json:"id"`
	User         string    `json:"user"               validate:"required,email,max=100"`
	Password     string    `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"               validate:"required,min=3,max=50"`
	Country      string    `json:"country"            validate:"max=50"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Patch lists the fields an author may change. The account name is fixed.
type Patch struct {
	Name     *string `json:"name"`
	Country  *string `json:"country"`
	Password *string `json:"password"`
}

// Apply implements collection.Patch.
func (p *Patch) Apply(author *Author) {
	if p.Name != nil {
		author.Name = *p.Name
	}
	if p.Country != nil {
		author.Country = *p.Country
	}
	if p.Password != nil {
		author.Password = *p.Password
	}
}

// Credentials is the login request body.
type Credentials struct {
	User     string `json:"user"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Token is the login response body.
type Token struct {
	Token string `json:"token"`
}

// Field names used in validation messages
const (
	FieldPassword = "password"
)

// Resource returns the collection rules for authors.
func Resource() collection.Resource[Author, string] {
	return collection.Resource[Author, string]{
		Name:       "Author",
		IDOf:       func(author *Author) string { return author.ID },
		Normalize:      normalize,
		ValidateCreate: requirePassword,
		Generated:      func(author *Author) []string { return collection.GeneratedTimestamps(author.CreatedAt, author.UpdatedAt) },
		BeforeSave:     hashPassword,
		OwnerOf:        func(author *Author) string { return author.ID },
	}
}

func normalize(author *Author) {
	author.User = normalizeUser(author.User)
	author.Name = strings.TrimSpace(author.Name)
	author.Country = strings.TrimSpace(author.Country)
}

func normalizeUser(user string) string {
	return strings.ToLower(strings.TrimSpace(user))
}

// requirePassword rejects a new author without a password. Updates keep
// the stored hash when no password is sent.
func requirePassword(_ context.Context, author *Author) error {
	return (&validate.Validator{}).Required(FieldPassword, author.Password).Err()
}

func hashPassword(_ context.Context, author *Author) error {
	if author.Password == "" {
		return nil
	}

	hash, err := sec.HashPassword(author.Password)
	if err != nil {
		return err
	}

	author.PasswordHash = hash
	author.Password = ""
	return nil
}
