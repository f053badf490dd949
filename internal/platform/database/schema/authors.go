// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema names the tables and columns hand-written SQL refers to.
package schema

// AuthorsTable represents the 'authors' table
type AuthorsTable struct {
	Table        string
	ID           string
	User         string
	PasswordHash string
	Name         string
	Country      string
	CreatedAt    string
	UpdatedAt    string
}

// Authors is the schema definition for authors
var Authors = AuthorsTable{
	Table:        "authors",
	ID:           "id",
	User:         "username",
	PasswordHash: "password_hash",
	Name:         "name",
	Country:      "country",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

// Columns lists the public columns in scan order.
func (t AuthorsTable) Columns() []string {
	return []string{t.ID, t.User, t.Name, t.Country, t.CreatedAt, t.UpdatedAt}
}
