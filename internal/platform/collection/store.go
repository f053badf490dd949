// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package collection implements the generic CRUD service shared by every
resource the API exposes.

Architecture:

  - Store: the storage adapter contract, implemented once per engine
    (pgx, database/sql, GORM, in-memory).
  - Resource: per-kind rules (name, normalisation, extra validation, owner).
  - Service: pagination, validation, ownership checks and error mapping.
  - Routes: the chi handlers that turn HTTP into Service calls.

Domain packages only describe their entity and write their adapter.
*/
package collection

import (
	"context"
	"strings"
)

// Store is the storage adapter consumed by [Service].
//
// Lookups by id report a missing row as an error that [dberr.Classify]
// recognises as not found (pgx.ErrNoRows, sql.ErrNoRows,
// gorm.ErrRecordNotFound or [dberr.ErrNotFound]).
type Store[T any, ID comparable] interface {
	// FindMany returns one window of items in a stable order and the total
	// number of items.
	FindMany(ctx context.Context, offset, limit int) ([]T, int, error)

	FindByID(ctx context.Context, id ID) (*T, error)

	// FindByNamePrefix matches the resource's display name, case-insensitively
	// and anchored at the start.
	FindByNamePrefix(ctx context.Context, prefix string) ([]T, error)

	// Insert persists item and returns it with generated fields populated.
	Insert(ctx context.Context, item *T) (*T, error)

	// UpdateByID overwrites the mutable columns of the row with id.
	UpdateByID(ctx context.Context, id ID, item *T) (*T, error)

	// DeleteByID removes the row and returns it as it was.
	DeleteByID(ctx context.Context, id ID) (*T, error)
}

// EscapeLike escapes the LIKE wildcards in a user-supplied prefix and
// appends the trailing '%'. Queries must declare ESCAPE '\'.
func EscapeLike(prefix string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(prefix) + "%"
}
