// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"context"

	"github.com/arokeji/library-api/internal/platform/collection"
)

// Store persists authors.
type Store interface {
	collection.Store[Author, string]

	// FindByUser loads an author by account name, including the password
	// hash. It must bypass any cache.
	FindByUser(ctx context.Context, user string) (*Author, error)
}
