// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"context"
	"log/slog"

	"github.com/arokeji/library-api/internal/platform/ctxutil"
)

// ReferenceIndex finds the books that point at an author.
type ReferenceIndex interface {
	BookIDsByAuthor(ctx context.Context, authorID string) ([]string, error)
}

// Evicter drops one book from a read cache.
type Evicter interface {
	Evict(ctx context.Context, id string)
}

// EvictOnAuthorDelete returns a hook for the author delete path.
//
// Removing an author nulls authorId on their books inside the database
// (ON DELETE SET NULL), out of reach of the book cache. The hook records
// which books reference the author before the delete, and the func it
// returns evicts them once the delete went through.
func EvictOnAuthorDelete(index ReferenceIndex, cache Evicter) func(ctx context.Context, authorID string) (func(ctx context.Context), error) {
	return func(ctx context.Context, authorID string) (func(ctx context.Context), error) {
		ids, err := index.BookIDsByAuthor(ctx, authorID)
		if err != nil {
			return nil, err
		}

		return func(ctx context.Context) {
			for _, id := range ids {
				cache.Evict(ctx, id)
			}
			if len(ids) > 0 {
				ctxutil.GetLogger(ctx).DebugContext(ctx, "detached_books_evicted",
					slog.String("author_id", authorID),
					slog.Int("count", len(ids)),
				)
			}
		}, nil
	}
}
