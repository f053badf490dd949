// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/sec"
)

// Service is the book collection service.
type Service = collection.Service[Book, string]

// NewService wires book rules over records. authors is consulted on every
// create and update that sets authorId; it is usually the uncached store.
func NewService(records collection.Store[Book, string], authors AuthorDirectory, policy sec.AccessPolicy) *Service {
	return collection.NewService(records, Resource(authors), policy)
}
