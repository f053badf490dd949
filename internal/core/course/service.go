// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package course

import (
	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/sec"
)

// Service is the course collection service.
type Service = collection.Service[Course, int]

// NewService wires course rules over store.
func NewService(store collection.Store[Course, int], policy sec.AccessPolicy) *Service {
	return collection.NewService(store, Resource(), policy)
}
