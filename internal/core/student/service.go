// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package student

import (
	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/sec"
)

// Service is the student collection service.
type Service = collection.Service[Student, int]

// NewService wires student rules over store.
func NewService(store collection.Store[Student, int], policy sec.AccessPolicy) *Service {
	return collection.NewService(store, Resource(), policy)
}
