// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company

import (
	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/sec"
)

// Service is the company collection service.
type Service = collection.Service[Company, int]

// NewService wires company rules over store.
func NewService(store collection.Store[Company, int], policy sec.AccessPolicy) *Service {
	return collection.NewService(store, Resource(), policy)
}
