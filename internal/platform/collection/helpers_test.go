// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection_test

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/collection/memstore"
	"github.com/arokeji/library-api/internal/platform/sec"
)

type widget struct {
	ID    int    `json:"id"`
	Name  string `json:"name" validate:"required,min=3,max=50"`
	Owner string `json:"owner"`
}

type widgetPatch struct {
	Name *string `json:"name"`
}

func (p *widgetPatch) Apply(item *widget) {
	if p.Name != nil {
		item.Name = *p.Name
	}
}

var _ collection.Store[widget, int] = (*memstore.Store[widget, int])(nil)

func newWidgetStore() *memstore.Store[widget, int] {
	return memstore.New(memstore.Accessors[widget, int]{
		IDOf:   func(item *widget) int { return item.ID },
		Assign: func(item *widget, sequence int) { item.ID = sequence },
		NameOf: func(item *widget) string { return item.Name },
	})
}

func widgetResource(owned bool) collection.Resource[widget, int] {
	resource := collection.Resource[widget, int]{
		Name: "Widget",
		IDOf: func(item *widget) int { return item.ID },
	}
	if owned {
		resource.OwnerOf = func(item *widget) string { return item.Owner }
	}
	return resource
}

var testPolicy = sec.NewAccessPolicy("admin@gmail.com")

// spyStore counts every call that reaches storage.
type spyStore struct {
	collection.Store[widget, int]
	calls atomic.Int32
}

func (s *spyStore) FindMany(ctx context.Context, offset, limit int) ([]widget, int, error) {
	s.calls.Add(1)
	return s.Store.FindMany(ctx, offset, limit)
}

func (s *spyStore) FindByID(ctx context.Context, id int) (*widget, error) {
	s.calls.Add(1)
	return s.Store.FindByID(ctx, id)
}

func seed(store *memstore.Store[widget, int], count int) {
	for index := 1; index <= count; index++ {
		_, _ = store.Insert(context.Background(), &widget{Name: "widget-" + strconv.Itoa(index)})
	}
}
