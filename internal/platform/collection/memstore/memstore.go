// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package memstore is an in-process [collection.Store] used by tests and
// local tooling. Items keep insertion order.
package memstore

import (
	"context"
	"sync"

	"github.com/arokeji/library-api/internal/platform/dberr"
	"github.com/arokeji/library-api/pkg/fold"
)

// Accessors tells the store how to read and stamp an item.
type Accessors[T any, ID comparable] struct {
	// IDOf reads the identifier.
	IDOf func(item *T) ID
	// Assign stamps a fresh identifier derived from the insert sequence (1, 2, ...).
	Assign func(item *T, sequence int)
	// NameOf reads the field prefix searches match against.
	NameOf func(item *T) string
}

// Store keeps items in a slice guarded by a mutex.
type Store[T any, ID comparable] struct {
	mu        sync.RWMutex
	items     []T
	sequence  int
	accessors Accessors[T, ID]
}

// New creates an empty store.
func New[T any, ID comparable](accessors Accessors[T, ID]) *Store[T, ID] {
	return &Store[T, ID]{accessors: accessors}
}

// FindMany implements collection.Store.
func (s *Store[T, ID]) FindMany(_ context.Context, offset, limit int) ([]T, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.items)
	if offset >= total {
		return []T{}, total, nil
	}

	end := total
	if limit < total-offset {
		end = offset + limit
	}
	window := make([]T, end-offset)
	copy(window, s.items[offset:end])

	return window, total, nil
}

// FindByID implements collection.Store.
func (s *Store[T, ID]) FindByID(_ context.Context, id ID) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, dberr.ErrNotFound
	}

	item := s.items[index]
	return &item, nil
}

// FindByNamePrefix implements collection.Store.
func (s *Store[T, ID]) FindByNamePrefix(_ context.Context, prefix string) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []T{}
	for index := range s.items {
		if fold.HasPrefix(s.accessors.NameOf(&s.items[index]), prefix) {
			matches = append(matches, s.items[index])
		}
	}
	return matches, nil
}

// Insert implements collection.Store.
func (s *Store[T, ID]) Insert(_ context.Context, item *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sequence++
	s.accessors.Assign(item, s.sequence)
	s.items = append(s.items, *item)

	stored := *item
	return &stored, nil
}

// UpdateByID implements collection.Store.
func (s *Store[T, ID]) UpdateByID(_ context.Context, id ID, item *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, dberr.ErrNotFound
	}

	s.items[index] = *item
	stored := *item
	return &stored, nil
}

// DeleteByID implements collection.Store.
func (s *Store[T, ID]) DeleteByID(_ context.Context, id ID) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOf(id)
	if index < 0 {
		return nil, dberr.ErrNotFound
	}

	deleted := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)
	return &deleted, nil
}

// FindFirst returns the first item matching predicate, for lookups by
// secondary keys.
func (s *Store[T, ID]) FindFirst(predicate func(item *T) bool) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for index := range s.items {
		if predicate(&s.items[index]) {
			item := s.items[index]
			return &item, nil
		}
	}
	return nil, dberr.ErrNotFound
}

// Filter returns every item matching predicate, in insertion order.
func (s *Store[T, ID]) Filter(predicate func(item *T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []T{}
	for index := range s.items {
		if predicate(&s.items[index]) {
			matches = append(matches, s.items[index])
		}
	}
	return matches
}

// Len returns the number of stored items.
func (s *Store[T, ID]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T, ID]) indexOf(id ID) int {
	for index := range s.items {
		if s.accessors.IDOf(&s.items[index]) == id {
			return index
		}
	}
	return -1
}
