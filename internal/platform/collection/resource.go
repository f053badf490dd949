// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"strconv"
	"time"

	"github.com/arokeji/library-api/pkg/uuid"
)

// Resource describes one kind of entity served by a [Service].
//
// Only Name and IDOf are mandatory; every hook is optional.
type Resource[T any, ID comparable] struct {
	// Name is the singular display name used in messages ("Book").
	Name string

	// IDOf returns the identifier of a persisted item.
	IDOf func(item *T) ID

	// Normalize cleans user input before validation (trimming, casing).
	Normalize func(item *T)

	// Validate runs checks struct tags cannot express, such as references
	// to other resources. It runs after tag validation.
	Validate func(ctx context.Context, item *T) error

	// ValidateCreate holds the rules that only apply to a new item, such as
	// a mandatory credential. It runs right after Validate, on create only.
	ValidateCreate func(ctx context.Context, item *T) error

	// Generated names the server-assigned fields, besides the id, that a new
	// item arrived with. Create rejects the item when any is returned.
	Generated func(item *T) []string

	// BeforeSave runs last, right before the item reaches the store.
	BeforeSave func(ctx context.Context, item *T) error

	// BeforeDelete runs after the access check and before the store delete.
	// The returned func, when not nil, runs once the delete succeeded. It
	// lets a resource refresh rows the database rewrote as a side effect.
	BeforeDelete func(ctx context.Context, id ID) (func(ctx context.Context), error)

	// OwnerOf marks the resource as identity-owned. Update and delete then
	// require an actor accepted by the access policy for the returned owner.
	OwnerOf func(item *T) string
}

// Owned reports whether mutations go through the access policy.
func (r Resource[T, ID]) Owned() bool {
	return r.OwnerOf != nil
}

// Patch is a whitelisted partial update. Apply copies only the fields the
// client sent onto the persisted item.
type Patch[T any] interface {
	Apply(item *T)
}

// FieldID is the JSON name of every resource identifier.
const FieldID = "id"

// GeneratedTimestamps reports createdAt and updatedAt when they are set.
func GeneratedTimestamps(createdAt, updatedAt time.Time) []string {
	var fields []string
	if !createdAt.IsZero() {
		fields = append(fields, "createdAt")
	}
	if !updatedAt.IsZero() {
		fields = append(fields, "updatedAt")
	}
	return fields
}

// # Identifier Parsers

// ParseIntID accepts positive decimal identifiers.
func ParseIntID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseUUID accepts UUID strings and returns them in canonical form.
func ParseUUID(raw string) (string, bool) {
	return uuid.Parse(raw)
}
