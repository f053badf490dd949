// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/arokeji/library-api/internal/platform/apperr"
	"github.com/arokeji/library-api/internal/platform/ctxutil"
	"github.com/arokeji/library-api/internal/platform/dberr"
	"github.com/arokeji/library-api/internal/platform/sec"
	"github.com/arokeji/library-api/internal/platform/validate"
	"github.com/arokeji/library-api/pkg/pagination"
)

// Page is one window of a listing together with its pagination block.
type Page[T any] struct {
	Data       []T             `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
}

// Service implements the CRUD operations for one resource kind.
type Service[T any, ID comparable] struct {
	store    Store[T, ID]
	resource Resource[T, ID]
	policy   sec.AccessPolicy
}

// NewService wires a store and a resource definition under an access policy.
func NewService[T any, ID comparable](store Store[T, ID], resource Resource[T, ID], policy sec.AccessPolicy) *Service[T, ID] {
	return &Service[T, ID]{store: store, resource: resource, policy: policy}
}

// Resource returns the definition the service was built with.
func (s *Service[T, ID]) Resource() Resource[T, ID] {
	return s.resource
}

// # Queries

// List returns the requested page.
//
// Invalid page descriptors are rejected before the store is queried.
// A page beyond the last one yields an empty slice, not an error.
func (s *Service[T, ID]) List(ctx context.Context, params pagination.Params) (Page[T], error) {
	if invalid := params.Invalid(); len(invalid) > 0 {
		return Page[T]{}, apperr.InvalidPagination(invalid...)
	}

	items, total, err := s.store.FindMany(ctx, params.Offset(), params.Limit)
	if err != nil {
		return Page[T]{}, s.storageError(err, "list")
	}

	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Data:       items,
		Pagination: pagination.NewMeta(params.Page, params.Limit, total),
	}, nil
}

// GetByID returns one item or NotFound.
func (s *Service[T, ID]) GetByID(ctx context.Context, id ID) (*T, error) {
	item, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "get")
	}
	return item, nil
}

// FindByNamePrefix returns every item whose name starts with prefix,
// ignoring case. No match is an empty slice.
func (s *Service[T, ID]) FindByNamePrefix(ctx context.Context, prefix string) ([]T, error) {
	items, err := s.store.FindByNamePrefix(ctx, strings.TrimSpace(prefix))
	if err != nil {
		return nil, s.storageError(err, "search")
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}

// # Commands

// Create validates and persists a new item.
//
// Server-assigned fields (the id, timestamps) must arrive empty; a client
// cannot choose them or use them to pass for an existing item.
func (s *Service[T, ID]) Create(ctx context.Context, item *T) (*T, error) {
	if err := s.rejectGenerated(item); err != nil {
		return nil, err
	}

	if err := s.prepare(ctx, item, true); err != nil {
		return nil, err
	}

	created, err := s.store.Insert(ctx, item)
	if err != nil {
		return nil, s.storageError(err, "create")
	}

	s.log(ctx, "resource_created", s.resource.IDOf(created))
	return created, nil
}

// Update applies patch onto the stored item and persists the result.
//
// Identity-owned resources require an actor the access policy accepts for
// the stored owner. The check runs before the patch is looked at.
func (s *Service[T, ID]) Update(ctx context.Context, id ID, actor *sec.AuthClaims, patch Patch[T]) (*T, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(actor, existing); err != nil {
		return nil, err
	}

	patch.Apply(existing)

	if err := s.prepare(ctx, existing, false); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateByID(ctx, id, existing)
	if err != nil {
		return nil, s.storageError(err, "update")
	}

	s.log(ctx, "resource_updated", id)
	return updated, nil
}

// Delete removes the item and returns it as it was.
func (s *Service[T, ID]) Delete(ctx context.Context, id ID, actor *sec.AuthClaims) (*T, error) {
	if s.resource.Owned() {
		existing, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.authorize(actor, existing); err != nil {
			return nil, err
		}
	}

	var afterDelete func(ctx context.Context)
	if s.resource.BeforeDelete != nil {
		var err error
		if afterDelete, err = s.resource.BeforeDelete(ctx, id); err != nil {
			return nil, s.storageError(err, "delete")
		}
	}

	deleted, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return nil, s.storageError(err, "delete")
	}

	if afterDelete != nil {
		afterDelete(ctx)
	}

	s.log(ctx, "resource_deleted", id)
	return deleted, nil
}

// # Helpers

func (s *Service[T, ID]) authorize(actor *sec.AuthClaims, item *T) error {
	if !s.resource.Owned() {
		return nil
	}
	if actor == nil {
		return apperr.Unauthorized("Authentication required")
	}
	if !s.policy.CanMutate(actor, s.resource.OwnerOf(item)) {
		return apperr.Forbidden("You are not allowed to modify this " + strings.ToLower(s.resource.Name))
	}
	return nil
}

func (s *Service[T, ID]) rejectGenerated(item *T) error {
	var zero ID
	fields := []string{}
	if s.resource.IDOf(item) != zero {
		fields = append(fields, FieldID)
	}
	if s.resource.Generated != nil {
		fields = append(fields, s.resource.Generated(item)...)
	}

	validator := &validate.Validator{}
	for _, field := range fields {
		validator.Custom(field, true, "This field is assigned by the server")
	}
	return validator.Err()
}

func (s *Service[T, ID]) prepare(ctx context.Context, item *T, creating bool) error {
	if s.resource.Normalize != nil {
		s.resource.Normalize(item)
	}

	if err := validate.Struct(item); err != nil {
		return err
	}

	if s.resource.Validate != nil {
		if err := s.resource.Validate(ctx, item); err != nil {
			return err
		}
	}

	if creating && s.resource.ValidateCreate != nil {
		if err := s.resource.ValidateCreate(ctx, item); err != nil {
			return err
		}
	}

	if s.resource.BeforeSave != nil {
		if err := s.resource.BeforeSave(ctx, item); err != nil {
			return err
		}
	}

	return nil
}

// storageError names the resource in not-found errors and classifies the rest.
func (s *Service[T, ID]) storageError(err error, action string) error {
	if dberr.Classify(err).Kind == dberr.KindNotFound {
		// A store may name a different missing resource (a referenced course).
		if appError := apperr.As(err); appError != nil && appError != dberr.ErrNotFound {
			return appError
		}
		return apperr.NotFound(s.resource.Name)
	}
	return dberr.Wrap(err, fmt.Sprintf("%s %s", action, strings.ToLower(s.resource.Name)))
}

func (s *Service[T, ID]) log(ctx context.Context, event string, id ID) {
	ctxutil.GetLogger(ctx).InfoContext(ctx, event,
		slog.String("resource", s.resource.Name),
		slog.Any("id", id),
	)
}
