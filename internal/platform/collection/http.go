// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arokeji/library-api/internal/platform/apperr"
	"github.com/arokeji/library-api/internal/platform/middleware"
	requestutil "github.com/arokeji/library-api/internal/platform/request"
	"github.com/arokeji/library-api/internal/platform/respond"
)

// Handler exposes a [Service] over HTTP.
type Handler[T any, ID comparable] struct {
	service  *Service[T, ID]
	parseID  func(raw string) (ID, bool)
	newPatch func() Patch[T]
	search   string
}

// NewHandler creates the HTTP adapter for a service.
//
// # Parameters
//   - parseID: converts the {id} path segment; rejected ids answer 404.
//   - newPatch: returns a pointer to an empty whitelisted patch for PUT.
//   - search: the path segment of the prefix search ("name", "title").
func NewHandler[T any, ID comparable](
	service *Service[T, ID],
	parseID func(raw string) (ID, bool),
	newPatch func() Patch[T],
	search string,
) *Handler[T, ID] {
	return &Handler[T, ID]{
		service:  service,
		parseID:  parseID,
		newPatch: newPatch,
		search:   search,
	}
}

// RegisterRoutes mounts the six CRUD endpoints on router.
//
// Reads and creation are public. Mutations of identity-owned resources
// require a verified token.
func (handler *Handler[T, ID]) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.list)
	router.Get("/"+handler.search+"/{prefix}", handler.searchByPrefix)
	router.Get("/{id}", handler.get)
	router.Post("/", handler.create)

	router.Group(func(mutation chi.Router) {
		if handler.service.Resource().Owned() {
			mutation.Use(middleware.RequireAuth)
		}

		mutation.Put("/{id}", handler.update)
		mutation.Delete("/{id}", handler.delete)
	})
}

func (handler *Handler[T, ID]) list(writer http.ResponseWriter, request *http.Request) {
	params, err := requestutil.Page(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.List(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, page.Data, page.Pagination)
}

func (handler *Handler[T, ID]) get(writer http.ResponseWriter, request *http.Request) {
	id, err := handler.id(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.GetByID(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler[T, ID]) searchByPrefix(writer http.ResponseWriter, request *http.Request) {
	items, err := handler.service.FindByNamePrefix(request.Context(), requestutil.Param(request, "prefix"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, items)
}

func (handler *Handler[T, ID]) create(writer http.ResponseWriter, request *http.Request) {
	input := new(T)
	if err := requestutil.DecodeJSON(request, input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler[T, ID]) update(writer http.ResponseWriter, request *http.Request) {
	id, err := handler.id(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	patch := handler.newPatch()
	if err := requestutil.DecodeJSON(request, patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.service.Update(request.Context(), id, requestutil.Actor(request), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, updated)
}

func (handler *Handler[T, ID]) delete(writer http.ResponseWriter, request *http.Request) {
	id, err := handler.id(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deleted, err := handler.service.Delete(request.Context(), id, requestutil.Actor(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, deleted)
}

func (handler *Handler[T, ID]) id(request *http.Request) (ID, error) {
	id, ok := handler.parseID(requestutil.Param(request, "id"))
	if !ok {
		var zero ID
		return zero, apperr.NotFound(handler.service.Resource().Name)
	}
	return id, nil
}
