// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book

import (
	"github.com/go-chi/chi/v5"

	"github.com/arokeji/library-api/internal/platform/collection"
)

type Handler struct {
	crud *collection.Handler[Book, string]
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		crud: collection.NewHandler(service, collection.ParseUUID,
			func() collection.Patch[Book] { return &Patch{} }, "title"),
	}
}

// RegisterRoutes mounts the book routes. Searches go through /title/{prefix}.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	handler.crud.RegisterRoutes(router)
}
