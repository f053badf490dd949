// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package student

import (
	"github.com/go-chi/chi/v5"

	"github.com/arokeji/library-api/internal/platform/collection"
)

type Handler struct {
	crud *collection.Handler[Student, int]
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		crud: collection.NewHandler(service, collection.ParseIntID,
			func() collection.Patch[Student] { return &Patch{} }, "name"),
	}
}

// RegisterRoutes mounts the student routes. /name/{prefix} matches first names.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	handler.crud.RegisterRoutes(router)
}
