// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company

import (
	"github.com/go-chi/chi/v5"

	"github.com/arokeji/library-api/internal/platform/collection"
)

type Handler struct {
	crud *collection.Handler[Company, int]
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		crud: collection.NewHandler(service, collection.ParseIntID,
			func() collection.Patch[Company] { return &Patch{} }, "name"),
	}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	handler.crud.RegisterRoutes(router)
}
