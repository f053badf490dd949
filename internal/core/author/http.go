// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package author

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/arokeji/library-api/internal/platform/collection"
	requestutil "github.com/arokeji/library-api/internal/platform/request"
	"github.com/arokeji/library-api/internal/platform/respond"
)

type Handler struct {
	service *Service
	crud    *collection.Handler[Author, string]
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
		crud: collection.NewHandler(service.Service, collection.ParseUUID,
			func() collection.Patch[Author] { return &Patch{} }, "name"),
	}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/login", handler.login)

	// CRUD; update and delete require a token and pass the access policy
	handler.crud.RegisterRoutes(router)
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var credentials Credentials
	if err := requestutil.DecodeJSON(request, &credentials); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.service.Login(request.Context(), credentials)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.JSON(writer, http.StatusOK, token)
}
