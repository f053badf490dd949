// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package book_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arokeji/library-api/internal/core/book"
	"github.com/arokeji/library-api/pkg/uuid"
)

func newRouter(service *book.Service) http.Handler {
	router := chi.NewRouter()
	router.Route("/book", book.NewHandler(service).RegisterRoutes)
	return router
}

func call(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHTTP_CreateAndSearchByTitle(t *testing.T) {
	router := newRouter(newService(authorSet{}))

	for _, title := range []string{"The Hobbit", "the Silmarillion", "Dune"} {
		recorder := call(router, http.MethodPost, "/book", `{"title":"`+title+`","pages":300}`)
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	}

	recorder := call(router, http.MethodGet, "/book/title/THE", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var found struct {
		Data []book.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &found))
	require.Len(t, found.Data, 2)
	for _, item := range found.Data {
		assert.NotEqual(t, "Dune", item.Title)
	}
}

func TestHTTP_PublicMutations(t *testing.T) {
	router := newRouter(newService(authorSet{}))

	recorder := call(router, http.MethodPost, "/book", `{"title":"Dune"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created struct {
		Data book.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))

	recorder = call(router, http.MethodPut, "/book/"+created.Data.ID, `{"rating":9.5}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"rating":9.5`)

	recorder = call(router, http.MethodDelete, "/book/"+created.Data.ID, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"title":"Dune"`)

	recorder = call(router, http.MethodGet, "/book/"+created.Data.ID, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHTTP_NotFound(t *testing.T) {
	router := newRouter(newService(authorSet{}))

	tests := []struct {
		name   string
		target string
	}{
		{"unknown_id", "/book/" + uuid.New()},
		{"malformed_id", "/book/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := call(router, http.MethodGet, tt.target, "")

			assert.Equal(t, http.StatusNotFound, recorder.Code)
			assert.JSONEq(t, `{"error":"Book not found","code":"NOT_FOUND"}`, recorder.Body.String())
		})
	}
}
