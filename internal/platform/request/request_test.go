// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arokeji/library-api/internal/platform/apperr"
	requestutil "github.com/arokeji/library-api/internal/platform/request"
	"github.com/arokeji/library-api/internal/platform/validate"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, err error)
	}{
		{"valid", `{"name":"Dune"}`, func(t *testing.T, err error) {
			assert.NoError(t, err)
		}},
		{"unknown_field", `{"name":"Dune","id":"forged"}`, func(t *testing.T, err error) {
			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, apperr.CodeBadRequest, appError.Code)
			assert.Equal(t, []apperr.FieldError{{Field: "id", Message: "Unknown or read-only field"}}, appError.Details)
		}},
		{"malformed", `{"name":`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, validate.ErrInvalidJSON)
		}},
		{"empty", ``, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, validate.ErrInvalidJSON)
		}},
		{"trailing_document", `{"name":"a"}{"name":"b"}`, func(t *testing.T, err error) {
			assert.ErrorIs(t, err, validate.ErrInvalidJSON)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var target payload
			tt.check(t, requestutil.DecodeJSON(request, &target))
		})
	}
}

func TestPage(t *testing.T) {
	params, err := requestutil.Page(httptest.NewRequest(http.MethodGet, "/?page=3&limit=25", nil))
	require.NoError(t, err)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Limit)

	_, err = requestutil.Page(httptest.NewRequest(http.MethodGet, "/?page=x&limit=-1", nil))
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "Invalid pagination parameters: page, limit", appError.Message)
	assert.Len(t, appError.Details, 2)
}
