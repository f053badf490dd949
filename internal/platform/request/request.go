// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/arokeji/library-api/internal/platform/apperr"
	"github.com/arokeji/library-api/internal/platform/ctxutil"
	"github.com/arokeji/library-api/internal/platform/sec"
	"github.com/arokeji/library-api/internal/platform/validate"
	"github.com/arokeji/library-api/pkg/pagination"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Unknown fields are rejected, so a body can only ever touch the fields the
target declares.

Returns:
  - error: validate.ErrInvalidJSON for malformed bodies, a BAD_REQUEST naming
    the field for unknown keys, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		if field, ok := unknownField(err); ok {
			return apperr.BadRequest("Request body contains fields that cannot be set",
				apperr.FieldError{Field: field, Message: "Unknown or read-only field"})
		}
		return validate.ErrInvalidJSON
	}

	if decoder.More() {
		return validate.ErrInvalidJSON
	}

	return nil
}

// unknownField recovers the offending key from encoding/json's error text.
func unknownField(err error) (string, bool) {
	const prefix = "json: unknown field "
	if errors.Is(err, io.EOF) {
		return "", false
	}

	message := err.Error()
	if !strings.HasPrefix(message, prefix) {
		return "", false
	}

	return strings.Trim(strings.TrimPrefix(message, prefix), `"`), true
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Page parses the page and limit query parameters.

Returns:
  - pagination.Params: with defaults applied for absent parameters
  - error: apperr.BadRequest listing every malformed parameter
*/
func Page(request *http.Request) (pagination.Params, error) {
	params, invalid := pagination.Parse(request.URL.Query())
	if len(invalid) > 0 {
		return pagination.Params{}, apperr.InvalidPagination(invalid...)
	}
	return params, nil
}

/*
Actor returns the verified claims of the caller, or nil when anonymous.
*/
func Actor(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetActor(request.Context())
}
