// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/arokeji/library-api/internal/platform/apperr"
	"github.com/arokeji/library-api/internal/platform/dberr"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    dberr.Kind
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "nil",
			err:        nil,
			wantKind:   dberr.KindNone,
			wantStatus: http.StatusOK,
		},
		{
			name:        "validation_app_error",
			err:         apperr.ValidationError("Title is required"),
			wantKind:    dberr.KindValidationFailure,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Title is required",
		},
		{
			name:        "postgres_unique_violation",
			err:         fmt.Errorf("insert author: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, Message: "duplicate key", Detail: "Key (username)=(jane@mail.com) already exists."}),
			wantKind:    dberr.KindDuplicateKey,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Key (username)=(jane@mail.com) already exists.",
		},
		{
			name:        "postgres_not_null",
			err:         &pgconn.PgError{Code: pgerrcode.NotNullViolation, Message: `null value in column "title" violates not-null constraint`},
			wantKind:    dberr.KindMissingRequiredColumn,
			wantStatus:  http.StatusBadRequest,
			wantMessage: `null value in column "title" violates not-null constraint`,
		},
		{
			name:       "postgres_check",
			err:        &pgconn.PgError{Code: pgerrcode.CheckViolation, Message: "violates check constraint"},
			wantKind:   dberr.KindValidationFailure,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "sqlite_unique",
			err:        sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			wantKind:   dberr.KindDuplicateKey,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "sqlite_not_null",
			err:        sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull},
			wantKind:   dberr.KindMissingRequiredColumn,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "gorm_duplicate",
			err:        fmt.Errorf("create course: %w", gorm.ErrDuplicatedKey),
			wantKind:   dberr.KindDuplicateKey,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "gorm_not_found",
			err:        gorm.ErrRecordNotFound,
			wantKind:   dberr.KindNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "pgx_no_rows",
			err:        pgx.ErrNoRows,
			wantKind:   dberr.KindNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "sql_no_rows",
			err:        sql.ErrNoRows,
			wantKind:   dberr.KindNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:        "unclassified",
			err:         errors.New("connection reset by peer"),
			wantKind:    dberr.KindUnclassified,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "connection reset by peer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dberr.Classify(tt.err)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantStatus, got.Status)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, got.Message)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("app_error_passes_through", func(t *testing.T) {
		original := apperr.NotFound("Book")
		assert.Same(t, original, dberr.Wrap(original, "find book"))
	})

	t.Run("duplicate_key_is_client_error", func(t *testing.T) {
		err := dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation, Message: "duplicate key"}, "insert author")
		assert.True(t, apperr.HasCode(err, apperr.CodeDuplicateKey))
		assert.Equal(t, "duplicate key", err.Error())
	})

	t.Run("unclassified_is_redacted", func(t *testing.T) {
		err := dberr.Wrap(errors.New("dial tcp: i/o timeout"), "list books")

		appError := apperr.As(err)
		if assert.NotNil(t, appError) {
			assert.Equal(t, apperr.CodeInternal, appError.Code)
			assert.NotContains(t, appError.Message, "dial tcp")
			assert.ErrorContains(t, appError.Cause, "list books")
		}
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, dberr.Wrap(nil, "noop"))
	})
}
