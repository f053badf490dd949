// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Architecture
//
// Three storage engines sit behind the API (pgx, database/sql over SQLite and
// GORM). Each reports the same failure in its own dialect. [Classify] folds
// them into one small taxonomy, and [Wrap] turns the result into the
// [apperr.AppError] that the HTTP boundary renders.
package dberr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/arokeji/library-api/internal/platform/apperr"
)

// Kind is the category a storage failure falls into.
type Kind string

const (
	KindNone                  Kind = ""
	KindValidationFailure     Kind = "ValidationFailure"
	KindDuplicateKey          Kind = "DuplicateKey"
	KindMissingRequiredColumn Kind = "MissingRequiredColumn"
	KindNotFound              Kind = "NotFound"
	KindUnclassified          Kind = "Unclassified"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Classification is the outcome of [Classify].
//
// Message is the engine-provided text. For [KindUnclassified] it is the raw
// error string, meant for operators; it is never rendered to clients.
type Classification struct {
	Kind    Kind
	Status  int
	Message string
	Details []apperr.FieldError
	Cause   error
}

// Classify maps a storage-layer error onto a [Kind] and an HTTP status.
//
// It never panics and always produces a classification; a nil error yields
// [KindNone] with status 200.
func Classify(err error) Classification {
	if err == nil {
		return Classification{Kind: KindNone, Status: http.StatusOK}
	}

	// 1. Errors already classified by the application
	if appError := apperr.As(err); appError != nil {
		switch appError.Code {
		case apperr.CodeValidation, apperr.CodeBadRequest:
			return classified(KindValidationFailure, appError.Message, err, appError.Details...)
		case apperr.CodeDuplicateKey:
			return classified(KindDuplicateKey, appError.Message, err)
		case apperr.CodeMissingRequiredColumn:
			return classified(KindMissingRequiredColumn, appError.Message, err)
		case apperr.CodeNotFound:
			return classified(KindNotFound, appError.Message, err)
		}
	}

	// 2. Struct-tag validation failures
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]apperr.FieldError, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			details = append(details, apperr.FieldError{
				Field:   fieldError.Field(),
				Message: fmt.Sprintf("Failed on the '%s' rule", fieldError.Tag()),
			})
		}
		return classified(KindValidationFailure, "Validation failed", err, details...)
	}

	// 3. Missing rows, in every dialect
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
		return classified(KindNotFound, ErrNotFound.Message, err)
	}

	// 4. PostgreSQL (pgx and GORM over pgx)
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.UniqueViolation:
			return classified(KindDuplicateKey, firstNonEmpty(pgError.Detail, pgError.Message), err)
		case pgerrcode.NotNullViolation:
			return classified(KindMissingRequiredColumn, pgError.Message, err)
		case pgerrcode.CheckViolation, pgerrcode.ForeignKeyViolation, pgerrcode.StringDataRightTruncationDataException:
			return classified(KindValidationFailure, firstNonEmpty(pgError.Detail, pgError.Message), err)
		}
	}

	// 5. SQLite
	var sqliteError sqlite3.Error
	if errors.As(err, &sqliteError) && sqliteError.Code == sqlite3.ErrConstraint {
		switch sqliteError.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return classified(KindDuplicateKey, sqliteError.Error(), err)
		case sqlite3.ErrConstraintNotNull:
			return classified(KindMissingRequiredColumn, sqliteError.Error(), err)
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintForeignKey:
			return classified(KindValidationFailure, sqliteError.Error(), err)
		}
	}

	// 6. GORM translated errors
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return classified(KindDuplicateKey, err.Error(), err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return classified(KindValidationFailure, err.Error(), err)
	}

	return classified(KindUnclassified, err.Error(), err)
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Errors that are already an [apperr.AppError] pass through unchanged.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if appError := apperr.As(err); appError != nil {
		return appError
	}

	return Classify(err).AppError(action)
}

// AppError converts the classification into the error rendered to clients.
// Unclassified failures are redacted; the action and cause stay server-side.
func (c Classification) AppError(action string) *apperr.AppError {
	switch c.Kind {
	case KindNone:
		return nil
	case KindValidationFailure:
		appError := apperr.ValidationError(c.Message, c.Details...)
		appError.Cause = c.Cause
		return appError
	case KindDuplicateKey:
		return apperr.DuplicateKey(c.Message, c.Cause)
	case KindMissingRequiredColumn:
		return apperr.MissingRequiredColumn(c.Message, c.Cause)
	case KindNotFound:
		return ErrNotFound
	default:
		return apperr.Internal(fmt.Errorf("%s: %w", action, c.Cause))
	}
}

func classified(kind Kind, message string, cause error, details ...apperr.FieldError) Classification {
	status := http.StatusBadRequest
	switch kind {
	case KindNotFound:
		status = http.StatusNotFound
	case KindUnclassified:
		status = http.StatusInternalServerError
	}

	return Classification{
		Kind:    kind,
		Status:  status,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
