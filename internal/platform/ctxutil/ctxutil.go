// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/arokeji/library-api/internal/platform/apperr"
	"github.com/arokeji/library-api/internal/platform/ctxkey"
	"github.com/arokeji/library-api/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger falls back to [slog.Default] outside of a request.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// # Acting Identity

// WithActor attaches the verified claims of the caller.
func WithActor(ctx context.Context, actor *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyActor, actor)
}

// GetActor returns the caller's claims, or nil for anonymous requests.
func GetActor(ctx context.Context) *sec.AuthClaims {
	actor, _ := ctx.Value(ctxkey.KeyActor).(*sec.AuthClaims)
	return actor
}

// RequireActor is [GetActor] for handlers that cannot proceed anonymously.
func RequireActor(ctx context.Context) (*sec.AuthClaims, error) {
	actor := GetActor(ctx)
	if actor == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return actor, nil
}
