// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// An unexported key type keeps these values out of reach of any other package
// that stores data in the same [context.Context].
package ctxkey

type key string

const (
	// KeyRequestID holds the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyActor holds the verified token claims ([sec.AuthClaims]) of the caller.
	KeyActor key = "actor"

	// KeyLogger holds the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
