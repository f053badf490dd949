// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arokeji/library-api/internal/platform/apperr"
	"github.com/arokeji/library-api/internal/platform/ctxutil"
	"github.com/arokeji/library-api/internal/platform/sec"
)

func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-7")
	assert.Equal(t, "req-7", ctxutil.GetRequestID(ctx))
}

func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Actor verifies that verified claims travel through the context
and that anonymous callers are rejected by RequireActor.
*/
func TestContext_Actor(t *testing.T) {
	ctx := context.Background()

	// 1. Anonymous
	assert.Nil(t, ctxutil.GetActor(ctx))
	_, err := ctxutil.RequireActor(ctx)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))

	// 2. Authenticated
	ctx = ctxutil.WithActor(ctx, &sec.AuthClaims{UserID: "42", Username: "jane@mail.com"})
	actor, err := ctxutil.RequireActor(ctx)
	require.NoError(t, err)
	assert.Equal(t, "42", actor.UserID)
	assert.Equal(t, "jane@mail.com", actor.Username)
}
