// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/arokeji/library-api/internal/platform/constants"
	"github.com/arokeji/library-api/internal/platform/respond"
)

// Checker is a dependency the /ready probe pings.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type healthHandler struct {
	checkers []Checker
	logger   *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(checkers []Checker, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{checkers: checkers, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

// readiness handles GET /ready (Readiness probe).
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	results := make([]checkResult, 0, len(handler.checkers))
	isSystemReady := true

	for _, checker := range handler.checkers {
		ctx, cancel := context.WithTimeout(request.Context(), constants.HealthCheckTimeout)
		err := checker.Check(ctx)
		cancel()

		result := checkResult{Name: checker.Name(), IsOK: err == nil}
		if err != nil {
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", checker.Name()), slog.Any("error", err))
		}
		results = append(results, result)
	}

	responseStatus := "ready"
	httpStatus := http.StatusOK

	if !isSystemReady {
		responseStatus = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	respond.JSON(writer, httpStatus, respond.SuccessEnvelope{Data: map[string]any{
		constants.FieldStatus: responseStatus,
		constants.FieldChecks: results,
	}})
}
