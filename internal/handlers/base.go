// internal/handlers/base.go
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"francofolies/internal/config"
	"francofolies/internal/db"
	"francofolies/internal/middleware"
)

const defaultQueryTimeout = 5 * time.Second

// BaseHandler carries what every read handler shares: the per query
// timeout, the path parameter validator and the error mapping.
type BaseHandler struct {
	QueryTimeout time.Duration
	validator    *validator.Validate
}

func NewBaseHandler(cfg *config.Config) *BaseHandler {
	timeout := defaultQueryTimeout
	if cfg != nil && cfg.QueryTimeout > 0 {
		timeout = cfg.QueryTimeout
	}
	return &BaseHandler{
		QueryTimeout: timeout,
		validator:    validator.New(),
	}
}

func (h *BaseHandler) queryContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.QueryTimeout)
}

// writeQueryError maps a repository error to a status code. ctx is the
// context the query ran under. The driver message is logged, never sent to
// the client.
func (h *BaseHandler) writeQueryError(ctx context.Context, w http.ResponseWriter, r *http.Request, err error, action string) {
	logger := middleware.Logger(r.Context())
	requestID := middleware.RequestID(r.Context())

	switch db.ClassifyQuery(ctx, err) {
	case db.KindCanceled:
		logger.Debug().Err(err).Str("action", action).Msg("Client went away before the query finished")
		return
	case db.KindUnavailable:
		logger.Error().Err(err).Str("action", action).Msg("Database unavailable")
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "database_unavailable", Message: "Database is unavailable, retry later", RequestID: requestID})
	case db.KindTimeout:
		logger.Error().Err(err).Str("action", action).Dur("timeout", h.QueryTimeout).Msg("Query timed out")
		writeJSON(w, http.StatusGatewayTimeout, ErrorResponse{Error: "query_timeout", Message: "Failed to " + action + ": query timed out", RequestID: requestID})
	default:
		logger.Error().Err(err).Str("action", action).Msg("Query failed")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal_error", Message: "Failed to " + action, RequestID: requestID})
	}
}
