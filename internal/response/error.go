package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/userdata-api/internal/errs"
	"github.com/GregMSThompson/userdata-api/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes shared by the REST envelope and GraphQL extensions.
const (
	CodeNotFound         = "not_found"
	CodeInvalidInput     = "invalid_input"
	CodeInsertFailed     = "insert_failed"
	CodeUpdateFailed     = "update_failed"
	CodeStoreUnavailable = "store_unavailable"
	CodeInternal         = "internal_error"
)

// classified is the client-facing view of an error.
type classified struct {
	status  int
	code    string
	message string
}

// classify logs err at the right level and decides what the client sees.
// Store internals never reach the message.
func (h *responseHandler) classify(ctx context.Context, err error) classified {
	log := logger.FromContext(ctx)

	var (
		notFound   *errs.NotFoundError
		validation *errs.ValidationError
		insert     *errs.InsertError
		update     *errs.UpdateError
		conn       *errs.ConnectionError
		db         *errs.DatabaseError
	)

	switch {
	case errors.As(err, &notFound):
		log.Warn("resource not found", "error", notFound.Message)
		return classified{http.StatusNotFound, CodeNotFound, notFound.Message}

	case errors.As(err, &validation):
		log.Warn("validation failed", "error", validation.Message)
		return classified{http.StatusBadRequest, CodeInvalidInput, validation.Message}

	case errors.As(err, &conn):
		log.Error("document store connection error", "error", conn.Message, "cause", conn.Err)
		return classified{http.StatusServiceUnavailable, CodeStoreUnavailable, "Document store unavailable"}

	case errors.As(err, &insert):
		log.Error("insert failed", "error", insert.Err)
		return classified{http.StatusInternalServerError, CodeInsertFailed, insert.Message}

	case errors.As(err, &update):
		log.Error("update failed", "error", update.Err)
		return classified{http.StatusInternalServerError, CodeUpdateFailed, update.Message}

	case errors.As(err, &db):
		log.Error("database error",
			"operation", db.Operation,
			"error", db.Message,
			"cause", db.Err)
		return classified{http.StatusInternalServerError, CodeInternal, "An error occurred"}

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		return classified{http.StatusInternalServerError, CodeInternal, "An unexpected error occurred"}
	}
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	c := h.classify(r.Context(), err)
	h.WriteError(w, r, c.status, c.code, c.message)
}
