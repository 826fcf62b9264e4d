package response

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

type ResponseHandler interface {
	WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any)
	WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string)
	HandleError(w http.ResponseWriter, r *http.Request, err error)
	PresentGraphQLError(ctx context.Context, err error) *gqlerror.Error
	RecoverGraphQL(ctx context.Context, panicked any) error
}

type responseHandler struct {
	Log *slog.Logger
}

func New(log *slog.Logger) *responseHandler {
	return &responseHandler{Log: log}
}
