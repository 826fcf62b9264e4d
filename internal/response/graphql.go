package response

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/GregMSThompson/userdata-api/pkg/logger"
)

// PresentGraphQLError is the gqlgen error presenter. Resolver errors are
// classified like REST errors and carry the code in extensions; parse and
// validation errors pass through unchanged.
func (h *responseHandler) PresentGraphQLError(ctx context.Context, err error) *gqlerror.Error {
	gqlErr := graphql.DefaultErrorPresenter(ctx, err)

	// Errors raised by gqlparser (syntax, validation, variable coercion) have no cause.
	if errors.Unwrap(gqlErr) == nil {
		return gqlErr
	}

	c := h.classify(ctx, err)

	gqlErr.Message = c.message
	if gqlErr.Extensions == nil {
		gqlErr.Extensions = map[string]any{}
	}
	gqlErr.Extensions["code"] = c.code
	return gqlErr
}

// RecoverGraphQL turns a resolver panic into an internal error entry.
func (h *responseHandler) RecoverGraphQL(ctx context.Context, panicked any) error {
	logger.FromContext(ctx).Error("resolver panic", "panic", fmt.Sprint(panicked))
	return errors.New("internal server error")
}
