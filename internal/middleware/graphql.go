package middleware

import (
	"context"

	"github.com/99designs/gqlgen/graphql"

	"github.com/GregMSThompson/userdata-api/pkg/logger"
)

// GraphQLOperationLogger tags the context logger with the operation being
// executed. Register it with handler.Server.AroundOperations.
func GraphQLOperationLogger(ctx context.Context, next graphql.OperationHandler) graphql.ResponseHandler {
	oc := graphql.GetOperationContext(ctx)

	name := oc.OperationName
	if name == "" {
		name = "anonymous"
	}
	kind := ""
	if oc.Operation != nil {
		kind = string(oc.Operation.Operation)
	}

	log, ctx := logger.With(ctx, "operation", name, "operation_type", kind)
	log.Debug("graphql operation")
	return next(ctx)
}
