package graph

import (
	"bytes"
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/GregMSThompson/userdata-api/internal/models"
)

// executableSchema plugs the resolvers into gqlgen's executor. The executor
// has already parsed the request, validated it against the schema and coerced
// the variables by the time Exec runs.
type executableSchema struct {
	resolvers *Resolver
}

func NewExecutableSchema(resolvers *Resolver) graphql.ExecutableSchema {
	return &executableSchema{resolvers: resolvers}
}

func (e *executableSchema) Schema() *ast.Schema {
	return parsedSchema
}

func (e *executableSchema) Complexity(typeName, field string, childComplexity int, rawArgs map[string]interface{}) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	oc := graphql.GetOperationContext(ctx)

	var object string
	switch oc.Operation.Operation {
	case ast.Query:
		object = "Query"
	case ast.Mutation:
		object = "Mutation"
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		fields := graphql.CollectFields(oc, oc.Operation.SelectionSet, []string{object})
		out := graphql.NewFieldSet(fields)
		// Root fields run one after another, which is what mutations require.
		for i, field := range fields {
			if field.Name == "__typename" {
				out.Values[i] = graphql.MarshalString(object)
				continue
			}
			fctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{
				Object:     object,
				Field:      field,
				Args:       field.ArgumentMap(oc.Variables),
				IsMethod:   true,
				IsResolver: true,
			})
			out.Values[i] = e.resolveRoot(fctx, oc, object, field)
		}

		var buf bytes.Buffer
		out.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

func (e *executableSchema) resolveRoot(ctx context.Context, oc *graphql.OperationContext, object string, field graphql.CollectedField) (ret graphql.Marshaler) {
	defer func() {
		if r := recover(); r != nil {
			oc.Error(ctx, oc.Recover(ctx, r))
			ret = graphql.Null
		}
	}()

	args := graphql.GetFieldContext(ctx).Args
	switch object + "." + field.Name {
	case "Query.getUsers":
		users, err := e.resolvers.Query().GetUsers(ctx)
		if err != nil {
			oc.Error(ctx, err)
			return graphql.Null
		}
		return marshalUsers(oc, field.Selections, users)

	case "Query.getUser":
		user, err := e.resolvers.Query().GetUser(ctx, stringArg(args, "_id"))
		return e.userResult(ctx, oc, field, user, err)

	case "Mutation.addUser", "Mutation.createUser":
		user, err := e.resolvers.Mutation().AddUser(ctx,
			stringArg(args, "firstName"),
			stringArg(args, "lastName"),
			stringArg(args, "email"),
		)
		return e.userResult(ctx, oc, field, user, err)

	case "Mutation.deleteUser":
		deleted, err := e.resolvers.Mutation().DeleteUser(ctx, stringArg(args, "_id"))
		if err != nil {
			oc.Error(ctx, err)
			return graphql.Null
		}
		return graphql.MarshalBoolean(deleted)

	case "Mutation.updateUser":
		user, err := e.resolvers.Mutation().UpdateUser(ctx,
			stringArg(args, "_id"),
			optionalStringArg(args, "firstName"),
			optionalStringArg(args, "lastName"),
			optionalStringArg(args, "email"),
		)
		return e.userResult(ctx, oc, field, user, err)

	case "Query.__schema", "Query.__type":
		oc.Error(ctx, gqlerror.Errorf("introspection disabled"))
		return graphql.Null
	}

	oc.Error(ctx, gqlerror.Errorf("field %s.%s is not implemented", object, field.Name))
	return graphql.Null
}

func (e *executableSchema) userResult(ctx context.Context, oc *graphql.OperationContext, field graphql.CollectedField, user *models.User, err error) graphql.Marshaler {
	if err != nil {
		oc.Error(ctx, err)
		return graphql.Null
	}
	return marshalUser(oc, field.Selections, user)
}

var userSatisfies = []string{"User"}

func marshalUser(oc *graphql.OperationContext, sel ast.SelectionSet, u *models.User) graphql.Marshaler {
	if u == nil {
		return graphql.Null
	}

	fields := graphql.CollectFields(oc, sel, userSatisfies)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("User")
		case "_id":
			out.Values[i] = graphql.MarshalString(u.ID)
		case "firstName":
			out.Values[i] = graphql.MarshalString(u.FirstName)
		case "lastName":
			out.Values[i] = graphql.MarshalString(u.LastName)
		case "email":
			out.Values[i] = graphql.MarshalString(u.Email)
		default:
			out.Values[i] = graphql.Null
		}
	}
	return out
}

func marshalUsers(oc *graphql.OperationContext, sel ast.SelectionSet, users []*models.User) graphql.Marshaler {
	if users == nil {
		return graphql.Null
	}
	out := make(graphql.Array, 0, len(users))
	for _, u := range users {
		out = append(out, marshalUser(oc, sel, u))
	}
	return out
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

// optionalStringArg is nil when the argument is omitted or null.
func optionalStringArg(args map[string]interface{}, name string) *string {
	s, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &s
}
