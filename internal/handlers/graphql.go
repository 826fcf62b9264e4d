package handlers

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/userdata-api/internal/graph"
	"github.com/GregMSThompson/userdata-api/internal/middleware"
	"github.com/GregMSThompson/userdata-api/internal/response"
)

type graphqlHandlers struct {
	ResponseHandler response.ResponseHandler
	Server          *handler.Server
}

// NewGraphQLHandlers builds the gqlgen server. Only JSON POST (plus CORS
// preflight) is accepted; body parsing, validation and the {data, errors}
// envelope belong to gqlgen.
func NewGraphQLHandlers(deps *Deps) *graphqlHandlers {
	srv := handler.New(graph.NewExecutableSchema(deps.Resolver))
	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.POST{})
	srv.SetErrorPresenter(deps.ResponseHandler.PresentGraphQLError)
	srv.SetRecoverFunc(deps.ResponseHandler.RecoverGraphQL)
	srv.AroundOperations(middleware.GraphQLOperationLogger)

	return &graphqlHandlers{
		ResponseHandler: deps.ResponseHandler,
		Server:          srv,
	}
}

func (h *graphqlHandlers) GraphQLRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Server.ServeHTTP)
	r.Options("/", h.Server.ServeHTTP)
	r.MethodNotAllowed(h.MethodNotAllowed)
	return r
}

func (h *graphqlHandlers) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "POST, OPTIONS")
	h.ResponseHandler.WriteError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "GraphQL requests must be sent with POST")
}
