package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GregMSThompson/userdata-api/internal/handlers"
	"github.com/GregMSThompson/userdata-api/internal/middleware"
)

func NewRouter(deps *handlers.Deps, graphqlPath string) chi.Router {
	r := chi.NewRouter()

	lm := middleware.NewLoggerMiddleware(deps.Log)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(lm.LoggerMiddleware)
	r.Use(chimiddleware.Recoverer)

	hh := handlers.NewHealthHandlers(deps)
	gqh := handlers.NewGraphQLHandlers(deps)

	r.Get("/health", hh.Health)
	r.Mount(graphqlPath, gqh.GraphQLRoutes())
	return r
}
