package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/userdata-api/internal/graph"
	"github.com/GregMSThompson/userdata-api/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Resolver        *graph.Resolver
}
