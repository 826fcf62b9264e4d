package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/userdata-api/internal/dto"
	"github.com/GregMSThompson/userdata-api/internal/graph"
	"github.com/GregMSThompson/userdata-api/internal/handlers"
	"github.com/GregMSThompson/userdata-api/internal/response"
	"github.com/GregMSThompson/userdata-api/internal/services"
	"github.com/GregMSThompson/userdata-api/internal/store"
	"github.com/GregMSThompson/userdata-api/pkg/logger"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(logger.NewTestHandler(slog.LevelDebug))
	svc := services.NewUserService(store.NewMemoryUserStore(), dto.ReadFailureSwallow)

	r := NewRouter(&handlers.Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		Resolver:        graph.NewResolver(svc),
	}, "/api/graphql")

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthRoute(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", res.StatusCode)
	}
	var body struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Data["status"] != "ok" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestGraphQLRouteMounted(t *testing.T) {
	srv := newTestServer(t)

	query := `{"query":"mutation { addUser(firstName:\"A\", lastName:\"B\", email:\"c@x.com\") { _id email } }"}`
	res, err := http.Post(srv.URL+"/api/graphql", "application/json", strings.NewReader(query))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()

	var body struct {
		Data struct {
			AddUser struct {
				ID    string `json:"_id"`
				Email string `json:"email"`
			} `json:"addUser"`
		} `json:"data"`
		Errors []any `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Errors) != 0 || body.Data.AddUser.ID == "" || body.Data.AddUser.Email != "c@x.com" {
		t.Fatalf("unexpected response %+v", body)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/graphql")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", res.StatusCode)
	}
}
