package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/GregMSThompson/userdata-api/internal/dto"
	"github.com/GregMSThompson/userdata-api/internal/graph"
	"github.com/GregMSThompson/userdata-api/internal/models"
	"github.com/GregMSThompson/userdata-api/internal/response"
	"github.com/GregMSThompson/userdata-api/pkg/logger"
)

type stubUserService struct {
	users     []*models.User
	listCalls int
	created   dto.CreateUserRequest
	createErr error
}

func (s *stubUserService) ListUsers(_ context.Context) ([]*models.User, error) {
	s.listCalls++
	return s.users, nil
}

func (s *stubUserService) GetUser(_ context.Context, id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserService) CreateUser(_ context.Context, req dto.CreateUserRequest) (*models.User, error) {
	s.created = req
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.User{ID: "new-id", FirstName: req.FirstName, LastName: req.LastName, Email: req.Email}, nil
}

func (s *stubUserService) UpdateUser(_ context.Context, req dto.UpdateUserRequest) (*models.User, error) {
	return &models.User{ID: req.ID}, nil
}

func (s *stubUserService) DeleteUser(_ context.Context, _ string) (bool, error) {
	return true, nil
}

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	writeErrorCalled bool
	writeErrorStatus int
	writeErrorCode   string

	presented []error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data
	w.WriteHeader(status)
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, code, _ string) {
	s.writeErrorCalled = true
	s.writeErrorStatus = status
	s.writeErrorCode = code
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, _ error) {
	w.WriteHeader(http.StatusInternalServerError)
}

func (s *stubResponseHandler) PresentGraphQLError(_ context.Context, err error) *gqlerror.Error {
	s.presented = append(s.presented, err)
	return gqlerror.Errorf("presented: %v", err)
}

func (s *stubResponseHandler) RecoverGraphQL(_ context.Context, _ any) error {
	return errors.New("recovered")
}

func newDeps(svc *stubUserService, rh response.ResponseHandler) *Deps {
	return &Deps{
		Log:             slog.New(logger.NewTestHandler(slog.LevelDebug)),
		ResponseHandler: rh,
		Resolver:        graph.NewResolver(svc),
	}
}

func TestHealth(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewHealthHandlers(newDeps(&stubUserService{}, resp))

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	data, ok := resp.writeSuccessData.(map[string]string)
	if !ok || data["status"] != "ok" {
		t.Fatalf("unexpected health payload: %#v", resp.writeSuccessData)
	}
}

func TestGraphQLRoutesServeQuery(t *testing.T) {
	svc := &stubUserService{users: []*models.User{{ID: "1", FirstName: "A", LastName: "B", Email: "c@x.com"}}}
	h := NewGraphQLHandlers(newDeps(svc, &stubResponseHandler{}))

	body := `{"query":"{ getUsers { _id firstName } }"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.GraphQLRoutes().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var out struct {
		Data struct {
			GetUsers []models.User `json:"getUsers"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if svc.listCalls != 1 || len(out.Data.GetUsers) != 1 || out.Data.GetUsers[0].ID != "1" {
		t.Fatalf("unexpected result %s", rr.Body.String())
	}
}

func TestGraphQLRoutesUseErrorPresenter(t *testing.T) {
	svc := &stubUserService{createErr: errors.New("boom")}
	resp := &stubResponseHandler{}
	h := NewGraphQLHandlers(newDeps(svc, resp))

	body := `{"query":"mutation { addUser(firstName:\"A\", lastName:\"B\", email:\"c@x.com\") { _id } }"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.GraphQLRoutes().ServeHTTP(rr, req)

	if svc.created.Email != "c@x.com" {
		t.Fatalf("service received %+v", svc.created)
	}
	if len(resp.presented) != 1 {
		t.Fatalf("expected the presenter to see one error, saw %d", len(resp.presented))
	}
	if !strings.Contains(rr.Body.String(), "presented: ") {
		t.Fatalf("presenter output missing from body %s", rr.Body.String())
	}
}

func TestGraphQLRoutesRejectGet(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewGraphQLHandlers(newDeps(&stubUserService{}, resp))

	rr := httptest.NewRecorder()
	h.GraphQLRoutes().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if !resp.writeErrorCalled || resp.writeErrorStatus != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 via WriteError, got called=%v status=%d", resp.writeErrorCalled, resp.writeErrorStatus)
	}
	if rr.Header().Get("Allow") != "POST, OPTIONS" {
		t.Fatalf("Allow header = %q", rr.Header().Get("Allow"))
	}
}
