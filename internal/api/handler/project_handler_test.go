package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/ports"
)

type stubProjectService struct {
	createFn       func(ctx context.Context, in ports.ProjectInput) (*domain.Project, error)
	updateFn       func(ctx context.Context, title string, in ports.ProjectInput) (*domain.Project, error)
	updateStatusFn func(ctx context.Context, title, status string) (*domain.Project, error)
	listFn         func(ctx context.Context) ([]domain.Project, error)
	getFn          func(ctx context.Context, title string) (*domain.Project, error)
	deleteFn       func(ctx context.Context, title string) error
}

func (s *stubProjectService) Create(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
	return s.createFn(ctx, in)
}

func (s *stubProjectService) Update(ctx context.Context, title string, in ports.ProjectInput) (*domain.Project, error) {
	return s.updateFn(ctx, title, in)
}

func (s *stubProjectService) UpdateStatus(ctx context.Context, title, status string) (*domain.Project, error) {
	return s.updateStatusFn(ctx, title, status)
}

func (s *stubProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.listFn(ctx)
}

func (s *stubProjectService) GetByTitle(ctx context.Context, title string) (*domain.Project, error) {
	return s.getFn(ctx, title)
}

func (s *stubProjectService) DeleteByTitle(ctx context.Context, title string) error {
	return s.deleteFn(ctx, title)
}

func TestProjectHandler_Create_Success(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
			if in.Title != "Apollo" || in.Company != "Acme" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Project{ID: "p1", Title: in.Title, Company: in.Company, Status: in.Status}, nil
		},
	}
	handler := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/projects",
		`{"title":"Apollo","company":"Acme","status":"planned"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["title"] != "Apollo" || resp["status"] != "planned" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProjectHandler_Create_DuplicateTitle(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
			return nil, domain.ErrProjectTitleExists
		},
	}
	handler := NewProjectHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/projects",
		`{"title":"Apollo","company":"Acme","status":"planned"}`)

	if err := handler.Create(c); !errors.Is(err, domain.ErrProjectTitleExists) {
		t.Fatalf("expected ErrProjectTitleExists, got %v", err)
	}
}

func TestProjectHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubProjectService{
		createFn: func(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProjectHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/projects", `{"company":"Acme","status":"planned"}`)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestProjectHandler_UpdateStatus(t *testing.T) {
	stub := &stubProjectService{
		updateStatusFn: func(ctx context.Context, title, status string) (*domain.Project, error) {
			if title != "Apollo" || status != "done" {
				t.Fatalf("unexpected args: %s %s", title, status)
			}
			return &domain.Project{ID: "p1", Title: title, Status: status}, nil
		},
	}
	handler := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodPatch, "/projects/Apollo/status", `{"status":"done"}`)
	c.SetParamNames("title")
	c.SetParamValues("Apollo")

	if err := handler.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProjectHandler_UpdateStatus_NotFound(t *testing.T) {
	stub := &stubProjectService{
		updateStatusFn: func(ctx context.Context, title, status string) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}
	handler := NewProjectHandler(stub)

	c, _ := newTestContext(t, http.MethodPatch, "/projects/Missing/status", `{"status":"done"}`)
	c.SetParamNames("title")
	c.SetParamValues("Missing")

	if err := handler.UpdateStatus(c); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectHandler_List(t *testing.T) {
	stub := &stubProjectService{
		listFn: func(ctx context.Context) ([]domain.Project, error) {
			return []domain.Project{
				{ID: "p1", Title: "Apollo", Status: "planned"},
				{ID: "p2", Title: "Gemini", Status: "done"},
			}, nil
		},
	}
	handler := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/projects", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(resp))
	}
}

func TestProjectHandler_Get_NotFound(t *testing.T) {
	stub := &stubProjectService{
		getFn: func(ctx context.Context, title string) (*domain.Project, error) {
			return nil, domain.ErrProjectNotFound
		},
	}
	handler := NewProjectHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/projects/Missing", "")
	c.SetParamNames("title")
	c.SetParamValues("Missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubProjectService{
		deleteFn: func(ctx context.Context, title string) error {
			deleted = title
			return nil
		},
	}
	handler := NewProjectHandler(stub)

	c, rec := newTestContext(t, http.MethodDelete, "/projects/Apollo", "")
	c.SetParamNames("title")
	c.SetParamValues("Apollo")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "Apollo" {
		t.Fatalf("unexpected title: %s", deleted)
	}
}
