package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobboard/job-board-api/internal/core/authz"
	"github.com/jobboard/job-board-api/internal/core/domain"
)

func runRequireRole(t *testing.T, actor *authz.Actor, allowed ...string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/employer/applications", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		c.Set(CtxActor, *actor)
	}

	handler := RequireRole(allowed...)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	actor := authz.NewActor("e1", []string{domain.RoleEmployer}, nil)
	rec, err := runRequireRole(t, &actor, domain.RoleEmployer)
	if err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRequireRole_AllowsAnyOfSeveral(t *testing.T) {
	actor := authz.NewActor("a1", []string{domain.RoleAdmin}, nil)
	rec, err := runRequireRole(t, &actor, domain.RoleEmployer, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRequireRole_DeniesOtherRole(t *testing.T) {
	actor := authz.NewActor("u1", []string{domain.RoleUser}, nil)
	rec, err := runRequireRole(t, &actor, domain.RoleEmployer)
	if err != nil {
		t.Fatalf("middleware: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unauthorized") {
		t.Fatalf("body = %q, want generic deny", rec.Body.String())
	}
}

func TestRequireRole_MissingActor(t *testing.T) {
	_, err := runRequireRole(t, nil, domain.RoleEmployer)
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}
