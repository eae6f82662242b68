package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/model"
)

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func runWithUser(t *testing.T, mw echo.MiddlewareFunc, user *model.User) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(CtxUser, user)
	}
	if err := mw(okHandler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestRequireAdminRedirectsNonAdmins(t *testing.T) {
	mw := RequireAdmin("/v1/dashboard")
	for _, role := range []string{model.RoleProjectManager, model.RoleTeamMember, model.RoleSalesFinance} {
		rec := runWithUser(t, mw, &model.User{ID: "9", Role: role})
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("role %q: expected 303 redirect, got %d", role, rec.Code)
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/v1/dashboard" {
			t.Fatalf("role %q: expected redirect to dashboard, got %q", role, loc)
		}
	}
}

func TestRequireAdminPassesAdmin(t *testing.T) {
	rec := runWithUser(t, RequireAdmin("/v1/dashboard"), &model.User{ID: "1", Role: model.RoleAdmin})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdminRejectsAnonymous(t *testing.T) {
	rec := runWithUser(t, RequireAdmin("/v1/dashboard"), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRoleAllowsListedAndAdmin(t *testing.T) {
	mw := RequireRole(model.RoleSalesFinance)

	rec := runWithUser(t, mw, &model.User{ID: "4", Role: model.RoleSalesFinance})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected listed role to pass, got %d", rec.Code)
	}
	rec = runWithUser(t, mw, &model.User{ID: "1", Role: model.RoleAdmin})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected admin override to pass, got %d", rec.Code)
	}
	rec = runWithUser(t, mw, &model.User{ID: "2", Role: model.RoleTeamMember})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected unlisted role to be forbidden, got %d", rec.Code)
	}
}
