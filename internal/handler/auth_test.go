package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/gateway"
	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/session"
)

type fakeAuthGateway struct {
	user      model.User
	loginErr  error
	logoutErr error
}

func (f *fakeAuthGateway) Login(ctx context.Context, email, password string) (model.User, error) {
	return f.user, f.loginErr
}

func (f *fakeAuthGateway) Logout(ctx context.Context) error { return f.logoutErr }

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testSessions() *session.Store {
	return session.NewStore("test-secret", time.Hour, false)
}

func TestLoginIssuesSessionCookie(t *testing.T) {
	gw := &fakeAuthGateway{user: model.User{ID: "7", Email: "kim@example.com", Role: model.RoleProjectManager}}
	h := NewAuthHandler(testSessions(), gw)

	c, rec := newAuthTestContext(t, `{"email":"kim@example.com","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var found bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName && ck.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a session cookie to be set")
	}
}

func TestLoginRejectedCredentialsReturn401(t *testing.T) {
	gw := &fakeAuthGateway{loginErr: &gateway.APIError{Status: 401, Message: "invalid credentials"}}
	h := NewAuthHandler(testSessions(), gw)

	c, rec := newAuthTestContext(t, `{"email":"kim@example.com","password":"wrong"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName && ck.Value != "" {
			t.Fatal("expected no session cookie on rejected login")
		}
	}
}

func TestLoginFallsBackToDemoDirectoryWhenUpstreamDown(t *testing.T) {
	gw := &fakeAuthGateway{loginErr: errors.New("dial tcp: connection refused")}
	h := NewAuthHandler(testSessions(), gw)

	c, rec := newAuthTestContext(t, `{"email":"admin@projectdesk.dev","password":"admin123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 via demo directory, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		User model.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Role != model.RoleAdmin {
		t.Fatalf("expected demo admin role, got %q", resp.User.Role)
	}
}

func TestLoginUpstreamDownUnknownAccountIs503(t *testing.T) {
	gw := &fakeAuthGateway{loginErr: errors.New("dial tcp: connection refused")}
	h := NewAuthHandler(testSessions(), gw)

	c, rec := newAuthTestContext(t, `{"email":"stranger@example.com","password":"pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestLogoutClearsSessionEvenWhenUpstreamFails(t *testing.T) {
	gw := &fakeAuthGateway{logoutErr: errors.New("upstream down")}
	h := NewAuthHandler(testSessions(), gw)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName && ck.Value == "" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected session cookie to be expired despite upstream failure")
	}
}
