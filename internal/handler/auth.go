package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/dkoval/projectdesk/internal/demo"
	"github.com/dkoval/projectdesk/internal/gateway"
	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/session"
	"github.com/dkoval/projectdesk/internal/utils"
)

// AuthGateway is the slice of the upstream API the auth handler needs.
type AuthGateway interface {
	Login(ctx context.Context, email, password string) (model.User, error)
	Logout(ctx context.Context) error
}

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Sessions *session.Store
	Gateway  AuthGateway
}

func NewAuthHandler(sessions *session.Store, gw AuthGateway) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Gateway: gw}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResp struct {
	Message string     `json:"message"`
	User    model.User `json:"user"`
}

// Login signs the user in. The upstream API is authoritative: a rejected
// credential pair is surfaced as-is. When the upstream cannot be reached at
// all the demo directory takes over so the dashboard stays usable offline.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := utils.ValidateStruct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := h.Gateway.Login(ctx, req.Email, req.Password)
	if err != nil {
		var apiErr *gateway.APIError
		if errors.As(err, &apiErr) {
			// The upstream answered: credentials are wrong, say so.
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		logrus.WithError(err).Info("login: upstream unreachable, trying demo directory")
		demoUser, ok := demo.Authenticate(req.Email, req.Password)
		if !ok {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "workspace API unreachable"})
		}
		user = demoUser
	}

	user.Role = model.NormalizeRole(user.Role)
	if _, err := h.Sessions.Issue(c, user); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	return c.JSON(http.StatusOK, loginResp{Message: "signed in", User: user})
}

// Logout tears down the session. The upstream call is best-effort: its
// failure is logged and ignored, and the cookie is cleared no matter what.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Gateway.Logout(ctx); err != nil {
		logrus.WithError(err).Info("logout: upstream logout failed")
	}
	h.Sessions.Clear(c)
	return c.NoContent(http.StatusNoContent)
}

// Me returns the signed-in user record.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"user": currentUser(c)})
}
