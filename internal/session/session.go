// Package session persists the signed-in user for the lifetime of a
// browser session. The user record travels inside a signed cookie; reading
// it back is a synchronous parse with no storage round trip, and anything
// unparsable simply means "not signed in".
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/utils"
)

// CookieName is the single key under which the session identity lives.
const CookieName = "desk_session"

// Store issues, reads and clears session cookies.
type Store struct {
	Secret string
	TTL    time.Duration
	Secure bool
}

func NewStore(secret string, ttl time.Duration, secure bool) *Store {
	return &Store{Secret: secret, TTL: ttl, Secure: secure}
}

// Issue writes a session cookie for the user and returns the session id
// that keys their session-scoped fallback records.
func (s *Store) Issue(c echo.Context, user model.User) (string, error) {
	sid := uuid.NewString()
	tok, err := utils.NewSessionToken(s.Secret, user, sid, s.TTL)
	if err != nil {
		return "", err
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		Expires:  time.Now().Add(s.TTL),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sid, nil
}

// Current returns the signed-in user and session id, or nil when no valid
// session cookie is present.
func (s *Store) Current(c echo.Context) (*model.User, string) {
	ck, err := c.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return nil, ""
	}
	claims, err := utils.ParseSessionToken(s.Secret, ck.Value)
	if err != nil {
		return nil, ""
	}
	u := claims.User
	return &u, claims.SessionID
}

// Clear expires the session cookie unconditionally. It never fails: logout
// must always leave the client signed out, whatever the upstream said.
func (s *Store) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
