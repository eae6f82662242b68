package utils // package utils provides helper functions for session tokens and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkoval/projectdesk/internal/model"
)

// ErrInvalidSession is returned when a session token fails to parse or
// validate. Callers treat it as "no session" rather than a hard failure.
var ErrInvalidSession = errors.New("invalid session token")

// SessionClaims is what a decoded session cookie yields: the persisted user
// record plus the session id used to key session-scoped fallback records.
type SessionClaims struct {
	User      model.User
	SessionID string
}

// NewSessionToken signs an HS256 JWT that carries the current user record.
// This is the server-side equivalent of the browser persisting the signed-in
// user: the cookie is the single storage key for the session identity.
func NewSessionToken(secret string, user model.User, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"name":  user.DisplayName,
		"role":  user.Role,
		"sid":   sessionID,
		"exp":   now.Add(ttl).Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseSessionToken validates a session token and reconstructs the user
// record. Any parse or signature problem yields ErrInvalidSession; a record
// without an explicit role resolves to the least-privileged role.
func ParseSessionToken(secret, raw string) (SessionClaims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return SessionClaims{}, ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return SessionClaims{}, ErrInvalidSession
	}

	sc := SessionClaims{
		User: model.User{
			ID:          claimString(claims, "sub"),
			Email:       claimString(claims, "email"),
			DisplayName: claimString(claims, "name"),
			Role:        model.NormalizeRole(claimString(claims, "role")),
		},
		SessionID: claimString(claims, "sid"),
	}
	if sc.User.ID == "" {
		return SessionClaims{}, ErrInvalidSession
	}
	return sc, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
