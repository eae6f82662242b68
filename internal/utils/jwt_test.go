package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/dkoval/projectdesk/internal/model"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	user := model.User{ID: "2", Email: "mark@projectdesk.dev", DisplayName: "Mark", Role: model.RoleTeamMember}

	tok, err := NewSessionToken(testSecret, user, "sid-123", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := ParseSessionToken(testSecret, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.User != user {
		t.Fatalf("expected user %+v, got %+v", user, claims.User)
	}
	if claims.SessionID != "sid-123" {
		t.Fatalf("expected session id sid-123, got %q", claims.SessionID)
	}
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	tok, err := NewSessionToken(testSecret, model.User{ID: "1", Role: model.RoleAdmin}, "sid", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseSessionToken("other-secret", tok); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseSessionToken(testSecret, "not-a-token"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestParseSessionTokenRejectsExpired(t *testing.T) {
	tok, err := NewSessionToken(testSecret, model.User{ID: "1", Role: model.RoleAdmin}, "sid", -time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ParseSessionToken(testSecret, tok); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for expired token, got %v", err)
	}
}

func TestParseSessionTokenNormalizesUnknownRole(t *testing.T) {
	tok, err := NewSessionToken(testSecret, model.User{ID: "9", Role: "superuser"}, "sid", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := ParseSessionToken(testSecret, tok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.User.Role != model.RoleTeamMember {
		t.Fatalf("expected unknown role to resolve to team_member, got %q", claims.User.Role)
	}
}
