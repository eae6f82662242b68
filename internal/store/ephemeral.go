package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/dkoval/projectdesk/internal/model"
)

// listClient is the slice of Redis the ephemeral stores use. *redis.Client
// satisfies it; tests substitute an in-memory implementation.
type listClient interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	LRem(ctx context.Context, key string, count int64, value interface{}) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// ephemeral is the session-scoped storage primitive: one Redis list per
// (resource, session id), expiring with the session. It is the server-side
// counterpart of sessionStorage — records created here are demo artifacts
// that should not outlive the session.
type ephemeral struct {
	rdb listClient
	ttl time.Duration
}

func (e ephemeral) key(resource, sessionID string) string {
	return "local:" + resource + ":" + sessionID
}

func (e ephemeral) append(ctx context.Context, resource, sessionID string, v any) error {
	if e.rdb == nil || sessionID == "" {
		return ErrUnavailable
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ErrUnavailable
	}
	key := e.key(resource, sessionID)
	if err := e.rdb.RPush(ctx, key, b).Err(); err != nil {
		logrus.WithError(err).Warnf("%s store: append failed", resource)
		return ErrUnavailable
	}
	e.rdb.Expire(ctx, key, e.ttl)
	return nil
}

func (e ephemeral) list(ctx context.Context, resource, sessionID string) [][]byte {
	if e.rdb == nil || sessionID == "" {
		return nil
	}
	vals, err := e.rdb.LRange(ctx, e.key(resource, sessionID), 0, -1).Result()
	if err != nil {
		logrus.WithError(err).Warnf("%s store: list failed", resource)
		return nil
	}
	out := make([][]byte, 0, len(vals))
	for _, v := range vals {
		out = append(out, []byte(v))
	}
	return out
}

func (e ephemeral) removeRaw(ctx context.Context, resource, sessionID string, raw []byte) {
	if e.rdb == nil || sessionID == "" {
		return
	}
	if err := e.rdb.LRem(ctx, e.key(resource, sessionID), 1, raw).Err(); err != nil {
		logrus.WithError(err).Warnf("%s store: remove failed", resource)
	}
}

// TaskStore is the session-scoped fallback collection for tasks.
type TaskStore struct{ e ephemeral }

func NewTaskStore(rdb *redis.Client, ttl time.Duration) *TaskStore {
	s := &TaskStore{e: ephemeral{ttl: ttl}}
	if rdb != nil {
		s.e.rdb = rdb
	}
	return s
}

// Append stores a locally created task under the session.
func (s *TaskStore) Append(ctx context.Context, sessionID string, t model.Task) error {
	return s.e.append(ctx, "tasks", sessionID, t)
}

// List returns the session's locally created tasks; empty on any storage
// trouble.
func (s *TaskStore) List(ctx context.Context, sessionID string) []model.Task {
	var out []model.Task
	for _, raw := range s.e.list(ctx, "tasks", sessionID) {
		var t model.Task
		if err := json.Unmarshal(raw, &t); err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Remove drops the first task with the given id from the session list.
func (s *TaskStore) Remove(ctx context.Context, sessionID, id string) {
	for _, raw := range s.e.list(ctx, "tasks", sessionID) {
		var t model.Task
		if err := json.Unmarshal(raw, &t); err != nil {
			continue
		}
		if t.ID == id {
			s.e.removeRaw(ctx, "tasks", sessionID, raw)
			return
		}
	}
}

// TimesheetStore is the session-scoped fallback collection for timesheets.
type TimesheetStore struct{ e ephemeral }

func NewTimesheetStore(rdb *redis.Client, ttl time.Duration) *TimesheetStore {
	s := &TimesheetStore{e: ephemeral{ttl: ttl}}
	if rdb != nil {
		s.e.rdb = rdb
	}
	return s
}

// Append stores a locally created timesheet under the session.
func (s *TimesheetStore) Append(ctx context.Context, sessionID string, ts model.Timesheet) error {
	return s.e.append(ctx, "timesheets", sessionID, ts)
}

// List returns the session's locally created timesheets.
func (s *TimesheetStore) List(ctx context.Context, sessionID string) []model.Timesheet {
	var out []model.Timesheet
	for _, raw := range s.e.list(ctx, "timesheets", sessionID) {
		var ts model.Timesheet
		if err := json.Unmarshal(raw, &ts); err != nil {
			continue
		}
		out = append(out, ts)
	}
	return out
}

// Replace swaps a stored timesheet for its reviewed version in place; used
// when a review happens while the upstream is down.
func (s *TimesheetStore) Replace(ctx context.Context, sessionID string, ts model.Timesheet) {
	for _, raw := range s.e.list(ctx, "timesheets", sessionID) {
		var cur model.Timesheet
		if err := json.Unmarshal(raw, &cur); err != nil {
			continue
		}
		if cur.ID == ts.ID {
			s.e.removeRaw(ctx, "timesheets", sessionID, raw)
			_ = s.e.append(ctx, "timesheets", sessionID, ts)
			return
		}
	}
}

// Remove drops the first timesheet with the given id from the session list.
func (s *TimesheetStore) Remove(ctx context.Context, sessionID, id string) {
	for _, raw := range s.e.list(ctx, "timesheets", sessionID) {
		var ts model.Timesheet
		if err := json.Unmarshal(raw, &ts); err != nil {
			continue
		}
		if ts.ID == id {
			s.e.removeRaw(ctx, "timesheets", sessionID, raw)
			return
		}
	}
}
