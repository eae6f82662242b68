// Package store is the local fallback layer: per-resource collections that
// hold records created while the upstream API is unreachable. Two scopes
// exist, mirroring the browser's storage split: a persistent MySQL tier for
// records that should survive a restart (projects, members, documents) and
// a Redis tier scoped to the session for throwaway records (tasks,
// timesheets).
//
// Availability problems never propagate: reads degrade to empty lists and
// removals to no-ops. Writes return ErrUnavailable so callers that care can
// tell a failed append from "nothing to do"; most call sites ignore it.
package store

import "errors"

// ErrUnavailable is returned by writes when the backing storage is absent
// or rejects the operation.
var ErrUnavailable = errors.New("local store unavailable")
