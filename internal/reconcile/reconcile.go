// Package reconcile merges the three data tiers the dashboard reads from:
// remote API results, locally created fallback records and static demo
// datasets. The merge is a fixed three-tier priority, not a timestamp or
// version based one, and it performs no de-duplication across tiers.
package reconcile

import "github.com/dkoval/projectdesk/internal/model"

// Merge combines the tiers into one logical collection. When the remote
// tier has data it is authoritative and local records are appended as
// pending/offline additions; the demo tier is used as the base only when
// the remote fetch failed or returned nothing.
func Merge[T any](remote, local, demo []T) []T {
	base := demo
	if len(remote) > 0 {
		base = remote
	}
	out := make([]T, 0, len(base)+len(local))
	out = append(out, base...)
	out = append(out, local...)
	return out
}

// VisibleProjects narrows a merged project list for the given user. Team
// members only see projects whose member set contains them; every other
// role sees the list unchanged (sales/finance visibility is scoped at the
// document level, not the project level).
func VisibleProjects(user *model.User, projects []model.Project) []model.Project {
	if user == nil || user.Role != model.RoleTeamMember {
		return projects
	}
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if p.HasMember(user.ID) {
			out = append(out, p)
		}
	}
	return out
}

// VisibleTasks narrows a merged task list: team members only see tasks
// assigned to them or created by them.
func VisibleTasks(user *model.User, tasks []model.Task) []model.Task {
	if user == nil || user.Role != model.RoleTeamMember {
		return tasks
	}
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.HasAssignee(user.ID) || t.CreatedBy == user.ID {
			out = append(out, t)
		}
	}
	return out
}

// VisibleTimesheets narrows a merged timesheet list: team members only see
// their own entries, everyone else sees all of them.
func VisibleTimesheets(user *model.User, sheets []model.Timesheet) []model.Timesheet {
	if user == nil || user.Role != model.RoleTeamMember {
		return sheets
	}
	out := make([]model.Timesheet, 0, len(sheets))
	for _, ts := range sheets {
		if ts.UserID == user.ID {
			out = append(out, ts)
		}
	}
	return out
}
