package demo

import (
	"testing"

	"github.com/dkoval/projectdesk/internal/model"
)

func TestAuthenticate(t *testing.T) {
	user, ok := Authenticate("admin@projectdesk.dev", "admin123")
	if !ok {
		t.Fatal("expected demo admin to authenticate")
	}
	if user.Role != model.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}

	if _, ok := Authenticate("admin@projectdesk.dev", "wrong"); ok {
		t.Fatal("expected wrong password to be rejected")
	}
	if _, ok := Authenticate("nobody@projectdesk.dev", "admin123"); ok {
		t.Fatal("expected unknown account to be rejected")
	}
}

func TestDatasetsAreConsistent(t *testing.T) {
	users := map[string]bool{}
	for _, u := range Users() {
		users[u.ID] = true
	}
	for _, p := range Projects() {
		if p.ManagerID != "" && !users[p.ManagerID] {
			t.Fatalf("project %s references unknown manager %q", p.ID, p.ManagerID)
		}
	}
	projects := map[string]bool{}
	for _, p := range Projects() {
		projects[p.ID] = true
	}
	for _, task := range Tasks() {
		if !projects[task.ProjectID] {
			t.Fatalf("task %s references unknown project %q", task.ID, task.ProjectID)
		}
	}
	for _, ts := range Timesheets() {
		if !projects[ts.ProjectID] {
			t.Fatalf("timesheet %s references unknown project %q", ts.ID, ts.ProjectID)
		}
	}
}
