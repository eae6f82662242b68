package rbac

import (
	"testing"

	"github.com/dkoval/projectdesk/internal/model"
)

func TestAdminSeesEverything(t *testing.T) {
	for _, item := range navOrder {
		if !CanSee(model.RoleAdmin, item) {
			t.Fatalf("expected admin to see %q", item)
		}
	}
	if !Can(model.RoleAdmin, ResProject, ActionDelete) {
		t.Fatal("expected admin to delete projects despite empty table entry")
	}
	if !Can(model.RoleAdmin, ResExpense, ActionApprove) {
		t.Fatal("expected admin to approve expenses")
	}
}

func TestUnknownRoleSeesNothingElevated(t *testing.T) {
	role := model.NormalizeRole("superuser")
	if role != model.RoleTeamMember {
		t.Fatalf("expected unknown role to normalize to team_member, got %q", role)
	}
	if CanSee(role, NavSettings) {
		t.Fatal("expected normalized unknown role not to see settings")
	}
	if Can(role, ResProject, ActionCreate) {
		t.Fatal("expected normalized unknown role not to create projects")
	}
}

func TestTeamMemberNav(t *testing.T) {
	got := NavFor(model.RoleTeamMember)
	want := []string{NavDashboard, NavProjects, NavTasks, NavTimesheets}
	if len(got) != len(want) {
		t.Fatalf("expected nav %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected nav %v, got %v", want, got)
		}
	}
}

func TestSalesFinanceNavExcludesProjectPages(t *testing.T) {
	if CanSee(model.RoleSalesFinance, NavProjects) {
		t.Fatal("expected sales_finance not to see projects")
	}
	if !CanSee(model.RoleSalesFinance, NavInvoices) {
		t.Fatal("expected sales_finance to see invoices")
	}
	if !CanSee(model.RoleSalesFinance, NavExpenses) {
		t.Fatal("expected sales_finance to see expenses")
	}
}

func TestTimesheetApprovalIsManagerOnly(t *testing.T) {
	if !Can(model.RoleProjectManager, ResTimesheet, ActionApprove) {
		t.Fatal("expected project_manager to approve timesheets")
	}
	if Can(model.RoleTeamMember, ResTimesheet, ActionApprove) {
		t.Fatal("expected team_member not to approve timesheets")
	}
	if Can(model.RoleSalesFinance, ResTimesheet, ActionApprove) {
		t.Fatal("expected sales_finance not to approve timesheets")
	}
}

func TestUnknownResourceDeniesNonAdmin(t *testing.T) {
	if Can(model.RoleProjectManager, "report", ActionCreate) {
		t.Fatal("expected unknown resource to deny non-admin")
	}
	if !Can(model.RoleAdmin, "report", ActionCreate) {
		t.Fatal("expected unknown resource to still allow admin")
	}
}
