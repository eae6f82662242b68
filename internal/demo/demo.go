// Package demo holds the static datasets the dashboard falls back to when
// both the upstream API and the local fallback store come up empty. The
// same package provides the demo account directory used for offline login.
package demo

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dkoval/projectdesk/internal/model"
	"github.com/dkoval/projectdesk/internal/utils"
)

// accounts is the demo directory. Plaintext passwords live only long
// enough to be hashed on first use.
var accounts = []struct {
	user     model.User
	password string
}{
	{model.User{ID: "1", Email: "admin@projectdesk.dev", DisplayName: "Alice Admin", Role: model.RoleAdmin}, "admin123"},
	{model.User{ID: "2", Email: "mark@projectdesk.dev", DisplayName: "Mark Member", Role: model.RoleTeamMember}, "member123"},
	{model.User{ID: "3", Email: "paula@projectdesk.dev", DisplayName: "Paula Manager", Role: model.RoleProjectManager}, "manager123"},
	{model.User{ID: "4", Email: "finn@projectdesk.dev", DisplayName: "Finn Finance", Role: model.RoleSalesFinance}, "finance123"},
}

var (
	hashOnce       sync.Once
	passwordHashes map[string]string
	bcryptCost     = bcrypt.DefaultCost
)

// SetBcryptCost overrides the cost used to hash the demo directory. Must be
// called before the first Authenticate; later calls have no effect.
func SetBcryptCost(cost int) {
	if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
		bcryptCost = cost
	}
}

// hashes builds the credential table on first use, so SetBcryptCost can run
// during startup before any hashing happens.
func hashes() map[string]string {
	hashOnce.Do(func() {
		passwordHashes = make(map[string]string, len(accounts))
		for _, a := range accounts {
			h, err := utils.HashPassword(a.password, bcryptCost)
			if err != nil {
				continue
			}
			passwordHashes[a.user.Email] = h
		}
	})
	return passwordHashes
}

// Authenticate checks credentials against the demo directory. It is only
// consulted when the upstream login is unreachable.
func Authenticate(email, password string) (model.User, bool) {
	hash, ok := hashes()[email]
	if !ok {
		return model.User{}, false
	}
	if !utils.VerifyPassword(hash, password) {
		return model.User{}, false
	}
	for _, a := range accounts {
		if a.user.Email == email {
			return a.user, true
		}
	}
	return model.User{}, false
}

// Users returns the demo user records.
func Users() []model.User {
	out := make([]model.User, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.user)
	}
	return out
}

// Projects returns the demo project dataset.
func Projects() []model.Project {
	return []model.Project{
		{
			ID: "proj-1", Code: "WEB-01", Name: "Website Relaunch",
			Description: "Marketing site rebuild with new CMS",
			ManagerID:   "3", MemberIDs: []string{"2"},
			Status: model.ProjectInProgress, StartDate: "2025-01-06", EndDate: "2025-06-30",
			BudgetAmount: 48000, BudgetSpent: 19500, Progress: 45, CustomerID: "cust-11",
		},
		{
			ID: "proj-2", Code: "ERP-07", Name: "ERP Migration",
			Description: "Move finance workflows off the legacy ERP",
			ManagerID:   "3", MemberIDs: []string{"3"},
			Status: model.ProjectPlanned, StartDate: "2025-04-01", EndDate: "2025-12-15",
			BudgetAmount: 120000, BudgetSpent: 0, Progress: 0, CustomerID: "cust-12",
		},
		{
			ID: "proj-3", Code: "APP-03", Name: "Mobile App MVP",
			Description: "First customer-facing mobile release",
			ManagerID:   "1", MemberIDs: []string{},
			Status: model.ProjectOnHold, StartDate: "2024-09-01", EndDate: "2025-03-31",
			BudgetAmount: 65000, BudgetSpent: 61200, Progress: 80, CustomerID: "cust-11",
		},
	}
}

// Tasks returns the demo task dataset.
func Tasks() []model.Task {
	return []model.Task{
		{
			ID: "task-1", ProjectID: "proj-1", Title: "Design landing page",
			AssigneeIDs: []string{"2"}, State: model.TaskInProgress, Priority: "high",
			DueDate: "2025-02-14", CreatedBy: "3", EstimatedHours: 16, Tags: []string{"design"},
		},
		{
			ID: "task-2", ProjectID: "proj-1", Title: "Set up CMS pipeline",
			AssigneeIDs: []string{"3"}, State: model.TaskTodo, Priority: "medium",
			DueDate: "2025-03-01", CreatedBy: "3", EstimatedHours: 24, Tags: []string{"infra"},
		},
		{
			ID: "task-3", ProjectID: "proj-3", Title: "Fix crash on login screen",
			AssigneeIDs: []string{"2"}, State: model.TaskBlocked, Priority: "urgent",
			DueDate: "2025-01-20", CreatedBy: "1", EstimatedHours: 8, Tags: []string{"bug", "mobile"},
		},
	}
}

// Timesheets returns the demo timesheet dataset.
func Timesheets() []model.Timesheet {
	reviewed := time.Date(2025, 1, 21, 9, 30, 0, 0, time.UTC)
	return []model.Timesheet{
		{
			ID: "ts-1", UserID: "2", ProjectID: "proj-1", TaskID: "task-1",
			WorkDate: "2025-01-17", Hours: 6.5, Billable: true, HourlyRate: 85,
			Status: model.TimesheetSubmitted,
		},
		{
			ID: "ts-2", UserID: "2", ProjectID: "proj-1",
			WorkDate: "2025-01-16", Hours: 8, Billable: true, HourlyRate: 85,
			Status: model.TimesheetApproved, ReviewedBy: "1", ReviewedAt: &reviewed,
		},
		{
			ID: "ts-3", UserID: "3", ProjectID: "proj-2",
			WorkDate: "2025-01-15", Hours: 3, Billable: false,
			Status: model.TimesheetDraft,
		},
	}
}

// Documents returns the demo documents of one kind.
func Documents(kind string) []model.Document {
	all := []model.Document{
		{ID: "so-1", Kind: model.DocSalesOrder, Number: "SO-2025-001", ProjectID: "proj-1", Total: 24000, Currency: "EUR", Status: "confirmed", IssueDate: "2025-01-10"},
		{ID: "po-1", Kind: model.DocPurchaseOrder, Number: "PO-2025-014", ProjectID: "proj-2", VendorID: "vend-3", Total: 7800, Currency: "EUR", Status: "ordered", IssueDate: "2025-01-08"},
		{ID: "inv-1", Kind: model.DocInvoice, Number: "INV-2025-031", ProjectID: "proj-1", Total: 12000, Currency: "EUR", Status: "sent", IssueDate: "2025-01-12", DueDate: "2025-02-11"},
		{ID: "inv-2", Kind: model.DocInvoice, Number: "INV-2024-287", ProjectID: "proj-3", Total: 18500, Currency: "EUR", Status: "overdue", IssueDate: "2024-11-30", DueDate: "2024-12-30"},
		{ID: "bill-1", Kind: model.DocBill, Number: "BILL-2025-006", VendorID: "vend-3", Total: 2300, Currency: "EUR", Status: "received", IssueDate: "2025-01-14"},
		{ID: "exp-1", Kind: model.DocExpense, Number: "EXP-2025-042", ProjectID: "proj-1", Total: 240, Currency: "EUR", Status: "submitted", IssueDate: "2025-01-18"},
	}
	out := make([]model.Document, 0, len(all))
	for _, d := range all {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
