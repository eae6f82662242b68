// Package rbac holds the static role tables that drive view composition:
// which navigation items a role may see and which actions it may perform.
// Admin is granted everything through an explicit override rather than by
// being enumerated in every table entry.
package rbac

import "github.com/dkoval/projectdesk/internal/model"

// Navigation items exposed by the dashboard shell.
const (
	NavDashboard  = "dashboard"
	NavProjects   = "projects"
	NavTasks      = "tasks"
	NavTimesheets = "timesheets"
	NavSales      = "sales"
	NavPurchases  = "purchases"
	NavInvoices   = "invoices"
	NavExpenses   = "expenses"
	NavSettings   = "settings"
)

// Actions a page may expose on a resource.
const (
	ActionCreate  = "create"
	ActionEdit    = "edit"
	ActionDelete  = "delete"
	ActionApprove = "approve"
)

// Resources referenced by the action table.
const (
	ResProject   = "project"
	ResTask      = "task"
	ResTimesheet = "timesheet"
	ResDocument  = "document"
	ResExpense   = "expense"
	ResMember    = "member"
)

// navOrder fixes the display order of navigation items.
var navOrder = []string{
	NavDashboard, NavProjects, NavTasks, NavTimesheets,
	NavSales, NavPurchases, NavInvoices, NavExpenses, NavSettings,
}

// navTable maps each navigation item to the roles that may see it. Admin is
// intentionally absent from most entries; CanSee grants it unconditionally.
var navTable = map[string][]string{
	NavDashboard:  {model.RoleProjectManager, model.RoleTeamMember, model.RoleSalesFinance},
	NavProjects:   {model.RoleProjectManager, model.RoleTeamMember},
	NavTasks:      {model.RoleProjectManager, model.RoleTeamMember},
	NavTimesheets: {model.RoleProjectManager, model.RoleTeamMember},
	NavSales:      {model.RoleSalesFinance},
	NavPurchases:  {model.RoleSalesFinance},
	NavInvoices:   {model.RoleSalesFinance},
	NavExpenses:   {model.RoleProjectManager, model.RoleSalesFinance},
	NavSettings:   {},
}

// actionTable maps (resource, action) to the roles allowed to perform it.
// Entries missing from the table are admin-only.
var actionTable = map[string]map[string][]string{
	ResProject: {
		ActionCreate: {},
		ActionEdit:   {model.RoleProjectManager},
		ActionDelete: {},
	},
	ResTask: {
		ActionCreate: {model.RoleProjectManager},
		ActionEdit:   {model.RoleProjectManager, model.RoleTeamMember},
		ActionDelete: {model.RoleProjectManager},
	},
	ResTimesheet: {
		ActionCreate:  {model.RoleProjectManager, model.RoleTeamMember},
		ActionEdit:    {model.RoleProjectManager, model.RoleTeamMember},
		ActionApprove: {model.RoleProjectManager},
	},
	ResDocument: {
		ActionCreate: {model.RoleSalesFinance},
		ActionEdit:   {model.RoleSalesFinance},
		ActionDelete: {},
	},
	ResExpense: {
		ActionCreate:  {model.RoleProjectManager, model.RoleTeamMember, model.RoleSalesFinance},
		ActionApprove: {},
	},
	ResMember: {
		ActionCreate: {model.RoleProjectManager},
		ActionDelete: {},
	},
}

// CanSee reports whether a role may see a navigation item. Admin always
// may, regardless of the table contents.
func CanSee(role, item string) bool {
	if role == model.RoleAdmin {
		return true
	}
	for _, r := range navTable[item] {
		if r == role {
			return true
		}
	}
	return false
}

// Can reports whether a role may perform an action on a resource. Admin
// always may; everyone else must be listed in the action table.
func Can(role, resource, action string) bool {
	if role == model.RoleAdmin {
		return true
	}
	actions, ok := actionTable[resource]
	if !ok {
		return false
	}
	for _, r := range actions[action] {
		if r == role {
			return true
		}
	}
	return false
}

// NavFor returns the navigation items visible to a role, in display order.
func NavFor(role string) []string {
	items := make([]string, 0, len(navOrder))
	for _, item := range navOrder {
		if CanSee(role, item) {
			items = append(items, item)
		}
	}
	return items
}
