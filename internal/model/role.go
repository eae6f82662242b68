package model

// Application roles. The upstream workspace API only attaches an explicit
// role to demo-shaped records; API-shaped user payloads carry none, so any
// record with a missing or unknown role resolves to the least-privileged
// role. Absence of role information must never grant elevated access.
const (
	RoleAdmin          = "admin"
	RoleProjectManager = "project_manager"
	RoleTeamMember     = "team_member"
	RoleSalesFinance   = "sales_finance"
)

// NormalizeRole maps a raw role string onto one of the known roles,
// defaulting to team_member for anything unrecognized.
func NormalizeRole(raw string) string {
	switch raw {
	case RoleAdmin, RoleProjectManager, RoleTeamMember, RoleSalesFinance:
		return raw
	default:
		return RoleTeamMember
	}
}
