package model

// Project statuses form a closed enum. The UI treats anything outside this
// set as "planned".
const (
	ProjectPlanned    = "planned"
	ProjectInProgress = "in_progress"
	ProjectOnHold     = "on_hold"
	ProjectCompleted  = "completed"
	ProjectCancelled  = "cancelled"
)

// Project mirrors the upstream project resource. MemberIDs is the set of
// team member user ids used for role-scoped visibility; budget fields are
// reported as-is (budget_spent may exceed budget_amount, the upstream does
// not enforce the invariant and neither do we).
type Project struct {
	ID           string   `json:"id"`
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	ManagerID    string   `json:"manager_id"`
	MemberIDs    []string `json:"team_member_ids"`
	Status       string   `json:"status"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	BudgetAmount float64  `json:"budget_amount"`
	BudgetSpent  float64  `json:"budget_spent"`
	Progress     int      `json:"progress"`
	CustomerID   string   `json:"customer_id"`
}

// HasMember reports whether the given user id is in the project's member
// set. The manager counts as a member for visibility purposes.
func (p Project) HasMember(userID string) bool {
	if userID == "" {
		return false
	}
	if p.ManagerID == userID {
		return true
	}
	for _, id := range p.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// ValidProjectStatus reports whether s is one of the known project statuses.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectPlanned, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}
