package model

// Task states. Two overlapping enums existed historically ("new" vs "todo"
// for freshly created tasks); they are unified here with "new" accepted as
// an inbound alias of "todo".
const (
	TaskTodo       = "todo"
	TaskInProgress = "in_progress"
	TaskBlocked    = "blocked"
	TaskDone       = "done"
)

// Task mirrors the upstream task resource. A task references its project by
// id only; the reference may dangle after a project disappears since no
// referential integrity exists between the collections.
type Task struct {
	ID             string   `json:"id"`
	ProjectID      string   `json:"project_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	AssigneeIDs    []string `json:"assignee_ids"`
	State          string   `json:"state"`
	Priority       string   `json:"priority"`
	DueDate        string   `json:"due_date"`
	CreatedBy      string   `json:"created_by"`
	EstimatedHours float64  `json:"estimated_hours"`
	Tags           []string `json:"tags"`
}

// HasAssignee reports whether the given user id is assigned to the task.
func (t Task) HasAssignee(userID string) bool {
	if userID == "" {
		return false
	}
	for _, id := range t.AssigneeIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// NormalizeTaskState maps raw state strings onto the unified enum. Unknown
// values fall back to "todo".
func NormalizeTaskState(raw string) string {
	switch raw {
	case TaskTodo, TaskInProgress, TaskBlocked, TaskDone:
		return raw
	case "new":
		return TaskTodo
	default:
		return TaskTodo
	}
}

// ValidTaskState reports whether s is a member of the unified state enum.
func ValidTaskState(s string) bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskBlocked, TaskDone:
		return true
	}
	return false
}
