package model

import "testing"

func TestNormalizeTaskState(t *testing.T) {
	cases := map[string]string{
		"todo":        TaskTodo,
		"in_progress": TaskInProgress,
		"blocked":     TaskBlocked,
		"done":        TaskDone,
		"new":         TaskTodo,
		"":            TaskTodo,
		"archived":    TaskTodo,
	}
	for raw, want := range cases {
		if got := NormalizeTaskState(raw); got != want {
			t.Fatalf("NormalizeTaskState(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestHasAssignee(t *testing.T) {
	task := Task{AssigneeIDs: []string{"2", "5"}}
	if !task.HasAssignee("2") {
		t.Fatal("expected assignee match")
	}
	if task.HasAssignee("9") {
		t.Fatal("expected no match for unassigned user")
	}
	if task.HasAssignee("") {
		t.Fatal("expected empty id to never match")
	}
}
