package domain

import "testing"

func TestTaskPatch_Empty(t *testing.T) {
	if !(TaskPatch{}).Empty() {
		t.Fatalf("zero patch must be empty")
	}

	done := false
	if (TaskPatch{Completed: &done}).Empty() {
		t.Fatalf("patch with completed set must not be empty")
	}

	// A pointer to the zero value still counts as a change.
	title := ""
	if (TaskPatch{Title: &title}).Empty() {
		t.Fatalf("patch with title set must not be empty")
	}
}
