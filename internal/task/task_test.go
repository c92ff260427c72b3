package task

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sample = `
tasks:
  - description: Write report
    priority: high
    due: 2026-02-12
    recurrence: every week
    tags: [work]
  - description: Buy milk
    status: done
    done: 2026-02-10
    block_link: milk
`

func TestParse(t *testing.T) {
	tasks, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("Expected 2 tasks, got %d", len(tasks))
	}

	first := tasks[0]
	if first.Priority != PriorityHigh {
		t.Errorf("Expected priority high, got %q", first.Priority)
	}
	if got := first.DueDate.Format(DateFormat); got != "2026-02-12" {
		t.Errorf("Expected due 2026-02-12, got %s", got)
	}
	if first.Status != StatusTodo {
		t.Errorf("Expected default status todo, got %q", first.Status)
	}
	if !first.IsRecurring() {
		t.Error("Expected first task to be recurring")
	}
	if len(first.Tags) != 1 || first.Tags[0] != "work" {
		t.Errorf("Expected tags [work], got %v", first.Tags)
	}

	second := tasks[1]
	if second.Status != StatusDone || second.BlockLink != "milk" {
		t.Errorf("Unexpected second task: %+v", second)
	}
	if !second.DueDate.IsZero() {
		t.Error("Expected no due date on second task")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"missing description": "tasks:\n  - priority: high\n",
		"bad priority":        "tasks:\n  - description: x\n    priority: urgent\n",
		"bad yaml":            "tasks: [",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(input)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	if err := os.WriteFile(path, []byte(sample), 0600); err != nil {
		t.Fatal(err)
	}

	tasks, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if len(tasks) != 2 {
		t.Errorf("Expected 2 tasks, got %d", len(tasks))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 2, 12, 15, 0, 0, 0, time.UTC)
	due := func(d string) time.Time {
		v, _ := time.Parse(DateFormat, d)
		return v
	}

	cases := []struct {
		task Task
		want bool
	}{
		{Task{DueDate: due("2026-02-11")}, true},
		{Task{DueDate: due("2026-02-12")}, false},
		{Task{DueDate: due("2026-02-11"), Status: StatusDone}, false},
		{Task{}, false},
	}
	for i, c := range cases {
		if got := c.task.IsOverdue(now); got != c.want {
			t.Errorf("case %d: IsOverdue = %v, want %v", i, got, c.want)
		}
	}
}

func TestPrioritySymbol(t *testing.T) {
	if PriorityNone.Symbol() != "" {
		t.Error("Expected no symbol for none")
	}
	if !PriorityNone.Valid() || Priority("urgent").Valid() {
		t.Error("Unexpected validity")
	}
	if PriorityHighest.Symbol() != "🔺" {
		t.Errorf("Unexpected highest symbol %q", PriorityHighest.Symbol())
	}
}

func TestParse_PriorityNone(t *testing.T) {
	tasks, err := Parse([]byte("tasks:\n  - description: x\n    priority: none\n"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if tasks[0].Priority != PriorityNone {
		t.Errorf("Expected no priority, got %q", tasks[0].Priority)
	}
}
