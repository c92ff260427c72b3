package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hy4ri/tasks-layout/internal/layout"
)

func TestExplainLayout(t *testing.T) {
	var buf bytes.Buffer
	explainLayout(&buf, layout.New(layout.WithTaskOptions(layout.TaskLayoutOptions{HideStartDate: true})))

	out := buf.String()
	if !strings.Contains(out, "Hidden:  startDate\n") {
		t.Errorf("Unexpected hidden line in:\n%s", out)
	}
	if !strings.Contains(out, "tasks-layout-hide-startDate") {
		t.Errorf("Missing class in:\n%s", out)
	}
}

func TestExplainLayout_Default(t *testing.T) {
	var buf bytes.Buffer
	explainLayout(&buf, layout.DefaultLayout())

	if !strings.Contains(buf.String(), "Hidden:  (none)\n") {
		t.Errorf("Unexpected output:\n%s", buf.String())
	}
}

func TestStringList(t *testing.T) {
	var s stringList
	_ = s.Set("priority")
	_ = s.Set("due date")
	if s.String() != "priority,due date" {
		t.Errorf("Unexpected value %q", s.String())
	}
}

func TestPrintClasses(t *testing.T) {
	var buf bytes.Buffer
	printClasses(&buf, layout.DefaultLayout())
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}

	printClasses(&buf, layout.New(layout.WithQueryOptions(layout.QueryLayoutOptions{HideUrgency: true, ShortMode: true})))
	want := "tasks-layout-hide-urgency\ntasks-layout-short-mode\n"
	if buf.String() != want {
		t.Errorf("printClasses() = %q, want %q", buf.String(), want)
	}
}
