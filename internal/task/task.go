// Package task provides the task entity rendered by the layout renderer.
package task

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateFormat is the layout of every date field of a task.
const DateFormat = "2006-01-02"

// Priority is the importance of a task.
type Priority string

const (
	PriorityHighest Priority = "highest"
	PriorityHigh    Priority = "high"
	PriorityMedium  Priority = "medium"
	PriorityNone    Priority = ""
	PriorityLow     Priority = "low"
	PriorityLowest  Priority = "lowest"
)

// Symbol returns the emoji written for the priority, or "" for none.
func (p Priority) Symbol() string {
	switch p {
	case PriorityHighest:
		return "🔺"
	case PriorityHigh:
		return "⏫"
	case PriorityMedium:
		return "🔼"
	case PriorityLow:
		return "🔽"
	case PriorityLowest:
		return "⏬"
	}
	return ""
}

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	return p == PriorityNone || p.Symbol() != ""
}

// Status is the completion state of a task.
type Status string

const (
	StatusTodo      Status = "todo"
	StatusDone      Status = "done"
	StatusCancelled Status = "cancelled"
)

// Checkbox returns the markdown checkbox for the status.
func (s Status) Checkbox() string {
	switch s {
	case StatusDone:
		return "[x]"
	case StatusCancelled:
		return "[-]"
	}
	return "[ ]"
}

// Task is a single task line.
type Task struct {
	Description    string    `yaml:"description"`
	Status         Status    `yaml:"status,omitempty"`
	Priority       Priority  `yaml:"priority,omitempty"`
	RecurrenceRule string    `yaml:"recurrence,omitempty"`
	CreatedDate    time.Time `yaml:"created,omitempty"`
	StartDate      time.Time `yaml:"start,omitempty"`
	ScheduledDate  time.Time `yaml:"scheduled,omitempty"`
	DueDate        time.Time `yaml:"due,omitempty"`
	CancelledDate  time.Time `yaml:"cancelled,omitempty"`
	DoneDate       time.Time `yaml:"done,omitempty"`
	BlockLink      string    `yaml:"block_link,omitempty"`
	Tags           []string  `yaml:"tags,omitempty"`
}

// IsRecurring returns true if the task has a recurrence rule.
func (t *Task) IsRecurring() bool {
	return t.RecurrenceRule != ""
}

// IsOverdue returns true if the task is open and due before today.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate.IsZero() || t.Status == StatusDone || t.Status == StatusCancelled {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return t.DueDate.Before(today)
}

// File is the on-disk form of a task list.
type File struct {
	Tasks []Task `yaml:"tasks"`
}

// Parse decodes a YAML task list.
func Parse(data []byte) ([]Task, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse tasks: %w", err)
	}

	for i := range f.Tasks {
		t := &f.Tasks[i]
		if t.Description == "" {
			return nil, fmt.Errorf("task %d: missing description", i+1)
		}
		if t.Priority == "none" {
			t.Priority = PriorityNone
		}
		if !t.Priority.Valid() {
			return nil, fmt.Errorf("task %d: unknown priority %q", i+1, t.Priority)
		}
		if t.Status == "" {
			t.Status = StatusTodo
		}
	}
	return f.Tasks, nil
}

// LoadFile reads a YAML task list from path.
func LoadFile(path string) ([]Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}
	return Parse(data)
}
