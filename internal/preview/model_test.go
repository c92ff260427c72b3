package preview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasks-layout/internal/layout"
	"github.com/hy4ri/tasks-layout/internal/task"
)

func newTestModel(l *layout.Layout) *Model {
	m := New([]task.Task{{Description: "Write report", Status: task.StatusTodo, Priority: task.PriorityHigh}}, l)
	m.SetPlain(true)
	return m
}

func sendKey(m *Model, key string) tea.Cmd {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	switch key {
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func TestModel_ToggleField(t *testing.T) {
	m := newTestModel(layout.New())

	// Cursor starts on priority
	sendKey(m, "space")
	if got := m.Layout().HiddenClasses(); len(got) != 1 || got[0] != "tasks-layout-hide-priority" {
		t.Errorf("Expected priority hidden, got %v", got)
	}
	if strings.Contains(m.View(), "⏫") {
		t.Error("Priority symbol should not be rendered once hidden")
	}

	sendKey(m, "space")
	if len(m.Layout().HiddenClasses()) != 0 {
		t.Errorf("Expected priority shown again, got %v", m.Layout().HiddenClasses())
	}
	if !strings.Contains(m.View(), "⏫") {
		t.Error("Priority symbol should be rendered")
	}
}

func TestModel_CursorClamps(t *testing.T) {
	m := newTestModel(layout.New())

	sendKey(m, "k")
	if m.cursor != 0 {
		t.Errorf("Expected cursor 0, got %d", m.cursor)
	}
	for i := 0; i < 20; i++ {
		sendKey(m, "j")
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("Expected cursor at last item, got %d", m.cursor)
	}

	// Last item is tags
	sendKey(m, "space")
	if m.Layout().AreTagsShown() {
		t.Error("Expected tags hidden")
	}
	if len(m.Layout().Hidden()) != 0 {
		t.Errorf("Tags must not be a hidden component, got %v", m.Layout().Hidden())
	}
}

func TestModel_ShowsFieldHiddenByStartingOptions(t *testing.T) {
	m := newTestModel(layout.New(layout.WithTaskOptions(layout.TaskLayoutOptions{HidePriority: true})))

	sendKey(m, "space")
	if len(m.Layout().Hidden()) != 0 {
		t.Errorf("Expected priority shown, got hidden %v", m.Layout().Hidden())
	}
}

func TestModel_ShortModeAndToggleAll(t *testing.T) {
	m := newTestModel(layout.New())

	sendKey(m, "s")
	if !m.Layout().ShortMode() {
		t.Error("Expected short mode")
	}

	sendKey(m, "a")
	want := len(layout.ToggleableComponents()) + 1 // plus short mode
	if got := len(m.Layout().HiddenClasses()); got != want {
		t.Errorf("Expected %d classes, got %d", want, got)
	}
	if !m.Layout().IsShown(layout.Description) {
		t.Error("Description must stay shown")
	}
}

func TestModel_Copy(t *testing.T) {
	m := newTestModel(layout.New(layout.WithQueryOptions(layout.QueryLayoutOptions{HideUrgency: true})))

	var copied string
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}

	cmd := sendKey(m, "y")
	if cmd == nil {
		t.Fatal("Expected copy command")
	}
	m.Update(cmd())

	if copied != "tasks-layout-hide-urgency" {
		t.Errorf("Copied %q", copied)
	}
	if m.status != "Copied 1 classes" {
		t.Errorf("Unexpected status %q", m.status)
	}

	m.copyFn = func(string) error { return errors.New("no clipboard") }
	m.Update(sendKey(m, "y")())
	if !strings.HasPrefix(m.status, "Failed to copy") {
		t.Errorf("Unexpected status %q", m.status)
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(layout.New())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	if !m.viewportReady {
		t.Fatal("Expected viewport to be ready")
	}
	if !strings.Contains(m.View(), "Write report") {
		t.Error("Expected task in view")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(layout.New())
	cmd := sendKey(m, "q")
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestModel_ToggleAllWithFieldsHiddenAtStart(t *testing.T) {
	m := newTestModel(layout.New(layout.WithTaskOptions(layout.TaskLayoutOptions{HidePriority: true, HideTags: true})))

	sendKey(m, "a")
	if !m.Layout().IsShown(layout.Priority) {
		t.Error("Expected priority shown after toggle all")
	}
	want := len(layout.ToggleableComponents()) - 1
	if got := len(m.Layout().Hidden()); got != want {
		t.Errorf("Expected %d hidden components, got %d", want, got)
	}

	// Cursor starts on priority
	sendKey(m, "space")
	if m.Layout().IsShown(layout.Priority) {
		t.Error("Expected priority hidden after one toggle")
	}
	sendKey(m, "space")
	if !m.Layout().IsShown(layout.Priority) {
		t.Error("Expected priority shown after second toggle")
	}
}

func TestModel_TagsHiddenAtStartToggleOnce(t *testing.T) {
	m := newTestModel(layout.New(layout.WithTaskOptions(layout.TaskLayoutOptions{HideTags: true})))
	m.cursor = len(m.items) - 1

	sendKey(m, "space")
	if !m.Layout().AreTagsShown() {
		t.Error("Expected tags shown after one toggle")
	}
}
