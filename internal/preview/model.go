// Package preview provides an interactive terminal preview of a layout.
package preview

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/tasks-layout/internal/layout"
	"github.com/hy4ri/tasks-layout/internal/render"
	"github.com/hy4ri/tasks-layout/internal/task"
)

// tagsItem is the pseudo-field for tags, which are not a layout component.
const tagsItem = "tags"

type statusMsg struct {
	msg string
}

// Model is the Bubble Tea model of the preview.
type Model struct {
	tasks   []task.Task
	query   layout.QueryLayoutOptions
	toggles *layout.Toggles
	layout  *layout.Layout

	items  []string
	cursor int
	keys   Keymap

	viewport      viewport.Model
	viewportReady bool
	width, height int
	status        string
	plain         bool

	// copyFn writes to the system clipboard.
	copyFn func(string) error
}

// New creates a preview starting from l.
func New(tasks []task.Task, l *layout.Layout) *Model {
	items := make([]string, 0, len(layout.ToggleableComponents())+1)
	for _, c := range layout.ToggleableComponents() {
		items = append(items, c.String())
	}
	items = append(items, tagsItem)

	// Fold every starting visibility into one toggle table, so the keys
	// act on a single representation.
	toggles := layout.NewToggles()
	for _, c := range layout.ToggleableComponents() {
		toggles.SetVisibility(c, l.IsShown(c))
	}
	toggles.SetTagsVisibility(l.AreTagsShown())

	m := &Model{
		tasks:   tasks,
		query:   l.QueryOptions(),
		toggles: toggles,
		items:   items,
		keys:    DefaultKeymap(),
		copyFn:  clipboard.WriteAll,
	}
	m.rebuild()
	return m
}

// Layout returns the layout currently previewed.
func (m *Model) Layout() *layout.Layout {
	return m.layout
}

// rebuild derives a fresh layout from the current options.
func (m *Model) rebuild() {
	m.layout = layout.New(
		layout.WithQueryOptions(m.query),
		layout.WithToggles(m.toggles),
	)
	if m.viewportReady {
		m.viewport.SetContent(m.renderTasks())
	}
}

func (m *Model) renderTasks() string {
	r := render.New(m.layout)
	r.Plain = m.plain
	if m.width > 0 {
		r.Width = m.width / 2
	}
	return r.List(m.tasks)
}

// SetPlain disables styling of the rendered tasks.
func (m *Model) SetPlain(plain bool) {
	m.plain = plain
	m.rebuild()
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil
	case statusMsg:
		m.status = msg.msg
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	if m.viewportReady {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height

	// Header, field list, classes line and help.
	listHeight := len(m.items) + 5
	vpHeight := height - listHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.viewportReady {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.MouseWheelEnabled = true
		m.viewportReady = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.viewport.SetContent(m.renderTasks())
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case m.keys.Quit.Matches(key):
		return m, tea.Quit
	case m.keys.Down.Matches(key):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case m.keys.Up.Matches(key):
		if m.cursor > 0 {
			m.cursor--
		}
	case m.keys.Toggle.Matches(key):
		m.toggleItem(m.items[m.cursor])
		m.rebuild()
	case m.keys.ToggleAll.Matches(key):
		m.toggles.ToggleAll()
		m.rebuild()
	case m.keys.ShortMode.Matches(key):
		m.query.ShortMode = !m.query.ShortMode
		m.rebuild()
	case m.keys.Copy.Matches(key):
		return m, m.copyClasses()
	}
	return m, nil
}

// toggleItem flips one field.
func (m *Model) toggleItem(item string) {
	if item == tagsItem {
		m.toggles.SetTagsVisibility(!m.toggles.AreTagsShown())
		return
	}
	c := layout.Component(item)
	m.toggles.SetVisibility(c, !m.toggles.IsShown(c))
}

func (m *Model) copyClasses() tea.Cmd {
	hidden := m.layout.HiddenClasses()
	classes := strings.Join(hidden, " ")
	copyFn := m.copyFn
	return func() tea.Msg {
		if classes == "" {
			return statusMsg{msg: "No hidden classes to copy"}
		}
		if err := copyFn(classes); err != nil {
			return statusMsg{msg: "Failed to copy: " + err.Error()}
		}
		return statusMsg{msg: fmt.Sprintf("Copied %d classes", len(hidden))}
	}
}

func (m *Model) isItemShown(item string) bool {
	if item == tagsItem {
		return m.layout.AreTagsShown()
	}
	return m.layout.IsShown(layout.Component(item))
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(render.Title.Render("Task layout"))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		check := "[x]"
		if !m.isItemShown(item) {
			check = "[ ]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, item))
	}

	mode := "full mode"
	if m.layout.ShortMode() {
		mode = "short mode"
	}
	classes := strings.Join(m.layout.HiddenClasses(), " ")
	if classes == "" {
		classes = "(no hidden classes)"
	}
	b.WriteString(render.Classes.Render(mode + " · " + classes))
	b.WriteString("\n\n")

	if m.viewportReady {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.renderTasks())
	}
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(render.Classes.Render(m.keys.HelpLine()))

	return b.String()
}
