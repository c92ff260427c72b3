// Package render flattens tasks to text lines following a layout.
package render

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasks-layout/internal/layout"
	"github.com/hy4ri/tasks-layout/internal/task"
	"github.com/mattn/go-runewidth"
)

// Signifiers written in front of each field.
const (
	RecurrenceSymbol    = "🔁"
	CreatedDateSymbol   = "➕"
	StartDateSymbol     = "🛫"
	ScheduledDateSymbol = "⏳"
	DueDateSymbol       = "📅"
	CancelledDateSymbol = "❌"
	DoneDateSymbol      = "✅"
)

// Renderer renders tasks with a fixed layout.
type Renderer struct {
	layout *layout.Layout
	hidden map[string]bool

	// Plain disables styling, for pipes and tests.
	Plain bool
	// Width truncates the description when positive.
	Width int
	// Now decides which due dates are overdue.
	Now time.Time
}

// New creates a Renderer for l.
func New(l *layout.Layout) *Renderer {
	hidden := make(map[string]bool)
	for _, class := range l.HiddenClasses() {
		hidden[class] = true
	}
	return &Renderer{
		layout: l,
		hidden: hidden,
		Now:    time.Now(),
	}
}

// Layout returns the layout the renderer was built with.
func (r *Renderer) Layout() *layout.Layout {
	return r.layout
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if r.Plain || text == "" {
		return text
	}
	return s.Render(text)
}

func (r *Renderer) shortMode() bool {
	return r.hidden[layout.ShortModeClass]
}

// Line renders one task as a markdown-style list item. Only shown
// components are written, in layout order.
func (r *Renderer) Line(t task.Task) string {
	parts := []string{r.style(Checkbox, "- "+t.Status.Checkbox())}
	for _, c := range r.layout.Shown() {
		if s := r.component(c, t); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// List renders tasks one per line.
func (r *Renderer) List(tasks []task.Task) string {
	var b strings.Builder
	for i, t := range tasks {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.Line(t))
	}
	return b.String()
}

func (r *Renderer) component(c layout.Component, t task.Task) string {
	switch c {
	case layout.Description:
		return r.description(t)
	case layout.Priority:
		return r.style(priorityStyle(t.Priority), t.Priority.Symbol())
	case layout.RecurrenceRule:
		if !t.IsRecurring() {
			return ""
		}
		if r.shortMode() {
			return r.style(Recurrence, RecurrenceSymbol)
		}
		return r.style(Recurrence, RecurrenceSymbol+" "+t.RecurrenceRule)
	case layout.CreatedDate:
		return r.date(CreatedDateSymbol, t.CreatedDate, Date)
	case layout.StartDate:
		return r.date(StartDateSymbol, t.StartDate, Date)
	case layout.ScheduledDate:
		return r.date(ScheduledDateSymbol, t.ScheduledDate, Date)
	case layout.DueDate:
		style := Date
		if t.IsOverdue(r.Now) {
			style = DateOverdue
		}
		return r.date(DueDateSymbol, t.DueDate, style)
	case layout.CancelledDate:
		return r.date(CancelledDateSymbol, t.CancelledDate, Date)
	case layout.DoneDate:
		return r.date(DoneDateSymbol, t.DoneDate, Date)
	case layout.BlockLink:
		if t.BlockLink == "" {
			return ""
		}
		return r.style(BlockLink, "^"+t.BlockLink)
	}
	return ""
}

func (r *Renderer) description(t task.Task) string {
	text := t.Description
	if r.Width > 0 {
		text = Truncate(text, r.Width)
	}
	style := Description
	if t.Status == task.StatusDone || t.Status == task.StatusCancelled {
		style = DescriptionDone
	}
	out := r.style(style, text)

	// A terminal has no stylesheet, so hidden tags are dropped here.
	if r.hidden[layout.HiddenClass("tags")] {
		return out
	}
	for _, tag := range t.Tags {
		out += " " + r.style(Tag, "#"+strings.TrimPrefix(tag, "#"))
	}
	return out
}

func (r *Renderer) date(symbol string, d time.Time, style lipgloss.Style) string {
	if d.IsZero() {
		return ""
	}
	if r.shortMode() {
		return r.style(style, symbol)
	}
	return r.style(style, symbol+" "+d.Format(task.DateFormat))
}

// ListClasses returns the classes attached to a rendered task list.
func ListClasses(l *layout.Layout) []string {
	return append([]string{"contains-task-list", "plugin-tasks-query-result"}, l.HiddenClasses()...)
}

// Truncate cuts s to width terminal cells, appending "…" if cut.
// It handles wide characters correctly using runewidth.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}

	if runewidth.StringWidth(s) <= width {
		return s
	}

	w := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width-1 { // -1 for ellipsis
			return s[:i] + "…"
		}
		w += rw
	}

	return s
}
