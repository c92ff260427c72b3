package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/tasks-layout/internal/task"
)

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for tags and headings
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#AD8CFF"}

	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
)

// Priority colors, highest to lowest.
var (
	PriorityHighestColor = lipgloss.Color("#D0473D")
	PriorityHighColor    = lipgloss.Color("#EA8811")
	PriorityMediumColor  = lipgloss.Color("#296FDF")
)

// Component styles
var (
	Checkbox = lipgloss.NewStyle().
			Foreground(Subtle)

	Description = lipgloss.NewStyle()

	// DescriptionDone strikes through finished tasks
	DescriptionDone = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)

	Tag = lipgloss.NewStyle().
		Foreground(Highlight)

	Date = lipgloss.NewStyle().
		Foreground(Subtle)

	DateOverdue = lipgloss.NewStyle().
			Foreground(ErrorColor)

	Recurrence = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#00AAAA", Dark: "#00CCCC"})

	BlockLink = lipgloss.NewStyle().
			Faint(true)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	Classes = lipgloss.NewStyle().
		Foreground(Subtle).
		Italic(true)
)

// priorityStyle returns the style for a task priority.
func priorityStyle(p task.Priority) lipgloss.Style {
	switch p {
	case task.PriorityHighest:
		return lipgloss.NewStyle().Foreground(PriorityHighestColor)
	case task.PriorityHigh:
		return lipgloss.NewStyle().Foreground(PriorityHighColor)
	case task.PriorityMedium:
		return lipgloss.NewStyle().Foreground(PriorityMediumColor)
	default:
		return lipgloss.NewStyle()
	}
}
