// Package layout decides which fields of a task are shown when it is
// rendered, and derives the hidden-class tokens a renderer uses to
// suppress markup for the hidden ones.
package layout

// Component names a renderable field of a task.
type Component string

const (
	Description    Component = "description"
	Priority       Component = "priority"
	RecurrenceRule Component = "recurrenceRule"
	CreatedDate    Component = "createdDate"
	StartDate      Component = "startDate"
	ScheduledDate  Component = "scheduledDate"
	DueDate        Component = "dueDate"
	CancelledDate  Component = "cancelledDate"
	DoneDate       Component = "doneDate"
	BlockLink      Component = "blockLink"
)

// defaultOrder is the rendering order of a task line.
// Shown and hidden lists are always stable subsequences of it.
var defaultOrder = [...]Component{
	Description,
	Priority,
	RecurrenceRule,
	CreatedDate,
	StartDate,
	ScheduledDate,
	DueDate,
	CancelledDate,
	DoneDate,
	BlockLink,
}

// DefaultOrder returns every component in rendering order.
func DefaultOrder() []Component {
	out := make([]Component, len(defaultOrder))
	copy(out, defaultOrder[:])
	return out
}

// Toggleable reports whether c can be hidden.
// The description and block link are always rendered.
func (c Component) Toggleable() bool {
	return c != Description && c != BlockLink
}

// ToggleableComponents returns the hideable components in rendering order.
func ToggleableComponents() []Component {
	out := make([]Component, 0, len(defaultOrder))
	for _, c := range defaultOrder {
		if c.Toggleable() {
			out = append(out, c)
		}
	}
	return out
}

// Valid reports whether c is one of the known components.
func (c Component) Valid() bool {
	for _, d := range defaultOrder {
		if d == c {
			return true
		}
	}
	return false
}

func (c Component) String() string {
	return string(c)
}
