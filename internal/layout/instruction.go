package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned for a layout instruction naming a field
// that cannot be shown or hidden.
var ErrUnknownField = errors.New("unknown layout field")

type fieldSetter func(t *TaskLayoutOptions, q *QueryLayoutOptions, hide bool)

// fields is keyed by normalized field name, see normalizeField.
var fields = map[string]fieldSetter{
	"priority":       func(t *TaskLayoutOptions, _ *QueryLayoutOptions, h bool) { t.HidePriority = h },
	"createddate":    func(t *TaskLayoutOptions, _ *QueryLayoutOptions, h bool) { t.HideCreatedDate = h },
	"startdate":      func(t *TaskLayoutOptions, _ *QueryLayoutOptions, h bool) { t.HideStartDate = h },
	"scheduleddate":  func(t *TaskLayoutOptions, _ *QueryLayoutOptions, h bool) { t.HideScheduledDate = h },
	"duedate":        func(t *TaskLayoutOptions, _ *QueryLayoutOptions, h bool) { t.HideDueDate = h },
	"donedate":       func(t *TaskLayoutOptions, _ *QueryLayoutOptions, h bool) { t.HideDoneDate = h },
	"cancelleddate":  func(t *TaskLayoutOptions, _ *QueryLayoutOptions, h bool) { t.HideCancelledDate = h },
	"recurrencerule": func(t *TaskLayoutOptions, _ *QueryLayoutOptions, h bool) { t.HideRecurrenceRule = h },
	"tags":           func(t *TaskLayoutOptions, _ *QueryLayoutOptions, h bool) { t.HideTags = h },
	"urgency":        func(_ *TaskLayoutOptions, q *QueryLayoutOptions, h bool) { q.HideUrgency = h },
	"backlink":       func(_ *TaskLayoutOptions, q *QueryLayoutOptions, h bool) { q.HideBacklinks = h },
	"backlinks":      func(_ *TaskLayoutOptions, q *QueryLayoutOptions, h bool) { q.HideBacklinks = h },
	"editbutton":     func(_ *TaskLayoutOptions, q *QueryLayoutOptions, h bool) { q.HideEditButton = h },
	"postponebutton": func(_ *TaskLayoutOptions, q *QueryLayoutOptions, h bool) { q.HidePostponeButton = h },
}

// normalizeField folds "due date", "dueDate" and "due-date" to "duedate".
func normalizeField(name string) string {
	name = strings.ToLower(name)
	return strings.NewReplacer(" ", "", "-", "", "_", "", "\t", "").Replace(name)
}

// SetField hides or shows the named field.
func SetField(name string, hide bool, t *TaskLayoutOptions, q *QueryLayoutOptions) error {
	set, ok := fields[normalizeField(name)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	set(t, q, hide)
	return nil
}

// ApplyInstruction applies one layout instruction to the options.
// Recognized forms are "hide <field>", "show <field>", "short mode"
// and "full mode" (case-insensitive; "short" and "full" alone also work).
func ApplyInstruction(line string, t *TaskLayoutOptions, q *QueryLayoutOptions) error {
	words := strings.Fields(strings.ToLower(line))
	if len(words) == 0 {
		return fmt.Errorf("empty layout instruction")
	}

	switch strings.Join(words, " ") {
	case "short", "short mode":
		q.ShortMode = true
		return nil
	case "full", "full mode":
		q.ShortMode = false
		return nil
	}

	if len(words) < 2 {
		return fmt.Errorf("invalid layout instruction %q", line)
	}
	field := strings.Join(words[1:], " ")
	switch words[0] {
	case "hide":
		return SetField(field, true, t, q)
	case "show":
		return SetField(field, false, t, q)
	}
	return fmt.Errorf("invalid layout instruction %q", line)
}

// FromInstructions builds a layout from a list of instructions applied in
// order, so a later "show" undoes an earlier "hide".
func FromInstructions(lines []string) (*Layout, error) {
	var t TaskLayoutOptions
	var q QueryLayoutOptions
	for _, line := range lines {
		if err := ApplyInstruction(line, &t, &q); err != nil {
			return nil, err
		}
	}
	return New(WithTaskOptions(t), WithQueryOptions(q)), nil
}
