package layout

// Visibility answers whether a component is shown.
// Both option sources implement it, so the layout never needs to know
// which representation decided.
type Visibility interface {
	IsShown(c Component) bool
	AreTagsShown() bool
}

// TaskLayoutOptions holds one hide flag per hideable task field.
// The zero value shows everything.
type TaskLayoutOptions struct {
	HidePriority       bool `yaml:"hide_priority"`
	HideCreatedDate    bool `yaml:"hide_created_date"`
	HideStartDate      bool `yaml:"hide_start_date"`
	HideScheduledDate  bool `yaml:"hide_scheduled_date"`
	HideDoneDate       bool `yaml:"hide_done_date"`
	HideCancelledDate  bool `yaml:"hide_cancelled_date"`
	HideDueDate        bool `yaml:"hide_due_date"`
	HideRecurrenceRule bool `yaml:"hide_recurrence_rule"`
	HideTags           bool `yaml:"hide_tags"`
}

// IsShown implements Visibility.
func (o TaskLayoutOptions) IsShown(c Component) bool {
	switch c {
	case Priority:
		return !o.HidePriority
	case RecurrenceRule:
		return !o.HideRecurrenceRule
	case CreatedDate:
		return !o.HideCreatedDate
	case StartDate:
		return !o.HideStartDate
	case ScheduledDate:
		return !o.HideScheduledDate
	case DueDate:
		return !o.HideDueDate
	case CancelledDate:
		return !o.HideCancelledDate
	case DoneDate:
		return !o.HideDoneDate
	}
	return true
}

// AreTagsShown implements Visibility.
func (o TaskLayoutOptions) AreTagsShown() bool {
	return !o.HideTags
}

// QueryLayoutOptions holds presentation flags that live outside the
// component list. The zero value turns them all off.
type QueryLayoutOptions struct {
	HideUrgency        bool `yaml:"hide_urgency"`
	HideBacklinks      bool `yaml:"hide_backlinks"`
	HideEditButton     bool `yaml:"hide_edit_button"`
	HidePostponeButton bool `yaml:"hide_postpone_button"`
	ShortMode          bool `yaml:"short_mode"`
}

// hiddenFeatures lists the query-level flags in the order their classes
// are emitted.
func (q QueryLayoutOptions) hiddenFeatures() []struct {
	hide bool
	name string
} {
	return []struct {
		hide bool
		name string
	}{
		{q.HideUrgency, "urgency"},
		{q.HideBacklinks, "backlinks"},
		{q.HideEditButton, "edit-button"},
		{q.HidePostponeButton, "postpone-button"},
	}
}
