package layout

// Class names understood by the task list stylesheet.
const (
	HiddenClassPrefix = "tasks-layout-hide-"
	ShortModeClass    = "tasks-layout-short-mode"
)

// HiddenClass returns the class that hides the named component or feature.
func HiddenClass(name string) string {
	return HiddenClassPrefix + name
}

var (
	_ Visibility = TaskLayoutOptions{}
	_ Visibility = (*Toggles)(nil)
	_ Visibility = (*Layout)(nil)
)

// Option configures a Layout.
type Option func(*settings)

type settings struct {
	task    TaskLayoutOptions
	query   QueryLayoutOptions
	toggles *Toggles
}

// WithTaskOptions sets the per-field hide flags.
func WithTaskOptions(o TaskLayoutOptions) Option {
	return func(s *settings) { s.task = o }
}

// WithQueryOptions sets the query-level flags.
func WithQueryOptions(o QueryLayoutOptions) Option {
	return func(s *settings) { s.query = o }
}

// WithToggles sets a visibility table. The table is copied.
func WithToggles(t *Toggles) Option {
	return func(s *settings) { s.toggles = t.Clone() }
}

// Layout is the rendering layout of tasks in one configuration.
// It is computed once by New and never changes afterwards.
type Layout struct {
	task    TaskLayoutOptions
	query   QueryLayoutOptions
	toggles *Toggles

	shown   []Component
	hidden  []Component
	classes []string
}

// New derives a layout from the given options.
// With no options every component is shown and no class is emitted.
func New(opts ...Option) *Layout {
	s := settings{toggles: NewToggles()}
	for _, opt := range opts {
		opt(&s)
	}

	l := &Layout{task: s.task, query: s.query, toggles: s.toggles}
	l.apply()
	return l
}

// DefaultLayout returns the layout with everything visible and every
// query-level flag off.
func DefaultLayout() *Layout {
	return New()
}

// IsShown implements Visibility. A component is shown only if no option
// source hides it.
func (l *Layout) IsShown(c Component) bool {
	return l.task.IsShown(c) && l.toggles.IsShown(c)
}

// AreTagsShown implements Visibility.
func (l *Layout) AreTagsShown() bool {
	return l.task.AreTagsShown() && l.toggles.AreTagsShown()
}

// ShortMode reports whether tasks are rendered in short mode.
func (l *Layout) ShortMode() bool {
	return l.query.ShortMode
}

// TaskOptions returns the per-field options the layout was built from.
func (l *Layout) TaskOptions() TaskLayoutOptions {
	return l.task
}

// QueryOptions returns the query-level options the layout was built from.
func (l *Layout) QueryOptions() QueryLayoutOptions {
	return l.query
}

// Shown returns the visible components in rendering order.
func (l *Layout) Shown() []Component {
	return append([]Component(nil), l.shown...)
}

// Hidden returns the hidden components in rendering order.
func (l *Layout) Hidden() []Component {
	return append([]Component(nil), l.hidden...)
}

// HiddenClasses returns the classes a renderer attaches to the task list
// to suppress hidden fields and features.
func (l *Layout) HiddenClasses() []string {
	return append([]string(nil), l.classes...)
}

func (l *Layout) apply() {
	l.shown = make([]Component, 0, len(defaultOrder))
	l.hidden = make([]Component, 0, len(defaultOrder))
	for _, c := range defaultOrder {
		if l.IsShown(c) {
			l.shown = append(l.shown, c)
			continue
		}
		l.hidden = append(l.hidden, c)
		l.classes = append(l.classes, HiddenClass(c.String()))
	}

	// Tags stay in the description and are hidden by the stylesheet only.
	if !l.AreTagsShown() {
		l.classes = append(l.classes, HiddenClass("tags"))
	}

	for _, f := range l.query.hiddenFeatures() {
		if f.hide {
			l.classes = append(l.classes, HiddenClass(f.name))
		}
	}
	if l.query.ShortMode {
		l.classes = append(l.classes, ShortModeClass)
	}
}
