package layout

// Toggles is a visibility table keyed by component.
// The zero value shows everything.
type Toggles struct {
	hidden     map[Component]bool
	tagsHidden bool
}

// NewToggles returns a table with every component visible.
func NewToggles() *Toggles {
	return &Toggles{hidden: make(map[Component]bool)}
}

// IsShown implements Visibility.
func (t *Toggles) IsShown(c Component) bool {
	if t == nil {
		return true
	}
	return !t.hidden[c]
}

// AreTagsShown implements Visibility.
func (t *Toggles) AreTagsShown() bool {
	return t == nil || !t.tagsHidden
}

// Hide marks c as hidden. Components that cannot be toggled are ignored.
func (t *Toggles) Hide(c Component) {
	t.SetVisibility(c, false)
}

// SetVisibility shows or hides c. Components that cannot be toggled are
// ignored.
func (t *Toggles) SetVisibility(c Component, visible bool) {
	if !c.Toggleable() || !c.Valid() {
		return
	}
	if t.hidden == nil {
		t.hidden = make(map[Component]bool)
	}
	if visible {
		delete(t.hidden, c)
		return
	}
	t.hidden[c] = true
}

// SetTagsVisibility shows or hides tags.
func (t *Toggles) SetTagsVisibility(visible bool) {
	t.tagsHidden = !visible
}

// ToggleAll flips the visibility of every toggleable component.
func (t *Toggles) ToggleAll() {
	for _, c := range ToggleableComponents() {
		t.SetVisibility(c, !t.IsShown(c))
	}
}

// Clone returns an independent copy.
func (t *Toggles) Clone() *Toggles {
	if t == nil {
		return NewToggles()
	}
	c := &Toggles{hidden: make(map[Component]bool, len(t.hidden)), tagsHidden: t.tagsHidden}
	for k, v := range t.hidden {
		c.hidden[k] = v
	}
	return c
}
