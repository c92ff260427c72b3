package preview

// Key represents a key binding.
type Key struct {
	Keys []string
	Help string
}

// Matches reports whether s is one of the bound keys.
func (k Key) Matches(s string) bool {
	for _, key := range k.Keys {
		if key == s {
			return true
		}
	}
	return false
}

// Keymap contains all key bindings of the preview.
type Keymap struct {
	Up        Key
	Down      Key
	Toggle    Key
	ToggleAll Key
	ShortMode Key
	Copy      Key
	Quit      Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:        Key{Keys: []string{"k", "up"}, Help: "up"},
		Down:      Key{Keys: []string{"j", "down"}, Help: "down"},
		Toggle:    Key{Keys: []string{" ", "enter"}, Help: "toggle field"},
		ToggleAll: Key{Keys: []string{"a"}, Help: "toggle all"},
		ShortMode: Key{Keys: []string{"s"}, Help: "short mode"},
		Copy:      Key{Keys: []string{"y"}, Help: "copy classes"},
		Quit:      Key{Keys: []string{"q", "ctrl+c"}, Help: "quit"},
	}
}

// HelpLine renders the bindings as a one-line hint.
func (k Keymap) HelpLine() string {
	bindings := []Key{k.Down, k.Up, k.Toggle, k.ToggleAll, k.ShortMode, k.Copy, k.Quit}
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += " • "
		}
		name := b.Keys[0]
		if name == " " {
			name = "space"
		}
		line += name + " " + b.Help
	}
	return line
}
