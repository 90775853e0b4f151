package config

// KeyMappings defines the keyboard bindings for board interaction.
// A drag gesture is keyboard-driven: Grab starts it, the movement
// keys hover/reorder, Drop releases, Cancel releases over nothing.
type KeyMappings struct {
	Up         string `yaml:"up"`
	Down       string `yaml:"down"`
	Left       string `yaml:"left"`
	Right      string `yaml:"right"`
	Grab       string `yaml:"grab"`
	GrabColumn string `yaml:"grab_column"`
	Drop       string `yaml:"drop"`
	Cancel     string `yaml:"cancel"`
	Archive    string `yaml:"archive"`
	Edit       string `yaml:"edit"`
	Undo       string `yaml:"undo"`
	Open       string `yaml:"open"`
	Capture    string `yaml:"capture"`
	Search     string `yaml:"search"`
	Quit       string `yaml:"quit"`
}

func (k *KeyMappings) applyDefaults() {
	defaults := map[*string]string{
		&k.Up:         "k",
		&k.Down:       "j",
		&k.Left:       "h",
		&k.Right:      "l",
		&k.Grab:       "space",
		&k.GrabColumn: "c",
		&k.Drop:       "enter",
		&k.Cancel:     "esc",
		&k.Archive:    "x",
		&k.Edit:       "e",
		&k.Undo:       "u",
		&k.Open:       "o",
		&k.Capture:    "a",
		&k.Search:     "/",
		&k.Quit:       "q",
	}
	for field, value := range defaults {
		if *field == "" {
			*field = value
		}
		// Key events name the space bar "space", so a literal " " in
		// a config file would never match.
		if *field == " " {
			*field = "space"
		}
	}
}
