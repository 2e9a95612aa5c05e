package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask    string `yaml:"add_task"`
	EditTask   string `yaml:"edit_task"`
	DeleteTask string `yaml:"delete_task"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	RenameColumn string `yaml:"rename_column"`
	DeleteColumn string `yaml:"delete_column"`

	// Navigation; while dragging these move the dragged item instead
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Dragging
	Grab   string `yaml:"grab"`
	Drop   string `yaml:"drop"`
	Cancel string `yaml:"cancel"`

	// Other
	Preview  string `yaml:"preview"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddTask:    "a",
		EditTask:   "e",
		DeleteTask: "d",

		CreateColumn: "C",
		RenameColumn: "R",
		DeleteColumn: "X",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		Grab:   "space",
		Drop:   "enter",
		Cancel: "esc",

		Preview:  "p",
		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) fields() []*string {
	return []*string{
		&k.AddTask, &k.EditTask, &k.DeleteTask,
		&k.CreateColumn, &k.RenameColumn, &k.DeleteColumn,
		&k.PrevColumn, &k.NextColumn, &k.PrevTask, &k.NextTask,
		&k.Grab, &k.Drop, &k.Cancel,
		&k.Preview, &k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	src := defaults.fields()
	for i, f := range k.fields() {
		if *f == "" {
			*f = *src[i]
		}
	}
}
