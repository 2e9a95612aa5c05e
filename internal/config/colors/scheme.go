package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name: "default", "monochrome", "wave" or "lotus"
	Preset string `yaml:"preset"`

	// Primary accent color (selection, titles, help keys)
	Accent string `yaml:"accent"`

	// Semantic colors for prompts
	Create string `yaml:"create"`
	Edit   string `yaml:"edit"`
	Delete string `yaml:"delete"`

	// Board elements
	ColumnBorder   string `yaml:"column_border"`
	TaskBorder     string `yaml:"task_border"`
	SelectedBorder string `yaml:"selected_border"`
	DragBorder     string `yaml:"drag_border"` // the item being dragged
	DropTarget     string `yaml:"drop_target"` // column under the dragged item

	// Text
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Status line
	InfoFg  string `yaml:"info_fg"`
	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name, falling back to Default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// Presets lists the names GetPreset knows
func Presets() []string {
	return []string{"default", "monochrome", "wave", "lotus"}
}

// fields lists every color slot in a fixed order
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent,
		&c.Create, &c.Edit, &c.Delete,
		&c.ColumnBorder, &c.TaskBorder, &c.SelectedBorder, &c.DragBorder, &c.DropTarget,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.ErrorFg,
	}
}

// ApplyDefaults fills empty colors from the named preset; colors that were
// set explicitly win over the preset.
func (c *ColorScheme) ApplyDefaults() {
	base := GetPreset(c.Preset).fields()
	for i, f := range c.fields() {
		if *f == "" {
			*f = *base[i]
		}
	}
}

// MergeFrom copies every non-empty value of other into c
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	src := other.fields()
	for i, f := range c.fields() {
		if *src[i] != "" {
			*f = *src[i]
		}
	}
}
