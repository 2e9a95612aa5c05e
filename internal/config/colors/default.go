package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF5F5F",

		ColumnBorder:   "#5F87D7",
		TaskBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		DragBorder:     "#FFD700",
		DropTarget:     "#5FD75F",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:  "#00AFFF",
		ErrorFg: "#FF5F5F",
	}
}
