package colors

// Kanagawa palette, https://github.com/rebelot/kanagawa.nvim
const (
	sumiInk4    = "#54546D"
	sumiInk6    = "#727169"
	oniViolet   = "#957FB8"
	springGreen = "#98BB6C"
	crystalBlue = "#7E9CD8"
	peachRed    = "#FF5D62"
	waveAqua2   = "#7AA89F"
	roninYellow = "#FF9E3B"
	fujiGray    = "#727169"
	fujiWhite   = "#DCD7BA"
	samuraiRed  = "#E82424"
	dragonBlue  = "#658594"

	lotusInk1    = "#545464"
	lotusGray3   = "#8A8980"
	lotusViolet1 = "#A09CAC"
	lotusViolet4 = "#624C83"
	lotusWhite4  = "#E7DBA0"
	lotusGreen   = "#6F894E"
	lotusBlue4   = "#4D699B"
	lotusRed     = "#C84053"
	lotusRed3    = "#E82424"
	lotusAqua    = "#597B75"
	lotusTeal3   = "#5A7785"
	lotusOrange2 = "#E98A00"
)

// Wave returns the Kanagawa Wave color scheme (dark, blue and purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: oniViolet,

		Create: springGreen,
		Edit:   crystalBlue,
		Delete: peachRed,

		ColumnBorder:   sumiInk6,
		TaskBorder:     sumiInk4,
		SelectedBorder: waveAqua2,
		DragBorder:     roninYellow,
		DropTarget:     springGreen,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		InfoFg:  dragonBlue,
		ErrorFg: samuraiRed,
	}
}

// Lotus returns the Kanagawa Lotus color scheme (light, paper background)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: lotusViolet4,

		Create: lotusGreen,
		Edit:   lotusBlue4,
		Delete: lotusRed,

		ColumnBorder:   lotusViolet1,
		TaskBorder:     lotusWhite4,
		SelectedBorder: lotusAqua,
		DragBorder:     lotusOrange2,
		DropTarget:     lotusGreen,

		Title:  lotusBlue4,
		Subtle: lotusGray3,
		Normal: lotusInk1,

		InfoFg:  lotusTeal3,
		ErrorFg: lotusRed3,
	}
}
