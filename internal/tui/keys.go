package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/unitime/unitime/internal/config"
)

// keyMap holds the board's key bindings, built from the user's config
type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	AddTask    key.Binding
	EditTask   key.Binding
	DeleteTask key.Binding

	CreateColumn key.Binding
	RenameColumn key.Binding
	DeleteColumn key.Binding

	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding

	Preview key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Left:  key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "left")),
		Right: key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "right")),
		Up:    key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "up")),
		Down:  key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "down")),

		AddTask:    key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add task")),
		EditTask:   key.NewBinding(key.WithKeys(km.EditTask), key.WithHelp(km.EditTask, "edit task")),
		DeleteTask: key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete task")),

		CreateColumn: key.NewBinding(key.WithKeys(km.CreateColumn), key.WithHelp(km.CreateColumn, "new column")),
		RenameColumn: key.NewBinding(key.WithKeys(km.RenameColumn), key.WithHelp(km.RenameColumn, "rename column")),
		DeleteColumn: key.NewBinding(key.WithKeys(km.DeleteColumn), key.WithHelp(km.DeleteColumn, "delete column")),

		Grab:   key.NewBinding(key.WithKeys(km.Grab), key.WithHelp(km.Grab, "grab")),
		Drop:   key.NewBinding(key.WithKeys(km.Drop), key.WithHelp(km.Drop, "drop")),
		Cancel: key.NewBinding(key.WithKeys(km.Cancel), key.WithHelp(km.Cancel, "cancel")),

		Preview: key.NewBinding(key.WithKeys(km.Preview), key.WithHelp(km.Preview, "preview")),
		Help:    key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "help")),
		Quit:    key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.Grab, k.Preview, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.AddTask, k.EditTask, k.DeleteTask, k.Preview},
		{k.CreateColumn, k.RenameColumn, k.DeleteColumn},
		{k.Grab, k.Drop, k.Cancel, k.Help, k.Quit},
	}
}

// dragKeys is the help shown while something is being dragged
type dragKeys keyMap

func (k dragKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Down, k.Drop, k.Cancel}
}

func (k dragKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
