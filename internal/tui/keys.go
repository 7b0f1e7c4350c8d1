package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the annotate session keybindings. The annotation keys
// (f, d, a, ctrl+s, delete, esc, arrows) follow the established poseek
// shortcut layout.
type KeyMap struct {
	AddPoint     key.Binding
	NextImage    key.Binding
	PrevImage    key.Binding
	Save         key.Binding
	Delete       key.Binding
	ClearSelect  key.Binding
	CursorUp     key.Binding
	CursorDown   key.Binding
	CursorLeft   key.Binding
	CursorRight  key.Binding
	NextPart     key.Binding
	PrevPart     key.Binding
	ToggleSelect key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddPoint: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "add point at cursor"),
		),
		NextImage: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "next image"),
		),
		PrevImage: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "previous image"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "backspace"),
			key.WithHelp("del", "remove selected points"),
		),
		ClearSelect: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear selection"),
		),
		CursorUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "cursor up"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "cursor down"),
		),
		CursorLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "cursor left"),
		),
		CursorRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "cursor right"),
		),
		NextPart: key.NewBinding(
			key.WithKeys("tab", "j"),
			key.WithHelp("tab/j", "next body part"),
		),
		PrevPart: key.NewBinding(
			key.WithKeys("shift+tab", "k"),
			key.WithHelp("shift+tab/k", "previous body part"),
		),
		ToggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select body part"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
