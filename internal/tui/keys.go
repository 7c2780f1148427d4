package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	Top          key.Binding
	Select       key.Binding
	Pick         key.Binding
	About        key.Binding
	Inspirations key.Binding
	Menu         key.Binding
	Close        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "end"),
		),
		Top: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "back to top"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Pick: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-4", "pick theme"),
		),
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "about"),
		),
		Inspirations: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inspirations"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.About, k.Inspirations, k.Down, k.Top, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Top},
		{k.About, k.Inspirations, k.Menu, k.Close},
		{k.Help, k.Quit},
	}
}

// loadingHelp lists the bindings active on the loading screen.
func (k keyMap) loadingHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Select, k.Quit}
}

// overlayHelp lists the bindings active while a full-screen overlay is up.
func (k keyMap) overlayHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.PageDown, k.Close, k.Quit}
}

// menuHelp lists the bindings active while the mobile menu is open.
func (k keyMap) menuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Close}
}
