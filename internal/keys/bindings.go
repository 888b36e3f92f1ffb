package keys

import "charm.land/bubbles/v2/key"

// ChatKeyMap lists the bindings active while the composer has focus.
type ChatKeyMap struct {
	Send       key.Binding
	SendAlt    key.Binding
	Newline    key.Binding
	Aliases    key.Binding
	Menu       key.Binding
	Copy       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultChatKeyMap returns the composer bindings.
func DefaultChatKeyMap() ChatKeyMap {
	return ChatKeyMap{
		Send:       key.NewBinding(key.WithKeys(ShiftEnter), key.WithHelp("shift+enter", "send")),
		SendAlt:    key.NewBinding(key.WithKeys(CtrlS), key.WithHelp("ctrl+s", "send")),
		Newline:    key.NewBinding(key.WithKeys(Enter), key.WithHelp("enter", "newline")),
		Aliases:    key.NewBinding(key.WithKeys(CtrlA), key.WithHelp("ctrl+a", "aliases")),
		Menu:       key.NewBinding(key.WithKeys(Escape), key.WithHelp("esc", "menu")),
		Copy:       key.NewBinding(key.WithKeys(CtrlY), key.WithHelp("ctrl+y", "copy last")),
		ScrollUp:   key.NewBinding(key.WithKeys(PgUp, CtrlUp), key.WithHelp("pgup", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys(PgDown, CtrlDown), key.WithHelp("pgdown", "scroll down")),
		Top:        key.NewBinding(key.WithKeys(Home), key.WithHelp("home", "oldest")),
		Bottom:     key.NewBinding(key.WithKeys(End), key.WithHelp("end", "newest")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys(CtrlQ, CtrlC), key.WithHelp("ctrl+q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k ChatKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SendAlt, k.Aliases, k.Menu, k.ScrollUp, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ChatKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.SendAlt, k.Newline},
		{k.ScrollUp, k.ScrollDown, k.Top, k.Bottom},
		{k.Aliases, k.Copy, k.Menu, k.Help, k.Quit},
	}
}

// RosterKeyMap lists the bindings of the alias roster overlay.
type RosterKeyMap struct {
	Select key.Binding
	Add    key.Binding
	Remove key.Binding
	Back   key.Binding
	Up     key.Binding
	Down   key.Binding
}

// DefaultRosterKeyMap returns the roster overlay bindings.
func DefaultRosterKeyMap() RosterKeyMap {
	return RosterKeyMap{
		Select: key.NewBinding(key.WithKeys(Enter, "s"), key.WithHelp("enter/s", "select")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Remove: key.NewBinding(key.WithKeys("d", "x", Delete), key.WithHelp("d", "remove")),
		Back:   key.NewBinding(key.WithKeys(Escape, "b"), key.WithHelp("esc/b", "back")),
		Up:     key.NewBinding(key.WithKeys(Up, "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys(Down, "j"), key.WithHelp("↓/j", "down")),
	}
}

// ShortHelp implements help.KeyMap.
func (k RosterKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Add, k.Remove, k.Back}
}

// FullHelp implements help.KeyMap.
func (k RosterKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
