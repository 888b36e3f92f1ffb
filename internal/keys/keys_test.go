package keys

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// TestKeyStringValues verifies that all key constants produce the expected
// string representations. This acts as a safety net if Bubble Tea ever changes
// its key string format.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		// Navigation
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Left", Left, "left"},
		{"Right", Right, "right"},
		{"Home", Home, "home"},
		{"End", End, "end"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},

		// Actions
		{"Enter", Enter, "enter"},
		{"ShiftEnter", ShiftEnter, "shift+enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Space", Space, "space"},
		{"Backspace", Backspace, "backspace"},
		{"Delete", Delete, "delete"},
		{"Escape", Escape, "esc"},

		// Ctrl combos
		{"CtrlA", CtrlA, "ctrl+a"},
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlQ", CtrlQ, "ctrl+q"},
		{"CtrlS", CtrlS, "ctrl+s"},
		{"CtrlY", CtrlY, "ctrl+y"},
		{"CtrlUp", CtrlUp, "ctrl+up"},
		{"CtrlDown", CtrlDown, "ctrl+down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("keys.%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestChatKeyMap_Matches(t *testing.T) {
	km := DefaultChatKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
		want    bool
	}{
		{"shift+enter sends", tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}, km.Send, true},
		{"ctrl+s sends", tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}, km.SendAlt, true},
		{"enter is not send", tea.KeyPressMsg{Code: tea.KeyEnter}, km.Send, false},
		{"ctrl+a opens aliases", tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}, km.Aliases, true},
		{"ctrl+c quits", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, km.Quit, true},
		{"ctrl+up scrolls", tea.KeyPressMsg{Code: tea.KeyUp, Mod: tea.ModCtrl}, km.ScrollUp, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := key.Matches(tt.msg, tt.binding); got != tt.want {
				t.Errorf("key.Matches(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestRosterKeyMap_HelpCoversBindings(t *testing.T) {
	km := DefaultRosterKeyMap()
	if got := len(km.ShortHelp()); got != 6 {
		t.Errorf("ShortHelp() = %d bindings, want 6", got)
	}
	for _, b := range km.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v missing help text", b.Keys())
		}
	}
}
