package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/chatter/internal/keys"
)

func TestMenuBar_FocusAndNavigate(t *testing.T) {
	m := NewMenuBar()
	if m.IsFocused() {
		t.Fatal("menu bar should start unfocused")
	}

	m.Focus()
	if got := m.Selected().Action; got != MenuGeneral {
		t.Errorf("Selected() = %v, want MenuGeneral", got)
	}

	m.HandleKey(keys.Down)
	if got := m.Selected().Action; got != MenuAbout {
		t.Errorf("after down, Selected() = %v, want MenuAbout", got)
	}

	// Stays on the last entry
	m.HandleKey(keys.Down)
	if got := m.Selected().Action; got != MenuAbout {
		t.Errorf("after second down, Selected() = %v, want MenuAbout", got)
	}

	m.HandleKey(keys.Up)
	if got := m.Selected().Action; got != MenuGeneral {
		t.Errorf("after up, Selected() = %v, want MenuGeneral", got)
	}
}

func TestMenuBar_Activate(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  MenuAction
	}{
		{"general", nil, MenuGeneral},
		{"about", []string{keys.Right}, MenuAbout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuBar()
			m.Focus()
			for _, k := range tt.moves {
				m.HandleKey(k)
			}
			if got := m.HandleKey(keys.Enter); got != tt.want {
				t.Errorf("HandleKey(enter) = %v, want %v", got, tt.want)
			}
			if m.IsFocused() {
				t.Error("activating an entry should blur the menu bar")
			}
		})
	}
}

func TestMenuBar_EscapeBlurs(t *testing.T) {
	m := NewMenuBar()
	m.Focus()
	if got := m.HandleKey(keys.Escape); got != MenuNone {
		t.Errorf("HandleKey(esc) = %v, want MenuNone", got)
	}
	if m.IsFocused() {
		t.Error("esc should blur the menu bar")
	}
}

func TestMenuBar_View(t *testing.T) {
	m := NewMenuBar()
	m.SetWidth(80)

	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Help") {
		t.Errorf("View() = %q, missing Help", view)
	}
	if strings.Contains(view, "About") {
		t.Error("unfocused menu bar should not list entries")
	}

	m.Focus()
	view = ansi.Strip(m.View())
	for _, want := range []string{"Help", "[General]", "About"} {
		if !strings.Contains(view, want) {
			t.Errorf("focused View() = %q, missing %q", view, want)
		}
	}
}
