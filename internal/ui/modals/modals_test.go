package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatter/internal/session"
)

func TestRosterState_InitialSelectionFollowsActive(t *testing.T) {
	s := NewRosterState([]session.Alias{"guest", "bob", "eve"}, "bob")

	if got := s.Selection(); got != session.Selected(1) {
		t.Errorf("Selection() = %+v, want index 1", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestRosterState_ActiveNotInRoster(t *testing.T) {
	s := NewRosterState([]session.Alias{"guest", "bob"}, "zed")
	if got := s.Selection(); got != session.Selected(0) {
		t.Errorf("Selection() = %+v, want index 0", got)
	}
}

func TestRosterState_Empty(t *testing.T) {
	s := NewRosterState(nil, "guest")

	if got := s.Selection(); got != session.NoSelection {
		t.Errorf("Selection() = %+v, want NoSelection", got)
	}
	if !strings.Contains(s.Render(), "No aliases") {
		t.Error("empty roster should render a placeholder")
	}
}

func TestRosterState_Navigation(t *testing.T) {
	s := NewRosterState([]session.Alias{"guest", "bob", "eve"}, "guest")

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := s.Selection().Index; got != 1 {
		t.Errorf("after down, index = %d, want 1", got)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if got := s.Selection().Index; got != 1 {
		t.Errorf("after down+up, index = %d, want 1", got)
	}
}

func TestRosterState_SetEntriesClampsCursor(t *testing.T) {
	s := NewRosterState([]session.Alias{"guest", "bob", "eve"}, "eve")
	if s.Selection().Index != 2 {
		t.Fatalf("index = %d, want 2", s.Selection().Index)
	}

	s.SetEntries([]session.Alias{"guest", "bob"}, "eve")
	if got := s.Selection(); got != session.Selected(1) {
		t.Errorf("after shrink, Selection() = %+v, want index 1", got)
	}

	s.SetEntries(nil, "eve")
	if got := s.Selection(); got != session.NoSelection {
		t.Errorf("after clearing, Selection() = %+v, want NoSelection", got)
	}
}

func TestRosterState_RenderShowsEntries(t *testing.T) {
	s := NewRosterState([]session.Alias{"guest", "bob"}, "bob")
	view := s.Render()

	for _, want := range []string{"Aliases", "guest", "bob"} {
		if !strings.Contains(view, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestAddAliasState(t *testing.T) {
	s := NewAddAliasState()

	if s.GetName() != "" {
		t.Errorf("GetName() = %q, want empty", s.GetName())
	}
	if !s.Input.Focused() {
		t.Error("input should be focused")
	}

	s.Input.SetValue("bob")
	if s.GetName() != "bob" {
		t.Errorf("GetName() = %q, want bob", s.GetName())
	}
	if !strings.Contains(s.Render(), "Add Alias") {
		t.Error("Render() should contain the title")
	}
}

func TestNoticeState(t *testing.T) {
	tests := []struct {
		title     string
		message   string
		wantTitle string
	}{
		{"", "No alias to remove.", "Notice"},
		{"Copied", "Copied message 3", "Copied"},
	}

	for _, tt := range tests {
		t.Run(tt.wantTitle, func(t *testing.T) {
			s := NewNoticeState(tt.title, tt.message)
			if s.Title() != tt.wantTitle {
				t.Errorf("Title() = %q, want %q", s.Title(), tt.wantTitle)
			}
			if !strings.Contains(s.Render(), tt.message) {
				t.Errorf("Render() missing %q", tt.message)
			}
		})
	}
}

func TestConfirmQuitState_DefaultsToNo(t *testing.T) {
	s := NewConfirmQuitState()

	if s.Confirmed() {
		t.Error("quit confirmation should default to No")
	}
	if !strings.Contains(s.Render(), QuitPrompt) {
		t.Errorf("Render() missing %q", QuitPrompt)
	}

	// Enter is left to the app layer
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if s.Confirmed() {
		t.Error("enter should not change the choice")
	}
}

func TestAboutState_Text(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"1.2.0", "chatter v1.2.0"},
		{"v1.2.0", "chatter v1.2.0"},
		{"dev", "chatter vdev"},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			s := NewAboutState(tt.version)
			if got := s.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHelpState_SkipsLeadingSection(t *testing.T) {
	s := NewHelpStateFromSections([]HelpSection{
		{Title: "Composer", Shortcuts: []HelpShortcut{{Key: "ctrl+s", Desc: "Send"}}},
	})

	got := s.GetSelectedShortcut()
	if got == nil || got.Key != "ctrl+s" {
		t.Errorf("GetSelectedShortcut() = %+v, want ctrl+s", got)
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"bob", 10, "bob"},
		{"abcdefghij", 5, "abcd…"},
		{"日本語テキスト", 6, "日本…"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := TruncateName(tt.in, tt.width); got != tt.want {
				t.Errorf("TruncateName(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
