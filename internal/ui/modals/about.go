package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// AppName is the program name shown in the header and About dialog.
const AppName = "chatter"

// AboutState shows the program name and version.
type AboutState struct {
	Version string
}

func (*AboutState) modalState() {}

func (s *AboutState) Title() string { return "About" }

func (s *AboutState) Help() string { return "Enter/Esc: close" }

// Text returns the about line, e.g. "chatter v1.2.0".
func (s *AboutState) Text() string {
	return AppName + " v" + strings.TrimPrefix(s.Version, "v")
}

func (s *AboutState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	body := lipgloss.NewStyle().Foreground(ColorText).Bold(true).Render(s.Text())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (s *AboutState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewAboutState creates the About dialog.
func NewAboutState(version string) *AboutState {
	return &AboutState{Version: version}
}
