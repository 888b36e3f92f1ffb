package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// QuitPrompt is the question the quit confirmation asks.
const QuitPrompt = "Do you really want to quit?"

// ConfirmQuitState asks before the application exits. No is the default.
type ConfirmQuitState struct {
	confirmed bool
	form      *huh.Form
}

func (*ConfirmQuitState) modalState() {}

func (s *ConfirmQuitState) Title() string { return "Quit" }

func (s *ConfirmQuitState) Help() string {
	return "y: yes  n/Esc: no  left/right: toggle  Enter: choose"
}

func (s *ConfirmQuitState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ConfirmQuitState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Confirmed reports whether Yes is currently chosen.
func (s *ConfirmQuitState) Confirmed() bool {
	return s.confirmed
}

// NewConfirmQuitState creates the quit confirmation with No selected.
func NewConfirmQuitState() *ConfirmQuitState {
	s := &ConfirmQuitState{}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(QuitPrompt).
				Affirmative("Yes").
				Negative("No").
				Value(&s.confirmed),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
