package modals

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// AddAliasState - State for the Add Alias dialog
// =============================================================================

type AddAliasState struct {
	Input textinput.Model
}

func (*AddAliasState) modalState() {}

func (s *AddAliasState) Title() string { return "Add Alias" }

func (s *AddAliasState) Help() string {
	return "Enter: OK  Esc: Cancel"
}

func (s *AddAliasState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	label := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("Alias name:")
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, label, s.Input.View(), help)
}

func (s *AddAliasState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}

// GetName returns the typed name exactly as entered.
func (s *AddAliasState) GetName() string {
	return s.Input.Value()
}

// NewAddAliasState creates a focused, empty Add Alias dialog.
func NewAddAliasState() *AddAliasState {
	ti := textinput.New()
	ti.Placeholder = "e.g. bob"
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.Focus()

	return &AddAliasState{Input: ti}
}
