package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// NoticeState is an informational dialog with a single Ok action.
type NoticeState struct {
	title   string
	Message string
}

func (*NoticeState) modalState() {}

func (s *NoticeState) Title() string { return s.title }

func (s *NoticeState) Help() string { return "Enter: Ok" }

func (s *NoticeState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	body := lipgloss.NewStyle().Foreground(ColorText).Render(s.Message)
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (s *NoticeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewNoticeState creates a notice. An empty title becomes "Notice".
func NewNoticeState(title, message string) *NoticeState {
	if title == "" {
		title = "Notice"
	}
	return &NoticeState{title: title, Message: message}
}
