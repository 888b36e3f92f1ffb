package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatter/internal/keys"
	"github.com/zhubert/chatter/internal/session"
	"github.com/zhubert/chatter/internal/ui/modals"
)

// handleModalKey routes overlay key events to the handler for the top
// overlay. Each dismiss or back pops exactly that overlay.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		if _, ok := m.modal.Top().(*modals.ConfirmQuitState); ok {
			return m, m.quit()
		}
		return m, m.requestQuit()
	}

	switch s := m.modal.Top().(type) {
	case *modals.RosterState:
		return m.handleRosterModal(msg, s)
	case *modals.AddAliasState:
		return m.handleAddAliasModal(key, msg, s)
	case *modals.NoticeState:
		return m.handleDismissModal(key)
	case *modals.AboutState:
		return m.handleDismissModal(key)
	case *modals.ConfirmQuitState:
		return m.handleConfirmQuitModal(key, msg, s)
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleRosterModal handles key events for the alias roster.
func (m *Model) handleRosterModal(msg tea.KeyPressMsg, s *modals.RosterState) (tea.Model, tea.Cmd) {
	km := s.Keys()

	switch {
	case key.Matches(msg, km.Back):
		m.modal.Hide()
		return m, nil

	case key.Matches(msg, km.Add):
		m.modal.Show(modals.NewAddAliasState())
		return m, nil

	case key.Matches(msg, km.Remove):
		out := m.session.Dispatch(session.RemoveAliasEvent{Selection: s.Selection()})
		if out.Err != nil {
			m.showNotice(out.Err)
			return m, nil
		}
		s.SetEntries(out.Snapshot.Aliases, out.Snapshot.Active)
		m.syncFromSession()
		m.log.Debug("alias removed", "roster", len(out.Snapshot.Aliases))
		return m, nil

	case key.Matches(msg, km.Select):
		out := m.session.Dispatch(session.SelectAliasEvent{Selection: s.Selection()})
		if out.Err != nil {
			m.showNotice(out.Err)
			return m, nil
		}
		s.SetEntries(out.Snapshot.Aliases, out.Snapshot.Active)
		m.syncFromSession()
		m.log.Debug("alias selected", "active", out.Snapshot.Active)
		return m, nil
	}

	// Navigation goes to the list
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleAddAliasModal handles key events for the add-alias dialog.
func (m *Model) handleAddAliasModal(key string, msg tea.KeyPressMsg, s *modals.AddAliasState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil

	case keys.Enter:
		out := m.session.Dispatch(session.AddAliasEvent{Name: s.GetName()})
		if out.Err != nil {
			// The dialog stays open beneath the notice
			m.showNotice(out.Err)
			return m, nil
		}
		m.modal.Hide()
		if roster, ok := m.modal.Top().(*modals.RosterState); ok {
			roster.SetEntries(out.Snapshot.Aliases, out.Snapshot.Active)
		}
		m.log.Debug("alias added", "name", s.GetName())
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleDismissModal closes single-button dialogs (notices and About).
func (m *Model) handleDismissModal(key string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter, keys.Escape, keys.Space:
		m.modal.Hide()
	}
	return m, nil
}

// handleConfirmQuitModal handles key events for the quit confirmation.
func (m *Model) handleConfirmQuitModal(key string, msg tea.KeyPressMsg, s *modals.ConfirmQuitState) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		return m, m.quit()
	case "n", "N", keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		if s.Confirmed() {
			return m, m.quit()
		}
		m.modal.Hide()
		return m, nil
	}

	// Left/right toggle the huh confirm
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the help overlay.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, s *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if s.IsFiltering() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := s.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			k := shortcut.Key
			return m, func() tea.Msg {
				return HelpShortcutTriggeredMsg{Key: k}
			}
		}
		return m, nil
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}
