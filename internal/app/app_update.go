package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	perrors "github.com/zhubert/chatter/internal/errors"
	"github.com/zhubert/chatter/internal/keys"
	"github.com/zhubert/chatter/internal/session"
	"github.com/zhubert/chatter/internal/ui"
	"github.com/zhubert/chatter/internal/ui/modals"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			m.footer.SetDraft(m.chat.GetInput())
			return result, cmd
		}
		// Not a shortcut: the composer gets it below

	case tea.MouseWheelMsg:
		if m.modal.IsVisible() {
			return m, nil
		}
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		m.syncScroll()
		return m, cmd

	case ui.FlashTickMsg:
		m.footer.ClearIfExpired()
		return m, nil

	case HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)
	}

	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		cmds = append(cmds, cmd)
	}

	chat, cmd := m.chat.Update(msg)
	m.chat = chat
	cmds = append(cmds, cmd)
	m.footer.SetDraft(m.chat.GetInput())

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles all keyboard input.
// Returns (model, cmd) if the key was handled, or (nil, nil) if it should
// fall through to the composer.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.log.Debug("key press", "key", key, "modal", m.modal.IsVisible(), "menu", m.menubar.IsFocused())

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if m.menubar.IsFocused() {
		return m.handleMenuKey(key)
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}

	if ui.IsScrollKey(key) {
		m.chat.Scroll(key)
		m.syncScroll()
		return m, nil
	}

	// Enter and space press the focused action button
	if (key == keys.Enter || key == keys.Space) && m.chat.Focus() != ui.FocusComposer {
		return m.activateAction(m.chat.Focus())
	}

	if m.chat.Focus() != ui.FocusComposer {
		// Buttons swallow everything else
		return m, nil
	}
	return nil, nil
}

// handleMenuKey drives the focused menu bar.
func (m *Model) handleMenuKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "?":
		m.leaveMenu()
		return shortcutHelp(m)
	case keys.CtrlC, keys.CtrlQ:
		m.leaveMenu()
		return shortcutQuit(m)
	}

	action := m.menubar.HandleKey(key)
	if !m.menubar.IsFocused() {
		m.leaveMenu()
	}

	switch action {
	case ui.MenuGeneral:
		return shortcutHelp(m)
	case ui.MenuAbout:
		return shortcutAbout(m)
	}
	return m, nil
}

// leaveMenu returns keyboard focus to the chat panel.
func (m *Model) leaveMenu() {
	m.menubar.Blur()
	m.chat.SetFocused(true)
	m.footer.SetMenuFocused(false)
}

// activateAction runs the action button that has focus.
func (m *Model) activateAction(f ui.ChatFocus) (tea.Model, tea.Cmd) {
	switch f {
	case ui.FocusSend:
		m.sendComposed()
		m.chat.SetFocus(ui.FocusComposer)
	case ui.FocusAliases:
		m.openRoster()
	case ui.FocusQuit:
		return m, m.requestQuit()
	}
	return m, nil
}

// sendComposed submits the composer. The composer is cleared whether or not
// a message was appended.
func (m *Model) sendComposed() {
	msg, ok := session.SubmitInput(m.session, m.chat.Input())
	if ok {
		m.log.Debug("message sent", "sequence", msg.Sequence, "author", msg.Author)
	}
	m.syncFromSession()
}

// openRoster pushes the alias roster overlay.
func (m *Model) openRoster() {
	snap := m.session.Snapshot()
	m.modal.Show(modals.NewRosterState(snap.Aliases, snap.Active))
}

// showNotice pushes an info dialog for a recoverable failure.
func (m *Model) showNotice(err error) {
	m.log.Info("operation rejected", "error", err, "kind", perrors.GetKind(err))
	m.modal.Show(modals.NewNoticeState("", perrors.UserMessage(err)))
}

// requestQuit quits at once or asks first, depending on config.
func (m *Model) requestQuit() tea.Cmd {
	if !m.config.GetConfirmQuit() {
		return m.quit()
	}
	if _, ok := m.modal.Top().(*modals.ConfirmQuitState); ok {
		return nil
	}
	m.modal.Show(modals.NewConfirmQuitState())
	return nil
}

// quit marks the model as quitting, closes every overlay and ends the
// program.
func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.modal.HideAll()
	m.log.Info("quitting")
	return tea.Quit
}

// copyLastMessage puts the newest message body on the clipboard.
func (m *Model) copyLastMessage() tea.Cmd {
	last, ok := m.session.LastMessage()
	if !ok {
		return m.ShowFlashInfo("Nothing to copy yet")
	}
	if err := m.clipboard.WriteText(last.Body); err != nil {
		m.log.Warn("copy failed", "error", err)
		return m.ShowFlashError(perrors.UserMessage(err))
	}
	return m.ShowFlashSuccess(fmt.Sprintf("Copied message %d", last.Sequence))
}
