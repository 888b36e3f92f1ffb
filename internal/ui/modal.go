package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/chatter/internal/ui/modals"
)

// ModalState is re-exported so callers only need the ui package for the
// stack itself.
type ModalState = modals.ModalState

// Modal is the overlay stack. Only the top overlay is drawn and receives
// input; dismissing it reveals the one beneath.
type Modal struct {
	stack []ModalState
	error string
}

// NewModal creates an empty overlay stack
func NewModal() *Modal {
	return &Modal{}
}

// Show pushes state on top of the stack
func (m *Modal) Show(state ModalState) {
	m.stack = append(m.stack, state)
	m.error = ""
}

// Hide pops the top overlay and returns it, or nil when the stack is empty
func (m *Modal) Hide() ModalState {
	if len(m.stack) == 0 {
		return nil
	}
	top := m.stack[len(m.stack)-1]
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]
	m.error = ""
	return top
}

// HideAll empties the stack
func (m *Modal) HideAll() {
	clear(m.stack)
	m.stack = m.stack[:0]
	m.error = ""
}

// Top returns the visible overlay, or nil
func (m *Modal) Top() ModalState {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of stacked overlays
func (m *Modal) Depth() int {
	return len(m.stack)
}

// IsVisible returns whether any overlay is showing
func (m *Modal) IsVisible() bool {
	return len(m.stack) > 0
}

// SetError sets an error message shown under the top overlay
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the top overlay
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	top := m.Top()
	if top == nil {
		return m, nil
	}
	next, cmd := top.Update(msg)
	m.stack[len(m.stack)-1] = next
	return m, cmd
}

// View renders the top overlay centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	top := m.Top()
	if top == nil {
		return ""
	}

	width := ModalWidth
	if pw, ok := top.(modals.ModalWithPreferredWidth); ok {
		width = pw.PreferredWidth()
	}
	// Keep the overlay inside the screen
	width = min(width, max(screenWidth-4, 20))

	if sized, ok := top.(modals.ModalWithSize); ok {
		// Border (2) + padding (4) on ModalStyle
		sized.SetSize(width-6, max(screenHeight-8, 3))
	}

	content := top.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		ModalStyle.Width(width).Render(content),
	)
}
