package ui

import (
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/chatter/internal/keys"
	"github.com/zhubert/chatter/internal/logger"
	"github.com/zhubert/chatter/internal/session"
	"github.com/zhubert/chatter/internal/ui/modals"
)

// ChatFocus says which part of the chat panel receives keys.
type ChatFocus int

const (
	FocusComposer ChatFocus = iota
	FocusSend
	FocusAliases
	FocusQuit
)

var actionLabels = map[ChatFocus]string{
	FocusSend:    "Send",
	FocusAliases: "Aliases",
	FocusQuit:    "Quit",
}

// Chat is the log pane plus the composer and its action column.
type Chat struct {
	viewport    viewport.Model
	input       textarea.Model
	width       int
	height      int
	inputHeight int
	focused     bool
	focus       ChatFocus
	messages    []session.Message
	pinned      bool
}

// NewChat creates a chat panel with inputHeight composer rows and
// wheelDelta rows per wheel notch.
func NewChat(inputHeight, wheelDelta int) *Chat {
	if inputHeight < 1 {
		inputHeight = DefaultInputHeight
	}
	if wheelDelta < 1 {
		wheelDelta = DefaultWheelDelta
	}

	ti := textarea.New()
	ti.Placeholder = "Type a message..."
	ti.CharLimit = 0
	ti.SetHeight(inputHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	modals.ApplyTextareaStyles(&ti)

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = wheelDelta

	c := &Chat{
		viewport:    vp,
		input:       ti,
		inputHeight: inputHeight,
		pinned:      true,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	logHeight := height - (c.inputHeight + BorderSize)
	viewportHeight := max(ctx.InnerHeight(logHeight), 1)

	c.viewport.SetWidth(ctx.InnerWidth(width))
	c.viewport.SetHeight(viewportHeight)

	// Composer shares its row with the action column
	composerWidth := width - ActionColumnWidth
	c.input.SetWidth(max(ctx.InnerWidth(composerWidth)-InputPaddingWidth, 1))

	// Re-wrap at the new width
	c.updateContent()

	logger.WithComponent("ui").Debug("Chat.SetSize",
		"outer", width, "height", height,
		"viewportW", c.viewport.Width(), "viewportH", c.viewport.Height(),
	)
}

// SetFocused sets whether the chat panel has keyboard focus
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	c.applyFocus()
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetFocus moves focus between the composer and the action column.
func (c *Chat) SetFocus(f ChatFocus) {
	c.focus = f
	c.applyFocus()
}

// Focus returns which part of the panel has focus.
func (c *Chat) Focus() ChatFocus {
	return c.focus
}

// CycleFocus moves focus to the next (or previous) of composer, Send,
// Aliases, Quit.
func (c *Chat) CycleFocus(forward bool) {
	n := int(FocusQuit) + 1
	step := 1
	if !forward {
		step = n - 1
	}
	c.SetFocus(ChatFocus((int(c.focus) + step) % n))
}

func (c *Chat) applyFocus() {
	if c.focused && c.focus == FocusComposer {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// SetMessages replaces the rendered log. The view follows the newest
// message only when pinned; otherwise the offset is kept.
func (c *Chat) SetMessages(messages []session.Message, pinned bool) {
	c.messages = messages
	c.pinned = pinned
	c.updateContent()
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	c.viewport.SetContent(RenderMessages(c.messages, wrapWidth))
	if c.pinned {
		c.viewport.GotoBottom()
	}
}

// AtBottom reports whether the newest content is visible at the bottom of
// the log pane.
func (c *Chat) AtBottom() bool {
	return c.viewport.AtBottom()
}

// Input returns the composer so callers can submit and clear it.
func (c *Chat) Input() *textarea.Model {
	return &c.input
}

// GetInput returns the composer contents
func (c *Chat) GetInput() string {
	return c.input.Value()
}

// SetInput replaces the composer contents
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// IsScrollKey reports whether key scrolls the log pane.
func IsScrollKey(key string) bool {
	switch key {
	case keys.PgUp, keys.PgDown, keys.CtrlUp, keys.CtrlDown, keys.Home, keys.End:
		return true
	}
	return false
}

// Scroll applies a scroll key to the log pane.
func (c *Chat) Scroll(key string) {
	switch key {
	case keys.PgUp:
		c.viewport.PageUp()
	case keys.PgDown:
		c.viewport.PageDown()
	case keys.CtrlUp:
		c.viewport.ScrollUp(1)
	case keys.CtrlDown:
		c.viewport.ScrollDown(1)
	case keys.Home:
		c.viewport.GotoTop()
	case keys.End:
		c.viewport.GotoBottom()
	}
}

// Update handles messages. Key presses go to the composer when it has
// focus; mouse wheel events scroll the log pane.
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if IsScrollKey(msg.String()) {
			c.Scroll(msg.String())
			return c, nil
		}
		if c.focused && c.focus == FocusComposer {
			var cmd tea.Cmd
			c.input, cmd = c.input.Update(msg)
			return c, cmd
		}
		return c, nil

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		c.viewport, cmd = c.viewport.Update(msg)
		return c, cmd
	}

	// Everything else (cursor blink and so on) belongs to the composer
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// View renders the chat panel
func (c *Chat) View() string {
	logStyle := PanelStyle
	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}

	logHeight := c.height - (c.inputHeight + BorderSize)
	logPanel := logStyle.Width(c.width).Height(logHeight).Render(c.viewport.View())

	composerWidth := c.width - ActionColumnWidth
	composer := inputStyle.Width(composerWidth).Render(c.input.View())

	actions := lipgloss.Place(
		ActionColumnWidth, c.inputHeight+BorderSize,
		lipgloss.Center, lipgloss.Center,
		c.renderActions(),
	)

	bottom := lipgloss.JoinHorizontal(lipgloss.Top, composer, actions)
	return lipgloss.JoinVertical(lipgloss.Left, logPanel, bottom)
}

func (c *Chat) renderActions() string {
	var rows []string
	for _, f := range []ChatFocus{FocusSend, FocusAliases, FocusQuit} {
		style := ActionButtonStyle
		if c.focused && c.focus == f {
			style = ActionButtonFocusedStyle
		}
		rows = append(rows, style.Render(actionLabels[f]))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
