// Package app is chatter's Bubble Tea model. It owns the one Session,
// translates terminal input into session events, and keeps the ui
// components in step with the session's snapshot.
package app

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatter/internal/clipboard"
	"github.com/zhubert/chatter/internal/config"
	"github.com/zhubert/chatter/internal/keys"
	"github.com/zhubert/chatter/internal/logger"
	"github.com/zhubert/chatter/internal/session"
	"github.com/zhubert/chatter/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)

	session *session.Session

	header  *ui.Header
	menubar *ui.MenuBar
	chat    *ui.Chat
	footer  *ui.Footer
	modal   *ui.Modal

	chatKeys  keys.ChatKeyMap
	clipboard clipboard.Writer
	log       *slog.Logger

	width    int
	height   int
	quitting bool
}

// Option customizes a Model.
type Option func(*Model)

// WithClipboard replaces the system clipboard.
func WithClipboard(w clipboard.Writer) Option {
	return func(m *Model) {
		m.clipboard = w
	}
}

// WithSession replaces the session built from the config.
func WithSession(s *session.Session) Option {
	return func(m *Model) {
		m.session = s
	}
}

// HelpShortcutTriggeredMsg is sent when Enter is pressed on a help entry.
type HelpShortcutTriggeredMsg struct {
	Key string
}

// New creates a new app model
func New(cfg *config.Config, version string, opts ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if theme := cfg.GetTheme(); theme != "" {
		ui.SetThemeByName(theme)
	}
	ui.GetViewContext().SetInputHeight(cfg.GetInputHeight())

	m := &Model{
		config:    cfg,
		version:   version,
		header:    ui.NewHeader(),
		menubar:   ui.NewMenuBar(),
		chat:      ui.NewChat(cfg.GetInputHeight(), cfg.GetWheelDelta()),
		footer:    ui.NewFooter(),
		modal:     ui.NewModal(),
		chatKeys:  keys.DefaultChatKeyMap(),
		clipboard: clipboard.System{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.session == nil {
		m.session = session.New(
			session.WithDefaultAlias(cfg.GetDefaultAlias()),
			session.WithAliases(cfg.GetAliases()...),
		)
	}
	m.log = logger.WithSession(m.session.ID())

	m.chat.SetFocused(true)
	m.footer.SetBindings(ui.BindingsFromKeys(m.chatKeys.ShortHelp()))
	m.syncFromSession()

	m.log.Info("app started", "version", version, "active", m.session.Active())
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Session returns the session the model drives.
func (m *Model) Session() *session.Session {
	return m.session
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Chat returns the chat panel.
func (m *Model) Chat() *ui.Chat {
	return m.chat
}

// Modal returns the overlay stack.
func (m *Model) Modal() *ui.Modal {
	return m.modal
}

// MenuBar returns the menu bar.
func (m *Model) MenuBar() *ui.MenuBar {
	return m.menubar
}

// Footer returns the footer.
func (m *Model) Footer() *ui.Footer {
	return m.footer
}

// syncFromSession pushes the session's snapshot into every view.
func (m *Model) syncFromSession() {
	snap := m.session.Snapshot()
	m.chat.SetMessages(snap.Messages, snap.Pinned)
	m.header.SetActiveAlias(snap.Active)
	m.header.SetActiveListed(snap.ActiveListed)
	m.header.SetPinned(snap.Pinned)
	m.footer.SetDraft(m.chat.GetInput())
}

// syncScroll reports the log pane's position to the session after any
// scroll input.
func (m *Model) syncScroll() {
	out := m.session.Dispatch(session.ScrollEvent{AtBottom: m.chat.AtBottom()})
	m.header.SetPinned(out.Snapshot.Pinned)
}
