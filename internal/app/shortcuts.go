package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/chatter/internal/keys"
	"github.com/zhubert/chatter/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for global shortcuts.
type Shortcut struct {
	Key         string                              // The key binding (e.g., "ctrl+a")
	DisplayKey  string                              // Display name in help; defaults to Key
	Description string                              // Human-readable description
	Category    string                              // Section for help grouping
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition   func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help overlay
const (
	CategoryMessages = "Messages"
	CategoryAliases  = "Aliases"
	CategoryLog      = "Log"
	CategoryGeneral  = "General"
)

// categoryOrder defines the display order of categories in the help overlay
var categoryOrder = []string{
	CategoryMessages,
	CategoryAliases,
	CategoryLog,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of global keyboard shortcuts.
// Entries here appear in the help overlay and can be triggered from it.
var ShortcutRegistry = []Shortcut{
	// Messages
	{
		Key:         keys.ShiftEnter,
		Description: "Send message",
		Category:    CategoryMessages,
		Handler:     shortcutSend,
	},
	{
		Key:         keys.CtrlS,
		Description: "Send message",
		Category:    CategoryMessages,
		Handler:     shortcutSend,
	},
	{
		Key:         keys.CtrlY,
		Description: "Copy newest message",
		Category:    CategoryMessages,
		Handler:     shortcutCopyLast,
	},

	// Aliases
	{
		Key:         keys.CtrlA,
		Description: "Manage aliases",
		Category:    CategoryAliases,
		Handler:     shortcutAliases,
	},

	// General
	{
		Key:         keys.Escape,
		Description: "Focus the menu bar",
		Category:    CategoryGeneral,
		Handler:     shortcutMenu,
	},
	{
		Key:         keys.Tab,
		Description: "Next control",
		Category:    CategoryGeneral,
		Handler:     shortcutNextControl,
	},
	{
		Key:         keys.ShiftTab,
		Description: "Previous control",
		Category:    CategoryGeneral,
		Handler:     shortcutPrevControl,
	},
	{
		Key:         keys.CtrlQ,
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
	{
		Key:         keys.CtrlC,
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// DisplayOnlyShortcuts are shown in help but handled elsewhere.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "enter", Description: "New line / press focused button", Category: CategoryMessages},
	{DisplayKey: "pgup/pgdown", Description: "Scroll a page", Category: CategoryLog},
	{DisplayKey: "ctrl+up/down", Description: "Scroll a line", Category: CategoryLog},
	{DisplayKey: "home/end", Description: "Oldest / newest message", Category: CategoryLog},
	{DisplayKey: "wheel", Description: "Scroll the log", Category: CategoryLog},
	{DisplayKey: "?", Description: "Show this help (menu focused)", Category: CategoryGeneral},
}

// ExecuteShortcut finds and executes a shortcut by key.
// Returns (model, cmd, true) if the shortcut was found and executed.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	for _, s := range ShortcutRegistry {
		if s.Key != key {
			continue
		}
		if s.Condition != nil && !s.Condition(m) {
			m.log.Debug("shortcut guard failed", "key", key)
			return m, nil, false
		}
		m.log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// helpSections groups the registry and display-only entries by category.
func (m *Model) helpSections() []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)
	seen := make(map[string]bool)

	add := func(s Shortcut) {
		if s.Condition != nil && !s.Condition(m) {
			return
		}
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		if seen[displayKey+s.Category] {
			return
		}
		seen[displayKey+s.Category] = true
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}
	for _, s := range ShortcutRegistry {
		add(s)
	}
	for _, s := range DisplayOnlyShortcuts {
		add(s)
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if len(categories[cat]) == 0 {
			continue
		}
		sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: categories[cat]})
	}
	return sections
}

func shortcutSend(m *Model) (tea.Model, tea.Cmd) {
	m.sendComposed()
	return m, nil
}

func shortcutCopyLast(m *Model) (tea.Model, tea.Cmd) {
	return m, m.copyLastMessage()
}

func shortcutAliases(m *Model) (tea.Model, tea.Cmd) {
	m.openRoster()
	return m, nil
}

func shortcutMenu(m *Model) (tea.Model, tea.Cmd) {
	m.menubar.Focus()
	m.chat.SetFocused(false)
	m.footer.SetMenuFocused(true)
	return m, nil
}

func shortcutNextControl(m *Model) (tea.Model, tea.Cmd) {
	m.chat.CycleFocus(true)
	return m, nil
}

func shortcutPrevControl(m *Model) (tea.Model, tea.Cmd) {
	m.chat.CycleFocus(false)
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewHelpStateFromSections(m.helpSections()))
	return m, nil
}

func shortcutAbout(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewAboutState(m.version))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m, m.requestQuit()
}

// handleHelpShortcutTrigger runs a shortcut picked in the help overlay.
// Display-only entries have no handler and are ignored.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}
	m.log.Debug("help entry has no handler", "key", key)
	return m, nil
}
