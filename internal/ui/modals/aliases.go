package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/chatter/internal/keys"
	"github.com/zhubert/chatter/internal/session"
)

// =============================================================================
// RosterState - State for the alias roster overlay (bubbles list)
// =============================================================================

type aliasItem struct {
	alias  session.Alias
	active bool
}

func (i aliasItem) FilterValue() string { return string(i.alias) }

// aliasDelegate renders one roster entry per line.
type aliasDelegate struct{}

func (d aliasDelegate) Height() int                             { return 1 }
func (d aliasDelegate) Spacing() int                            { return 0 }
func (d aliasDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d aliasDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(aliasItem)
	if !ok {
		return
	}

	name := TruncateName(string(i.alias), ModalWidth-10)
	marker := "  "
	if i.active {
		marker = lipgloss.NewStyle().Foreground(ColorAuthor).Render("● ")
	}

	if index == m.Index() {
		fmt.Fprint(w, ListSelectedStyle.Render("> "+name)+" "+marker)
		return
	}
	fmt.Fprint(w, ListItemStyle.Render("  "+name)+" "+marker)
}

// RosterState wraps a bubbles list.Model over the session's alias entries.
type RosterState struct {
	list   list.Model
	keys   keys.RosterKeyMap
	help   help.Model
	active session.Alias
}

func (*RosterState) modalState() {}

func (s *RosterState) Title() string { return "Aliases" }

func (s *RosterState) Help() string {
	return s.help.ShortHelpView(s.keys.ShortHelp())
}

func (s *RosterState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var content string
	if len(s.list.Items()) == 0 {
		content = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No aliases. Press a to add one.")
	} else {
		content = s.list.View()
	}

	helpText := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, content, helpText)
}

func (s *RosterState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize implements ModalWithSize.
func (s *RosterState) SetSize(width, height int) {
	const titleAndHelpOverhead = 4
	s.list.SetSize(width, max(height-titleAndHelpOverhead, 1))
}

// SetEntries replaces the displayed entries, keeping the cursor on the same
// index when it still exists and on the last entry otherwise.
func (s *RosterState) SetEntries(entries []session.Alias, active session.Alias) {
	prev := s.list.Index()
	s.active = active

	items := make([]list.Item, len(entries))
	for i, a := range entries {
		items[i] = aliasItem{alias: a, active: a == active}
	}
	s.list.SetItems(items)

	if len(items) > 0 {
		s.list.Select(min(max(prev, 0), len(items)-1))
	}
}

// Selection returns the highlighted entry, or session.NoSelection when the
// roster is empty.
func (s *RosterState) Selection() session.Selection {
	if len(s.list.Items()) == 0 {
		return session.NoSelection
	}
	return session.Selected(s.list.Index())
}

// Len returns the number of entries shown.
func (s *RosterState) Len() int {
	return len(s.list.Items())
}

// Keys returns the roster key bindings.
func (s *RosterState) Keys() keys.RosterKeyMap {
	return s.keys
}

// NewRosterState creates the roster overlay for entries, highlighting the
// active alias when it is present.
func NewRosterState(entries []session.Alias, active session.Alias) *RosterState {
	l := list.New(nil, aliasDelegate{}, ModalWidth, max(ListMaxVisible, 1))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(false)

	s := &RosterState{
		list: l,
		keys: keys.DefaultRosterKeyMap(),
		help: help.New(),
	}
	s.SetEntries(entries, active)

	for i, a := range entries {
		if a == active {
			s.list.Select(i)
			break
		}
	}
	return s
}
