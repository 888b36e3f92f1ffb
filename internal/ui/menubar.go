package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/zhubert/chatter/internal/keys"
)

// MenuAction identifies what a menu entry does when activated.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuGeneral
	MenuAbout
)

// MenuItem is one entry of a menu.
type MenuItem struct {
	Label  string
	Action MenuAction
}

// Menu is a titled group of entries in the menu bar.
type Menu struct {
	Title string
	Items []MenuItem
}

// MenuBar is the one-line menu under the header. When focused, the
// highlighted menu's entries are shown inline beside its title.
type MenuBar struct {
	width   int
	focused bool
	menus   []Menu
	menu    int
	item    int
}

// NewMenuBar creates the menu bar with its Help menu.
func NewMenuBar() *MenuBar {
	return &MenuBar{
		menus: []Menu{
			{
				Title: "Help",
				Items: []MenuItem{
					{Label: "General", Action: MenuGeneral},
					{Label: "About", Action: MenuAbout},
				},
			},
		},
	}
}

// SetWidth sets the menu bar width
func (m *MenuBar) SetWidth(width int) {
	m.width = width
}

// Focus gives the menu bar keyboard focus with the first entry highlighted.
func (m *MenuBar) Focus() {
	m.focused = true
	m.item = 0
}

// Blur returns keyboard focus to the rest of the screen.
func (m *MenuBar) Blur() {
	m.focused = false
}

// IsFocused returns the focus state
func (m *MenuBar) IsFocused() bool {
	return m.focused
}

// Selected returns the highlighted entry.
func (m *MenuBar) Selected() MenuItem {
	items := m.menus[m.menu].Items
	if len(items) == 0 {
		return MenuItem{}
	}
	return items[m.item]
}

// HandleKey moves the highlight or activates an entry. It returns the
// activated action, or MenuNone when the key only moved the highlight.
// Esc blurs the bar.
func (m *MenuBar) HandleKey(key string) MenuAction {
	items := m.menus[m.menu].Items
	switch key {
	case keys.Left, keys.Up, "h", "k":
		if m.item > 0 {
			m.item--
		}
	case keys.Right, keys.Down, "l", "j":
		if m.item < len(items)-1 {
			m.item++
		}
	case keys.Tab:
		m.menu = (m.menu + 1) % len(m.menus)
		m.item = 0
	case keys.Enter, keys.Space:
		action := m.Selected().Action
		m.Blur()
		return action
	case keys.Escape:
		m.Blur()
	}
	return MenuNone
}

// View renders the menu bar
func (m *MenuBar) View() string {
	var parts []string
	for i, menu := range m.menus {
		if m.focused && i == m.menu {
			parts = append(parts, MenuItemActiveStyle.Render(menu.Title))
			for j, item := range menu.Items {
				style := MenuItemStyle
				label := " " + item.Label + " "
				if j == m.item {
					style = MenuItemActiveStyle
					label = "[" + item.Label + "]"
				}
				parts = append(parts, style.Render(label))
			}
			continue
		}
		parts = append(parts, MenuItemStyle.Render(menu.Title))
	}

	content := strings.Join(parts, " ")
	if !m.focused {
		content += FooterDescStyle.Render("  esc: menu")
	}
	content = MenuBarStyle.Render(content)
	if m.width > 0 {
		content = ansi.Truncate(content, m.width, "")
	}
	return content
}
