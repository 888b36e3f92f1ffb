package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/zhubert/chatter/internal/session"
	"github.com/zhubert/chatter/internal/ui/modals"
)

const (
	pinnedIndicator   = "● live"
	detachedIndicator = "○ scrolled"
	unlistedNote      = " (not in roster)"
)

// Header represents the top header bar
type Header struct {
	width  int
	active session.Alias
	listed bool
	pinned bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{listed: true, pinned: true}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetActiveAlias sets the identity shown on the right
func (h *Header) SetActiveAlias(alias session.Alias) {
	h.active = alias
}

// SetActiveListed sets whether the active alias still has a roster entry
func (h *Header) SetActiveListed(listed bool) {
	h.listed = listed
}

// SetPinned sets whether the log is following new messages
func (h *Header) SetPinned(pinned bool) {
	h.pinned = pinned
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + modals.AppName

	indicator := pinnedIndicator
	if !h.pinned {
		indicator = detachedIndicator
	}

	// Long aliases give way to the title and indicator
	maxAlias := max(h.width/3, 4)
	alias := runewidth.Truncate(string(h.active), maxAlias, "…")
	rightText := "as " + alias
	if !h.listed {
		rightText += unlistedNote
	}
	rightText += "  " + indicator + " "

	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	rendered := h.renderGradient(fullContent, indicator)
	if h.width > 0 {
		rendered = ansi.Truncate(rendered, h.width, "")
	}
	return rendered
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The indicator portion is colored by pin state.
func (h *Header) renderGradient(content, indicator string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	indicatorColor := lipgloss.Color(theme.Success)
	if !h.pinned {
		indicatorColor = lipgloss.Color(theme.Warning)
	}

	runes := []rune(content)
	indicatorStart := -1
	if idx := strings.LastIndex(content, indicator); idx >= 0 {
		indicatorStart = len([]rune(content[:idx]))
	}
	indicatorEnd := indicatorStart + len([]rune(indicator))
	titleLen := len([]rune(modals.AppName)) + 1

	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < titleLen)

		if i >= indicatorStart && i < indicatorEnd {
			style = style.Foreground(indicatorColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
