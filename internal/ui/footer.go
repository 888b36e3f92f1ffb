package ui

import (
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// FlashType identifies the kind of flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays visible
const DefaultFlashDuration = 3 * time.Second

// FlashTickMsg is sent periodically so expired flash messages can clear
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg once the default
// duration has passed
func FlashTick() tea.Cmd {
	return tea.Tick(DefaultFlashDuration, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FlashMessage is a transient status line shown in place of key hints
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) >= f.Duration
}

func (t FlashType) icon() string {
	switch t {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

func (t FlashType) color() lipgloss.Style {
	switch t {
	case FlashError:
		return lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	case FlashWarning:
		return lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	case FlashSuccess:
		return lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(ColorInfo)
	}
}

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// BindingsFromKeys converts bubbles key bindings into footer hints.
func BindingsFromKeys(bindings []key.Binding) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		out = append(out, KeyBinding{Key: h.Key, Desc: h.Desc})
	}
	return out
}

var menuBindings = []KeyBinding{
	{Key: "←/→", Desc: "navigate"},
	{Key: "enter", Desc: "open"},
	{Key: "esc", Desc: "back"},
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	menuFocused  bool
	draft        string
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings sets the hints shown while the composer has focus
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetMenuFocused switches the hints to menu navigation
func (f *Footer) SetMenuFocused(focused bool) {
	f.menuFocused = focused
}

// SetDraft records the composer contents for the character counter
func (f *Footer) SetDraft(text string) {
	f.draft = text
}

// DraftLength returns the number of user-perceived characters in the draft.
func (f *Footer) DraftLength() int {
	return uniseg.GraphemeClusterCount(f.draft)
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for a custom duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes any flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes the flash message if it has expired and reports
// whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		style := f.flashMessage.Type.color()
		content := style.Render(f.flashMessage.Type.icon() + " " + f.flashMessage.Text)
		return f.fit(FooterStyle.Width(f.width).Render(content))
	}

	bindings := f.bindings
	if f.menuFocused {
		bindings = menuBindings
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}
	left := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	var right string
	if n := f.DraftLength(); n > 0 {
		right = FooterDescStyle.Render(strconv.Itoa(n) + " chars")
	}

	// Padding(0, 1) on FooterStyle takes two columns
	inner := f.width - 2
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	if right != "" && gap > 0 {
		left += strings.Repeat(" ", gap) + right
	}

	return f.fit(FooterStyle.Width(f.width).Render(left))
}

func (f *Footer) fit(s string) string {
	if f.width <= 0 {
		return s
	}
	return ansi.Truncate(s, f.width, "")
}
