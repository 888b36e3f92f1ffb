package ui

import (
	"sync"

	"github.com/zhubert/chatter/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight   int
	MenuBarHeight  int
	FooterHeight   int
	ContentHeight  int // Everything between menu bar and footer
	InputHeight    int // Composer rows, excluding its border
	LogHeight      int // Log pane outer height, including its border
	ComposerWidth  int // Composer outer width, excluding the action column
	ActionColWidth int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight:   HeaderHeight,
			MenuBarHeight:  MenuBarHeight,
			FooterHeight:   FooterHeight,
			InputHeight:    DefaultInputHeight,
			ActionColWidth: ActionColumnWidth,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// SetInputHeight sets the composer height in rows and recalculates the layout.
func (v *ViewContext) SetInputHeight(rows int) {
	v.mu.Lock()
	if rows < 1 {
		rows = 1
	}
	v.InputHeight = rows
	width, height := v.TerminalWidth, v.TerminalHeight
	v.mu.Unlock()

	if width > 0 && height > 0 {
		v.UpdateTerminalSize(width, height)
	}
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	v.HeaderHeight = HeaderHeight
	v.MenuBarHeight = MenuBarHeight
	v.FooterHeight = FooterHeight

	v.ContentHeight = height - v.HeaderHeight - v.MenuBarHeight - v.FooterHeight

	// The log pane gets whatever the composer (plus its border) leaves, but
	// never less than one row of messages
	v.LogHeight = max(v.ContentHeight-(v.InputHeight+BorderSize), 1+BorderSize)

	v.ActionColWidth = ActionColumnWidth
	v.ComposerWidth = width - v.ActionColWidth

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"logHeight", v.LogHeight,
		"inputHeight", v.InputHeight,
		"composerWidth", v.ComposerWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
