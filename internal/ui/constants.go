package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// MenuBarHeight is the height of the menu bar in lines
	MenuBarHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// DefaultInputHeight is the number of composer rows when none is configured
	DefaultInputHeight = 5

	// InputPaddingWidth is the horizontal padding inside the input area (Padding(0, 1) = 1 left + 1 right)
	InputPaddingWidth = 2

	// ActionColumnWidth is the width of the Send/Aliases/Quit column beside the composer
	ActionColumnWidth = 12

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// DefaultWheelDelta is the number of rows one mouse wheel notch scrolls
	DefaultWheelDelta = 3

	// MinTerminalWidth and MinTerminalHeight clamp layout math on tiny terminals
	MinTerminalWidth  = 40
	MinTerminalHeight = 12
)

// Overlay dimensions
const (
	// ModalWidth is the default width of overlays
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for overlay text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of overlay text inputs
	ModalInputWidth = 50

	// ModalListMaxVisible is the number of rows a list overlay shows at once
	ModalListMaxVisible = 12
)
