// Package ui provides the visual components of chatter.
//
// The layout is organized as follows:
//
//	┌────────────────────────────────────────────────────────┐
//	│ Header: title, active alias, pin indicator             │
//	│ Menu bar (Help: General, About)                        │
//	├────────────────────────────────────────────────────────┤
//	│                                                        │
//	│   Log pane (scrollable viewport)                       │
//	│                                                        │
//	├─────────────────────────────────────────────┬──────────┤
//	│   Composer (multi-line textarea)            │  Send    │
//	│                                             │  Aliases │
//	│                                             │  Quit    │
//	├─────────────────────────────────────────────┴──────────┤
//	│ Footer: key hints, draft length, flash messages        │
//	└────────────────────────────────────────────────────────┘
//
// ViewContext holds the layout arithmetic; every size calculation goes
// through it. Modal is a stack of overlays from the modals package, of
// which only the top is drawn and receives input.
//
// Styles are rebuilt from the active Theme whenever SetTheme is called.
package ui
