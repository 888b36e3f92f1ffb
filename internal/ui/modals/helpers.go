package modals

import (
	"github.com/mattn/go-runewidth"
)

// TruncateName shortens s to at most maxWidth terminal cells, ending with an
// ellipsis when anything was cut. Wide runes count as two cells.
func TruncateName(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "…")
}
