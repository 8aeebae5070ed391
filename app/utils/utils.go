package utils

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/rivo/uniseg"
)

// TruncateText shortens the given text to fit within maxWidth cells.
// If the text exceeds maxWidth, it appends "..." (if possible).
func TruncateText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if ansi.StringWidth(text) <= maxWidth {
		return text
	}

	if maxWidth > 3 {
		return truncate.StringWithTail(text, uint(maxWidth), "...")
	}

	// No space for "..."
	return truncate.String(text, uint(maxWidth))
}

// PadRight fills text with spaces up to width cells
func PadRight(text string, width int) string {
	if w := ansi.StringWidth(text); w < width {
		return text + strings.Repeat(" ", width-w)
	}
	return text
}

// CharCount counts user perceived characters, so an emoji with
// modifiers counts once.
func CharCount(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Clamp limits n to the range [lo, hi]. hi wins if the range is empty.
func Clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}
