package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"quire/app/utils"
)

// Place draws fg over bg with its top left corner at column x and
// row y. fg is moved back inside bg where it would stick out. When fg
// is at least as large as bg only fg is returned.
func Place(bg, fg string, x, y int) string {
	bgLines, bgWidth := splitLines(bg)
	fgLines, fgWidth := splitLines(fg)

	if fgWidth >= bgWidth && len(fgLines) >= len(bgLines) {
		return fg
	}

	x = max(utils.Clamp(x, 0, bgWidth-fgWidth), 0)
	y = max(utils.Clamp(y, 0, len(bgLines)-len(fgLines)), 0)

	for i, line := range fgLines {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		bgLines[row] = splice(bgLines[row], line, x)
	}

	return strings.Join(bgLines, "\n")
}

// splice writes s into line starting at cell x. A line shorter than x
// is padded with spaces.
func splice(line, s string, x int) string {
	left := ansi.Truncate(line, x, "")
	if gap := x - ansi.StringWidth(left); gap > 0 {
		left += strings.Repeat(" ", gap)
	}

	right := ansi.TruncateLeft(line, x+ansi.StringWidth(s), "")

	return left + s + right
}

func splitLines(s string) ([]string, int) {
	lines := strings.Split(strings.ReplaceAll(s, "\t", "    "), "\n")

	widest := 0
	for _, l := range lines {
		widest = max(widest, ansi.StringWidth(l))
	}

	return lines, widest
}
