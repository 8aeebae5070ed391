// Package motion resolves vim cursor motions over lines of text.
// Every function clamps its input first and never fails: a motion that
// runs out of text stops at the nearest valid position.
package motion

import "unicode"

// Position is a cursor position. Col counts runes and may equal the
// line length, which is the position right after the last character.
type Position struct {
	Row int
	Col int
}

// Text is the read-only view of a buffer the motions work on.
type Text interface {
	LineCount() int
	Line(row int) []rune
}

// Clamp moves p onto the nearest valid position of t
func Clamp(t Text, p Position) Position {
	last := t.LineCount() - 1
	if last < 0 {
		return Position{}
	}

	p.Row = max(0, min(p.Row, last))
	p.Col = max(0, min(p.Col, len(t.Line(p.Row))))

	return p
}

type charClass int

const (
	space charClass = iota
	word
	punct
)

func classOf(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return space
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return word
	default:
		return punct
	}
}

// classAt treats the end of a line as a line break, which is space.
func classAt(t Text, p Position) charClass {
	line := t.Line(p.Row)
	if p.Col >= len(line) {
		return space
	}
	return classOf(line[p.Col])
}

func isEmptyLine(t Text, row int) bool {
	return len(t.Line(row)) == 0
}

func next(t Text, p Position) (Position, bool) {
	if p.Col < len(t.Line(p.Row)) {
		return Position{p.Row, p.Col + 1}, true
	}
	if p.Row < t.LineCount()-1 {
		return Position{p.Row + 1, 0}, true
	}
	return p, false
}

func prev(t Text, p Position) (Position, bool) {
	if p.Col > 0 {
		return Position{p.Row, p.Col - 1}, true
	}
	if p.Row > 0 {
		return Position{p.Row - 1, len(t.Line(p.Row - 1))}, true
	}
	return p, false
}

// repeat applies step up to n times starting from the clamped p.
// It stops early once a step no longer moves.
func repeat(t Text, p Position, n int, step func(Text, Position) Position) Position {
	p = Clamp(t, p)
	for range max(n, 0) {
		moved := step(t, p)
		if moved == p {
			break
		}
		p = moved
	}
	return p
}

func CharForward(t Text, p Position, n int) Position {
	return repeat(t, p, n, func(t Text, p Position) Position {
		p.Col = min(p.Col+1, len(t.Line(p.Row)))
		return p
	})
}

func CharBack(t Text, p Position, n int) Position {
	return repeat(t, p, n, func(t Text, p Position) Position {
		p.Col = max(p.Col-1, 0)
		return p
	})
}

func LineDown(t Text, p Position, n int) Position {
	p = Clamp(t, p)
	if n <= 0 {
		return p
	}
	return Clamp(t, Position{p.Row + min(n, t.LineCount()), p.Col})
}

func LineUp(t Text, p Position, n int) Position {
	p = Clamp(t, p)
	if n <= 0 {
		return p
	}
	return Clamp(t, Position{p.Row - min(n, t.LineCount()), p.Col})
}

// WordForward moves to the start of the n-th next word.
// An empty line counts as a word.
func WordForward(t Text, p Position, n int) Position {
	return repeat(t, p, n, wordForward)
}

func wordForward(t Text, start Position) Position {
	p := start
	ok := true

	if c := classAt(t, p); c != space {
		for ok && classAt(t, p) == c {
			p, ok = next(t, p)
		}
		if !ok {
			return p
		}
	}

	for classAt(t, p) == space {
		if p != start && p.Col == 0 && isEmptyLine(t, p.Row) {
			return p
		}
		if p, ok = next(t, p); !ok {
			return p
		}
	}

	return p
}

// WordEnd moves to the last character of the n-th next word.
func WordEnd(t Text, p Position, n int) Position {
	return repeat(t, p, n, wordEnd)
}

func wordEnd(t Text, start Position) Position {
	p, ok := next(t, start)
	if !ok {
		return start
	}

	for classAt(t, p) == space {
		if p, ok = next(t, p); !ok {
			return p
		}
	}

	c := classAt(t, p)
	for {
		n, ok := next(t, p)
		if !ok || classAt(t, n) != c {
			return p
		}
		p = n
	}
}

// WordBack moves to the start of the n-th previous word.
// An empty line counts as a word.
func WordBack(t Text, p Position, n int) Position {
	return repeat(t, p, n, wordBack)
}

func wordBack(t Text, start Position) Position {
	p, ok := prev(t, start)
	if !ok {
		return start
	}

	for classAt(t, p) == space {
		if isEmptyLine(t, p.Row) {
			return p
		}
		if p, ok = prev(t, p); !ok {
			return p
		}
	}

	c := classAt(t, p)
	for {
		pr, ok := prev(t, p)
		if !ok || pr.Row != p.Row || classAt(t, pr) != c {
			return p
		}
		p = pr
	}
}

func LineStart(t Text, p Position) Position {
	p = Clamp(t, p)
	p.Col = 0
	return p
}

// LineEnd moves behind the last character of the line
func LineEnd(t Text, p Position) Position {
	p = Clamp(t, p)
	p.Col = len(t.Line(p.Row))
	return p
}

// FirstNonBlank moves to the first non whitespace character of the
// line, or column 0 if there is none.
func FirstNonBlank(t Text, p Position) Position {
	p = Clamp(t, p)
	p.Col = 0

	for i, r := range t.Line(p.Row) {
		if !unicode.IsSpace(r) {
			p.Col = i
			break
		}
	}

	return p
}

func Top(t Text, p Position) Position {
	return Clamp(t, Position{0, p.Col})
}

func Bottom(t Text, p Position) Position {
	return Clamp(t, Position{t.LineCount() - 1, p.Col})
}

// ToLine jumps to the start of the 1-based line n and takes one word
// forward step from there. n = 0 leaves p where it is.
func ToLine(t Text, p Position, n int) Position {
	if n <= 0 {
		return Clamp(t, p)
	}
	return wordForward(t, Clamp(t, Position{n - 1, 0}))
}
