package cursor

import (
	"unicode"

	"github.com/ternedit/tern/internal/engine/buffer"
)

// Direction identifies a single-step cursor movement.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// Move steps every cursor one unit in the given direction. Horizontal
// moves wrap across line boundaries; vertical moves aim for the column
// the user last chose, so travel across short lines does not lose it.
// Movement clamps at the buffer edges and never fails.
//
// With extend set the anchors stay put and the selection grows. Without
// it a non-empty selection collapses to its edge in the direction of
// travel before any movement happens, matching how most editors treat
// a plain arrow key over a selection.
func (s *Set) Move(b *buffer.Buffer, dir Direction, extend bool) {
	for i := range s.cursors {
		c := &s.cursors[i]

		if !extend && !c.IsEmpty() && (dir == Left || dir == Right) {
			edge := c.Start()
			if dir == Right {
				edge = c.End()
			}
			c.moveTo(edge, false)
			continue
		}

		switch dir {
		case Left:
			c.moveTo(stepLeft(b, c.Head), extend)
		case Right:
			c.moveTo(stepRight(b, c.Head), extend)
		case Up, Down:
			c.moveVertical(b, dir, extend)
		}
	}
	s.normalize()
}

// MoveWord steps every cursor to the previous or next word boundary.
// Only Left and Right are meaningful; other directions are ignored.
func (s *Set) MoveWord(b *buffer.Buffer, dir Direction, extend bool) {
	if dir != Left && dir != Right {
		return
	}
	for i := range s.cursors {
		c := &s.cursors[i]
		if dir == Left {
			c.moveTo(wordLeft(b, c.Head), extend)
		} else {
			c.moveTo(wordRight(b, c.Head), extend)
		}
	}
	s.normalize()
}

// Home moves every cursor to the start of its line.
func (s *Set) Home(extend bool) {
	for i := range s.cursors {
		c := &s.cursors[i]
		c.moveTo(buffer.Position{Line: c.Head.Line, Column: 0}, extend)
	}
	s.normalize()
}

// End moves every cursor to the end of its line.
func (s *Set) End(b *buffer.Buffer, extend bool) {
	for i := range s.cursors {
		c := &s.cursors[i]
		c.moveTo(buffer.Position{Line: c.Head.Line, Column: b.LineLen(c.Head.Line)}, extend)
	}
	s.normalize()
}

// Top moves the set to the start of the buffer, collapsing to the
// primary cursor unless extending.
func (s *Set) Top(extend bool) {
	if !extend {
		s.Collapse()
	}
	s.cursors[0].moveTo(buffer.Position{}, extend)
	s.normalize()
}

// Bottom moves the set to the end of the buffer, collapsing to the
// primary cursor unless extending.
func (s *Set) Bottom(b *buffer.Buffer, extend bool) {
	if !extend {
		s.Collapse()
	}
	s.cursors[0].moveTo(b.End(), extend)
	s.normalize()
}

// moveVertical shifts the head one line up or down, landing on the
// desired column when the target line is long enough.
func (c *Cursor) moveVertical(b *buffer.Buffer, dir Direction, extend bool) {
	line := c.Head.Line
	if dir == Up {
		if line == 0 {
			return
		}
		line--
	} else {
		if line >= b.LineCount()-1 {
			return
		}
		line++
	}

	col := c.desiredColumn
	if max := b.LineLen(line); col > max {
		col = max
	}

	// Bypass moveTo so the desired column survives the trip.
	want := c.desiredColumn
	c.moveTo(buffer.Position{Line: line, Column: col}, extend)
	c.desiredColumn = want
}

func stepLeft(b *buffer.Buffer, p buffer.Position) buffer.Position {
	if p.Column > 0 {
		return buffer.Position{Line: p.Line, Column: p.Column - 1}
	}
	if p.Line > 0 {
		return buffer.Position{Line: p.Line - 1, Column: b.LineLen(p.Line - 1)}
	}
	return p
}

func stepRight(b *buffer.Buffer, p buffer.Position) buffer.Position {
	if p.Column < b.LineLen(p.Line) {
		return buffer.Position{Line: p.Line, Column: p.Column + 1}
	}
	if p.Line < b.LineCount()-1 {
		return buffer.Position{Line: p.Line + 1, Column: 0}
	}
	return p
}

// wordLeft finds the start of the word before p, crossing line
// boundaries when the cursor sits at a line start.
func wordLeft(b *buffer.Buffer, p buffer.Position) buffer.Position {
	if p.Column == 0 {
		return stepLeft(b, p)
	}

	runes := []rune(b.LineText(p.Line))
	col := p.Column
	for col > 0 && !isWordRune(runes[col-1]) {
		col--
	}
	for col > 0 && isWordRune(runes[col-1]) {
		col--
	}
	return buffer.Position{Line: p.Line, Column: col}
}

// wordRight finds the position just past the end of the word after p.
func wordRight(b *buffer.Buffer, p buffer.Position) buffer.Position {
	runes := []rune(b.LineText(p.Line))
	if p.Column >= len(runes) {
		return stepRight(b, p)
	}

	col := p.Column
	for col < len(runes) && !isWordRune(runes[col]) {
		col++
	}
	for col < len(runes) && isWordRune(runes[col]) {
		col++
	}
	return buffer.Position{Line: p.Line, Column: col}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
