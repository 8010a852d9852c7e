package buffer

import "fmt"

// Position is a line/column coordinate in a buffer.
// Line indexes lines from 0; Column counts runes from the start of the
// line. Column == line length addresses the end of the line.
type Position struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other in
// document order.
func (p Position) Compare(other Position) int {
	if p.Line != other.Line {
		if p.Line < other.Line {
			return -1
		}
		return 1
	}
	if p.Column != other.Column {
		if p.Column < other.Column {
			return -1
		}
		return 1
	}
	return 0
}

// Before returns true if p comes before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other in document order.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// MinPosition returns the earlier of two positions.
func MinPosition(a, b Position) Position {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxPosition returns the later of two positions.
func MaxPosition(a, b Position) Position {
	if a.After(b) {
		return a
	}
	return b
}

// Change summarizes an applied command for cursor translation: the text
// between From and To (pre-edit coordinates) was replaced by text ending
// at End (post-edit coordinates). Pure insertions have From == To; pure
// deletions have End == From.
type Change struct {
	From Position
	To   Position
	End  Position
}

// IsInsert returns true for a pure insertion.
func (c Change) IsInsert() bool {
	return c.From == c.To
}

// IsDelete returns true for a pure deletion.
func (c Change) IsDelete() bool {
	return c.End == c.From && c.From != c.To
}

// Transpose translates a position across the change.
//
// Rules (symmetric for insertions and deletions):
//   - strictly before From: unchanged
//   - at or after To: shifted by the change's net line/column delta
//   - inside the replaced range: collapsed to End
func (c Change) Transpose(p Position) Position {
	if p.Before(c.From) {
		return p
	}
	if p.Before(c.To) {
		return c.End
	}

	// At or after the end of the replaced range.
	if p.Line > c.To.Line {
		return Position{Line: p.Line + c.End.Line - c.To.Line, Column: p.Column}
	}
	return Position{
		Line:   c.End.Line,
		Column: c.End.Column + (p.Column - c.To.Column),
	}
}
