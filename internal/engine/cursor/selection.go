package cursor

import "github.com/ternedit/tern/internal/engine/buffer"

// Selection is a pair of positions into a buffer: the anchor stays put
// while the head moves. Anchor == Head is a plain cursor with no
// selected text.
type Selection struct {
	Anchor buffer.Position
	Head   buffer.Position
}

// NewSelection creates an empty selection (a cursor) at p.
func NewSelection(p buffer.Position) Selection {
	return Selection{Anchor: p, Head: p}
}

// IsEmpty returns true if the selection covers no text.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Start returns the earlier of anchor and head in document order.
func (s Selection) Start() buffer.Position {
	return buffer.MinPosition(s.Anchor, s.Head)
}

// End returns the later of anchor and head in document order.
func (s Selection) End() buffer.Position {
	return buffer.MaxPosition(s.Anchor, s.Head)
}

// Collapse returns the selection reduced to a cursor at its head.
func (s Selection) Collapse() Selection {
	return Selection{Anchor: s.Head, Head: s.Head}
}

// Contains returns true if p lies within the selected range.
func (s Selection) Contains(p buffer.Position) bool {
	return !p.Before(s.Start()) && p.Before(s.End())
}

// Merge returns the smallest selection covering both s and other. The
// head keeps s's orientation.
func (s Selection) Merge(other Selection) Selection {
	start := buffer.MinPosition(s.Start(), other.Start())
	end := buffer.MaxPosition(s.End(), other.End())
	if s.Head.Before(s.Anchor) {
		return Selection{Anchor: end, Head: start}
	}
	return Selection{Anchor: start, Head: end}
}

// Equals returns true if both selections cover the same range with the
// same orientation.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Head == other.Head
}
