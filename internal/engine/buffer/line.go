package buffer

// Line is a single line of text: an ordered sequence of runes with no
// line terminator. Lines are mutated only through their own operations;
// all positions are rune columns validated by the owning Buffer.
type Line struct {
	runes []rune
}

// NewLine creates an empty line.
func NewLine() *Line {
	return &Line{}
}

// NewLineFromString creates a line from s. The string must not contain
// line terminators.
func NewLineFromString(s string) *Line {
	return &Line{runes: []rune(s)}
}

// Len returns the number of runes in the line.
func (l *Line) Len() int {
	return len(l.runes)
}

// Text returns the line content as a string.
func (l *Line) Text() string {
	return string(l.runes)
}

// RuneAt returns the rune at column col.
func (l *Line) RuneAt(col int) rune {
	return l.runes[col]
}

// Slice returns the text between columns from and to.
func (l *Line) Slice(from, to int) string {
	return string(l.runes[from:to])
}

// Insert inserts text at the given column.
func (l *Line) Insert(col int, text []rune) {
	if len(text) == 0 {
		return
	}
	updated := make([]rune, 0, len(l.runes)+len(text))
	updated = append(updated, l.runes[:col]...)
	updated = append(updated, text...)
	updated = append(updated, l.runes[col:]...)
	l.runes = updated
}

// Delete removes the runes in [from, to) and returns them.
func (l *Line) Delete(from, to int) []rune {
	removed := make([]rune, to-from)
	copy(removed, l.runes[from:to])
	l.runes = append(l.runes[:from], l.runes[to:]...)
	return removed
}

// SplitOff removes everything from col onward and returns it as a new
// line, leaving the receiver with the prefix.
func (l *Line) SplitOff(col int) *Line {
	tail := make([]rune, len(l.runes)-col)
	copy(tail, l.runes[col:])
	l.runes = l.runes[:col]
	return &Line{runes: tail}
}

// Append appends the content of other to the receiver.
func (l *Line) Append(other *Line) {
	l.runes = append(l.runes, other.runes...)
}

// Clone returns an independent copy of the line.
func (l *Line) Clone() *Line {
	runes := make([]rune, len(l.runes))
	copy(runes, l.runes)
	return &Line{runes: runes}
}
