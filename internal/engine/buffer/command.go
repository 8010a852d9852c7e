package buffer

import "fmt"

// Command is the closed set of buffer mutations. Every mutation path
// goes through Buffer.Apply, which matches the set exhaustively and
// produces the exact inverse command, keeping undo generation total.
type Command interface {
	fmt.Stringer

	// isCommand seals the set.
	isCommand()
}

// InsertText inserts Text at Pos. Text may contain line breaks ("\n"),
// each of which splits a line.
type InsertText struct {
	Pos  Position
	Text string
}

func (InsertText) isCommand() {}

func (c InsertText) String() string {
	return fmt.Sprintf("Insert%s %q", c.Pos, c.Text)
}

// DeleteRange removes the text between From and To, From ≤ To in
// document order. Ranges spanning lines remove the covered line breaks
// and join the remainders.
type DeleteRange struct {
	From Position
	To   Position
}

func (DeleteRange) isCommand() {}

func (c DeleteRange) String() string {
	return fmt.Sprintf("Delete%s-%s", c.From, c.To)
}

// SplitLine breaks the line at Pos in two. Convenience form of
// inserting a single line break.
type SplitLine struct {
	Pos Position
}

func (SplitLine) isCommand() {}

func (c SplitLine) String() string {
	return fmt.Sprintf("Split%s", c.Pos)
}

// JoinLines joins line Line with the line below it. Convenience form of
// deleting a single line break.
type JoinLines struct {
	Line int
}

func (JoinLines) isCommand() {}

func (c JoinLines) String() string {
	return fmt.Sprintf("Join(%d)", c.Line)
}
