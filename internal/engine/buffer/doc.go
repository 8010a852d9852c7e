// Package buffer implements the line-structured text buffer at the core
// of the editor.
//
// A Buffer is an ordered collection of Lines that is mutated only
// through the closed Command set (InsertText, DeleteRange, SplitLine,
// JoinLines). Apply executes a command atomically and returns the exact
// inverse command, which is what makes undo/redo total: replaying the
// inverse restores the buffer line-for-line.
package buffer
