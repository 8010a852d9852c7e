// Package engine orchestrates a buffer, its cursor set and its undo
// history. Edits enter as command batches; the engine guarantees each
// batch is atomic, keeps every cursor pointing at the text it was on,
// and records exact inverses so undo and redo are symmetric.
package engine
