// Package cursor maintains the set of cursors and selections over a
// buffer. Cursors hold buffer-relative positions only; whenever the
// buffer mutates, the owning engine feeds the resulting change back
// through Set.ApplyChange so every cursor lands where its text went.
package cursor
