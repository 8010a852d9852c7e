// Package key defines logical key events and the terminal input decoder.
//
// The decoder turns the raw, ambiguous byte stream of a legacy terminal
// into structured Event values: a logical key plus a combinable modifier
// set. It is a persistent state machine, so escape sequences and UTF-8
// characters may arrive split across arbitrary read boundaries.
package key
