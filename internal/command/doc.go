// Package command translates decoded key events into editor actions:
// motions, batches of buffer commands, and control requests such as
// save or quit. The builder owns the modal input state, the C-x chord
// and the overwrite toggle.
package command
