// Package history stores the undo and redo trail for a buffer as
// stacks of inverse command batches paired with cursor snapshots.
// The engine owns the apply/record choreography; this package only
// keeps the stacks honest.
package history
