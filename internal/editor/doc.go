// Package editor ties the pieces into an interactive session: it
// decodes terminal input, routes actions to the active document,
// tracks status messages and external file changes, and redraws
// after every event.
package editor
