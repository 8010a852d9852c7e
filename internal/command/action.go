package command

import (
	"github.com/ternedit/tern/internal/engine/buffer"
	"github.com/ternedit/tern/internal/engine/cursor"
)

// Kind classifies what an input event asks the editor to do.
type Kind uint8

const (
	// KindNone means the event was consumed with no visible effect,
	// for example the first half of a chord.
	KindNone Kind = iota

	// KindEdit carries a batch of buffer commands, one undo step.
	KindEdit

	// KindMotion moves the cursors without touching the text.
	KindMotion

	KindUndo
	KindRedo
	KindQuit
	KindSave
	KindSaveAs
	KindSaveClose
	KindNewBuffer
	KindOpenFile
	KindNextBuffer
	KindPrevBuffer
	KindSwitchBuffer
	KindCancel

	// KindAddCursor spawns an extra cursor one line above or below
	// the primary one.
	KindAddCursor

	// KindNotice asks the editor to show Message to the user.
	KindNotice
)

// Motion identifies the shape of a cursor movement.
type Motion uint8

const (
	MotionNone Motion = iota
	MotionStep
	MotionWord
	MotionHome
	MotionEnd
	MotionTop
	MotionBottom
	MotionPageUp
	MotionPageDown
)

// Action is the builder's verdict on one key event. Exactly the
// fields relevant to Kind are populated.
type Action struct {
	Kind     Kind
	Commands []buffer.Command
	Motion   Motion
	Dir      cursor.Direction
	Extend   bool
	Message  string
	Warning  bool
}

func edit(cmds []buffer.Command) Action {
	if len(cmds) == 0 {
		return Action{Kind: KindNone}
	}
	return Action{Kind: KindEdit, Commands: cmds}
}

func motion(m Motion, dir cursor.Direction, extend bool) Action {
	return Action{Kind: KindMotion, Motion: m, Dir: dir, Extend: extend}
}

func notice(msg string) Action {
	return Action{Kind: KindNotice, Message: msg}
}
