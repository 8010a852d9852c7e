package editor

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ternedit/tern/internal/command"
	"github.com/ternedit/tern/internal/config"
	"github.com/ternedit/tern/internal/engine/buffer"
	"github.com/ternedit/tern/internal/engine/cursor"
	"github.com/ternedit/tern/internal/input/key"
	"github.com/ternedit/tern/internal/renderer"
)

// Editor runs the interactive loop: terminal bytes in, frames out.
type Editor struct {
	session *Session
	term    *renderer.Terminal
	render  *renderer.Renderer
	log     *Logger

	keys   chan key.Event
	resize chan os.Signal
	quit   bool
}

// Run opens the terminal and drives the session until the user quits.
func Run(paths []string, cfg config.Config, log *Logger, opts buffer.LoadOptions) error {
	term, err := renderer.OpenTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.Close()

	ed := &Editor{
		session: NewSession(paths, cfg, log, opts),
		term:    term,
		render:  renderer.New(term.Out(), cfg),
		log:     log,
		keys:    make(chan key.Event, 64),
		resize:  make(chan os.Signal, 1),
	}
	defer ed.session.CloseWatcher()

	signal.Notify(ed.resize, syscall.SIGWINCH)
	defer signal.Stop(ed.resize)

	if w, h, err := term.Size(); err == nil {
		ed.render.SetSize(w, h)
	}

	go ed.readKeys()

	log.Info("session started with %d document(s)", ed.session.Count())
	return ed.loop()
}

// readKeys pumps raw terminal bytes through the decoder. The decoder
// keeps its state across reads, so sequences split between chunks
// come out whole.
func (ed *Editor) readKeys() {
	dec := key.NewDecoder()
	buf := make([]byte, 256)
	for {
		n, err := ed.term.In().Read(buf)
		if err != nil {
			close(ed.keys)
			return
		}
		for _, ev := range dec.Feed(buf[:n]) {
			ed.keys <- ev
		}
	}
}

func (ed *Editor) loop() error {
	// The redraw tick retires expired status messages.
	tick := time.NewTicker(250 * time.Millisecond)
	defer tick.Stop()

	for !ed.quit {
		if err := ed.draw(); err != nil {
			return err
		}

		select {
		case ev, ok := <-ed.keys:
			if !ok {
				return nil
			}
			ed.dispatch(ev)
		case wev := <-ed.session.WatchEvents():
			ed.session.HandleWatchEvent(wev)
		case <-ed.resize:
			if w, h, err := ed.term.Size(); err == nil {
				ed.render.SetSize(w, h)
			}
		case <-tick.C:
		}
	}

	ed.log.Info("session ended")
	return nil
}

func (ed *Editor) draw() error {
	doc := ed.session.Active()
	return ed.render.Draw(renderer.Frame{
		Buffer:    doc.Buffer(),
		Cursors:   doc.Engine().Cursors(),
		Message:   ed.session.Message(),
		Overwrite: ed.session.Builder().Overwrite(),
	})
}

// dispatch routes one key event through the builder and applies the
// resulting action.
func (ed *Editor) dispatch(ev key.Event) {
	doc := ed.session.Active()
	act := ed.session.Builder().Build(ev, doc.Engine())

	switch act.Kind {
	case command.KindNone:

	case command.KindEdit:
		if err := doc.Engine().Apply(act.Commands); err != nil {
			ed.session.SetMessage(renderer.Error(err.Error()))
			ed.log.Error("apply: %v", err)
		}

	case command.KindMotion:
		ed.applyMotion(act)

	case command.KindAddCursor:
		ed.addCursor(act.Dir)

	case command.KindUndo:
		if !doc.Engine().Undo() {
			ed.session.SetMessage(renderer.Info("Nothing to undo"))
		}

	case command.KindRedo:
		if !doc.Engine().Redo() {
			ed.session.SetMessage(renderer.Info("Nothing to redo"))
		}

	case command.KindCancel:
		doc.Engine().Cursors().Collapse()
		ed.session.ClearMessage()

	case command.KindQuit:
		ed.quit = true

	case command.KindSave:
		ed.save(false)

	case command.KindSaveAs:
		ed.save(true)

	case command.KindSaveClose:
		ed.saveClose()

	case command.KindNewBuffer:
		ed.session.NewScratch()

	case command.KindOpenFile:
		if path, ok := ed.prompt("Open file:"); ok && path != "" {
			if err := ed.session.Open(path, buffer.LoadOptions{}); err != nil {
				ed.session.SetMessage(renderer.Error(err.Error()))
			}
		}

	case command.KindNextBuffer:
		ed.session.Next()

	case command.KindPrevBuffer:
		ed.session.Prev()

	case command.KindSwitchBuffer:
		if name, ok := ed.prompt("Switch to buffer:"); ok && name != "" {
			if !ed.session.Switch(name) {
				ed.session.SetMessage(renderer.Warning(fmt.Sprintf("Buffer %q not found", name)))
			}
		}

	case command.KindNotice:
		if act.Warning {
			ed.session.SetMessage(renderer.Warning(act.Message))
		} else {
			ed.session.SetMessage(renderer.Info(act.Message))
		}
	}
}

func (ed *Editor) applyMotion(act command.Action) {
	eng := ed.session.Active().Engine()

	switch act.Motion {
	case command.MotionStep:
		eng.Move(act.Dir, act.Extend)
	case command.MotionWord:
		eng.MoveWord(act.Dir, act.Extend)
	case command.MotionHome:
		eng.Home(act.Extend)
	case command.MotionEnd:
		eng.End(act.Extend)
	case command.MotionTop:
		eng.Top(act.Extend)
	case command.MotionBottom:
		eng.Bottom(act.Extend)
	case command.MotionPageUp, command.MotionPageDown:
		dir := cursor.Up
		if act.Motion == command.MotionPageDown {
			dir = cursor.Down
		}
		for i := 0; i < ed.render.Viewport().Page(); i++ {
			eng.Move(dir, act.Extend)
		}
	}
}

// addCursor spawns a cursor on the line above or below the primary
// one, at the same column when the line allows it.
func (ed *Editor) addCursor(dir cursor.Direction) {
	eng := ed.session.Active().Engine()
	p := eng.Cursors().Primary().Position()

	line := p.Line - 1
	if dir == cursor.Down {
		line = p.Line + 1
	}
	if line < 0 || line >= eng.Buffer().LineCount() {
		return
	}

	eng.Cursors().Add(eng.Buffer().Clamp(buffer.Position{Line: line, Column: p.Column}))
}

// save runs the interactive save flow: prompt for a path when one is
// needed, then retry with overwrite after a conflict if the user
// agrees. askPath forces the save-as prompt.
func (ed *Editor) save(askPath bool) (saved bool) {
	b := ed.session.Active().Buffer()

	needsPath := askPath || b.Path() == ""
	path := b.Path()
	if needsPath {
		reply, ok := ed.prompt("Save as:")
		if !ok || reply == "" {
			return false
		}
		path = reply
	}

	n, err := ed.trySave(b, path, needsPath, false)
	if err != nil {
		if errors.Is(err, buffer.ErrFileChanged) || errors.Is(err, buffer.ErrPathExists) {
			if !ed.confirm("Overwrite (y/N)?", false) {
				return false
			}
			n, err = ed.trySave(b, path, needsPath, true)
		}
		if err != nil {
			ed.session.SetMessage(renderer.Error(err.Error()))
			ed.log.Error("save %s: %v", path, err)
			return false
		}
	}

	ed.session.watchPath(b.Path())
	ed.session.SetMessage(renderer.Info(fmt.Sprintf("Wrote %d bytes", n)))
	ed.log.Info("wrote %d bytes to %s", n, b.Path())
	return true
}

func (ed *Editor) trySave(b *buffer.Buffer, path string, asNew, overwrite bool) (int, error) {
	if asNew {
		return b.SaveAs(path, overwrite)
	}
	return b.Save(overwrite)
}

// saveClose saves the document if the user wants its changes kept,
// then closes it.
func (ed *Editor) saveClose() {
	b := ed.session.Active().Buffer()

	if b.Dirty() && ed.confirm("Save changes (Y/n)", true) {
		if !ed.save(false) {
			return
		}
	}
	ed.session.Close()
}

// prompt reads a line of input on the status row. It returns false
// when the user cancels with Escape.
func (ed *Editor) prompt(label string) (string, bool) {
	var input []rune
	for {
		if err := ed.render.DrawPrompt(label, string(input)); err != nil {
			return "", false
		}

		ev, ok := <-ed.keys
		if !ok {
			return "", false
		}

		switch {
		case ev.Key == key.KeyEscape:
			return "", false
		case ev.Key == key.KeyEnter:
			return string(input), true
		case ev.Key == key.KeyBackspace:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case ev.IsText():
			input = append(input, ev.Rune)
		}
	}
}

// confirm asks a yes/no question; an empty reply picks the default.
func (ed *Editor) confirm(label string, def bool) bool {
	reply, ok := ed.prompt(label)
	if !ok {
		return false
	}
	if reply == "" {
		return def
	}
	return reply == "y" || reply == "Y" || reply == "yes"
}
