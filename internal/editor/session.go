package editor

import (
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ternedit/tern/internal/command"
	"github.com/ternedit/tern/internal/config"
	"github.com/ternedit/tern/internal/engine/buffer"
	"github.com/ternedit/tern/internal/renderer"
)

// Session is the set of open documents plus everything that outlives
// a single one: the input state machine, the pending status message
// and the file watcher.
type Session struct {
	cfg     config.Config
	log     *Logger
	builder *command.Builder

	docs   []*Document
	active int

	message      *renderer.Message
	messageUntil time.Time

	watcher *fsnotify.Watcher
}

// NewSession opens one document per path, or a single scratch buffer
// when no paths are given. Load failures surface as an error message
// on the matching document rather than aborting startup.
func NewSession(paths []string, cfg config.Config, log *Logger, opts buffer.LoadOptions) *Session {
	s := &Session{
		cfg:     cfg,
		log:     log,
		builder: command.NewBuilder(),
	}

	s.watcher, _ = fsnotify.NewWatcher()

	for _, p := range paths {
		doc, err := openDocument(p, cfg, opts)
		s.docs = append(s.docs, doc)
		if err != nil {
			s.SetMessage(renderer.Error(err.Error()))
			log.Warn("open %s: %v", p, err)
		} else {
			s.watchPath(p)
		}
	}
	if len(s.docs) == 0 {
		s.NewScratch()
	}
	return s
}

// Active returns the document under edit.
func (s *Session) Active() *Document {
	return s.docs[s.active]
}

// Builder returns the session's input state machine.
func (s *Session) Builder() *command.Builder {
	return s.builder
}

// Count returns the number of open documents.
func (s *Session) Count() int {
	return len(s.docs)
}

// NewScratch appends a fresh unnamed document and makes it active.
func (s *Session) NewScratch() {
	name := untitledName(s.cfg.UntitledName, func(n string) bool {
		for _, d := range s.docs {
			if d.Buffer().Name() == n {
				return true
			}
		}
		return false
	})

	b := buffer.New(buffer.WithName(name), applyEnding(s.cfg))
	s.docs = append(s.docs, newDocument(b))
	s.active = len(s.docs) - 1
}

// Open loads path into a new document and makes it active. The
// document opens even when the load fails; the error comes back for
// the caller to report.
func (s *Session) Open(path string, opts buffer.LoadOptions) error {
	doc, err := openDocument(path, s.cfg, opts)
	s.docs = append(s.docs, doc)
	s.active = len(s.docs) - 1
	if err == nil {
		s.watchPath(path)
	}
	return err
}

// Close removes the active document and stops watching its file. The
// session always keeps at least one document open, creating a scratch
// buffer if needed.
func (s *Session) Close() {
	path := s.Active().Buffer().Path()
	s.docs = append(s.docs[:s.active], s.docs[s.active+1:]...)
	s.unwatchPath(path)
	if len(s.docs) == 0 {
		s.NewScratch()
		return
	}
	if s.active >= len(s.docs) {
		s.active = len(s.docs) - 1
	}
}

// Next cycles to the following document.
func (s *Session) Next() {
	s.active = (s.active + 1) % len(s.docs)
}

// Prev cycles to the preceding document.
func (s *Session) Prev() {
	if s.active == 0 {
		s.active = len(s.docs) - 1
		return
	}
	s.active--
}

// Switch activates the first document whose name starts with the
// given prefix. It returns false when no document matches.
func (s *Session) Switch(prefix string) bool {
	for i, d := range s.docs {
		if strings.HasPrefix(d.Buffer().Name(), prefix) {
			s.active = i
			return true
		}
	}
	return false
}

// SetMessage shows a status message for the configured timeout.
func (s *Session) SetMessage(m renderer.Message) {
	s.message = &m
	s.messageUntil = time.Now().Add(time.Duration(s.cfg.MessageTimeout) * time.Second)
}

// Message returns the pending status message, expiring it when its
// time is up.
func (s *Session) Message() *renderer.Message {
	if s.message != nil && time.Now().After(s.messageUntil) {
		s.message = nil
	}
	return s.message
}

// ClearMessage drops the pending message immediately.
func (s *Session) ClearMessage() {
	s.message = nil
}

// watchPath registers a file with the change watcher.
func (s *Session) watchPath(path string) {
	if s.watcher == nil || path == "" {
		return
	}
	if err := s.watcher.Add(path); err != nil {
		s.log.Debug("watch %s: %v", path, err)
	}
}

// unwatchPath drops a file from the change watcher, unless another
// open document still refers to it.
func (s *Session) unwatchPath(path string) {
	if s.watcher == nil || path == "" {
		return
	}
	for _, d := range s.docs {
		if d.Buffer().Path() == path {
			return
		}
	}
	if err := s.watcher.Remove(path); err != nil {
		s.log.Debug("unwatch %s: %v", path, err)
	}
}

// WatchEvents returns the watcher's event stream, or nil when no
// watcher could be created.
func (s *Session) WatchEvents() <-chan fsnotify.Event {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Events
}

// HandleWatchEvent turns an on-disk modification of an open file into
// a warning, unless the write was our own save.
func (s *Session) HandleWatchEvent(ev fsnotify.Event) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return
	}
	for _, d := range s.docs {
		b := d.Buffer()
		if b.Path() == ev.Name && b.ChangedOnDisk() {
			s.SetMessage(renderer.Warning(b.Name() + " changed on disk"))
			s.log.Warn("external modification: %s", ev.Name)
			return
		}
	}
}

// CloseWatcher releases the file watcher.
func (s *Session) CloseWatcher() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
}
