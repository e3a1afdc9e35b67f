package editor

import (
	"strings"

	"go.uber.org/zap"

	"github.com/iw2rmb/leaflet/document"
	"github.com/iw2rmb/leaflet/history"
	"github.com/iw2rmb/leaflet/transform"
)

type SessionOptions struct {
	History history.Options
	Logger  *zap.Logger
}

// Session owns the editing state of one document: the current
// transform.State, a version counter and the undo log.
//
// Every edit goes through a transform function. Rejected edits leave the
// state untouched and are logged at warn level. Session is not safe for
// concurrent use.
type Session struct {
	state   transform.State
	version uint64
	hist    *history.Log
	log     *zap.Logger

	lastChange    Change
	hasLastChange bool
}

// NewSession starts a session over a normalized copy of doc with the cursor
// at the start. A nil doc starts from a single empty paragraph.
func NewSession(doc *document.Document, opt SessionOptions) *Session {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		state: transform.NewState(doc),
		hist:  history.New(opt.History),
		log:   log,
	}
}

// State returns the current state. Callers must not mutate it.
func (s *Session) State() transform.State { return s.state }

func (s *Session) Document() *document.Document { return s.state.Doc }

func (s *Session) Selection() document.Selection { return s.state.Selection }

func (s *Session) Version() uint64 { return s.version }

// LastChange returns the most recent effective change.
func (s *Session) LastChange() (Change, bool) {
	return s.lastChange, s.hasLastChange
}

func (s *Session) IsMarkActive(m document.Mark) bool { return transform.IsMarkActive(s.state, m) }

func (s *Session) IsBlockActive(f document.BlockType) bool {
	return transform.IsBlockActive(s.state, f)
}

// IsEmpty reports whether the document is a single empty text block.
func (s *Session) IsEmpty() bool {
	leaves := s.state.Doc.LeafBlocks()
	return len(leaves) == 1 && leaves[0].Block.InlineText() == ""
}

func (s *Session) ToggleMark(m document.Mark) bool {
	return s.apply("toggle-mark", history.KindStructural, func(st transform.State) (transform.State, error) {
		return transform.ToggleMark(st, m)
	})
}

func (s *Session) ToggleBlock(f document.BlockType) bool {
	return s.apply("toggle-block", history.KindStructural, func(st transform.State) (transform.State, error) {
		return transform.ToggleBlock(st, f)
	})
}

func (s *Session) InsertText(text string) bool {
	kind := history.KindTyping
	// A newline splits blocks, which never joins a typing burst.
	if !s.state.Selection.Range.IsCollapsed() || strings.Contains(text, "\n") {
		kind = history.KindStructural
	}
	return s.apply("insert-text", kind, func(st transform.State) (transform.State, error) {
		return transform.InsertText(st, text)
	})
}

func (s *Session) InsertBreak() bool {
	return s.apply("insert-break", history.KindStructural, transform.InsertBreak)
}

func (s *Session) DeleteBackward() bool {
	return s.apply("delete-backward", history.KindDelete, transform.DeleteBackward)
}

func (s *Session) DeleteForward() bool {
	return s.apply("delete-forward", history.KindDelete, transform.DeleteForward)
}

func (s *Session) DeleteSelection() bool {
	return s.apply("delete-fragment", history.KindStructural, transform.DeleteFragment)
}

func (s *Session) Move(m transform.Move) bool {
	return s.apply("move", history.KindStructural, func(st transform.State) (transform.State, error) {
		return transform.MoveCursor(st, m)
	})
}

func (s *Session) Select(r document.Range) bool {
	return s.apply("select", history.KindStructural, func(st transform.State) (transform.State, error) {
		return transform.Select(st, r)
	})
}

func (s *Session) SelectAll() bool {
	return s.apply("select-all", history.KindStructural, transform.SelectAll)
}

// SelectedText returns the plain text under the selection.
func (s *Session) SelectedText() string { return transform.SelectedText(s.state) }

func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

func (s *Session) Undo() bool {
	prev, ok := s.hist.Undo(s.state)
	if !ok {
		return false
	}
	s.commit(ChangeSourceHistory, "undo", prev)
	return true
}

func (s *Session) Redo() bool {
	next, ok := s.hist.Redo(s.state)
	if !ok {
		return false
	}
	s.commit(ChangeSourceHistory, "redo", next)
	return true
}

func (s *Session) apply(op string, kind history.Kind, fn func(transform.State) (transform.State, error)) bool {
	prev := s.state
	next, err := fn(prev)
	if err != nil {
		s.log.Warn("edit rejected",
			zap.String("op", op),
			zap.Uint64("version", s.version),
			zap.Error(err),
		)
		return false
	}
	if transform.Equal(prev, next) {
		return false
	}

	if document.Equal(prev.Doc, next.Doc) {
		s.hist.Break()
	} else {
		s.hist.Record(prev, kind)
	}
	s.commit(ChangeSourceLocal, op, next)
	return true
}

func (s *Session) commit(src ChangeSource, op string, next transform.State) {
	prev := s.state
	s.state = next
	s.version++
	s.lastChange = Change{
		Source:          src,
		Op:              op,
		VersionBefore:   s.version - 1,
		VersionAfter:    s.version,
		SelectionBefore: cloneSelection(prev.Selection),
		SelectionAfter:  cloneSelection(next.Selection),
		DocumentChanged: !document.Equal(prev.Doc, next.Doc),
	}
	s.hasLastChange = true
	s.log.Debug("edit applied",
		zap.String("op", op),
		zap.Stringer("source", src),
		zap.Uint64("version", s.version),
	)
}
