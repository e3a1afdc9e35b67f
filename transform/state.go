package transform

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/leaflet/document"
)

var (
	// ErrInvalidSelection indicates a selection endpoint that does not resolve
	// to an existing text leaf and offset.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrNoDocument indicates a State without a document.
	ErrNoDocument = errors.New("state has no document")
)

// State is the editing state threaded through every operation.
type State struct {
	Doc       *document.Document
	Selection document.Selection

	// Marks are pending marks for a collapsed cursor. They apply to the next
	// inserted text and are dropped by any other operation.
	Marks *document.Marks
}

// NewState returns a normalized state for doc with a collapsed cursor at the
// start of the document. A nil doc yields the initial empty paragraph.
func NewState(doc *document.Document) State {
	if doc == nil {
		doc = document.New()
	} else {
		doc = doc.Clone()
		doc.Normalize()
	}
	start, err := doc.Start(document.Path{})
	if err != nil {
		return State{Doc: doc}
	}
	return State{Doc: doc, Selection: document.Select(document.Collapsed(start))}
}

// Clone returns a state sharing nothing with s.
func (s State) Clone() State {
	out := State{Doc: s.Doc.Clone(), Selection: s.Selection}
	if s.Selection.Active {
		out.Selection.Range = s.Selection.Range.Clone()
	}
	if s.Marks != nil {
		ms := *s.Marks
		out.Marks = &ms
	}
	return out
}

// Equal reports whether a and b hold equal documents, selections and pending marks.
func Equal(a, b State) bool {
	if !document.Equal(a.Doc, b.Doc) || !a.Selection.Equal(b.Selection) {
		return false
	}
	if (a.Marks == nil) != (b.Marks == nil) {
		return false
	}
	return a.Marks == nil || *a.Marks == *b.Marks
}

// Validate checks that the selection resolves against the document.
func (s State) Validate() error {
	if s.Doc == nil {
		return ErrNoDocument
	}
	if !s.Selection.Active {
		return nil
	}
	if err := s.Doc.ValidateRange(s.Selection.Range); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	return nil
}

// Select replaces the selection with r.
func Select(s State, r document.Range) (State, error) {
	if s.Doc == nil {
		return s, ErrNoDocument
	}
	if err := s.Doc.ValidateRange(r); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidSelection, err)
	}
	return State{Doc: s.Doc, Selection: document.Select(r.Clone())}, nil
}

// Deselect clears the selection.
func Deselect(s State) State {
	return State{Doc: s.Doc}
}

// SelectAll selects from the start to the end of the document.
func SelectAll(s State) (State, error) {
	if s.Doc == nil {
		return s, ErrNoDocument
	}
	start, err := s.Doc.Start(document.Path{})
	if err != nil {
		return s, err
	}
	end, err := s.Doc.End(document.Path{})
	if err != nil {
		return s, err
	}
	return State{Doc: s.Doc, Selection: document.Select(document.Range{Anchor: start, Focus: end})}, nil
}
