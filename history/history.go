// Package history keeps undo and redo snapshots of editing state.
//
// Snapshots are whole transform.State values. Rapid edits of the same kind
// (typing, deleting) that land within a merge window share one snapshot so a
// single undo reverts the whole burst.
package history

import (
	"time"

	"github.com/iw2rmb/leaflet/transform"
)

const (
	DefaultLimit       = 1000
	DefaultMergeWindow = time.Second
)

// Kind classifies a recorded edit for coalescing.
type Kind int

const (
	// KindStructural edits never merge with their neighbours.
	KindStructural Kind = iota
	KindTyping
	KindDelete
)

func (k Kind) String() string {
	switch k {
	case KindTyping:
		return "typing"
	case KindDelete:
		return "delete"
	default:
		return "structural"
	}
}

type Options struct {
	// Limit caps the number of undo snapshots. Zero means DefaultLimit; a
	// negative value disables history.
	Limit int

	// MergeWindow is the longest gap between two coalescable edits of the
	// same kind that still share a snapshot. Zero means DefaultMergeWindow; a
	// negative value disables merging.
	MergeWindow time.Duration

	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// Log is a bounded undo/redo stack. It is not safe for concurrent use.
type Log struct {
	opt  Options
	undo []transform.State
	redo []transform.State

	lastKind Kind
	lastAt   time.Time
	open     bool
}

func New(opt Options) *Log {
	if opt.Limit == 0 {
		opt.Limit = DefaultLimit
	}
	if opt.MergeWindow == 0 {
		opt.MergeWindow = DefaultMergeWindow
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	return &Log{opt: opt}
}

// Record pushes prev, the state before an edit of the given kind, and clears
// the redo stack. The push is skipped when the edit continues the previous
// burst of the same coalescable kind.
func (l *Log) Record(prev transform.State, kind Kind) {
	if l.opt.Limit < 0 {
		return
	}
	now := l.opt.Now()
	l.redo = nil

	merge := l.open &&
		kind != KindStructural &&
		kind == l.lastKind &&
		len(l.undo) > 0 &&
		l.opt.MergeWindow > 0 &&
		now.Sub(l.lastAt) <= l.opt.MergeWindow

	l.lastKind = kind
	l.lastAt = now
	l.open = kind != KindStructural
	if merge {
		return
	}

	l.undo = push(l.undo, prev.Clone(), l.opt.Limit)
}

// Break ends the current burst so that the next edit gets its own snapshot.
func (l *Log) Break() { l.open = false }

func (l *Log) CanUndo() bool { return len(l.undo) > 0 }

func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// Undo returns the most recent snapshot that differs from cur and moves cur
// onto the redo stack. It reports false if there is nothing to undo.
func (l *Log) Undo(cur transform.State) (transform.State, bool) {
	prev, ok := pop(&l.undo, cur)
	if !ok {
		return cur, false
	}
	l.redo = append(l.redo, cur.Clone())
	l.open = false
	return prev, true
}

// Redo reverses the last Undo. It reports false if there is nothing to redo.
func (l *Log) Redo(cur transform.State) (transform.State, bool) {
	next, ok := pop(&l.redo, cur)
	if !ok {
		return cur, false
	}
	l.undo = push(l.undo, cur.Clone(), l.opt.Limit)
	l.open = false
	return next, true
}

// Len returns the sizes of the undo and redo stacks.
func (l *Log) Len() (undo, redo int) { return len(l.undo), len(l.redo) }

func push(stack []transform.State, s transform.State, limit int) []transform.State {
	stack = append(stack, s)
	if limit > 0 && len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

// pop removes entries from the top of stack until one differs from cur, and
// returns a copy of it.
func pop(stack *[]transform.State, cur transform.State) (transform.State, bool) {
	for len(*stack) > 0 {
		i := len(*stack) - 1
		s := (*stack)[i]
		*stack = (*stack)[:i]
		if !transform.Equal(s, cur) {
			return s.Clone(), true
		}
	}
	return transform.State{}, false
}
