package transform

import "github.com/iw2rmb/leaflet/document"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveBlock
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // block start (or doc start for MoveDoc)
	DirEnd  // block end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the focus; if false collapses
}

// MoveCursor moves the focus of the selection. Without Extend the result is a
// collapsed cursor; moving left or right from an expanded selection collapses
// it to the corresponding edge.
func MoveCursor(s State, m Move) (State, error) {
	if err := s.Validate(); err != nil {
		return s, err
	}
	if !s.Selection.Active {
		return s, nil
	}

	r := s.Selection.Range
	if !m.Extend && !r.IsCollapsed() && m.Unit == MoveGrapheme {
		start, end := r.Edges()
		switch m.Dir {
		case DirLeft:
			return State{Doc: s.Doc, Selection: document.Select(document.Collapsed(start.Clone()))}, nil
		case DirRight:
			return State{Doc: s.Doc, Selection: document.Select(document.Collapsed(end.Clone()))}, nil
		}
	}

	leaves := s.Doc.LeafBlocks()
	i, abs, err := locate(s.Doc, leaves, r.Focus)
	if err != nil {
		return s, err
	}
	ni, nabs := moveCursor(leaves, i, abs, m)
	focus := pointIn(leaves[ni].Block, leaves[ni].Path, nabs, affinityBackward)

	anchor := focus
	if m.Extend {
		anchor = r.Anchor.Clone()
	}
	return State{Doc: s.Doc, Selection: document.Select(document.Range{Anchor: anchor, Focus: focus})}, nil
}

// moveCursor maps a (leaf index, block offset) position through m.
func moveCursor(leaves []document.BlockEntry, i, abs int, m Move) (int, int) {
	last := len(leaves) - 1
	length := func(i int) int { return inlineLen(leaves[i].Block) }

	if m.Unit == MoveDoc {
		switch m.Dir {
		case DirHome, DirUp, DirLeft:
			return 0, 0
		case DirEnd, DirDown, DirRight:
			return last, length(last)
		}
		return i, abs
	}

	switch m.Dir {
	case DirLeft:
		if m.Unit == MoveBlock {
			if abs == 0 && i > 0 {
				return i - 1, 0
			}
			return i, 0
		}
		if abs > 0 {
			return i, abs - 1
		}
		if i > 0 {
			return i - 1, length(i - 1)
		}
	case DirRight:
		if m.Unit == MoveBlock {
			if abs == length(i) && i < last {
				return i + 1, length(i + 1)
			}
			return i, length(i)
		}
		if abs < length(i) {
			return i, abs + 1
		}
		if i < last {
			return i + 1, 0
		}
	case DirUp:
		if i > 0 {
			return i - 1, min(abs, length(i-1))
		}
		return i, 0
	case DirDown:
		if i < last {
			return i + 1, min(abs, length(i+1))
		}
		return i, length(i)
	case DirHome:
		return i, 0
	case DirEnd:
		return i, length(i)
	}
	return i, abs
}
