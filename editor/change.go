package editor

import "github.com/iw2rmb/leaflet/document"

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceHistory
)

func (s ChangeSource) String() string {
	if s == ChangeSourceHistory {
		return "history"
	}
	return "local"
}

// Change describes one effective mutation of a Session.
type Change struct {
	Source ChangeSource

	// Op names the operation, e.g. "toggle-mark" or "insert-text".
	Op string

	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore document.Selection
	SelectionAfter  document.Selection

	// DocumentChanged is false for selection-only and pending-mark changes.
	DocumentChanged bool
}

func cloneSelection(s document.Selection) document.Selection {
	if !s.Active {
		return document.Selection{}
	}
	return document.Select(s.Range.Clone())
}
