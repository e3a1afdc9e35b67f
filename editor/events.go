package editor

import "github.com/iw2rmb/leaflet/document"

type ChangeEvent struct {
	Version   uint64
	Selection document.Selection
	Change    Change

	// Document is a copy the host may keep or mutate.
	Document *document.Document

	// Text is the plain text of Document, one line per text block.
	Text string
}

func buildChangeEvent(s *Session) ChangeEvent {
	doc := s.Document().Clone()
	ev := ChangeEvent{
		Version:   s.Version(),
		Selection: cloneSelection(s.Selection()),
		Document:  doc,
		Text:      doc.PlainText(),
	}
	if c, ok := s.LastChange(); ok {
		ev.Change = c
	}
	return ev
}
