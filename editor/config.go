package editor

import (
	"go.uber.org/zap"

	"github.com/iw2rmb/leaflet/document"
	"github.com/iw2rmb/leaflet/history"
)

// DefaultPlaceholder is shown in an empty document.
const DefaultPlaceholder = "Type '/' for commands..."

// Config configures the editor Model.
type Config struct {
	// Initial document. Nil starts from a single empty paragraph.
	Document *document.Document

	// Session, when set, is edited in place and Document is ignored.
	Session *Session

	// Placeholder replaces DefaultPlaceholder. Use "-" to show none.
	Placeholder string

	// Rendering options.
	Style       Style
	HideToolbar bool

	// KeyMap defaults to DefaultKeyMap() when left zero.
	KeyMap KeyMap

	// Forwarded to the Session.
	History history.Options
	Logger  *zap.Logger

	ReadOnly  bool
	Clipboard Clipboard

	// OnChange is called after every effective change, including moves and
	// selection changes.
	OnChange func(ChangeEvent)
}

func (c Config) placeholder() string {
	switch c.Placeholder {
	case "":
		return DefaultPlaceholder
	case "-":
		return ""
	default:
		return c.Placeholder
	}
}
