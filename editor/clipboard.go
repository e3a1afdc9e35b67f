package editor

// Clipboard provides editor-level clipboard integration. Text crosses the
// clipboard as plain text, one line per block.
//
// Errors must not crash the UI; failures are ignored.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
