package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// graphemeCellWidth returns the terminal-cell width of one grapheme cluster.
func graphemeCellWidth(text string) int {
	if text == "\t" {
		return 1
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}
