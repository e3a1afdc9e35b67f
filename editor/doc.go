// Package editor provides a Bubble Tea rich-text editor component backed by
// the document and transform packages.
//
// Session owns the editing state of one document and its undo history. Model
// renders a formatting toolbar and the document in a scrollable viewport, and
// maps keys, toolbar clicks and mouse selection onto Session edits. Hosts
// observe edits through Config.OnChange.
package editor
