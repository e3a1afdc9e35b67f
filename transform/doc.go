// Package transform implements the pure editing operations over a document.
//
// Every operation takes a State and returns a new State; the input is never
// mutated, so callers may keep old states (for example as undo snapshots)
// without copying. An operation either applies completely or returns an
// error together with the unchanged input state.
//
// Selections are reattached after each structural edit. Points are tracked
// by the block that holds them plus a grapheme offset inside that block, so
// splitting, merging, re-nesting and normalizing text leaves never leaves a
// dangling path behind.
package transform
