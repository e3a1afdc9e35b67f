// Package document implements the block-structured rich-text document model.
//
// A Document is an ordered, never-empty sequence of Blocks. Blocks either hold
// inline Text leaves (paragraph, heading-one, list-item) or other Blocks (list
// containers, list-items with nested lists). Text leaves carry bold/italic
// marks.
//
// Points address Text leaves by Path (child indexes from the root) and a
// 0-based grapheme Offset. Ranges pair an anchor with a focus point; the
// anchor may come after the focus in document order.
//
// The package defines legal shapes only. Mutation lives in the transform
// package; Normalize is the single exception and only touches values the
// caller owns.
package document
