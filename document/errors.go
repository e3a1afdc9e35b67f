package document

import "errors"

// Addressing errors
var (
	// ErrInvalidPath indicates that a path does not resolve to a node.
	ErrInvalidPath = errors.New("path does not resolve to a node")

	// ErrNotText indicates that a path resolves to a block where a text leaf is required.
	ErrNotText = errors.New("path does not address a text leaf")

	// ErrInvalidOffset indicates that an offset lies outside its text leaf.
	ErrInvalidOffset = errors.New("offset out of bounds")
)

// Structural errors reported by Validate.
var (
	// ErrEmptyDocument indicates a document without blocks.
	ErrEmptyDocument = errors.New("document has no blocks")

	// ErrListChild indicates a list container holding something other than list-items.
	ErrListChild = errors.New("list container may only hold list-items")

	// ErrLeafChild indicates a block mixing text leaves with nested blocks,
	// or a text-only block type holding nested blocks.
	ErrLeafChild = errors.New("block mixes inline and block children")

	// ErrEmptyText indicates an empty text leaf that has siblings.
	ErrEmptyText = errors.New("empty text must be the sole child")

	// ErrRootText indicates a text leaf placed directly under the document.
	ErrRootText = errors.New("document children must be blocks")
)
