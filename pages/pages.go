// Package pages holds the sidebar's ordered page list and a Bubble Tea model
// that displays and reorders it.
package pages

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
)

// DefaultTitle names pages created by Add.
const DefaultTitle = "Untitled"

var ErrDuplicateID = errors.New("pages: duplicate page id")

type Page struct {
	ID    string `mapstructure:"id"`
	Title string `mapstructure:"title"`
}

// List is an ordered page list. The zero value is an empty list.
type List struct {
	pages []Page
}

// Seed returns the pages a fresh workspace starts with.
func Seed() []Page {
	return []Page{
		{ID: "1", Title: "Getting Started"},
		{ID: "2", Title: "Project Ideas"},
		{ID: "3", Title: "Tasks"},
	}
}

// NewList copies pages into a new list. Ids must be unique.
func NewList(pages []Page) (*List, error) {
	seen := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		if _, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return &List{pages: slices.Clone(pages)}, nil
}

func (l *List) Len() int { return len(l.pages) }

// Pages returns a copy of the pages in order.
func (l *List) Pages() []Page { return slices.Clone(l.pages) }

func (l *List) At(i int) (Page, bool) {
	if i < 0 || i >= len(l.pages) {
		return Page{}, false
	}
	return l.pages[i], true
}

// Index returns the position of the page with id, or -1.
func (l *List) Index(id string) int {
	return slices.IndexFunc(l.pages, func(p Page) bool { return p.ID == id })
}

// Add appends an untitled page. Its id is the list length plus one, bumped
// past any id already taken.
func (l *List) Add() Page {
	n := len(l.pages) + 1
	for l.Index(strconv.Itoa(n)) >= 0 {
		n++
	}
	p := Page{ID: strconv.Itoa(n), Title: DefaultTitle}
	l.pages = append(l.pages, p)
	return p
}

// Reorder moves the page activeID to the index currently held by overID.
// Equal or unknown ids leave the list unchanged.
func (l *List) Reorder(activeID, overID string) bool {
	if activeID == overID {
		return false
	}
	from, to := l.Index(activeID), l.Index(overID)
	if from < 0 || to < 0 {
		return false
	}
	l.pages = Move(l.pages, from, to)
	return true
}

// Move removes the item at from and inserts it at to, in place. Out of range
// indexes leave items unchanged.
func Move[T any](items []T, from, to int) []T {
	if from == to || from < 0 || to < 0 || from >= len(items) || to >= len(items) {
		return items
	}
	it := items[from]
	if from < to {
		copy(items[from:to], items[from+1:to+1])
	} else {
		copy(items[to+1:from+1], items[to:from])
	}
	items[to] = it
	return items
}
