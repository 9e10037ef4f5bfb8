// Package history keeps the back/forward stack of visited pages.
package history

import "tekstitv/internal/domain"

// History is a linear navigation stack with truncate-on-branch
// semantics: adding a page while somewhere in the middle of the stack
// discards everything ahead of the cursor.
type History struct {
	pages  []domain.PageAddress
	cursor int
}

// New seeds a single-entry stack positioned at first.
func New(first domain.PageAddress) *History {
	return &History{pages: []domain.PageAddress{first}}
}

// Current returns the address at the cursor.
func (h *History) Current() domain.PageAddress {
	return h.pages[h.cursor]
}

// Len returns the number of stored addresses.
func (h *History) Len() int {
	return len(h.pages)
}

// Add pushes a new address after the cursor, discarding any forward
// entries, and moves the cursor onto it.
func (h *History) Add(p domain.PageAddress) {
	h.cursor++
	h.pages = append(h.pages[:h.cursor], p)
}

// Prev moves the cursor back one entry and returns the address there.
// At the oldest entry it reports false and stays put.
func (h *History) Prev() (domain.PageAddress, bool) {
	if h.cursor == 0 {
		return domain.PageAddress{}, false
	}
	h.cursor--
	return h.pages[h.cursor], true
}

// Next moves the cursor forward one entry and returns the address there.
// At the newest entry it reports false and stays put.
func (h *History) Next() (domain.PageAddress, bool) {
	if h.cursor >= len(h.pages)-1 {
		return domain.PageAddress{}, false
	}
	h.cursor++
	return h.pages[h.cursor], true
}

// PrevTrunc moves the cursor back like Prev and also drops the entries
// after it, so an address unwound from (a failed load) cannot be reached
// with Next again.
func (h *History) PrevTrunc() (domain.PageAddress, bool) {
	if h.cursor == 0 {
		return domain.PageAddress{}, false
	}
	h.cursor--
	h.pages = h.pages[:h.cursor+1]
	return h.pages[h.cursor], true
}
