// Package window decides which item indices must have a live cell.
//
// The window is the current page plus one neighbour on each side, clipped
// to the item range. It never depends on anything but the page index and
// the item count.
package window

import "fmt"

// Class places an index relative to the current page.
type Class int

const (
	// The index is the current page.
	ClassCurrent Class = iota

	// The index is one page before or after the current page and exists in
	// the collection. Its cell stays resident.
	ClassAdjacent

	// The index is not in the window. Its cell must be released.
	ClassOutside
)

func (c Class) String() string {
	switch c {
	case ClassCurrent:
		return "current"
	case ClassAdjacent:
		return "adjacent"
	case ClassOutside:
		return "outside"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Compute returns {page-1, page, page+1} ∩ [0, count-1] in ascending order.
// It is empty when count is zero. A negative page is not rejected here; the
// caller clamps it.
func Compute(page, count int) []int {
	if count <= 0 {
		return nil
	}
	indices := make([]int, 0, 3)
	for i := page - 1; i <= page+1; i++ {
		if i >= 0 && i < count {
			indices = append(indices, i)
		}
	}
	return indices
}

// Classify places index relative to page for a collection of count items.
func Classify(index, page, count int) Class {
	if index < 0 || index >= count {
		return ClassOutside
	}
	switch index - page {
	case 0:
		return ClassCurrent
	case -1, 1:
		return ClassAdjacent
	default:
		return ClassOutside
	}
}

// Contains reports whether index is part of the window.
func Contains(index, page, count int) bool {
	return Classify(index, page, count) != ClassOutside
}
