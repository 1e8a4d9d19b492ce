// Package visible tracks which cell shows which item index and reconciles
// that mapping against a freshly computed window.
package visible

import (
	"iter"
	"maps"
	"slices"

	"github.com/hnimtadd/pagingview/pager/cell"
	"github.com/hnimtadd/pagingview/pager/pool"
	"github.com/hnimtadd/pagingview/pager/tag"
	"github.com/hnimtadd/pagingview/pager/utils"
	"github.com/hnimtadd/pagingview/pager/window"
)

type (
	// Hooks is everything the set calls out to while reconciling. Calls are
	// synchronous and must not reconcile the same set again.
	Hooks interface {
		// Tag of the cell that must show index.
		TagFor(index int) tag.Tag
		// Build a new cell on a pool miss.
		NewCell(t tag.Tag) cell.Cell

		Attach(c cell.Cell)
		Detach(c cell.Cell)

		// Fill c with the item at index. page is the current page index.
		Bind(c cell.Cell, index, page int)

		WillAppear(c cell.Cell, index int)
		WillDisappear(c cell.Cell, index int)
	}

	Entry struct {
		Tag  tag.Tag
		Cell cell.Cell
	}

	Set struct {
		entries map[int]Entry
		pool    *pool.Pool
		hooks   Hooks

		// Inputs of the last reconciliation.
		page, count int
		reconciled  bool

		// Set by Invalidate, forces retained cells to be bound again.
		stale bool

		// Guards against a hook reconciling the set it was called from.
		busy bool
	}

	// Result summarises one reconciliation.
	Result struct {
		Added     []int
		Evicted   []int
		Rebound   []int
		Reused    int // added cells that came from the pool
		Discarded int // evicted cells the pool refused
	}
)

func New(p *pool.Pool, hooks Hooks) *Set {
	return &Set{
		entries: make(map[int]Entry, 3),
		pool:    p,
		hooks:   hooks,
	}
}

// Reconcile makes the set hold exactly window.Compute(page, count).
//
// Cells outside the new window are told they will disappear, detached and
// released to the pool. A cell that was the current page and is now only
// adjacent is told it will disappear but stays attached. Missing indices get
// a cell from the pool or the factory and are bound.
//
// Cells that stay resident are bound again only when page or count changed
// since the last call, or after Invalidate. Calling Reconcile twice with the
// same arguments fires no hooks the second time.
func (s *Set) Reconcile(page, count int) Result {
	utils.Assert(!s.busy, "visible set reconciled from one of its own hooks")
	s.busy = true
	defer func() { s.busy = false }()

	var res Result
	prevPage, wasReconciled := s.page, s.reconciled
	changed := !wasReconciled || s.stale || page != s.page || count != s.count
	pageMoved := !wasReconciled || page != prevPage

	// Removal pass.
	for _, index := range s.Indices() {
		entry := s.entries[index]
		switch window.Classify(index, page, count) {
		case window.ClassOutside:
			s.hooks.WillDisappear(entry.Cell, index)
			s.hooks.Detach(entry.Cell)
			delete(s.entries, index)
			if !s.pool.Enqueue(entry.Tag, entry.Cell) {
				res.Discarded++
			}
			res.Evicted = append(res.Evicted, index)
		case window.ClassAdjacent:
			// Sliding from current to adjacent: notify, keep resident.
			if wasReconciled && pageMoved && index == prevPage {
				s.hooks.WillDisappear(entry.Cell, index)
			}
		case window.ClassCurrent:
		}
	}

	// Addition pass.
	for _, index := range window.Compute(page, count) {
		entry, ok := s.entries[index]
		if ok {
			if !changed {
				continue
			}
			s.hooks.Bind(entry.Cell, index, page)
			res.Rebound = append(res.Rebound, index)
			if index == page && pageMoved {
				s.hooks.WillAppear(entry.Cell, index)
			}
			continue
		}

		t := s.hooks.TagFor(index)
		c, hit := s.pool.Dequeue(t, s.hooks.NewCell)
		utils.Assertf(c != nil, "no cell for index %d with tag %s", index, t)
		_, resident := s.indexOf(c)
		utils.Assertf(!resident, "cell for index %d is already visible", index)
		if hit {
			res.Reused++
		}

		s.hooks.Attach(c)
		s.entries[index] = Entry{Tag: t, Cell: c}
		s.hooks.Bind(c, index, page)
		res.Added = append(res.Added, index)
		if index == page {
			s.hooks.WillAppear(c, index)
		}
	}

	s.page, s.count = page, count
	s.reconciled, s.stale = true, false
	return res
}

// Invalidate marks every resident cell as needing a new bind on the next
// reconciliation, even if the page and count did not change.
func (s *Set) Invalidate() {
	s.stale = true
}

func (s *Set) Get(index int) (Entry, bool) {
	e, ok := s.entries[index]
	return e, ok
}

// Indices returns the resident indices in ascending order.
func (s *Set) Indices() []int {
	return slices.Sorted(maps.Keys(s.entries))
}

func (s *Set) Len() int {
	return len(s.entries)
}

// All yields resident cells by ascending index.
func (s *Set) All() iter.Seq2[int, cell.Cell] {
	return func(yield func(int, cell.Cell) bool) {
		for _, index := range s.Indices() {
			if !yield(index, s.entries[index].Cell) {
				return
			}
		}
	}
}

// Contains reports whether c is resident.
func (s *Set) Contains(c cell.Cell) bool {
	_, ok := s.indexOf(c)
	return ok
}

func (s *Set) indexOf(c cell.Cell) (int, bool) {
	for index, e := range s.entries {
		if e.Cell == c {
			return index, true
		}
	}
	return 0, false
}
