package pager

import (
	"github.com/hnimtadd/pagingview/pager/cell"
	"github.com/hnimtadd/pagingview/pager/tag"
)

// Host is everything a pager asks of the object that owns it. Every call is
// synchronous and happens on the goroutine driving the pager.
//
// Hosts normally embed BaseHost and override only the slots they need; the
// default of each slot is documented below.
type Host interface {
	// ItemCount returns the number of items to page through. It is queried
	// at every reload and every window computation, so it should be cheap
	// and free of side effects.
	//
	// Default: 0.
	ItemCount() int

	// CellTag returns the tag of the cell that shows index. Cells with equal
	// tags are reused for each other. A zero tag is treated as tag.Default.
	//
	// Default: tag.Default.
	CellTag(index int) tag.Tag

	// NewCell builds a cell for t. It is only called when the pool has no
	// idle cell with that tag.
	//
	// Default: a new *cell.BasicCell.
	NewCell(t tag.Tag) cell.Cell

	// BindCell fills c with the item at index. It is called when index
	// enters the window and again every time the window is recomputed while
	// index stays visible, so it must be idempotent.
	//
	// Default: records index on a *cell.BasicCell, otherwise nothing.
	BindCell(c cell.Cell, index, page int)

	// CellWillAppear is called when the cell at index becomes the current
	// page.
	//
	// Default: nothing.
	CellWillAppear(c cell.Cell, index int)

	// CellWillDisappear is called when the cell at index leaves the window,
	// and also when it stops being the current page but stays resident as a
	// neighbour.
	//
	// Default: nothing.
	CellWillDisappear(c cell.Cell, index int)

	// CellDidAppear is called once scrolling settles on index.
	//
	// Default: nothing.
	CellDidAppear(c cell.Cell, index int)

	// PageChanged is called when scrolling moves the current page. Setting
	// the page index programmatically never calls it.
	//
	// Default: nothing.
	PageChanged(index int)
}

// BaseHost implements every Host slot with its default.
type BaseHost struct{}

var _ Host = BaseHost{}

func (BaseHost) ItemCount() int            { return 0 }
func (BaseHost) CellTag(int) tag.Tag       { return tag.Default }
func (BaseHost) NewCell(tag.Tag) cell.Cell { return &cell.BasicCell{} }

func (BaseHost) BindCell(c cell.Cell, index, _ int) {
	if basic, ok := c.(*cell.BasicCell); ok {
		basic.Index = index
	}
}

func (BaseHost) CellWillAppear(cell.Cell, int)    {}
func (BaseHost) CellWillDisappear(cell.Cell, int) {}
func (BaseHost) CellDidAppear(cell.Cell, int)     {}
func (BaseHost) PageChanged(int)                  {}

// hooks adapts a pager's host and surface to the visible set.
type hooks struct {
	p *Pager
}

func (h hooks) TagFor(index int) tag.Tag {
	t := h.p.host.CellTag(index)
	if t.IsZero() {
		return tag.Default
	}
	return t
}

func (h hooks) NewCell(t tag.Tag) cell.Cell {
	h.p.logger.Debug("building cell", "tag", t.String())
	return h.p.host.NewCell(t)
}

func (h hooks) Attach(c cell.Cell) { h.p.surface.Attach(c) }
func (h hooks) Detach(c cell.Cell) { h.p.surface.Detach(c) }

func (h hooks) Bind(c cell.Cell, index, page int) {
	h.p.host.BindCell(c, index, page)
}

func (h hooks) WillAppear(c cell.Cell, index int) {
	h.p.host.CellWillAppear(c, index)
}

func (h hooks) WillDisappear(c cell.Cell, index int) {
	h.p.host.CellWillDisappear(c, index)
}
