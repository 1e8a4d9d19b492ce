package cell

import (
	"github.com/hnimtadd/pagingview/pager/geometry"
)

// Cell is a renderable unit bound to one item index at a time. The pager
// never inspects a cell's content; it only positions it and moves it between
// the display surface and the recycle pool.
//
// Cells are compared by identity, so implementations should be pointer types.
type Cell interface {
	SetFrame(frame geometry.Rect)
	Frame() geometry.Rect
}

// Surface is the display the pager attaches cells to. It also receives the
// scrollable content size and the content offset whenever the pager moves
// them programmatically.
type Surface interface {
	Attach(c Cell)
	Detach(c Cell)
	SetContentSize(size geometry.Size)
	SetContentOffset(offset geometry.Point)
}

// BasicCell is the cell the pager builds when the host does not provide a
// factory. It only remembers its frame and the last index it was bound to.
type BasicCell struct {
	frame geometry.Rect
	Index int
}

func (c *BasicCell) SetFrame(frame geometry.Rect) { c.frame = frame }
func (c *BasicCell) Frame() geometry.Rect          { return c.frame }

// NopSurface discards every surface operation.
type NopSurface struct{}

func (NopSurface) Attach(Cell)                     {}
func (NopSurface) Detach(Cell)                     {}
func (NopSurface) SetContentSize(geometry.Size)    {}
func (NopSurface) SetContentOffset(geometry.Point) {}
