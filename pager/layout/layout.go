package layout

import (
	"iter"
	"math"

	"github.com/hnimtadd/pagingview/pager/cell"
	"github.com/hnimtadd/pagingview/pager/geometry"
)

// Engine positions one cell per page along a single axis. Every result is a
// pure function of the index, the container size, the axis and the spacing.
type Engine struct {
	Axis geometry.Axis

	// Gap between two consecutive pages along the axis. The cross axis is
	// not affected.
	Spacing float64
}

// Stride returns the distance between the origins of two consecutive pages.
func (e Engine) Stride(container geometry.Size) float64 {
	return container.Extent(e.Axis) + e.Spacing
}

// Frame returns the rectangle of the cell showing index. Its size is always
// the container size.
func (e Engine) Frame(index int, container geometry.Size) geometry.Rect {
	return geometry.Rect{
		Origin: e.OffsetFor(index, container),
		Size:   container,
	}
}

// ContentSize returns the scrollable extent needed to page through count
// items. Spacing only separates pages, so the last page ends flush with the
// content.
func (e Engine) ContentSize(container geometry.Size, count int) geometry.Size {
	extent := e.Stride(container)*float64(max(count, 0)) - e.Spacing
	return container.WithExtent(e.Axis, max(extent, 0))
}

// OffsetFor returns the content offset at which page is exactly in view.
func (e Engine) OffsetFor(page int, container geometry.Size) geometry.Point {
	return geometry.PointAlong(e.Axis, float64(page)*e.Stride(container))
}

// PageAt returns the page nearest to offset. A container with no extent has
// only page 0.
func (e Engine) PageAt(offset geometry.Point, container geometry.Size) int {
	stride := e.Stride(container)
	if stride <= 0 {
		return 0
	}
	return int(math.Round(offset.Along(e.Axis) / stride))
}

// Apply assigns a frame to every cell in cells.
func (e Engine) Apply(cells iter.Seq2[int, cell.Cell], container geometry.Size) {
	for index, c := range cells {
		c.SetFrame(e.Frame(index, container))
	}
}
