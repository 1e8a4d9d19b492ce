package pagingview

import (
	"fmt"

	"github.com/hnimtadd/pagingview/pager/geometry"
)

// Event is a notification from the display surface. Events are handled in
// the order they are dispatched, one at a time.
type Event interface {
	fmt.Stringer
	event()
}

type (
	// The data source changed.
	ReloadEvent struct{}

	// The content offset moved.
	ScrollEvent struct {
		Offset geometry.Point
	}

	// Scrolling came to a full stop.
	SettleEvent struct{}

	// The container is about to change size, for example on rotation.
	BeginResizeEvent struct{}

	// A layout pass measured the container.
	LayoutEvent struct {
		Size geometry.Size
	}

	// The host moves to a page without scrolling.
	SetPageEvent struct {
		Index int
	}
)

func (ReloadEvent) event()      {}
func (ScrollEvent) event()      {}
func (SettleEvent) event()      {}
func (BeginResizeEvent) event() {}
func (LayoutEvent) event()      {}
func (SetPageEvent) event()     {}

func (ReloadEvent) String() string { return "reload" }

func (e ScrollEvent) String() string {
	return fmt.Sprintf("scroll(%g, %g)", e.Offset.X, e.Offset.Y)
}

func (SettleEvent) String() string      { return "settle" }
func (BeginResizeEvent) String() string { return "begin-resize" }

func (e LayoutEvent) String() string {
	return fmt.Sprintf("layout(%gx%g)", e.Size.Width, e.Size.Height)
}

func (e SetPageEvent) String() string {
	return fmt.Sprintf("set-page(%d)", e.Index)
}
