package pagingview

import (
	"fmt"
	"runtime/debug"

	"github.com/hnimtadd/pagingview/logger"
	"github.com/hnimtadd/pagingview/pager"
	"github.com/hnimtadd/pagingview/pager/cell"
	"github.com/hnimtadd/pagingview/pager/geometry"
)

type PagingView struct {
	// The paging engine. It owns the page index, the visible cells and the
	// recycle pool, and knows nothing about where its events come from.
	pager *pager.Pager

	logger logger.Logger
}

type Options struct {
	Axis            geometry.Axis
	Spacing         float64
	ContainerSize   geometry.Size
	PageIndex       int
	MaxPooledPerTag int
	Surface         cell.Surface
	Logger          logger.Logger
}

// NewPagingView creates a view that pages through the items of host.
//
// Nothing is shown until the first ReloadEvent is dispatched.
func NewPagingView(host pager.Host, opts Options) *PagingView {
	if opts.Logger == nil {
		opts.Logger = logger.Discard
	}
	return &PagingView{
		pager: pager.New(host, pager.Options{
			Axis:            opts.Axis,
			Spacing:         opts.Spacing,
			ContainerSize:   opts.ContainerSize,
			PageIndex:       opts.PageIndex,
			MaxPooledPerTag: opts.MaxPooledPerTag,
			Surface:         opts.Surface,
			Logger:          opts.Logger,
		}),
		logger: opts.Logger,
	}
}

// Dispatch handles one event from the display surface.
//
// The pager reports no errors of its own; a broken invariant or a panicking
// host callback is recovered here and returned instead of taking the caller
// down.
func (v *PagingView) Dispatch(ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("panic while handling event",
				"event", ev.String(), "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic while handling %s: %v", ev, r)
		}
	}()

	switch e := ev.(type) {
	case ReloadEvent:
		v.pager.Reload()
	case ScrollEvent:
		v.pager.ScrollTo(e.Offset)
	case SettleEvent:
		v.pager.EndDecelerating()
	case BeginResizeEvent:
		v.pager.BeginResize()
	case LayoutEvent:
		v.pager.Layout(e.Size)
	case SetPageEvent:
		v.pager.SetPageIndex(e.Index)
	case nil:
		return fmt.Errorf("nil event")
	default:
		return fmt.Errorf("unknown event %T", ev)
	}
	return nil
}

// DispatchAll handles events in order and stops at the first error.
func (v *PagingView) DispatchAll(events ...Event) error {
	for _, ev := range events {
		if err := v.Dispatch(ev); err != nil {
			return err
		}
	}
	return nil
}

func (v *PagingView) Pager() *pager.Pager {
	return v.pager
}

func (v *PagingView) PageIndex() int {
	return v.pager.PageIndex()
}
