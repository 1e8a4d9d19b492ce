package pager

import (
	"fmt"

	"github.com/hnimtadd/pagingview/logger"
	"github.com/hnimtadd/pagingview/pager/cell"
	"github.com/hnimtadd/pagingview/pager/geometry"
	"github.com/hnimtadd/pagingview/pager/layout"
	"github.com/hnimtadd/pagingview/pager/pool"
	"github.com/hnimtadd/pagingview/pager/utils"
	"github.com/hnimtadd/pagingview/pager/visible"
)

type (
	Options struct {
		// The axis pages are laid out along. Defaults to horizontal.
		Axis geometry.Axis

		// Gap between consecutive pages along the axis. Defaults to 0.
		Spacing float64

		// Initial size of the container. A pager with an empty container
		// still tracks cells, but every frame is empty and every offset maps
		// to page 0.
		ContainerSize geometry.Size

		// Initial page index. It is clamped at the first reload.
		PageIndex int

		// Caps the idle cells kept per tag. Zero, the default, keeps every
		// released cell.
		MaxPooledPerTag int

		// Display the cells are attached to. Defaults to cell.NopSurface.
		Surface cell.Surface

		// Defaults to logger.Discard.
		Logger logger.Logger
	}

	// Pager shows one item per page out of an arbitrarily large collection
	// while keeping at most three cells alive: the current page and its two
	// neighbours. It turns scroll, resize and reload notifications into
	// window reconciliations and host callbacks.
	//
	// A pager is not safe for concurrent use. Every method must be called
	// from the goroutine that owns the display surface.
	Pager struct {
		host    Host
		surface cell.Surface
		layout  layout.Engine

		// The cells currently detached and waiting for reuse, and the cells
		// currently on the surface. A cell is in exactly one of the two.
		pool    *pool.Pool
		visible *visible.Set

		// The page considered current.
		// Invariant: 0 <= pageIndex <= itemCount after every reconciliation.
		pageIndex int

		// Item count as of the last query to the host.
		itemCount int

		// Item count recorded at the previous reload. A reload that finds
		// the page index equal to it leaves the offset alone, so appending
		// at the tail does not yank the view.
		lastNumberOfItems int

		// Set when a scroll moved the page index and cleared once the new
		// page has been reconciled and announced.
		pageChanged bool

		container   geometry.Size
		contentSize geometry.Size
		offset      geometry.Point
		state       State

		// Re-entrant calls made from host callbacks are queued here and
		// replayed once the outermost call returns.
		running bool
		pending []func()

		logger logger.Logger
	}
)

func New(host Host, opts Options) *Pager {
	if host == nil {
		host = BaseHost{}
	}
	if opts.Surface == nil {
		opts.Surface = cell.NopSurface{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard
	}

	p := &Pager{
		host:    host,
		surface: opts.Surface,
		layout: layout.Engine{
			Axis:    opts.Axis,
			Spacing: opts.Spacing,
		},
		pool:      pool.New(pool.Options{MaxPerTag: opts.MaxPooledPerTag}),
		pageIndex: max(opts.PageIndex, 0),
		container: opts.ContainerSize,
		state:     StateIdle,
		logger:    logger.With(opts.Logger, "component", "pager"),

		// No reload has happened yet, so the first one always syncs the
		// offset, even at page 0.
		lastNumberOfItems: -1,
	}
	p.visible = visible.New(p.pool, hooks{p: p})
	return p
}

// Reload queries the host for the item count and rebuilds the window.
//
// The page index is clamped to [0, itemCount], the content size is
// recomputed, every visible cell is bound again and the content offset is
// moved to the page index. The offset is left untouched when the page index
// equals the item count seen at the previous reload, which is where a user
// sits when items get appended behind the old tail.
func (p *Pager) Reload() {
	p.run(p.reload)
}

// SetPageIndex moves to page without animation. The index is clamped to the
// item range. It never calls Host.PageChanged.
func (p *Pager) SetPageIndex(page int) {
	p.run(func() {
		p.pageIndex = max(page, 0)
		p.pageChanged = false
		p.reconcile()
		p.syncOffset()
	})
}

// ScrollTo reports that the content offset changed because the user
// scrolled, or because the surface moved it.
//
// During a transient resize the change is geometry noise: the window is
// refreshed but the page index is kept and the resize ends. Otherwise the
// page nearest to offset, clamped to the last item, becomes current and
// Host.PageChanged is called if it differs from the previous one.
func (p *Pager) ScrollTo(offset geometry.Point) {
	p.run(func() {
		p.offset = offset
		if p.state == StateTransientResize {
			p.reconcile()
			p.setState(StateIdle)
			return
		}
		p.setState(StateScrolling)

		// Overscrolling past either end never selects a page without an item.
		candidate := utils.Clamp(
			p.layout.PageAt(offset, p.container),
			0, max(p.itemCount-1, 0),
		)
		if candidate != p.pageIndex {
			p.pageIndex = candidate
			p.pageChanged = true
		}
		if p.pageChanged {
			p.pageChanged = false
			p.reconcile()
			p.logger.Info("page changed", "page", p.pageIndex)
			p.host.PageChanged(p.pageIndex)
		}
	})
}

// EndDecelerating reports that scrolling has fully stopped. The cell at the
// page index, if resident, is told it did appear. A pending transient resize
// is kept; only the next ScrollTo ends it.
func (p *Pager) EndDecelerating() {
	p.run(func() {
		if p.state == StateScrolling {
			p.setState(StateIdle)
		}
		if c := p.CellAt(p.pageIndex); c != nil {
			p.host.CellDidAppear(c, p.pageIndex)
		}
	})
}

// BeginResize reports that the container is about to change size, for
// example because the device rotates. Offset changes are not turned into
// page changes until the next ScrollTo.
func (p *Pager) BeginResize() {
	p.run(func() {
		p.setState(StateTransientResize)
	})
}

// Layout reports the container's measured size. If it differs from the
// previous one the pager reloads, which snaps the offset back onto the
// current page under the new geometry; otherwise cells are only laid out
// again.
func (p *Pager) Layout(size geometry.Size) {
	p.run(func() {
		if size == p.container {
			p.layout.Apply(p.visible.All(), p.container)
			return
		}
		p.logger.Debug("container resized",
			"from", fmt.Sprintf("%gx%g", p.container.Width, p.container.Height),
			"to", fmt.Sprintf("%gx%g", size.Width, size.Height))
		p.container = size
		p.reload()
	})
}

// Resize is BeginResize followed by Layout.
func (p *Pager) Resize(size geometry.Size) {
	p.BeginResize()
	p.Layout(size)
}

func (p *Pager) PageIndex() int                { return p.pageIndex }
func (p *Pager) ItemCount() int                { return p.itemCount }
func (p *Pager) State() State                  { return p.state }
func (p *Pager) ContentOffset() geometry.Point { return p.offset }
func (p *Pager) ContentSize() geometry.Size    { return p.contentSize }
func (p *Pager) ContainerSize() geometry.Size  { return p.container }
func (p *Pager) Axis() geometry.Axis           { return p.layout.Axis }
func (p *Pager) Pool() *pool.Pool              { return p.pool }

// PageOffset returns the content offset at which page is exactly in view
// under the current container size.
func (p *Pager) PageOffset(page int) geometry.Point {
	return p.layout.OffsetFor(page, p.container)
}

// CellAt returns the resident cell showing index, or nil.
func (p *Pager) CellAt(index int) cell.Cell {
	if e, ok := p.visible.Get(index); ok {
		return e.Cell
	}
	return nil
}

// VisibleIndices returns the resident indices in ascending order.
func (p *Pager) VisibleIndices() []int {
	return p.visible.Indices()
}

// run executes fn unless another pager call is already in progress, in which
// case fn is queued behind it. Host callbacks may therefore call back into
// the pager without observing, or corrupting, a half-reconciled window.
func (p *Pager) run(fn func()) {
	if p.running {
		p.pending = append(p.pending, fn)
		return
	}
	p.running = true
	defer func() {
		p.running = false
		p.pending = nil
	}()

	fn()
	for len(p.pending) > 0 {
		next := p.pending[0]
		p.pending = p.pending[1:]
		next()
	}
}

func (p *Pager) reload() {
	count := max(p.host.ItemCount(), 0)
	p.itemCount = count
	p.pageIndex = utils.Clamp(p.pageIndex, 0, count)

	p.contentSize = p.layout.ContentSize(p.container, count)
	p.surface.SetContentSize(p.contentSize)

	p.visible.Invalidate()
	p.reconcile()

	if p.pageIndex != p.lastNumberOfItems {
		p.syncOffset()
	} else {
		p.logger.Debug("keeping offset after reload",
			"page", p.pageIndex, "previousCount", p.lastNumberOfItems)
	}
	p.lastNumberOfItems = count
}

// reconcile brings the visible set in line with the page index and lays the
// resident cells out.
func (p *Pager) reconcile() {
	p.itemCount = max(p.host.ItemCount(), 0)
	p.pageIndex = utils.Clamp(p.pageIndex, 0, p.itemCount)

	res := p.visible.Reconcile(p.pageIndex, p.itemCount)
	p.layout.Apply(p.visible.All(), p.container)

	if len(res.Added) > 0 || len(res.Evicted) > 0 {
		p.logger.Debug("reconciled",
			"page", p.pageIndex,
			"count", p.itemCount,
			"added", res.Added,
			"evicted", res.Evicted,
			"reused", res.Reused)
	}
	if res.Discarded > 0 {
		p.logger.Warn("pool at capacity, cells dropped", "dropped", res.Discarded)
	}
}

func (p *Pager) syncOffset() {
	p.offset = p.layout.OffsetFor(p.pageIndex, p.container)
	p.surface.SetContentOffset(p.offset)
}

func (p *Pager) setState(s State) {
	if p.state == s {
		return
	}
	p.logger.Debug("state", "from", p.state.String(), "to", s.String())
	p.state = s
}
