package pager

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/hnimtadd/pagingview/logger"
	"github.com/hnimtadd/pagingview/pager/cell"
	"github.com/hnimtadd/pagingview/pager/geometry"
	"github.com/hnimtadd/pagingview/pager/tag"
	"github.com/hnimtadd/pagingview/pager/window"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var phone = geometry.Size{Width: 320, Height: 480}

type photoCell struct {
	cell.BasicCell
	id int
}

// testHost records every callback in order.
type testHost struct {
	BaseHost
	count  int
	events []string
	pages  []int
	built  int

	onPageChanged func(index int)
}

func (h *testHost) ItemCount() int { return h.count }

func (h *testHost) CellTag(index int) tag.Tag {
	return tag.For[photoCell]()
}

func (h *testHost) NewCell(t tag.Tag) cell.Cell {
	h.built++
	return &photoCell{id: h.built}
}

func (h *testHost) BindCell(c cell.Cell, index, page int) {
	h.events = append(h.events, fmt.Sprintf("bind %d@%d", index, page))
}

func (h *testHost) CellWillAppear(c cell.Cell, index int) {
	h.events = append(h.events, fmt.Sprintf("willAppear %d", index))
}

func (h *testHost) CellWillDisappear(c cell.Cell, index int) {
	h.events = append(h.events, fmt.Sprintf("willDisappear %d", index))
}

func (h *testHost) CellDidAppear(c cell.Cell, index int) {
	h.events = append(h.events, fmt.Sprintf("didAppear %d", index))
}

func (h *testHost) PageChanged(index int) {
	h.pages = append(h.pages, index)
	if h.onPageChanged != nil {
		h.onPageChanged(index)
	}
}

func (h *testHost) take() []string {
	events := h.events
	h.events = nil
	return events
}

type testSurface struct {
	attached    map[cell.Cell]bool
	contentSize geometry.Size
	offsets     []geometry.Point
}

func newTestSurface() *testSurface {
	return &testSurface{attached: map[cell.Cell]bool{}}
}

func (s *testSurface) Attach(c cell.Cell) { s.attached[c] = true }
func (s *testSurface) Detach(c cell.Cell) { delete(s.attached, c) }

func (s *testSurface) SetContentSize(size geometry.Size) { s.contentSize = size }

func (s *testSurface) SetContentOffset(offset geometry.Point) {
	s.offsets = append(s.offsets, offset)
}

func newTestPager(count int, opts Options) (*Pager, *testHost, *testSurface) {
	host := &testHost{count: count}
	surface := newTestSurface()
	if opts.ContainerSize == (geometry.Size{}) {
		opts.ContainerSize = phone
	}
	opts.Surface = surface
	return New(host, opts), host, surface
}

func pageOffset(page int) geometry.Point {
	return geometry.Point{X: float64(page) * phone.Width}
}

func assertInvariants(t *testing.T, p *Pager, s *testSurface) {
	t.Helper()
	want := window.Compute(p.PageIndex(), p.ItemCount())
	if len(want) == 0 {
		assert.Empty(t, p.VisibleIndices())
	} else {
		assert.Equal(t, want, p.VisibleIndices())
	}
	assert.GreaterOrEqual(t, p.PageIndex(), 0)
	assert.LessOrEqual(t, p.PageIndex(), p.ItemCount())
	for _, index := range p.VisibleIndices() {
		c := p.CellAt(index)
		assert.False(t, p.Pool().Contains(c), "cell at %d is pooled", index)
		assert.True(t, s.attached[c], "cell at %d is detached", index)
	}
	assert.Len(t, s.attached, len(p.VisibleIndices()))
}

func TestPager_FirstPage(t *testing.T) {
	p, host, surface := newTestPager(5, Options{})

	p.Reload()
	assert.Equal(t, []int{0, 1}, p.VisibleIndices())
	assert.Equal(t, geometry.Size{Width: 1600, Height: 480}, surface.contentSize)
	assert.Equal(t, []string{"bind 0@0", "willAppear 0", "bind 1@0"}, host.take())
	assert.Zero(t, p.Pool().Total(), "nothing evicted")

	p.EndDecelerating()
	assert.Equal(t, []string{"didAppear 0"}, host.take())
	assertInvariants(t, p, surface)
}

func TestPager_LayoutPositionsCells(t *testing.T) {
	p, _, _ := newTestPager(5, Options{Spacing: 10, PageIndex: 2})
	p.Reload()

	assert.Equal(t, geometry.Rect{Origin: geometry.Point{X: 330}, Size: phone},
		p.CellAt(1).Frame())
	assert.Equal(t, geometry.Rect{Origin: geometry.Point{X: 990}, Size: phone},
		p.CellAt(3).Frame())
	assert.Equal(t, geometry.Point{X: 660}, p.ContentOffset())
}

func TestPager_VerticalAxis(t *testing.T) {
	p, _, surface := newTestPager(3, Options{Axis: geometry.AxisVertical})
	p.Reload()

	assert.Equal(t, geometry.Size{Width: 320, Height: 1440}, surface.contentSize)
	p.ScrollTo(geometry.Point{Y: 500})
	assert.Equal(t, 1, p.PageIndex())
	assert.Equal(t, 480.0, p.CellAt(1).Frame().Origin.Y)
}

func TestPager_ScrollForward(t *testing.T) {
	p, host, surface := newTestPager(5, Options{PageIndex: 1})
	p.Reload()
	evicted := p.CellAt(0)
	host.take()

	p.ScrollTo(pageOffset(2))
	assert.Equal(t, 2, p.PageIndex())
	assert.Equal(t, []int{1, 2, 3}, p.VisibleIndices())
	assert.Same(t, evicted, p.CellAt(3), "index 3 reuses the cell evicted from 0")
	assert.Equal(t, 3, host.built)
	assert.Equal(t, []int{2}, host.pages)
	assert.Equal(t, StateScrolling, p.State())

	p.EndDecelerating()
	assert.Equal(t, StateIdle, p.State())
	assert.Equal(t, []string{
		"willDisappear 0",
		"willDisappear 1",
		"bind 1@2",
		"bind 2@2",
		"willAppear 2",
		"bind 3@2",
		"didAppear 2",
	}, host.take())
	assertInvariants(t, p, surface)
}

func TestPager_PageChangedOncePerTransition(t *testing.T) {
	p, host, _ := newTestPager(5, Options{})
	p.Reload()

	// Dragging through page 0 into page 1 and resting there.
	for _, x := range []float64{40, 120, 159, 161, 200, 300, 320} {
		p.ScrollTo(geometry.Point{X: x})
	}
	p.EndDecelerating()
	assert.Equal(t, []int{1}, host.pages)

	// And back again.
	for _, x := range []float64{300, 200, 100, 0} {
		p.ScrollTo(geometry.Point{X: x})
	}
	assert.Equal(t, []int{1, 0}, host.pages)
}

func TestPager_SetPageIndexIsSilent(t *testing.T) {
	p, host, surface := newTestPager(10, Options{})
	p.Reload()

	p.SetPageIndex(6)
	assert.Equal(t, 6, p.PageIndex())
	assert.Empty(t, host.pages)
	assert.Equal(t, []int{5, 6, 7}, p.VisibleIndices())
	assert.Equal(t, pageOffset(6), p.ContentOffset())
	assert.Equal(t, pageOffset(6), surface.offsets[len(surface.offsets)-1])

	// The surface echoing the programmatic offset is not a page change.
	p.ScrollTo(pageOffset(6))
	assert.Empty(t, host.pages)
	assertInvariants(t, p, surface)
}

func TestPager_SetPageIndexClamps(t *testing.T) {
	p, _, surface := newTestPager(4, Options{})
	p.Reload()

	p.SetPageIndex(-3)
	assert.Equal(t, 0, p.PageIndex())

	p.SetPageIndex(99)
	assert.Equal(t, 4, p.PageIndex())
	assert.Equal(t, []int{3}, p.VisibleIndices())
	assertInvariants(t, p, surface)
}

func TestPager_ScrollPastEndStopsAtLastItem(t *testing.T) {
	p, host, surface := newTestPager(3, Options{})
	p.Reload()
	host.take()

	p.ScrollTo(geometry.Point{X: 2.6 * phone.Width})
	assert.Equal(t, 2, p.PageIndex())
	assert.Equal(t, []int{2}, host.pages)
	assert.Equal(t, []int{1, 2}, p.VisibleIndices())
	assertInvariants(t, p, surface)

	p.ScrollTo(pageOffset(7))
	assert.Equal(t, 2, p.PageIndex())
	assert.Equal(t, []int{2}, host.pages, "overscroll does not announce a page")

	host.take()
	p.EndDecelerating()
	assert.Equal(t, []string{"didAppear 2"}, host.take())

	p.ScrollTo(geometry.Point{X: -500})
	assert.Equal(t, 0, p.PageIndex())
	assert.Equal(t, []int{2, 0}, host.pages)
}

func TestPager_ReloadIdempotentWindow(t *testing.T) {
	p, host, surface := newTestPager(5, Options{PageIndex: 2})
	p.Reload()
	built := host.built
	host.take()

	p.Reload()
	// A reload rebinds resident cells but never tears them down.
	assert.Equal(t, []string{"bind 1@2", "bind 2@2", "bind 3@2"}, host.take())
	assert.Equal(t, built, host.built)
	assert.Zero(t, p.Pool().Total())

	// A scroll that stays on the same page fires nothing at all.
	p.ScrollTo(geometry.Point{X: 700})
	assert.Empty(t, host.take())
	assert.Empty(t, host.pages)
	assertInvariants(t, p, surface)
}

func TestPager_EmptyCollection(t *testing.T) {
	p, host, surface := newTestPager(5, Options{PageIndex: 3})
	p.Reload()
	host.take()

	host.count = 0
	p.Reload()
	assert.Empty(t, p.VisibleIndices())
	assert.Equal(t, 0, p.PageIndex())
	assert.Equal(t, 3, p.Pool().Total())
	assert.Empty(t, surface.attached)
	assert.Equal(t, geometry.Size{Width: 0, Height: 480}, surface.contentSize)

	assert.NotPanics(t, func() {
		p.EndDecelerating()
		p.ScrollTo(pageOffset(1))
	})
	assert.Empty(t, host.pages)
}

func TestPager_AppendKeepsOffset(t *testing.T) {
	p, host, surface := newTestPager(3, Options{})
	p.Reload()

	// Sit one page past the old tail, where a "loading more" page would be.
	p.SetPageIndex(3)
	require.Equal(t, 3, p.PageIndex())
	require.Equal(t, pageOffset(3), p.ContentOffset())
	offsetsBefore := len(surface.offsets)

	host.count = 6
	p.Reload()
	assert.Equal(t, 3, p.PageIndex())
	assert.Equal(t, pageOffset(3), p.ContentOffset(), "no jump after append")
	assert.Len(t, surface.offsets, offsetsBefore)
	assert.Equal(t, []int{2, 3, 4}, p.VisibleIndices())
	assert.Equal(t, geometry.Size{Width: 1920, Height: 480}, surface.contentSize)
	assert.Empty(t, host.pages)
}

func TestPager_FirstReloadSyncsOffset(t *testing.T) {
	p, _, surface := newTestPager(5, Options{})
	p.Reload()
	assert.Equal(t, []geometry.Point{{}}, surface.offsets)

	empty, _, emptySurface := newTestPager(0, Options{})
	empty.Reload()
	assert.Equal(t, []geometry.Point{{}}, emptySurface.offsets)
}

func TestPager_ReloadSyncsOffsetOtherwise(t *testing.T) {
	p, host, _ := newTestPager(5, Options{})
	p.Reload()
	p.ScrollTo(geometry.Point{X: 650})
	require.Equal(t, 2, p.PageIndex())

	host.count = 8
	p.Reload()
	assert.Equal(t, pageOffset(2), p.ContentOffset())
}

func TestPager_ResizeDoesNotChangePage(t *testing.T) {
	p, host, surface := newTestPager(5, Options{})
	p.Reload()
	p.ScrollTo(geometry.Point{X: 330})
	require.Equal(t, []int{1}, host.pages)

	landscape := geometry.Size{Width: 480, Height: 320}
	p.Resize(landscape)
	assert.Equal(t, StateTransientResize, p.State())
	assert.Equal(t, geometry.Point{X: 480}, p.ContentOffset(), "offset follows the new geometry")
	assert.Equal(t, geometry.Size{Width: 2400, Height: 320}, surface.contentSize)
	assert.Equal(t, geometry.Rect{Origin: geometry.Point{X: 480}, Size: landscape},
		p.CellAt(1).Frame())

	// The surface reports an offset that would round to page 2 under the new
	// geometry. It is noise from the resize.
	p.ScrollTo(geometry.Point{X: 1000})
	assert.Equal(t, 1, p.PageIndex())
	assert.Equal(t, []int{1}, host.pages)
	assert.Equal(t, StateIdle, p.State())

	// Subsequent scrolling is organic again.
	p.ScrollTo(geometry.Point{X: 960})
	assert.Equal(t, []int{1, 2}, host.pages)
	assertInvariants(t, p, surface)
}

func TestPager_SettleDuringResizeKeepsSuppression(t *testing.T) {
	p, host, surface := newTestPager(5, Options{})
	p.Reload()
	p.ScrollTo(geometry.Point{X: 330})
	require.Equal(t, []int{1}, host.pages)
	host.take()

	p.BeginResize()
	p.EndDecelerating()
	assert.Equal(t, StateTransientResize, p.State())
	assert.Equal(t, []string{"didAppear 1"}, host.take())

	p.Layout(geometry.Size{Width: 480, Height: 320})
	p.ScrollTo(geometry.Point{X: 1000})
	assert.Equal(t, 1, p.PageIndex())
	assert.Equal(t, []int{1}, host.pages)
	assert.Equal(t, StateIdle, p.State())
	assertInvariants(t, p, surface)
}

func TestPager_LayoutWithSameSizeOnlyRelayouts(t *testing.T) {
	p, host, surface := newTestPager(5, Options{})
	p.Reload()
	host.take()
	offsets := len(surface.offsets)

	p.Layout(phone)
	assert.Empty(t, host.take())
	assert.Len(t, surface.offsets, offsets)
}

func TestPager_ItemCountGrowsWithoutReload(t *testing.T) {
	p, host, surface := newTestPager(1, Options{})
	p.Reload()
	assert.Equal(t, []int{0}, p.VisibleIndices())

	host.count = 3
	p.SetPageIndex(1)
	assert.Equal(t, []int{0, 1, 2}, p.VisibleIndices())
	assertInvariants(t, p, surface)
}

func TestPager_ReentrantCallbacksAreDeferred(t *testing.T) {
	p, host, surface := newTestPager(10, Options{})
	p.Reload()

	// Jump two more pages whenever the user lands on page 1.
	host.onPageChanged = func(index int) {
		if index == 1 {
			p.SetPageIndex(3)
			assert.Equal(t, 1, p.PageIndex(), "nested call runs after the outer one")
		}
	}
	p.ScrollTo(pageOffset(1))

	assert.Equal(t, 3, p.PageIndex())
	assert.Equal(t, []int{2, 3, 4}, p.VisibleIndices())
	assert.Equal(t, []int{1}, host.pages)
	assertInvariants(t, p, surface)
}

func TestPager_PoolCap(t *testing.T) {
	p, host, _ := newTestPager(20, Options{MaxPooledPerTag: 1})
	p.Reload()

	// 0 and 1 are evicted but only one fits in the pool, so 9 reuses it and
	// 10 and 11 are built.
	p.SetPageIndex(10)
	assert.Equal(t, 1, p.Pool().Stats().Discards)
	assert.Equal(t, 1, p.Pool().Stats().Hits)
	assert.Equal(t, 4, host.built)
	assert.Zero(t, p.Pool().Total())
}

func TestPager_IndependentPools(t *testing.T) {
	a, _, _ := newTestPager(5, Options{})
	b, _, _ := newTestPager(5, Options{})
	a.Reload()
	b.Reload()
	a.SetPageIndex(2)
	a.SetPageIndex(4)

	assert.NotSame(t, a.Pool(), b.Pool())
	assert.Equal(t, 1, a.Pool().Total())
	assert.Zero(t, b.Pool().Total())
}

func TestPager_Defaults(t *testing.T) {
	p := New(nil, Options{})
	assert.NotPanics(t, p.Reload)
	assert.Zero(t, p.ItemCount())
	assert.Empty(t, p.VisibleIndices())
	assert.Equal(t, geometry.AxisHorizontal, p.Axis())

	q := New(&countingHost{count: 2}, Options{ContainerSize: phone})
	q.Reload()
	c, ok := q.CellAt(1).(*cell.BasicCell)
	require.True(t, ok, "BaseHost builds basic cells")
	assert.Equal(t, 1, c.Index)
}

type countingHost struct {
	BaseHost
	count int
}

func (h *countingHost) ItemCount() int { return h.count }

func TestPager_LogsPageChanges(t *testing.T) {
	buf := &bytes.Buffer{}
	host := &testHost{count: 3}
	p := New(host, Options{
		ContainerSize: phone,
		Logger:        logger.New(logger.Options{Buffer: buf, Level: logger.InfoLevel}),
	})
	p.Reload()
	p.ScrollTo(pageOffset(1))

	assert.Contains(t, buf.String(), "page changed")
	assert.Contains(t, buf.String(), "component=pager")
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "transient-resize", StateTransientResize.String())
	assert.Equal(t, "State(9)", State(9).String())
}
