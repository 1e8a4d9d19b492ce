package main

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hnimtadd/pagingview"
	"github.com/hnimtadd/pagingview/logger"
	"github.com/hnimtadd/pagingview/pager"
	"github.com/hnimtadd/pagingview/pager/geometry"
)

const frameInterval = 16 * time.Millisecond

var (
	viewportStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	printer = message.NewPrinter(language.English)
)

type frameMsg time.Time

type model struct {
	view    *pagingview.PagingView
	album   *album
	surface *surface
	log     logger.Logger

	width, height int

	// Offset along the paging axis, and where the current animation ends.
	offset, target float64
	animating      bool

	err error
}

func newModel(view *pagingview.PagingView, a *album, s *surface, log logger.Logger) *model {
	return &model{view: view, album: a, surface: s, log: log}
}

func (m *model) pager() *pager.Pager { return m.view.Pager() }

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.dispatch(
			pagingview.BeginResizeEvent{},
			pagingview.LayoutEvent{Size: m.containerSize()},
		)
		m.followSurface()
		// The surface reports the offset the new geometry produced.
		m.dispatch(pagingview.ScrollEvent{Offset: m.offsetPoint()})
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "down", "j":
			return m, m.scrollBy(1)
		case "left", "h", "up", "k":
			return m, m.scrollBy(-1)
		case "a":
			m.album.appendItems(10)
			m.dispatch(pagingview.ReloadEvent{})
			m.followSurface()
		case "g":
			m.dispatch(pagingview.SetPageEvent{Index: 0})
			m.followSurface()
		}
		return m, nil

	case frameMsg:
		return m, m.step()
	}
	return m, nil
}

// scrollBy starts an animated scroll of delta pages.
func (m *model) scrollBy(delta int) tea.Cmd {
	p := m.pager()
	page := min(max(p.PageIndex()+delta, 0), max(p.ItemCount()-1, 0))
	m.target = p.PageOffset(page).Along(p.Axis())
	if m.animating {
		return nil
	}
	m.animating = true
	return tick()
}

// step advances the animation by one frame, easing towards the target.
func (m *model) step() tea.Cmd {
	remaining := m.target - m.offset
	if math.Abs(remaining) < 0.5 {
		m.offset = m.target
		m.animating = false
		m.dispatch(
			pagingview.ScrollEvent{Offset: m.offsetPoint()},
			pagingview.SettleEvent{},
		)
		return nil
	}

	move := remaining / 3
	if math.Abs(move) < 1 {
		move = math.Copysign(1, remaining)
	}
	m.offset += move
	m.dispatch(pagingview.ScrollEvent{Offset: m.offsetPoint()})
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// followSurface picks up an offset the pager moved programmatically.
func (m *model) followSurface() {
	if !m.surface.moved {
		return
	}
	m.surface.moved = false
	m.offset = m.surface.offset.Along(m.pager().Axis())
	m.target = m.offset
	m.animating = false
}

func (m *model) dispatch(events ...pagingview.Event) {
	if err := m.view.DispatchAll(events...); err != nil {
		m.err = err
		m.log.Error("dispatch failed", "err", err)
	}
}

func (m *model) containerSize() geometry.Size {
	return geometry.Size{
		Width:  float64(m.width),
		Height: float64(max(m.height-1, 0)),
	}
}

func (m *model) offsetPoint() geometry.Point {
	return geometry.PointAlong(m.pager().Axis(), m.offset)
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	size := m.containerSize()
	body := renderViewport(m.surface.cards, m.offsetPoint(), int(size.Width), int(size.Height))

	p := m.pager()
	stats := p.Pool().Stats()
	status := printer.Sprintf("%d / %d  ·  %d live, %d idle, %d built, %d reused  ·  %s",
		min(p.PageIndex()+1, p.ItemCount()), p.ItemCount(),
		len(p.VisibleIndices()), p.Pool().Total(), m.album.built, stats.Hits,
		m.album.status)
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		viewportStyle.Render(body),
		statusStyle.Width(m.width).MaxHeight(1).Render(status),
	)
}
