package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/hnimtadd/pagingview/pager/geometry"
)

type borderRunes struct {
	topLeft, topRight, bottomLeft, bottomRight rune
	horizontal, vertical                       rune
}

var borders = map[string]borderRunes{
	"rounded": {'╭', '╮', '╰', '╯', '─', '│'},
	"double":  {'╔', '╗', '╚', '╝', '═', '║'},
}

// grid is a character canvas. A wide rune occupies its own column and the
// following one, which holds 0.
type grid [][]rune

func newGrid(w, h int) grid {
	g := make(grid, h)
	for y := range g {
		g[y] = []rune(strings.Repeat(" ", w))
	}
	return g
}

// put writes s starting at column x of row y, clipping anything outside the
// canvas.
func (g grid) put(x, y int, s string) {
	if y < 0 || y >= len(g) {
		return
	}
	row := g[y]
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= len(row) {
			row[x] = r
			if w == 2 {
				row[x+1] = 0
			}
		}
		x += w
	}
}

func (g grid) String() string {
	var b strings.Builder
	for y, row := range g {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, r := range row {
			if r != 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// renderViewport draws every attached card that intersects the w×h window
// starting at offset.
func renderViewport(cards map[*card]struct{}, offset geometry.Point, w, h int) string {
	g := newGrid(w, h)
	for c := range cards {
		frame := c.Frame()
		x0 := int(math.Round(frame.Origin.X - offset.X))
		y0 := int(math.Round(frame.Origin.Y - offset.Y))
		for i, line := range drawCard(c, int(frame.Size.Width), int(frame.Size.Height)) {
			g.put(x0, y0+i, line)
		}
	}
	return g.String()
}

// drawCard returns the lines of a w×h card, border included.
func drawCard(c *card, w, h int) []string {
	if w < 2 || h < 2 {
		return nil
	}
	b, ok := borders[c.style.Border]
	if !ok {
		b = borders["rounded"]
	}
	inner := w - 2

	lines := make([]string, h)
	lines[0] = string(b.topLeft) + strings.Repeat(string(b.horizontal), inner) + string(b.topRight)
	lines[h-1] = string(b.bottomLeft) + strings.Repeat(string(b.horizontal), inner) + string(b.bottomRight)
	for y := 1; y < h-1; y++ {
		lines[y] = string(b.vertical) + strings.Repeat(" ", inner) + string(b.vertical)
	}

	title := c.title
	if c.style.Emphasis {
		title = "★ " + title + " ★"
	}
	if c.focused {
		title = "▶ " + title + " ◀"
	}
	mid := h / 2
	if mid > 0 && mid < h-1 {
		lines[mid] = string(b.vertical) + center(title, inner) + string(b.vertical)
	}
	if mid+1 < h-1 {
		lines[mid+1] = string(b.vertical) + center(fmt.Sprintf("card #%d", c.serial), inner) + string(b.vertical)
	}
	return lines
}

// center pads s to width columns, truncating it if it does not fit.
func center(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	left := (width - runewidth.StringWidth(s)) / 2
	return runewidth.FillRight(strings.Repeat(" ", left)+s, width)
}
