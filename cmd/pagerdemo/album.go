package main

import (
	"fmt"

	"github.com/hnimtadd/pagingview/logger"
	"github.com/hnimtadd/pagingview/pager"
	"github.com/hnimtadd/pagingview/pager/cell"
	"github.com/hnimtadd/pagingview/pager/geometry"
	"github.com/hnimtadd/pagingview/pager/tag"
)

var (
	photoStyle  = cardStyle{Border: "rounded"}
	bannerStyle = cardStyle{Border: "double", Emphasis: true}

	// Both kinds are "card"s; the hashed style keeps them in separate pools.
	photoTag  = tag.New("card", photoStyle)
	bannerTag = tag.New("card", bannerStyle)

	styles = map[tag.Tag]cardStyle{
		photoTag:  photoStyle,
		bannerTag: bannerStyle,
	}
)

// cardStyle describes how a kind of card is drawn. Cards drawn the same way
// share a tag and are recycled for each other.
type cardStyle struct {
	Border   string
	Emphasis bool
}

// card is the cell the demo renders. It is plain data; the model draws it.
type card struct {
	cell.BasicCell
	style   cardStyle
	serial  int
	title   string
	focused bool
}

// album is the pager host: a list of captions, with every fifth one shown as
// a banner.
type album struct {
	pager.BaseHost
	captions []string
	built    int
	status   string
	log      logger.Logger
}

func newAlbum(n int, log logger.Logger) *album {
	a := &album{log: log}
	a.appendItems(n)
	return a
}

func (a *album) appendItems(n int) {
	start := len(a.captions)
	for i := range n {
		a.captions = append(a.captions, fmt.Sprintf("Photo %d", start+i+1))
	}
}

func (a *album) ItemCount() int { return len(a.captions) }

func (a *album) CellTag(index int) tag.Tag {
	if index%5 == 4 {
		return bannerTag
	}
	return photoTag
}

func (a *album) NewCell(t tag.Tag) cell.Cell {
	a.built++
	return &card{serial: a.built, style: styles[t]}
}

func (a *album) BindCell(c cell.Cell, index, page int) {
	cd := c.(*card)
	cd.Index = index
	cd.title = a.captions[index]
	cd.focused = index == page
}

func (a *album) CellWillAppear(c cell.Cell, index int) {
	a.log.Debug("will appear", "index", index, "card", c.(*card).serial)
}

func (a *album) CellWillDisappear(c cell.Cell, index int) {
	c.(*card).focused = false
	a.log.Debug("will disappear", "index", index, "card", c.(*card).serial)
}

func (a *album) CellDidAppear(c cell.Cell, index int) {
	c.(*card).focused = true
	a.status = fmt.Sprintf("showing %s (card #%d)", a.captions[index], c.(*card).serial)
}

func (a *album) PageChanged(index int) {
	a.status = fmt.Sprintf("moved to %d", index+1)
}

// surface tracks the cards attached to the terminal and the offsets the
// pager moves the content to.
type surface struct {
	cards       map[*card]struct{}
	contentSize geometry.Size
	offset      geometry.Point
	moved       bool
}

func newSurface() *surface {
	return &surface{cards: map[*card]struct{}{}}
}

func (s *surface) Attach(c cell.Cell) { s.cards[c.(*card)] = struct{}{} }
func (s *surface) Detach(c cell.Cell) { delete(s.cards, c.(*card)) }

func (s *surface) SetContentSize(size geometry.Size) { s.contentSize = size }

func (s *surface) SetContentOffset(offset geometry.Point) {
	s.offset = offset
	s.moved = true
}
