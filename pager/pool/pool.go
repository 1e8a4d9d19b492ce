package pool

import (
	"github.com/eapache/queue"
	"github.com/hnimtadd/pagingview/pager/cell"
	"github.com/hnimtadd/pagingview/pager/tag"
)

type (
	// Pool holds cells that are detached from the display surface, keyed by
	// their tag, until they are needed again.
	//
	// Each tag has its own FIFO queue: the cell that was released first is
	// the first to be reused.
	Pool struct {
		queues map[tag.Tag]*queue.Queue

		// Maximum number of idle cells kept per tag. Zero means unbounded.
		maxPerTag int

		stats Stats
	}

	Options struct {
		// MaxPerTag caps the number of idle cells kept for one tag. Cells
		// enqueued past the cap are dropped. Zero, the default, keeps every
		// released cell.
		MaxPerTag int
	}

	// Stats counts pool traffic since creation.
	Stats struct {
		Hits     int // dequeues served from an idle cell
		Misses   int // dequeues that had to construct a cell
		Discards int // enqueues dropped because the tag was at capacity
	}

	Factory func(t tag.Tag) cell.Cell
)

func New(opts Options) *Pool {
	return &Pool{
		queues:    make(map[tag.Tag]*queue.Queue),
		maxPerTag: max(opts.MaxPerTag, 0),
	}
}

// Enqueue appends c to the idle queue for t. It reports false if the queue
// is at capacity and c was dropped instead.
func (p *Pool) Enqueue(t tag.Tag, c cell.Cell) bool {
	q, ok := p.queues[t]
	if !ok {
		q = queue.New()
		p.queues[t] = q
	}
	if p.maxPerTag > 0 && q.Length() >= p.maxPerTag {
		p.stats.Discards++
		return false
	}
	q.Add(c)
	return true
}

// Dequeue removes and returns the oldest idle cell for t. When none is idle
// the factory builds a new one. The second result reports whether the cell
// came from the pool.
func (p *Pool) Dequeue(t tag.Tag, factory Factory) (cell.Cell, bool) {
	if q, ok := p.queues[t]; ok && q.Length() > 0 {
		p.stats.Hits++
		return q.Remove().(cell.Cell), true
	}
	p.stats.Misses++
	return factory(t), false
}

// Len returns the number of idle cells for t.
func (p *Pool) Len(t tag.Tag) int {
	if q, ok := p.queues[t]; ok {
		return q.Length()
	}
	return 0
}

// Total returns the number of idle cells across every tag.
func (p *Pool) Total() int {
	total := 0
	for _, q := range p.queues {
		total += q.Length()
	}
	return total
}

// Contains reports whether c is idle in the pool. It scans every queue and
// is meant for invariant checks, not the hot path.
func (p *Pool) Contains(c cell.Cell) bool {
	for _, q := range p.queues {
		for i := range q.Length() {
			if q.Get(i) == c {
				return true
			}
		}
	}
	return false
}

// Tags returns every tag that currently has a queue, idle or not.
func (p *Pool) Tags() []tag.Tag {
	tags := make([]tag.Tag, 0, len(p.queues))
	for t := range p.queues {
		tags = append(tags, t)
	}
	return tags
}

func (p *Pool) Stats() Stats {
	return p.stats
}
