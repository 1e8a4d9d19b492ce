package pager

import "fmt"

// State is the phase of the pager's scroll handling.
type State int

const (
	// Settled on a page.
	StateIdle State = iota

	// The offset is moving and the page index follows it.
	StateScrolling

	// The container is changing size. Offset changes come from the new
	// geometry, not from the user, and must not move the page index.
	StateTransientResize
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScrolling:
		return "scrolling"
	case StateTransientResize:
		return "transient-resize"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
