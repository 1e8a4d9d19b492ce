package utils

import "fmt"

// Assert panics when condition is false. Invariant violations in the pager
// are defects, not recoverable errors, so they are never returned.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}

// Assertf is Assert with a formatted message. The message is only built
// when the assertion fails.
func Assertf(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf(format, args...))
	}
}
