package check

import (
	"fmt"
	"strings"
)

// AssertionFailure is the failure reported at the end of a delayed block. It holds every
// message collected inside the block, in the order the assertions ran.
type AssertionFailure struct {
	Messages []string
}

func (f *AssertionFailure) Error() string {
	if len(f.Messages) == 1 {
		return f.Messages[0]
	}
	// Each message already ends in a newline, so joining on one more leaves a blank line
	// between entries.
	return fmt.Sprintf("%d failed assertions:\n%s", len(f.Messages), strings.Join(f.Messages, "\n"))
}
