package check

import (
	"github.com/stretchr/testify/require"
)

// Sink is the single primitive that every assertion reports failures through.
type Sink interface {
	Fail(message string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(message string)

func (f SinkFunc) Fail(message string) { f(message) }

// immediateSink stops the test on the first failure.
type immediateSink struct {
	t require.TestingT
}

func (s immediateSink) Fail(message string) {
	if h, ok := s.t.(interface{ Helper() }); ok {
		h.Helper()
	}
	s.t.Errorf("%s", message)
	s.t.FailNow()
}

// collectingSink records failures and lets execution continue.
type collectingSink struct {
	messages []string
}

func (s *collectingSink) Fail(message string) {
	s.messages = append(s.messages, message)
}
