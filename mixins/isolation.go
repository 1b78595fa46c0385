package mixins

import (
	"github.com/launchdarkly/go-test-mixins/check"
)

// IsolationOptions configures Isolate.
type IsolationOptions struct {
	TempDir        TempDirOptions
	CaptureStreams bool
}

// Isolation bundles the mixins most tests want together. Streams is nil unless
// IsolationOptions.CaptureStreams was set.
type Isolation struct {
	*TempDir
	Env     *Environment
	Streams *StreamCapture
	Assert  *check.Asserter
}

// Isolate sets up environment tracking, a temp directory and optionally stream capture for the
// rest of the test. When the test ends they are undone in the reverse order: streams first,
// then the temp directory, then the environment.
func Isolate(t T, opts IsolationOptions) *Isolation {
	t.Helper()
	iso := &Isolation{Env: NewEnvironment(t)}
	iso.TempDir = NewTempDir(t, opts.TempDir)
	if opts.CaptureStreams {
		iso.Streams = CaptureStreams(t)
	}
	iso.Assert = check.New(t)
	return iso
}
