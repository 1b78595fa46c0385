package mixins

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// StreamCapture captures what a test writes to os.Stdout and os.Stderr.
//
// Standard output is still passed through to the original stdout, but not as it is written:
// everything captured so far is forwarded whenever Stdout is called and when the capture ends.
// Output from a test that never gets to its cleanups, because it hangs until the test timeout
// or exits the process, is therefore never passed through. Standard error is only captured,
// not passed through. The standard log package is pointed at the captured stderr too.
type StreamCapture struct {
	origStdout *os.File
	origStderr *os.File
	origLog    io.Writer
	stdout     *os.File
	stderr     *os.File
	forwarded  int
	lock       sync.Mutex
}

// CaptureStreams starts capturing standard output and standard error until the end of the test.
// Call Stdout to pass output through before a step that might not return.
func CaptureStreams(t T) *StreamCapture {
	t.Helper()
	stdout, err := os.CreateTemp("", "captured-stdout-*")
	if err != nil {
		fatal(t, fmt.Errorf("creating stdout capture file: %w", err))
		return nil
	}
	stderr, err := os.CreateTemp("", "captured-stderr-*")
	if err != nil {
		discardCaptureFile(stdout)
		fatal(t, fmt.Errorf("creating stderr capture file: %w", err))
		return nil
	}

	s := &StreamCapture{
		origStdout: os.Stdout,
		origStderr: os.Stderr,
		origLog:    log.Writer(),
		stdout:     stdout,
		stderr:     stderr,
	}
	os.Stdout = stdout
	os.Stderr = stderr
	log.SetOutput(stderr)
	t.Cleanup(s.restore)
	return s
}

// Stdout returns everything written to standard output since the capture began.
func (s *StreamCapture) Stdout() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	data := readCaptureFile(s.stdout)
	s.forward(data)
	return string(data)
}

// Stderr returns everything written to standard error since the capture began.
func (s *StreamCapture) Stderr() string {
	s.lock.Lock()
	defer s.lock.Unlock()
	return string(readCaptureFile(s.stderr))
}

func (s *StreamCapture) forward(data []byte) {
	if len(data) > s.forwarded {
		_, _ = s.origStdout.Write(data[s.forwarded:])
		s.forwarded = len(data)
	}
}

func (s *StreamCapture) restore() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.forward(readCaptureFile(s.stdout))
	os.Stdout = s.origStdout
	os.Stderr = s.origStderr
	log.SetOutput(s.origLog)
	discardCaptureFile(s.stdout)
	discardCaptureFile(s.stderr)
	logger.Debug().Msg("restored standard streams")
}

func readCaptureFile(f *os.File) []byte {
	data, err := os.ReadFile(f.Name())
	if err != nil {
		logger.Warn().Err(err).Str("file", f.Name()).Msg("could not read capture file")
	}
	return data
}

func discardCaptureFile(f *os.File) {
	_ = f.Close()
	_ = os.Remove(f.Name())
}
