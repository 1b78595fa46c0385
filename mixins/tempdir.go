package mixins

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/launchdarkly/go-test-mixins/modules"

	"github.com/alessio/shellescape"
)

// DefaultTempDirPrefix starts the name of every temp directory unless TempDirOptions.Prefix is set.
const DefaultTempDirPrefix = "test_cover"

const maxTempDirAttempts = 100

// TempDirOptions configures NewTempDir. The zero value gives each test its own temp directory
// under os.TempDir(), tracked in DefaultTracker and importable through modules.Default.
type TempDirOptions struct {
	// Class is the usage-tracking key. Tests that share it are reported on together. It
	// defaults to the name of the test's parent test.
	Class string

	// NoTempDir turns off the temp directory: the test stays in the current directory and
	// MakeFile fails.
	NoTempDir bool

	// FilesOptional says the class wants a temp directory even though its tests may never call
	// MakeFile, which keeps the usage report quiet about it.
	FilesOptional bool

	// Keep leaves temp directories in place after the test, for debugging.
	Keep bool

	Prefix  string
	Root    string
	Modules *modules.Registry
	Tracker *UsageTracker
}

// TempDir runs one test in a fresh temp directory.
//
// While the test runs, the temp directory is the working directory and the first entry on the
// module search path. When the test ends, the cleanups registered by NewTempDir unload any
// modules the test imported, restore the search path and the working directory, and remove
// the directory.
type TempDir struct {
	t        T
	opts     TempDirOptions
	class    string
	path     string
	snapshot *modules.Snapshot
}

func NewTempDir(t T, opts TempDirOptions) *TempDir {
	t.Helper()
	if opts.Prefix == "" {
		opts.Prefix = DefaultTempDirPrefix
	}
	if opts.Root == "" {
		opts.Root = os.TempDir()
	}
	if opts.Modules == nil {
		opts.Modules = modules.Default
	}
	if opts.Tracker == nil {
		opts.Tracker = DefaultTracker
	}
	d := &TempDir{t: t, opts: opts, class: opts.Class}
	if d.class == "" {
		d.class = className(t)
	}

	t.Cleanup(opts.Modules.SaveSearchPath())
	d.snapshot = opts.Modules.Snapshot()
	t.Cleanup(d.CleanupModules)

	if !opts.NoTempDir {
		d.path = d.makeTempDir()
		d.Chdir(d.path)
		opts.Modules.PrependSearchPath(d.path)
	}

	opts.Tracker.testStarted(d.class, !opts.NoTempDir, opts.FilesOptional)
	t.Cleanup(func() { opts.Tracker.testFinished(d.class) })
	return d
}

func (d *TempDir) makeTempDir() string {
	d.t.Helper()
	root, err := filepath.Abs(d.opts.Root)
	if err != nil {
		fatal(d.t, fmt.Errorf("resolving temp directory root: %w", err))
		return ""
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		fatal(d.t, fmt.Errorf("creating temp directory root: %w", err))
		return ""
	}
	for i := 0; i < maxTempDirAttempts; i++ {
		path := filepath.Join(root, fmt.Sprintf("%s_%08d", d.opts.Prefix, rand.Intn(100000000)))
		err := os.Mkdir(path, 0755)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			fatal(d.t, fmt.Errorf("creating temp directory: %w", err))
			return ""
		}
		d.t.Cleanup(func() { d.removeTempDir(path) })
		logger.Debug().Str("path", path).Str("class", d.class).Msg("created temp directory")
		return path
	}
	fatal(d.t, fmt.Errorf("could not find an unused temp directory name in %s", root))
	return ""
}

func (d *TempDir) removeTempDir(path string) {
	if d.opts.Keep {
		logger.Info().Msgf("keeping temp directory: %s", shellescape.Quote(path))
		return
	}
	if err := os.RemoveAll(path); err != nil {
		d.t.Errorf("removing temp directory %s: %s", path, err)
		return
	}
	logger.Debug().Str("path", path).Msg("removed temp directory")
}

// Path returns the temp directory, or "" if the test has none.
func (d *TempDir) Path() string {
	return d.path
}

// Class returns the usage-tracking key for the test.
func (d *TempDir) Class() string {
	return d.class
}

// Chdir changes the working directory for the rest of the test.
func (d *TempDir) Chdir(dir string) string {
	d.t.Helper()
	return ChangeDir(d.t, dir)
}

// CleanupModules unloads every module imported since the test started, so the next import of
// the same name reads its file again. It runs automatically when the test ends.
func (d *TempDir) CleanupModules() {
	if removed := d.snapshot.Reset(); len(removed) > 0 {
		logger.Debug().Strs("modules", removed).Msg("unloaded modules")
	}
}

// MakeFile creates a file, as the package-level MakeFile does, and records that the test made a
// file. It fails the test if the test has no temp directory.
func (d *TempDir) MakeFile(name, text string, opts ...FileOption) string {
	d.t.Helper()
	d.madeFile("MakeFile")
	path, err := MakeFile(name, text, opts...)
	if err != nil {
		fatal(d.t, err)
	}
	return path
}

// MakeBytesFile is like MakeFile but writes data exactly as given.
func (d *TempDir) MakeBytesFile(name string, data []byte) string {
	d.t.Helper()
	d.madeFile("MakeBytesFile")
	path, err := MakeBytesFile(name, data)
	if err != nil {
		fatal(d.t, err)
	}
	return path
}

func (d *TempDir) madeFile(op string) {
	d.t.Helper()
	if d.opts.NoTempDir {
		fatal(d.t, &UsageError{Op: op})
		return
	}
	d.opts.Tracker.fileMade(d.class)
}

// Skip records the skip for usage tracking and then skips the test. Tests using a TempDir should
// skip through it rather than calling t.Skip directly.
func (d *TempDir) Skip(args ...interface{}) {
	d.t.Helper()
	d.opts.Tracker.testSkipped(d.class)
	d.t.Skip(args...)
}
