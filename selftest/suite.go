package selftest

import (
	"os"

	"github.com/launchdarkly/go-test-mixins/framework"
	"github.com/launchdarkly/go-test-mixins/logging"
	"github.com/launchdarkly/go-test-mixins/mixins"
	"github.com/launchdarkly/go-test-mixins/modules"

	"github.com/stretchr/testify/require"
)

// Config controls a self-check run. The zero value is usable.
type Config struct {
	// TempRoot is where temp directories are created; the default is os.TempDir().
	TempRoot string

	// KeepTempDirs leaves the temp directories of tests that use them in place.
	KeepTempDirs bool

	// Tracker receives the usage records of the tests that use temp directories; the default
	// is mixins.DefaultTracker.
	Tracker *mixins.UsageTracker
}

// T is the test scope passed to each self-check. It adds suite-wide settings to a
// framework.Context.
type T struct {
	*framework.Context
	config *Config
}

func RunTestSuite(
	config Config,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := &T{Context: c, config: &config}

		t.Run("change directory", DoChangeDirTests)
		t.Run("environment", DoEnvironmentTests)
		t.Run("streams", DoStreamTests)
		t.Run("delayed assertions", DoDelayedAssertionTests)
		t.Run("temp directories", DoTempDirTests)
		t.Run("modules", DoModuleTests)
	})
}

// Run runs a subtest. The mixins log to the subtest's debug output while it runs.
func (t *T) Run(name string, action func(*T)) {
	t.Context.Run(name, func(c *framework.Context) {
		previous := mixins.SetLogger(logging.Component(logging.New(true, c.DebugWriter()), "mixins"))
		c.Cleanup(func() { mixins.SetLogger(previous) })
		action(&T{Context: c, config: t.config})
	})
}

// TempDirOptions returns the options for a TempDir that follows the suite settings and has its
// own module table.
func (t *T) TempDirOptions() mixins.TempDirOptions {
	return mixins.TempDirOptions{
		Root:    t.config.TempRoot,
		Keep:    t.config.KeepTempDirs,
		Modules: modules.NewRegistry(),
		Tracker: t.config.Tracker,
	}
}

// Scratch creates an empty directory that is removed at the end of the test.
func (t *T) Scratch() string {
	dir, err := os.MkdirTemp(t.config.TempRoot, "selftest-")
	require.NoError(t, err)
	t.Logf("created scratch directory %s", dir)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return dir
}

// Getwd returns the working directory, failing the test if it cannot.
func (t *T) Getwd() string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	return dir
}

// RequireSameDir fails the test unless both paths name the same directory.
func (t *T) RequireSameDir(expected, actual string) {
	a, err := os.Stat(expected)
	require.NoError(t, err)
	b, err := os.Stat(actual)
	require.NoError(t, err)
	require.True(t, os.SameFile(a, b), "expected %s to be the same directory as %s", actual, expected)
}

// RunClass runs a class of inner tests on a separate engine, the way a test runner would, and
// returns their results without affecting the outcome of t.
func RunClass(tests ...ClassTest) framework.Results {
	return framework.Run(nil, nil, func(c *framework.Context) {
		c.Run("Class", func(c *framework.Context) {
			for _, ct := range tests {
				c.Run(ct.Name, ct.Action)
			}
		})
	})
}

// ClassTest is one inner test for RunClass.
type ClassTest struct {
	Name   string
	Action func(*framework.Context)
}
