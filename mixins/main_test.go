package mixins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/launchdarkly/go-test-mixins/framework"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Exit(RunAndReport(m, DefaultTracker, os.Stdout))
}

// runOne runs action as a single test on the framework engine.
func runOne(t *testing.T, action func(*framework.Context)) framework.TestResult {
	results := framework.Run(nil, nil, func(c *framework.Context) {
		c.Run("test", action)
	})
	require.Len(t, results.Tests, 1)
	return results.Tests[0]
}

func getwd(t *testing.T) string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	return dir
}

func requireSameDir(t require.TestingT, expected, actual string) {
	a, err := os.Stat(expected)
	require.NoError(t, err)
	b, err := os.Stat(actual)
	require.NoError(t, err)
	require.True(t, os.SameFile(a, b), "expected %s to be the same directory as %s", actual, expected)
}

// swapStdout points os.Stdout at a file until the end of the test and returns a function that
// reads what has been written to it.
func swapStdout(t *testing.T) func() string {
	f, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = f
	t.Cleanup(func() {
		os.Stdout = orig
		_ = f.Close()
	})
	return func() string {
		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		return string(data)
	}
}
