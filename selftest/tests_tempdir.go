package selftest

import (
	"path/filepath"
	"strings"

	"github.com/launchdarkly/go-test-mixins/framework"
	"github.com/launchdarkly/go-test-mixins/mixins"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoTempDirTests(t *T) {
	t.Run("distinct directories are removed", func(t *T) {
		orig := t.Getwd()
		opts := t.TempDirOptions()
		opts.Keep = false
		opts.Tracker = mixins.NewUsageTracker()
		var dirs []string
		test := func(c *framework.Context) {
			d := mixins.NewTempDir(c, opts)
			dirs = append(dirs, d.Path())
			d.MakeFile("file.txt", "x")
		}
		results := RunClass(ClassTest{"one", test}, ClassTest{"two", test})
		assert.True(t, results.OK())
		require.Len(t, dirs, 2)
		assert.NotEqual(t, dirs[0], dirs[1])
		for _, d := range dirs {
			assert.True(t, strings.HasPrefix(filepath.Base(d), mixins.DefaultTempDirPrefix+"_"))
			assert.NoDirExists(t, d)
		}
		assert.Equal(t, orig, t.Getwd())
	})

	t.Run("made no files", func(t *T) {
		opts := t.TempDirOptions()
		opts.Tracker = mixins.NewUsageTracker()
		RunClass(ClassTest{"test", func(c *framework.Context) {
			mixins.NewTempDir(c, opts)
		}})
		assert.Equal(t, "Inefficient: Class ran 1 tests, 0 made files in a temp directory",
			opts.Tracker.Class("Class").Badness())
	})

	t.Run("make file without temp dir", func(t *T) {
		opts := t.TempDirOptions()
		opts.NoTempDir = true
		opts.Tracker = mixins.NewUsageTracker()
		results := RunClass(ClassTest{"test", func(c *framework.Context) {
			mixins.NewTempDir(c, opts).MakeFile("file.txt", "x")
		}})
		failure, _ := results.Find("test")
		require.Len(t, failure.Errors, 1)
		assert.Equal(t, "MakeFile should only be used in temp directories", failure.Errors[0].Error())
	})

	t.Run("all skipped", func(t *T) {
		opts := t.TempDirOptions()
		opts.Tracker = mixins.NewUsageTracker()
		results := RunClass(ClassTest{"test", func(c *framework.Context) {
			mixins.NewTempDir(c, opts).Skip("skipping")
		}})
		assert.Len(t, results.Skipped, 1)
		assert.Equal(t, "", opts.Tracker.Class("Class").Badness())
	})

	t.Run("in suite temp dir", func(t *T) {
		// Uses the suite's own tracker, so it shows up in the report at exit if it goes wrong.
		d := mixins.NewTempDir(t, t.TempDirOptions())
		t.RequireSameDir(d.Path(), t.Getwd())
		d.MakeFile("nested/file.txt", "x")
		assert.FileExists(t, filepath.Join(d.Path(), "nested", "file.txt"))
	})
}
