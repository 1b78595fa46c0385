package selftest

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/launchdarkly/go-test-mixins/framework"
	"github.com/launchdarkly/go-test-mixins/mixins"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoChangeDirTests(t *T) {
	t.Run("change dir", func(t *T) {
		orig, dir := t.Getwd(), t.Scratch()
		require.NoError(t, mixins.WithDir(dir, func(cwd string) {
			t.RequireSameDir(dir, cwd)
		}))
		assert.Equal(t, orig, t.Getwd())
	})

	t.Run("change dir twice", func(t *T) {
		orig, outer, inner := t.Getwd(), t.Scratch(), t.Scratch()
		require.NoError(t, mixins.WithDir(outer, func(string) {
			require.NoError(t, mixins.WithDir(inner, func(string) {
				t.RequireSameDir(inner, t.Getwd())
			}))
			t.RequireSameDir(outer, t.Getwd())
		}))
		assert.Equal(t, orig, t.Getwd())
	})

	t.Run("change dir with panic", func(t *T) {
		orig, dir := t.Getwd(), t.Scratch()
		assert.Panics(t, func() {
			_ = mixins.WithDir(dir, func(string) { panic("boom") })
		})
		assert.Equal(t, orig, t.Getwd())
	})

	t.Run("nonexistent directory", func(t *T) {
		missing := filepath.Join(t.Scratch(), "nope")
		err := mixins.WithDir(missing, func(string) { t.Fatalf("should not be called") })
		var de *mixins.DirectoryError
		assert.ErrorAs(t, err, &de)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("change dir until end of test", func(t *T) {
		orig, dir := t.Getwd(), t.Scratch()
		results := RunClass(ClassTest{"test", func(c *framework.Context) {
			mixins.ChangeDir(c, dir)
		}})
		assert.True(t, results.OK())
		assert.Equal(t, orig, t.Getwd())
	})
}
