package selftest

import (
	"github.com/launchdarkly/go-test-mixins/check"
	"github.com/launchdarkly/go-test-mixins/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoDelayedAssertionTests(t *T) {
	t.Run("two failures", func(t *T) {
		results := RunClass(ClassTest{"test", func(c *framework.Context) {
			a := check.New(c)
			a.Delayed(func() {
				a.Equal("x", "y")
				a.Equal("w", "z")
			})
		}})
		failure, ok := results.Find("test")
		require.True(t, ok)
		assert.True(t, failure.Failed)
		require.Len(t, failure.Errors, 1)
		assert.Equal(t, "2 failed assertions:\n'x' != 'y'\n- x\n+ y\n\n'w' != 'z'\n- w\n+ z\n",
			failure.Errors[0].Error())
	})

	t.Run("only one failure", func(t *T) {
		results := RunClass(ClassTest{"test", func(c *framework.Context) {
			a := check.New(c)
			a.Delayed(func() {
				a.Equal("x", "x")
				a.Equal("w", "z")
			})
		}})
		failure, _ := results.Find("test")
		require.Len(t, failure.Errors, 1)
		assert.Equal(t, "'w' != 'z'\n- w\n+ z\n", failure.Errors[0].Error())
	})

	t.Run("other panics are errors", func(t *T) {
		results := RunClass(ClassTest{"test", func(c *framework.Context) {
			a := check.New(c)
			a.Delayed(func() {
				a.Equal("x", "y")
				var m map[string]int
				m["boom"] = 1
			})
		}})
		assert.Equal(t, []string{"test"}, framework.Names(results.Errors))
	})

	t.Run("no problems", func(t *T) {
		results := RunClass(ClassTest{"test", func(c *framework.Context) {
			a := check.New(c)
			a.Delayed(func() {
				a.Equal("x", "x")
				a.True(true)
			})
		}})
		assert.True(t, results.OK())
	})
}
