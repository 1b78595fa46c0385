package selftest

import (
	"github.com/launchdarkly/go-test-mixins/framework"
	"github.com/launchdarkly/go-test-mixins/mixins"
	"github.com/launchdarkly/go-test-mixins/modules"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoModuleTests(t *T) {
	t.Run("reimported between tests", func(t *T) {
		opts := t.TempDirOptions()
		opts.Tracker = mixins.NewUsageTracker()
		var values []int
		define := func(file, contents string) ClassTest {
			return ClassTest{file, func(c *framework.Context) {
				mixins.NewTempDir(c, opts).MakeFile(file, contents)
				m, err := opts.Modules.Import("settings")
				require.NoError(c, err)
				values = append(values, m.Attr("value").IntValue())
			}}
		}
		results := RunClass(
			define("settings.yaml", "value: 17\n"),
			define("settings.toml", "value = 42\n"),
			define("settings.json", `{"value": 99}`),
		)
		assert.True(t, results.OK())
		assert.Equal(t, []int{17, 42, 99}, values)
		assert.Empty(t, opts.Modules.Loaded())
	})

	t.Run("dotted name", func(t *T) {
		opts := t.TempDirOptions()
		d := mixins.NewTempDir(t, opts)
		d.MakeFile("pkg/sub.yaml", "name: nested\n")
		m, err := opts.Modules.Import("pkg.sub")
		require.NoError(t, err)
		assert.Equal(t, "nested", m.Attr("name").StringValue())
	})

	t.Run("not found", func(t *T) {
		_, err := modules.NewRegistry(t.Scratch()).Import("missing")
		assert.ErrorIs(t, err, modules.ErrModuleNotFound)
	})
}
