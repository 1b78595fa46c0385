package selftest

import (
	"os"
	"path/filepath"

	"github.com/launchdarkly/go-test-mixins/framework"
	"github.com/launchdarkly/go-test-mixins/mixins"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selfTestVar = "GO_TEST_MIXINS_SELFTEST"

func DoEnvironmentTests(t *T) {
	// Restore anything these checks leave behind if the mixin itself is broken.
	outer := mixins.NewEnvironment(t)
	outer.Unset(selfTestVar)

	assertUnset := func(t *T) {
		_, ok := os.LookupEnv(selfTestVar)
		assert.False(t, ok, "%s should not be set", selfTestVar)
	}

	t.Run("set", func(t *T) {
		RunClass(ClassTest{"test", func(c *framework.Context) {
			mixins.NewEnvironment(c).Set(selfTestVar, "x")
		}})
		assertUnset(t)
	})

	t.Run("set twice", func(t *T) {
		require.NoError(t, os.Setenv(selfTestVar, "original"))
		defer os.Unsetenv(selfTestVar)
		RunClass(ClassTest{"test", func(c *framework.Context) {
			e := mixins.NewEnvironment(c)
			e.Set(selfTestVar, "first")
			e.Set(selfTestVar, "second")
		}})
		assert.Equal(t, "original", os.Getenv(selfTestVar))
	})

	t.Run("unset", func(t *T) {
		require.NoError(t, os.Setenv(selfTestVar, "original"))
		defer os.Unsetenv(selfTestVar)
		var during bool
		RunClass(ClassTest{"test", func(c *framework.Context) {
			mixins.NewEnvironment(c).Unset(selfTestVar)
			_, during = os.LookupEnv(selfTestVar)
		}})
		assert.False(t, during)
		assert.Equal(t, "original", os.Getenv(selfTestVar))
	})

	t.Run("unset absent variable", func(t *T) {
		results := RunClass(ClassTest{"test", func(c *framework.Context) {
			mixins.NewEnvironment(c).Unset(selfTestVar)
		}})
		assert.True(t, results.OK())
		assertUnset(t)
	})

	t.Run("load dotenv file", func(t *T) {
		path := filepath.Join(t.Scratch(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte(selfTestVar+"=from-file\n"), 0644))
		var during string
		results := RunClass(ClassTest{"test", func(c *framework.Context) {
			require.NoError(c, mixins.NewEnvironment(c).LoadDotenv(path))
			during = os.Getenv(selfTestVar)
		}})
		assert.True(t, results.OK())
		assert.Equal(t, "from-file", during)
		assertUnset(t)
	})
}
