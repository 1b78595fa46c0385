package mixins

import (
	"fmt"
	"os"
	"testing"

	"github.com/launchdarkly/go-test-mixins/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolate(t *testing.T) {
	unsetForTest(t, envVarA)
	passedThrough := swapStdout(t)
	orig := getwd(t)
	var path string

	result := runOne(t, func(c *framework.Context) {
		iso := Isolate(c, IsolationOptions{TempDir: isolatedOptions(t), CaptureStreams: true})
		path = iso.Path()
		requireSameDir(c, path, getwd(t))

		iso.Env.Set(envVarA, "isolated")
		iso.MakeFile("file.txt", "x")
		fmt.Println("printed")

		iso.Assert.Equal("printed\n", iso.Streams.Stdout())
		iso.Assert.Equal("isolated", os.Getenv(envVarA))
	})
	require.False(t, result.Failed, "%+v", result.Errors)

	assertUnset(t, envVarA)
	assert.NoDirExists(t, path)
	assert.Equal(t, orig, getwd(t))
	assert.Equal(t, "printed\n", passedThrough())
}

func TestIsolateWithoutStreams(t *testing.T) {
	result := runOne(t, func(c *framework.Context) {
		iso := Isolate(c, IsolationOptions{TempDir: isolatedOptions(t)})
		assert.Nil(c, iso.Streams)
		assert.NotNil(c, iso.Env)
		iso.MakeFile("file.txt", "x")
	})
	assert.False(t, result.Failed)
}

func TestIsolationAssertionsFailTheTest(t *testing.T) {
	result := runOne(t, func(c *framework.Context) {
		iso := Isolate(c, IsolationOptions{TempDir: isolatedOptions(t)})
		iso.MakeFile("file.txt", "x")
		iso.Assert.Delayed(func() {
			iso.Assert.Equal("a", "b")
			iso.Assert.Equal(1, 1)
		})
	})
	assert.True(t, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "'a' != 'b'\n- a\n+ b\n", result.Errors[0].Error())
}
