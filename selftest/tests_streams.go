package selftest

import (
	"fmt"
	"os"

	"github.com/launchdarkly/go-test-mixins/framework"
	"github.com/launchdarkly/go-test-mixins/mixins"

	"github.com/stretchr/testify/assert"
)

func DoStreamTests(t *T) {
	t.Run("capture stdout and stderr", func(t *T) {
		realStdout, realStderr := os.Stdout, os.Stderr
		var stdout, stderr string
		RunClass(ClassTest{"test", func(c *framework.Context) {
			s := mixins.CaptureStreams(c)
			fmt.Fprintln(os.Stdout, "  (captured stdout is passed through)")
			fmt.Fprint(os.Stderr, "captured stderr\n")
			stdout, stderr = s.Stdout(), s.Stderr()
		}})
		assert.Equal(t, "  (captured stdout is passed through)\n", stdout)
		assert.Equal(t, "captured stderr\n", stderr)
		assert.Equal(t, realStdout, os.Stdout)
		assert.Equal(t, realStderr, os.Stderr)
	})
}
