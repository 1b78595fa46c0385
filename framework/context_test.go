package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runClass(tests map[string]func(*Context), order ...string) Results {
	return Run(nil, nil, func(c *Context) {
		for _, name := range order {
			c.Run(name, tests[name])
		}
	})
}

func TestOutcomesAreClassified(t *testing.T) {
	results := runClass(map[string]func(*Context){
		"pass":  func(c *Context) { assert.Equal(c, 1, 1) },
		"fail":  func(c *Context) { assert.Equal(c, 1, 0) },
		"fatal": func(c *Context) { require.Equal(c, 1, 0); panic("not reached") },
		"skip":  func(c *Context) { c.Skip("I feel like it") },
		"error": func(c *Context) { panic(errors.New("BOOM")) },
	}, "pass", "fail", "fatal", "skip", "error")

	assert.Len(t, results.Tests, 5)
	assert.Equal(t, []string{"fail", "fatal"}, Names(results.Failures))
	assert.Equal(t, []string{"error"}, Names(results.Errors))
	assert.Equal(t, []string{"skip"}, Names(results.Skipped))
	assert.False(t, results.OK())

	skip, ok := results.Find("skip")
	require.True(t, ok)
	assert.Equal(t, "I feel like it", skip.SkipReason)

	e, ok := results.Find("error")
	require.True(t, ok)
	require.Len(t, e.Errors, 1)
	assert.Contains(t, e.Errors[0].Error(), "unexpected panic in test: BOOM")
}

func TestCleanupsRunInReverseOrderWhateverTheOutcome(t *testing.T) {
	for _, body := range []struct {
		name string
		fn   func(*Context)
	}{
		{"pass", func(c *Context) {}},
		{"fail", func(c *Context) { c.FailNow() }},
		{"error", func(c *Context) { panic("oops") }},
		{"skip", func(c *Context) { c.SkipNow() }},
	} {
		t.Run(body.name, func(t *testing.T) {
			var calls []int
			Run(nil, nil, func(c *Context) {
				c.Run("test", func(c *Context) {
					c.Cleanup(func() { calls = append(calls, 1) })
					c.Cleanup(func() { calls = append(calls, 2) })
					c.Cleanup(func() { calls = append(calls, 3) })
					body.fn(c)
					calls = append(calls, 0)
				})
			})
			if body.name == "pass" {
				assert.Equal(t, []int{0, 3, 2, 1}, calls)
			} else {
				assert.Equal(t, []int{3, 2, 1}, calls)
			}
		})
	}
}

func TestPanickingCleanupDoesNotStopOtherCleanups(t *testing.T) {
	ran := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("test", func(c *Context) {
			c.Cleanup(func() { ran = true })
			c.Cleanup(func() { panic("cleanup exploded") })
		})
	})
	assert.True(t, ran)
	assert.Equal(t, []string{"test"}, Names(results.Errors))
}

func TestNameIsSlashSeparatedPath(t *testing.T) {
	var name string
	Run(nil, nil, func(c *Context) {
		c.Run("outer", func(c *Context) {
			c.Run("inner", func(c *Context) { name = c.Name() })
		})
	})
	assert.Equal(t, "outer/inner", name)
}

func TestFilterExcludesTests(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("^b"))
	ran := map[string]bool{}
	results := Run(filters.AsFilter, nil, func(c *Context) {
		for _, name := range []string{"a", "b", "c"} {
			name := name
			c.Run(name, func(c *Context) { ran[name] = true })
		}
	})
	assert.Equal(t, map[string]bool{"a": true, "c": true}, ran)
	assert.Len(t, results.Tests, 2)
}

func TestFailedTestWithNoMessageGetsOne(t *testing.T) {
	results := runClass(map[string]func(*Context){
		"fail": func(c *Context) { c.FailNow() },
	}, "fail")
	require.Len(t, results.Failures, 1)
	require.Len(t, results.Failures[0].Errors, 1)
	assert.Equal(t, "test failed with no failure message", results.Failures[0].Errors[0].Error())
}

func TestCapturingLoggerAcceptsWrites(t *testing.T) {
	var l CapturingLogger
	_, err := l.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	l.Printf("three %d", 3)
	assert.Equal(t, []string{"one", "two", "three 3"}, l.Output().Messages())
}

func TestSkipReasons(t *testing.T) {
	results := runClass(map[string]func(*Context){
		"with reason":    func(c *Context) { c.SkipWithReason("not supported") },
		"no reason":      func(c *Context) { c.Skip() },
		"several values": func(c *Context) { c.Skip("need ", 2, " more") },
	}, "with reason", "no reason", "several values")

	assert.Equal(t, []string{"with reason", "no reason", "several values"}, Names(results.Skipped))
	for name, reason := range map[string]string{
		"with reason":    "not supported",
		"no reason":      "",
		"several values": "need 2 more",
	} {
		r, ok := results.Find(name)
		require.True(t, ok)
		assert.Equal(t, reason, r.SkipReason, name)
	}
}

type debugRecorder struct {
	nullTestLogger
	output map[string][]string
}

func (d *debugRecorder) TestFinished(id TestID, failed bool, output CapturedOutput) {
	d.output[id.String()] = output.Messages()
}

func TestLogfGoesToDebugOutput(t *testing.T) {
	recorder := &debugRecorder{output: make(map[string][]string)}
	Run(nil, recorder, func(c *Context) {
		c.Run("test", func(c *Context) {
			c.Logf("step %d", 1)
			_, _ = c.DebugWriter().Write([]byte("from a writer\n"))
		})
	})
	assert.Equal(t, []string{"step 1", "from a writer"}, recorder.output["test"])
}
