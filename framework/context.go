package framework

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

// Context is used similarly to *testing.T. It implements require.TestingT, so the assert and
// require packages can be used with it, and it has the Cleanup, Skip, Helper and Name methods
// that the mixins package needs from a test.
//
// Outcomes are classified the way the testing package does: calling FailNow (directly, or via
// require) marks the test as failed, calling Skip marks it as skipped, and any other panic in
// the test body is recorded as an error.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	failed      bool
	errored     bool
	skipped     bool
	skipReason  string
	errors      []error
	cleanups    []func()
}

func Run(
	filter func(TestID) bool,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	c.guard(func() { action(c) })

	// Cleanups registered while cleaning up are run too, still newest first.
	for len(c.cleanups) > 0 {
		last := len(c.cleanups) - 1
		fn := c.cleanups[last]
		c.cleanups = c.cleanups[:last]
		c.guard(fn)
	}

	if len(c.id.Path) == 0 && !c.failed && !c.errored {
		return // the root context is not a test of its own
	}
	result := TestResult{
		TestID:     c.id,
		Errors:     c.errors,
		Failed:     c.failed && !c.errored,
		Errored:    c.errored,
		Skipped:    c.skipped && !c.failed && !c.errored,
		SkipReason: c.skipReason,
	}
	c.env.results.Tests = append(c.env.results.Tests, result)
	switch {
	case result.Errored:
		c.env.results.Errors = append(c.env.results.Errors, result)
	case result.Failed:
		c.env.results.Failures = append(c.env.results.Failures, result)
	case result.Skipped:
		c.env.results.Skipped = append(c.env.results.Skipped, result)
	}
}

func (c *Context) guard(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*Context); ok {
				if c.skipped {
					return
				}
				c.failed = true
				if len(c.errors) == 0 {
					c.addError(errors.New("test failed with no failure message"))
				}
				return
			}
			c.errored = true
			c.addError(fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack())))
		}
	}()
	fn()
}

func (c *Context) addError(err error) {
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) ID() TestID {
	return c.id
}

// Name returns the slash-separated path of the test, like testing.T.Name.
func (c *Context) Name() string {
	return c.id.String()
}

func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped && !c1.failed && !c1.errored {
		c.env.testLogger.TestSkipped(id, c1.skipReason)
	} else {
		c.env.testLogger.TestFinished(id, c1.failed || c1.errored, c1.debugLogger.Output())
	}
}

// Cleanup registers a function to be called after the test body and its subtests complete.
// Cleanups run in last-added, first-called order, each exactly once, however the test ended.
func (c *Context) Cleanup(fn func()) {
	c.cleanups = append(c.cleanups, fn)
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, reformatError(err))
}

func (c *Context) Fatalf(format string, args ...interface{}) {
	c.Errorf(format, args...)
	c.FailNow()
}

func (c *Context) FailNow() {
	panic(c)
}

func (c *Context) Failed() bool {
	return c.failed || c.errored
}

// Helper exists for compatibility with testing.T; there is no call-site reporting to adjust.
func (c *Context) Helper() {}

// Skip marks the test as skipped and stops it. The arguments, if any, become the skip reason.
func (c *Context) Skip(args ...interface{}) {
	c.SkipWithReason(fmt.Sprint(args...))
}

func (c *Context) SkipNow() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.SkipNow()
}

func (c *Context) Skipped() bool {
	return c.skipped
}

// Logf adds a line to the test's debug output.
func (c *Context) Logf(format string, args ...interface{}) {
	c.debugLogger.Printf(format, args...)
}

// DebugWriter returns a writer whose lines are added to the test's debug output, for loggers
// that need an io.Writer.
func (c *Context) DebugWriter() io.Writer {
	return &c.debugLogger
}
