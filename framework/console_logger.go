package framework

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ConsoleTestLogger writes test progress to Output (os.Stdout if nil), with failures, errors
// and skips highlighted in color when the output supports it.
type ConsoleTestLogger struct {
	Output               io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

var (
	failedLabel  = color.New(color.FgRed, color.Bold).SprintFunc()
	skippedLabel = color.New(color.FgYellow).SprintFunc()
)

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Output == nil {
		return os.Stdout
	}
	return c.Output
}

func (c *ConsoleTestLogger) TestStarted(id TestID) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.out(), "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	if failed {
		fmt.Fprintf(c.out(), "  %s %s\n", failedLabel("FAILED:"), id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out(), "  %s %s\n", skippedLabel("SKIPPED:"), id)
	} else {
		fmt.Fprintf(c.out(), "  %s %s (%s)\n", skippedLabel("SKIPPED:"), id, reason)
	}
}

// PrintResults writes a summary of a test run.
func PrintResults(w io.Writer, results Results) {
	fmt.Fprintf(w, "Ran %d tests: %d failed, %d errors, %d skipped\n",
		len(results.Tests), len(results.Failures), len(results.Errors), len(results.Skipped))
	if results.OK() {
		fmt.Fprintln(w, color.GreenString("All tests passed"))
		return
	}
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  %s %s\n", failedLabel("FAILED:"), f.TestID)
	}
	for _, e := range results.Errors {
		fmt.Fprintf(w, "  %s %s\n", failedLabel("ERROR:"), e.TestID)
	}
}
