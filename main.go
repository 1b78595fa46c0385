package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/launchdarkly/go-test-mixins/framework"
	"github.com/launchdarkly/go-test-mixins/logging"
	"github.com/launchdarkly/go-test-mixins/mixins"
	"github.com/launchdarkly/go-test-mixins/selftest"

	"github.com/fatih/color"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}
	if params.noColor {
		color.NoColor = true
	}

	mainLogger := logging.Component(logging.New(params.debugAll, os.Stdout), "main")
	mainLogger.Debug().Str("tempRoot", params.tempRoot).Bool("keep", params.keepTempDirs).Msg("starting self-checks")

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Println("Running self-checks")

	testLogger := &framework.ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	config := selftest.Config{
		TempRoot:     params.tempRoot,
		KeepTempDirs: params.keepTempDirs,
		Tracker:      mixins.DefaultTracker,
	}
	results := selftest.RunTestSuite(config, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if n := mixins.DefaultTracker.Report(os.Stdout); n > 0 {
		mainLogger.Debug().Int("classes", n).Msg("reported inefficient temp directory usage")
	}

	if !results.OK() {
		fmt.Println()
		fmt.Println("To run only the tests that did not pass:")
		fmt.Printf("  %s\n", rerunCommand(results))
		os.Exit(1)
	}
}

func rerunCommand(results framework.Results) commandBuilder {
	var cmd commandBuilder
	cmd.add(os.Args[0])
	for _, r := range append(results.Failures, results.Errors...) {
		cmd.add("-run", pathPattern(r.TestID.Path))
	}
	return cmd
}

// pathPattern matches a test and each of its parents, since a filter that excludes a parent
// test also excludes everything under it.
func pathPattern(path []string) string {
	if len(path) == 0 {
		return "^$"
	}
	rest := ""
	for i := len(path) - 1; i > 0; i-- {
		rest = "(/" + regexp.QuoteMeta(path[i]) + rest + ")?"
	}
	return "^" + regexp.QuoteMeta(path[0]) + rest + "$"
}
