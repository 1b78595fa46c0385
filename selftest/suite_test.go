package selftest

import (
	"io"
	"testing"

	"github.com/launchdarkly/go-test-mixins/framework"
	"github.com/launchdarkly/go-test-mixins/mixins"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuitePasses(t *testing.T) {
	tracker := mixins.NewUsageTracker()
	results := RunTestSuite(Config{TempRoot: t.TempDir(), Tracker: tracker}, nil, framework.NullTestLogger())
	for _, f := range append(results.Failures, results.Errors...) {
		t.Errorf("%s: %v", f.TestID, f.Errors)
	}
	require.NotEmpty(t, results.Tests)
	assert.Equal(t, 0, tracker.Report(io.Discard))
}

func TestSuiteFilter(t *testing.T) {
	var filters framework.RegexFilters
	require.NoError(t, filters.MustMatch.Set("^delayed"))
	results := RunTestSuite(Config{TempRoot: t.TempDir(), Tracker: mixins.NewUsageTracker()},
		filters.AsFilter, framework.NullTestLogger())
	assert.True(t, results.OK())
	for _, r := range results.Tests {
		assert.Equal(t, "delayed assertions", r.TestID.Path[0])
	}
}

func TestSuiteDebugOutputGoesToTest(t *testing.T) {
	var logger recordingLogger
	RunTestSuite(Config{TempRoot: t.TempDir(), Tracker: mixins.NewUsageTracker()}, nil, &logger)
	assert.Contains(t, logger.debug["temp directories/in suite temp dir"], "created temp directory")
}

type recordingLogger struct {
	debug map[string]string
}

func (l *recordingLogger) TestStarted(framework.TestID)         {}
func (l *recordingLogger) TestError(framework.TestID, error)    {}
func (l *recordingLogger) TestSkipped(framework.TestID, string) {}
func (l *recordingLogger) TestFinished(id framework.TestID, failed bool, output framework.CapturedOutput) {
	if l.debug == nil {
		l.debug = make(map[string]string)
	}
	for _, m := range output.Messages() {
		l.debug[id.String()] += m + "\n"
	}
}
