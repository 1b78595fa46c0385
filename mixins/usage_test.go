package mixins

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadness(t *testing.T) {
	for _, p := range []struct {
		name     string
		usage    ClassUsage
		expected string
	}{
		{"never ran", ClassUsage{Class: "C", UsesTempDir: true}, ""},
		{"all skipped", ClassUsage{Class: "C", TestsRun: 3, TestsSkipped: 3, UsesTempDir: true}, ""},
		{"no temp dir", ClassUsage{Class: "C", TestsRun: 3}, ""},
		{"files optional", ClassUsage{Class: "C", TestsRun: 3, UsesTempDir: true, FilesOptional: true}, ""},
		{"made a file", ClassUsage{Class: "C", TestsRun: 3, UsesTempDir: true, TestsThatMadeFiles: 1}, ""},
		{"made no files", ClassUsage{Class: "C", TestsRun: 3, TestsSkipped: 1, UsesTempDir: true},
			"Inefficient: C ran 3 tests, 0 made files in a temp directory"},
	} {
		t.Run(p.name, func(t *testing.T) {
			assert.Equal(t, p.expected, p.usage.Badness())
		})
	}
}

func TestReportListsBadClassesInOrderAndClears(t *testing.T) {
	tracker := NewUsageTracker()
	for _, name := range []string{"Zed", "Good", "Alpha"} {
		tracker.testStarted(name, true, false)
		tracker.testFinished(name)
	}
	tracker.fileMade("Good")
	tracker.testFinished("Good")

	var buf bytes.Buffer
	assert.Equal(t, 2, tracker.Report(&buf))
	assert.Equal(t,
		"Inefficient: Zed ran 1 tests, 0 made files in a temp directory\n"+
			"Inefficient: Alpha ran 1 tests, 0 made files in a temp directory\n",
		buf.String())
	assert.Empty(t, tracker.Classes())

	buf.Reset()
	assert.Equal(t, 0, tracker.Report(&buf))
	assert.Empty(t, buf.String())
}

func TestDiscard(t *testing.T) {
	tracker := NewUsageTracker()
	tracker.testStarted("A", true, false)
	tracker.testStarted("B", true, false)

	u := tracker.Discard("A")
	if assert.NotNil(t, u) {
		assert.Equal(t, 1, u.TestsRun)
	}
	assert.Nil(t, tracker.Discard("A"))
	assert.Equal(t, []string{"B"}, tracker.Classes())
}

func TestFileMadeFlagIsResetForEachTest(t *testing.T) {
	tracker := NewUsageTracker()
	tracker.testStarted("A", true, false)
	tracker.fileMade("A")
	tracker.testStarted("A", true, false)
	tracker.testFinished("A")
	assert.Equal(t, 0, tracker.Class("A").TestsThatMadeFiles)
}

type fakeM struct {
	code int
	ran  bool
}

func (m *fakeM) Run() int {
	m.ran = true
	return m.code
}

func TestRunAndReport(t *testing.T) {
	tracker := NewUsageTracker()
	tracker.testStarted("Lazy", true, false)
	m := &fakeM{code: 3}

	var buf bytes.Buffer
	assert.Equal(t, 3, RunAndReport(m, tracker, &buf))
	assert.True(t, m.ran)
	assert.Equal(t, "Inefficient: Lazy ran 1 tests, 0 made files in a temp directory\n", buf.String())
}
