package framework

import (
	"fmt"
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Errors   []TestResult
	Skipped  []TestResult
}

type TestResult struct {
	TestID     TestID
	Errors     []error
	Failed     bool
	Errored    bool
	Skipped    bool
	SkipReason string
}

func (r Results) OK() bool {
	return len(r.Failures) == 0 && len(r.Errors) == 0
}

// Find returns the result for the test whose last path component is name.
func (r Results) Find(name string) (TestResult, bool) {
	for _, t := range r.Tests {
		if len(t.TestID.Path) > 0 && t.TestID.Path[len(t.TestID.Path)-1] == name {
			return t, true
		}
	}
	return TestResult{}, false
}

// Names returns the last path component of each result, in order.
func Names(results []TestResult) []string {
	ret := make([]string, 0, len(results))
	for _, r := range results {
		if len(r.TestID.Path) > 0 {
			ret = append(ret, r.TestID.Path[len(r.TestID.Path)-1])
		}
	}
	return ret
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// reformatError strips the leading newline that testify puts at the start of its messages.
func reformatError(err error) error {
	s := err.Error()
	if strings.HasPrefix(s, "\n") {
		return fmt.Errorf("%s", strings.TrimPrefix(s, "\n"))
	}
	return err
}
