package mixins

import (
	"fmt"
	"io"
	"sync"
)

// ClassUsage is what the usage tracker knows about one class of tests: every test that shares a
// usage key, normally the subtests of one parent test.
//
// Creating temp directories costs time, so a class whose tests never write files in theirs
// should not ask for them. This record is how that mistake is noticed.
type ClassUsage struct {
	Class              string
	TestsRun           int
	TestsSkipped       int
	UsesTempDir        bool
	FilesOptional      bool
	TestsThatMadeFiles int

	currentTestMadeFile bool
}

// Badness describes how the class misused temp directories, or returns "" if it did not.
func (u *ClassUsage) Badness() string {
	if u.TestsRun <= u.TestsSkipped {
		return "" // nothing meaningful ran
	}
	if u.UsesTempDir && u.TestsThatMadeFiles == 0 && !u.FilesOptional {
		return fmt.Sprintf("Inefficient: %s ran %d tests, %d made files in a temp directory",
			u.Class, u.TestsRun, u.TestsThatMadeFiles)
	}
	return ""
}

// UsageTracker keeps a ClassUsage for every class it has seen, for the life of the process or
// until Report is called.
type UsageTracker struct {
	classes map[string]*ClassUsage
	order   []string
	lock    sync.Mutex
}

// DefaultTracker is the tracker TempDir uses unless told otherwise. Call Report on it once, when
// all tests are done, for example with RunAndReport from TestMain.
var DefaultTracker = NewUsageTracker()

func NewUsageTracker() *UsageTracker {
	return &UsageTracker{classes: make(map[string]*ClassUsage)}
}

func (r *UsageTracker) class(name string) *ClassUsage {
	u, ok := r.classes[name]
	if !ok {
		u = &ClassUsage{Class: name}
		r.classes[name] = u
		r.order = append(r.order, name)
	}
	return u
}

// Class returns the record for a class, creating an empty one if there is none yet.
func (r *UsageTracker) Class(name string) *ClassUsage {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.class(name)
}

// Discard removes and returns the record for a class, so that it will not be reported. It
// returns nil if there was none.
func (r *UsageTracker) Discard(name string) *ClassUsage {
	r.lock.Lock()
	defer r.lock.Unlock()
	u, ok := r.classes[name]
	if !ok {
		return nil
	}
	delete(r.classes, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return u
}

// Classes returns the names of all tracked classes in the order they were first seen.
func (r *UsageTracker) Classes() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.order...)
}

func (r *UsageTracker) testStarted(name string, usesTempDir, filesOptional bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	u := r.class(name)
	u.TestsRun++
	u.UsesTempDir = usesTempDir
	u.FilesOptional = filesOptional
	u.currentTestMadeFile = false
}

func (r *UsageTracker) testSkipped(name string) {
	r.lock.Lock()
	r.class(name).TestsSkipped++
	r.lock.Unlock()
}

func (r *UsageTracker) fileMade(name string) {
	r.lock.Lock()
	r.class(name).currentTestMadeFile = true
	r.lock.Unlock()
}

func (r *UsageTracker) testFinished(name string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	u := r.class(name)
	if u.currentTestMadeFile {
		u.TestsThatMadeFiles++
		u.currentTestMadeFile = false
	}
}

// Report writes one line for each class with a non-empty Badness, then forgets every class. It
// returns the number of lines written. Bad classes are only reported, never turned into test
// failures.
func (r *UsageTracker) Report(w io.Writer) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	count := 0
	for _, name := range r.order {
		if badness := r.classes[name].Badness(); badness != "" {
			fmt.Fprintln(w, badness)
			count++
		}
	}
	logger.Debug().Int("classes", len(r.order)).Int("reported", count).Msg("reported temp directory usage")
	r.classes = make(map[string]*ClassUsage)
	r.order = nil
	return count
}

// RunAndReport runs the tests and then reports on the tracker, returning the exit code from
// m.Run. It is meant for TestMain:
//
//	func TestMain(m *testing.M) {
//		os.Exit(mixins.RunAndReport(m, mixins.DefaultTracker, os.Stdout))
//	}
func RunAndReport(m interface{ Run() int }, tracker *UsageTracker, w io.Writer) int {
	code := m.Run()
	tracker.Report(w)
	return code
}
