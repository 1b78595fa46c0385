package mixins

import "strings"

// T is what the mixins need from a test. *testing.T satisfies it, and so does
// *framework.Context.
type T interface {
	Cleanup(func())
	Errorf(format string, args ...interface{})
	FailNow()
	Helper()
	Name() string
	Skip(args ...interface{})
}

func fatal(t T, err error) {
	t.Helper()
	t.Errorf("%s", err)
	t.FailNow()
}

// className is the default usage-tracking key for a test: the name of its parent test, or its
// own name if it has no parent.
func className(t T) string {
	name := t.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[:i]
	}
	return name
}
