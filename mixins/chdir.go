package mixins

import (
	"fmt"
	"os"
)

func checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &DirectoryError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &DirectoryError{Path: dir}
	}
	return nil
}

// WithDir makes dir the working directory while action runs, passing action the new working
// directory, and then changes back to the directory that was current before, even if action
// panics or changes directory itself. It returns a *DirectoryError without calling action if dir
// is not an existing directory.
//
// The working directory belongs to the whole process, so this must not be used by tests that
// run in parallel.
func WithDir(dir string, action func(cwd string)) error {
	if err := checkDir(dir); err != nil {
		return err
	}
	previous, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return &DirectoryError{Path: dir, Err: err}
	}
	defer mustChdir(previous)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	action(cwd)
	return nil
}

func mustChdir(dir string) {
	if err := os.Chdir(dir); err != nil {
		panic(fmt.Sprintf("could not restore working directory %s: %s", dir, err))
	}
}

// ChangeDir makes dir the working directory for the rest of the test and returns it; the previous
// working directory is restored when the test's cleanups run. A bad directory fails the test.
func ChangeDir(t T, dir string) string {
	t.Helper()
	if err := checkDir(dir); err != nil {
		fatal(t, err)
		return ""
	}
	previous, err := os.Getwd()
	if err != nil {
		fatal(t, fmt.Errorf("getting working directory: %w", err))
		return ""
	}
	if err := os.Chdir(dir); err != nil {
		fatal(t, &DirectoryError{Path: dir, Err: err})
		return ""
	}
	t.Cleanup(func() {
		if err := os.Chdir(previous); err != nil {
			t.Errorf("could not restore working directory %s: %s", previous, err)
		}
	})
	cwd, err := os.Getwd()
	if err != nil {
		fatal(t, fmt.Errorf("getting working directory: %w", err))
	}
	return cwd
}
