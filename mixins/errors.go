package mixins

import "fmt"

// DirectoryError means a directory that was supposed to become the working directory does not
// exist or is not a directory.
type DirectoryError struct {
	Path string
	Err  error
}

func (e *DirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot change directory to %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot change directory to %s: not a directory", e.Path)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// UsageError means a temp-directory-only operation was used by a test that has no temp
// directory.
type UsageError struct {
	Op string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s should only be used in temp directories", e.Op)
}
