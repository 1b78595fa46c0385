package mixins

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
)

// Environment changes environment variables for one test and puts them back afterward.
//
// The first time a variable is changed, its original value (or the fact that it was not set)
// is remembered; later changes to the same variable do not overwrite that. Restore, which is
// registered as a cleanup, returns every changed variable to its original state.
type Environment struct {
	t     T
	undos map[string]*string // nil means the variable was not set
}

func NewEnvironment(t T) *Environment {
	e := &Environment{t: t, undos: make(map[string]*string)}
	t.Cleanup(e.Restore)
	return e
}

func (e *Environment) record(name string) {
	if _, ok := e.undos[name]; ok {
		return
	}
	if value, ok := os.LookupEnv(name); ok {
		e.undos[name] = &value
	} else {
		e.undos[name] = nil
	}
}

// Set sets an environment variable until the end of the test.
func (e *Environment) Set(name, value string) {
	e.t.Helper()
	e.record(name)
	if err := os.Setenv(name, value); err != nil {
		fatal(e.t, fmt.Errorf("setting environment variable %s: %w", name, err))
	}
}

// Unset removes an environment variable until the end of the test. It is not an error if the
// variable was not set.
func (e *Environment) Unset(name string) {
	e.t.Helper()
	e.record(name)
	if err := os.Unsetenv(name); err != nil {
		fatal(e.t, fmt.Errorf("unsetting environment variable %s: %w", name, err))
	}
}

// LoadDotenv sets every variable defined in the given .env files, as if by Set. When a variable
// appears in more than one file, the last file wins. With no paths, ".env" is read.
func (e *Environment) LoadDotenv(paths ...string) error {
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return fmt.Errorf("reading environment files: %w", err)
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e.Set(name, vars[name])
	}
	return nil
}

// Changed returns the names of the variables that Restore will put back, sorted.
func (e *Environment) Changed() []string {
	names := make([]string, 0, len(e.undos))
	for name := range e.undos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Restore undoes every change made so far. It can be called early; the cleanup that runs at the
// end of the test then only undoes changes made after that.
func (e *Environment) Restore() {
	for name, value := range e.undos {
		var err error
		if value == nil {
			err = os.Unsetenv(name)
		} else {
			err = os.Setenv(name, *value)
		}
		if err != nil {
			e.t.Errorf("restoring environment variable %s: %s", name, err)
		}
	}
	if len(e.undos) > 0 {
		logger.Debug().Strs("variables", e.Changed()).Msg("restored environment")
	}
	e.undos = make(map[string]*string)
}
