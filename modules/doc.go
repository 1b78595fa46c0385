// Package modules is a table of named modules loaded from YAML, TOML or JSON files found on a
// search path, memoized by name.
//
// Together with Snapshot and SaveSearchPath it lets a test write a module file, import it,
// change the file, and import the same name again after resetting, seeing the new content.
package modules
