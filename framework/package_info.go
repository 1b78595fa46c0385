// Package framework contains a small in-process test engine that can be used outside of the Go
// test runner, or inside a Go test to run "inner" tests and inspect how they ended.
//
// The general model is:
//
// 1. Run creates a root Context and calls the given function with it. Context.Run creates a
// named subtest. Each Context is similar to Go's *testing.T: it accumulates failures, can be
// skipped, and runs its registered cleanups after the test body, newest first.
//
// 2. Every test ends in exactly one of four states: passed, failed (an assertion called
// Errorf or FailNow), errored (the body panicked with anything else), or skipped. Results
// lists each test under the matching heading.
//
// 3. A TestLogger is told about each test as it starts, reports errors, and finishes, and a
// CapturingLogger collects per-test debug output that the logger may print on failure.
package framework
