// Package mixins provides test isolation helpers: a scoped working directory, environment
// variables that are put back after each test, captured standard streams, and a fresh temp
// directory per test that also isolates the module table in package modules.
//
// Each helper takes a T, which *testing.T and *framework.Context both satisfy, and registers its
// own teardown with T.Cleanup. The helpers change process-wide state, so tests that use them
// must not run in parallel.
//
// TempDir also records, per class of tests, whether anyone actually wrote a file in the temp
// directories it made. Report (or RunAndReport from TestMain) prints the classes that paid for
// temp directories without using them.
package mixins
