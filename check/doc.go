// Package check provides assertions that can be delayed.
//
// Ordinarily an Asserter stops the test at its first failed assertion. Inside a Delayed block
// the failures are collected instead, so that several independent checks all run and are
// reported together:
//
//	a := check.New(t)
//	a.Delayed(func() {
//		a.Equal("x", got.X)
//		a.Equal("w", got.W)
//	})
//
// This works because every assertion reports through a single Sink. Assertions that bypass it,
// such as calling require functions on t directly, stop the test as usual.
package check
