// Package selftest checks the mixins against the process they run in: it changes directories,
// environment variables, standard streams and module tables for real and verifies that each
// change is undone. The self-check binary runs it on the framework engine.
package selftest
