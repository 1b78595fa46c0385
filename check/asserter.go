package check

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/stretchr/testify/require"
)

// Asserter makes assertions whose failures all go through one Sink. Normally that sink stops
// the test at the first failure; inside Delayed, failures are collected instead and reported
// together when the block ends.
//
// An Asserter is not safe for concurrent use.
type Asserter struct {
	t    require.TestingT
	sink Sink
}

// New returns an Asserter that reports each failure to t and stops the test immediately.
func New(t require.TestingT) *Asserter {
	return &Asserter{t: t, sink: immediateSink{t: t}}
}

// NewWithSink returns an Asserter that reports failures to sink.
func NewWithSink(sink Sink) *Asserter {
	return &Asserter{sink: sink}
}

func (a *Asserter) helper() {
	if h, ok := a.t.(interface{ Helper() }); ok {
		h.Helper()
	}
}

// Fail reports a failure with the given message.
func (a *Asserter) Fail(message string) {
	a.helper()
	a.sink.Fail(message)
}

// Delayed runs action with failure collection turned on. Every assertion failure inside it is
// recorded and execution continues; when action returns, the previous sink is put back and, if
// anything failed, a single failure is reported through it.
//
// A panic inside action is not an assertion failure: it propagates unchanged, and whatever was
// collected before it is dropped.
func (a *Asserter) Delayed(action func()) {
	a.helper()
	if failure := a.collect(action); failure != nil {
		a.sink.Fail(failure.Error())
	}
}

func (a *Asserter) collect(action func()) *AssertionFailure {
	collected := &collectingSink{}
	previous := a.sink
	a.sink = collected
	func() {
		defer func() { a.sink = previous }()
		action()
	}()
	if len(collected.messages) == 0 {
		return nil
	}
	return &AssertionFailure{Messages: collected.messages}
}

// Collect runs action as a delayed block without any test, returning an *AssertionFailure if any
// assertion failed, or nil.
func Collect(action func(a *Asserter)) error {
	a := NewWithSink(SinkFunc(func(message string) {
		panic(fmt.Sprintf("assertion failed outside of a delayed block: %s", message))
	}))
	if failure := a.collect(func() { action(a) }); failure != nil {
		return failure
	}
	return nil
}

// Equal asserts that expected and actual are equal. Two strings are compared line by line and
// the failure message shows the differing lines.
func (a *Asserter) Equal(expected, actual interface{}, msgAndArgs ...interface{}) bool {
	a.helper()
	if es, ok := expected.(string); ok {
		if as, ok := actual.(string); ok {
			if es == as {
				return true
			}
			a.Fail(formatMessage(multiLineMessage(es, as), msgAndArgs...))
			return false
		}
	}
	if objectsAreEqual(expected, actual) {
		return true
	}
	a.Fail(formatMessage(fmt.Sprintf("%s != %s", shortRepr(expected), shortRepr(actual)), msgAndArgs...))
	return false
}

func (a *Asserter) NotEqual(expected, actual interface{}, msgAndArgs ...interface{}) bool {
	a.helper()
	if !objectsAreEqual(expected, actual) {
		return true
	}
	a.Fail(formatMessage(fmt.Sprintf("%s == %s", shortRepr(expected), shortRepr(actual)), msgAndArgs...))
	return false
}

func (a *Asserter) True(value bool, msgAndArgs ...interface{}) bool {
	a.helper()
	if value {
		return true
	}
	a.Fail(formatMessage("false is not true", msgAndArgs...))
	return false
}

func (a *Asserter) False(value bool, msgAndArgs ...interface{}) bool {
	a.helper()
	if !value {
		return true
	}
	a.Fail(formatMessage("true is not false", msgAndArgs...))
	return false
}

func (a *Asserter) Contains(s, substr string, msgAndArgs ...interface{}) bool {
	a.helper()
	if strings.Contains(s, substr) {
		return true
	}
	a.Fail(formatMessage(fmt.Sprintf("%s not found in %s", shortRepr(substr), shortRepr(s)), msgAndArgs...))
	return false
}

func (a *Asserter) NotContains(s, substr string, msgAndArgs ...interface{}) bool {
	a.helper()
	if !strings.Contains(s, substr) {
		return true
	}
	a.Fail(formatMessage(fmt.Sprintf("%s unexpectedly found in %s", shortRepr(substr), shortRepr(s)), msgAndArgs...))
	return false
}

func (a *Asserter) Nil(value interface{}, msgAndArgs ...interface{}) bool {
	a.helper()
	if isNil(value) {
		return true
	}
	a.Fail(formatMessage(fmt.Sprintf("%s is not nil", shortRepr(value)), msgAndArgs...))
	return false
}

func (a *Asserter) NoError(err error, msgAndArgs ...interface{}) bool {
	a.helper()
	if err == nil {
		return true
	}
	a.Fail(formatMessage(fmt.Sprintf("unexpected error: %s", err), msgAndArgs...))
	return false
}

func objectsAreEqual(expected, actual interface{}) bool {
	if eb, ok := expected.([]byte); ok {
		ab, ok := actual.([]byte)
		return ok && string(eb) == string(ab)
	}
	return reflect.DeepEqual(expected, actual)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// formatMessage appends the caller's own message, if any, to the standard one.
func formatMessage(standard string, msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return standard
	}
	return standard + " : " + messageFromMsgAndArgs(msgAndArgs)
}

// messageFromMsgAndArgs treats a lone argument as the message itself and several arguments as
// a format string followed by its arguments, as testify does.
func messageFromMsgAndArgs(msgAndArgs []interface{}) string {
	if len(msgAndArgs) == 1 {
		if msg, ok := msgAndArgs[0].(string); ok {
			return msg
		}
		return fmt.Sprintf("%+v", msgAndArgs[0])
	}
	format, _ := msgAndArgs[0].(string)
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}
