// Package verify checks values against matchers and reports failures in a form a test
// author can read at a glance:
//
//	Value of: got
//	Expected: has elements:
//	  0. is equal to 1
//	  1. is equal to 2
//	Actual: []int{1, 4}, where element #1 is 4, which isn't equal to 2
//
// The matchers themselves live in the match package.
package verify

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/toejough/verify/match"
)

// ErrNoMatch is matched by every *Failure, so errors.Is(err, ErrNoMatch) tells a failed
// match apart from other errors.
var ErrNoMatch = errors.New("value does not match")

// Assert checks actual against matcher and stops the test with t.Fatalf if it does not match.
func Assert[T any](t TestReporter, actual T, matcher match.Matcher[T], opts ...Option) {
	t.Helper()

	if err := check(callerSkip, actual, matcher, opts); err != nil {
		t.Fatalf("%v", err)
	}
}

// Expect checks actual against matcher, reports a mismatch with t.Errorf, and returns
// whether it matched so the test can decide whether to carry on.
func Expect[T any](t TestReporter, actual T, matcher match.Matcher[T], opts ...Option) bool {
	t.Helper()

	if err := check(callerSkip, actual, matcher, opts); err != nil {
		t.Errorf("%v", err)

		return false
	}

	return true
}

// That checks actual against matcher. It returns nil on a match and a *Failure otherwise.
func That[T any](actual T, matcher match.Matcher[T], opts ...Option) error {
	return check(callerSkip, actual, matcher, opts)
}

// Failure describes a value that did not match. Its Error method renders the report.
type Failure struct {
	// Label names the checked value: the WithLabel text, or the caller's file and line.
	Label string
	// Expected is the matcher's description of a match.
	Expected string
	// Actual is the checked value's representation.
	Actual string
	// Explanation is the matcher's explanation of the mismatch.
	Explanation string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("Value of: %s\nExpected: %s\nActual: %s, %s", f.Label, f.Expected, f.Actual, f.Explanation)
}

// Is reports whether target is ErrNoMatch.
func (f *Failure) Is(target error) bool {
	return target == ErrNoMatch
}

// Option configures a single check.
type Option func(*options)

// WithLabel names the checked value in the report, typically with the source text of the
// expression that produced it.
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// TestReporter is the minimal interface verify needs from test frameworks.
// *testing.T satisfies it.
type TestReporter interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// callerSkip is the number of frames between callerLabel and the test calling a public
// entry point: callerLabel, check, then That/Expect/Assert.
const callerSkip = 3

type options struct {
	label string
}

// callerLabel names a value by where it was checked, e.g. "value at parse_test.go:42".
func callerLabel(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "value"
	}

	return fmt.Sprintf("value at %s:%d", filepath.Base(file), line)
}

func check[T any](skip int, actual T, matcher match.Matcher[T], opts []Option) error {
	if matcher.Matches(actual) == match.Match {
		return nil
	}

	config := options{}
	for _, opt := range opts {
		opt(&config)
	}

	if config.label == "" {
		config.label = callerLabel(skip)
	}

	return &Failure{
		Label:       config.label,
		Expected:    matcher.Describe(match.Match).String(),
		Actual:      match.Repr(actual),
		Explanation: matcher.ExplainMatch(actual).String(),
	}
}
