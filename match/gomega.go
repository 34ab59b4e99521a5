package match

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"

	"github.com/toejough/verify/description"
)

// AsGomega adapts a matcher for use with gomega's Expect(...).To(...).
// Values that are not of type T fail to match with an error wrapping ErrTypeMismatch.
func AsGomega[T any](matcher Matcher[T]) types.GomegaMatcher {
	return gomegaAdapter[T]{matcher: matcher}
}

// FromGomega adapts a gomega matcher into a Matcher. A gomega error counts as NoMatch and is
// reported by ExplainMatch. Gomega matchers that keep state between calls lose the
// concurrency guarantees of this package.
func FromGomega[T any](gomegaMatcher types.GomegaMatcher) Matcher[T] {
	return fromGomegaMatcher[T]{gomega: gomegaMatcher}
}

type fromGomegaMatcher[T any] struct {
	gomega types.GomegaMatcher
}

func (m fromGomegaMatcher[T]) Describe(result Result) description.Description {
	if result == Match {
		return description.Text(fmt.Sprintf("is matched by gomega's %T", m.gomega))
	}

	return description.Text(fmt.Sprintf("isn't matched by gomega's %T", m.gomega))
}

func (m fromGomegaMatcher[T]) ExplainMatch(actual T) description.Description {
	success, err := m.gomega.Match(actual)

	switch {
	case err != nil:
		return description.Text("which made gomega's matcher fail: " + err.Error())
	case success:
		return DefaultExplanation[T](m, actual)
	default:
		return description.Text("which gomega rejected:\n" + description.Text(m.gomega.FailureMessage(actual)).Indent().String())
	}
}

func (m fromGomegaMatcher[T]) Matches(actual T) Result {
	success, err := m.gomega.Match(actual)

	return ResultOfBool(err == nil && success)
}

type gomegaAdapter[T any] struct {
	matcher Matcher[T]
}

func (a gomegaAdapter[T]) FailureMessage(actual any) string {
	value, ok := asType[T](actual)
	if !ok {
		return format.Message(actual, "to be of type "+typeName[T]())
	}

	return format.Message(value, "to be a value that "+a.matcher.Describe(Match).String()) +
		"\n" + a.matcher.ExplainMatch(value).String()
}

func (a gomegaAdapter[T]) Match(actual any) (bool, error) {
	value, ok := asType[T](actual)
	if !ok {
		return false, fmt.Errorf("%w: expected %s, got %T", ErrTypeMismatch, typeName[T](), actual)
	}

	return a.matcher.Matches(value).Matched(), nil
}

func (a gomegaAdapter[T]) NegatedFailureMessage(actual any) string {
	value, ok := asType[T](actual)
	if !ok {
		return format.Message(actual, "to be of type "+typeName[T]())
	}

	return format.Message(value, "to be a value that "+a.matcher.Describe(NoMatch).String()) +
		"\n" + a.matcher.ExplainMatch(value).String()
}

// asType converts actual to T. A nil actual converts to the zero T when T is an interface
// type, since gomega hands over a nil error or interface as an untyped nil.
func asType[T any](actual any) (T, bool) {
	if value, ok := actual.(T); ok {
		return value, true
	}

	var zero T

	return zero, actual == nil && any(zero) == nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
