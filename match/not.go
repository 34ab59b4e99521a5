package match

import "github.com/toejough/verify/description"

// Not returns a matcher that matches exactly when inner does not.
func Not[T any](inner Matcher[T]) Matcher[T] {
	return notMatcher[T]{inner: inner}
}

type notMatcher[T any] struct {
	inner Matcher[T]
}

func (m notMatcher[T]) Describe(result Result) description.Description {
	return m.inner.Describe(result.Negate())
}

func (m notMatcher[T]) ExplainMatch(actual T) description.Description {
	return m.inner.ExplainMatch(actual)
}

func (m notMatcher[T]) Matches(actual T) Result {
	return m.inner.Matches(actual).Negate()
}
