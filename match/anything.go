package match

import "github.com/toejough/verify/description"

// Anything returns a matcher that matches every value.
func Anything[T any]() Matcher[T] {
	return anythingMatcher[T]{}
}

type anythingMatcher[T any] struct{}

func (anythingMatcher[T]) Describe(result Result) description.Description {
	if result == Match {
		return description.Text("is anything")
	}

	return description.Text("never matches")
}

func (m anythingMatcher[T]) ExplainMatch(actual T) description.Description {
	return DefaultExplanation[T](m, actual)
}

func (anythingMatcher[T]) Matches(T) Result {
	return Match
}
