package match

import "github.com/toejough/verify/description"

// Or returns a matcher that matches when at least one of first and second matches.
//
// Both alternatives are always reported: Describe joins their descriptions with ", or " and
// ExplainMatch joins their explanations with " and", whichever side actually matched.
func Or[T any](first, second Matcher[T]) Matcher[T] {
	return disjunctionMatcher[T]{first: first, second: second}
}

type disjunctionMatcher[T any] struct {
	first  Matcher[T]
	second Matcher[T]
}

func (m disjunctionMatcher[T]) Describe(result Result) description.Description {
	return description.Text(m.first.Describe(result).String() + ", or " + m.second.Describe(result).String())
}

func (m disjunctionMatcher[T]) ExplainMatch(actual T) description.Description {
	return description.Text(m.first.ExplainMatch(actual).String() + " and\n  " + m.second.ExplainMatch(actual).String())
}

func (m disjunctionMatcher[T]) Matches(actual T) Result {
	if m.first.Matches(actual) == NoMatch && m.second.Matches(actual) == NoMatch {
		return NoMatch
	}

	return Match
}
