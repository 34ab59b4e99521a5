package match

import (
	"cmp"

	"github.com/toejough/verify/description"
)

// Ge returns a matcher for values greater than or equal to bound.
func Ge[T cmp.Ordered](bound T) Matcher[T] {
	return orderedMatcher[T]{
		bound:   bound,
		accepts: func(c int) bool { return c >= 0 },
		match:   "is greater than or equal to",
		noMatch: "is less than",
	}
}

// Gt returns a matcher for values strictly greater than bound.
func Gt[T cmp.Ordered](bound T) Matcher[T] {
	return orderedMatcher[T]{
		bound:   bound,
		accepts: func(c int) bool { return c > 0 },
		match:   "is greater than",
		noMatch: "is less than or equal to",
	}
}

// Le returns a matcher for values less than or equal to bound.
func Le[T cmp.Ordered](bound T) Matcher[T] {
	return orderedMatcher[T]{
		bound:   bound,
		accepts: func(c int) bool { return c <= 0 },
		match:   "is less than or equal to",
		noMatch: "is greater than",
	}
}

// Lt returns a matcher for values strictly less than bound.
func Lt[T cmp.Ordered](bound T) Matcher[T] {
	return orderedMatcher[T]{
		bound:   bound,
		accepts: func(c int) bool { return c < 0 },
		match:   "is less than",
		noMatch: "is greater than or equal to",
	}
}

// orderedMatcher compares the actual value against bound; accepts receives
// cmp.Compare(actual, bound).
type orderedMatcher[T cmp.Ordered] struct {
	bound   T
	accepts func(int) bool
	match   string
	noMatch string
}

func (m orderedMatcher[T]) Describe(result Result) description.Description {
	phrase := m.noMatch
	if result == Match {
		phrase = m.match
	}

	return description.Text(phrase + " " + Repr(m.bound))
}

func (m orderedMatcher[T]) ExplainMatch(actual T) description.Description {
	return DefaultExplanation[T](m, actual)
}

func (m orderedMatcher[T]) Matches(actual T) Result {
	return ResultOfBool(m.accepts(cmp.Compare(actual, m.bound)))
}
