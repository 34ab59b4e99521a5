package match

import (
	"fmt"
	"strconv"

	"github.com/toejough/verify/description"
)

// ElementsAre returns a matcher for slices that have exactly one element per given matcher,
// each element satisfying the matcher at the same position.
//
// A slice of the wrong length never matches and is explained by its size alone. Otherwise
// every mismatching position is explained, nested explanations included:
//
//	where:
//	  * element #0 is []int{0, 1}, where:
//	      * element #0 is 0, which isn't equal to 1
//	      * element #1 is 1, which isn't equal to 2
//	  * element #1 is []int{1, 2}, where element #0 is 1, which isn't equal to 2
func ElementsAre[T any](matchers ...Matcher[T]) Matcher[[]T] {
	owned := make([]Matcher[T], len(matchers))
	copy(owned, matchers)

	return elementsAreMatcher[T]{elements: owned}
}

type elementsAreMatcher[T any] struct {
	elements []Matcher[T]
}

// Describe lists what each position requires. Length is not part of the description; a
// length mismatch shows up in ExplainMatch.
func (m elementsAreMatcher[T]) Describe(Result) description.Description {
	required := make([]string, 0, len(m.elements))
	for _, matcher := range m.elements {
		required = append(required, matcher.Describe(Match).String())
	}

	return description.Text("has elements:\n" + description.New(required...).Enumerate().Indent().String())
}

func (m elementsAreMatcher[T]) ExplainMatch(actual []T) description.Description {
	if len(actual) != len(m.elements) {
		return description.Text("whose size is " + strconv.Itoa(len(actual)))
	}

	mismatches := make([]string, 0, len(m.elements))

	for i, matcher := range m.elements {
		if matcher.Matches(actual[i]) == Match {
			continue
		}

		mismatches = append(mismatches, fmt.Sprintf(
			"element #%d is %s, %s", i, Repr(actual[i]), matcher.ExplainMatch(actual[i]),
		))
	}

	switch len(mismatches) {
	case 0:
		return description.Text("whose elements all match")
	case 1:
		return description.Text("where " + mismatches[0])
	default:
		return description.Text("where:\n" + description.New(mismatches...).BulletList().Indent().String())
	}
}

func (m elementsAreMatcher[T]) Matches(actual []T) Result {
	if len(actual) != len(m.elements) {
		return NoMatch
	}

	for i, matcher := range m.elements {
		if matcher.Matches(actual[i]) == NoMatch {
			return NoMatch
		}
	}

	return Match
}
