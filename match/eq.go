package match

import (
	"reflect"
	"strings"

	"github.com/akedrou/textdiff"

	"github.com/toejough/verify/description"
)

// Eq returns a matcher for values deeply equal to expected, as reported by reflect.DeepEqual.
// Each polarity has its own wording: Describe(Match) is "is equal to X" and Describe(NoMatch)
// is "isn't equal to X", so combinators and Not forward the requested polarity unchanged.
// When both values are multi-line strings, of any string kind, the explanation includes a
// unified diff.
func Eq[T any](expected T) Matcher[T] {
	return eqMatcher[T]{expected: expected}
}

type eqMatcher[T any] struct {
	expected T
}

func (m eqMatcher[T]) Describe(result Result) description.Description {
	if result == Match {
		return description.Text("is equal to " + Repr(m.expected))
	}

	return description.Text("isn't equal to " + Repr(m.expected))
}

func (m eqMatcher[T]) ExplainMatch(actual T) description.Description {
	explanation := DefaultExplanation[T](m, actual)

	actualValue := reflect.ValueOf(actual)
	expectedValue := reflect.ValueOf(m.expected)

	if actualValue.Kind() != reflect.String || expectedValue.Kind() != reflect.String {
		return explanation
	}

	actualText, expectedText := actualValue.String(), expectedValue.String()
	if actualText == expectedText {
		return explanation
	}

	if !strings.Contains(actualText, "\n") && !strings.Contains(expectedText, "\n") {
		return explanation
	}

	diff := strings.TrimSuffix(textdiff.Unified("actual", "expected", actualText, expectedText), "\n")

	return description.Text(explanation.String() + "\n\nDifference(-actual / +expected):\n" + diff)
}

func (m eqMatcher[T]) Matches(actual T) Result {
	return ResultOfBool(reflect.DeepEqual(actual, m.expected))
}
