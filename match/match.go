// Package match provides composable matchers that explain themselves.
//
// A matcher decides whether an actual value satisfies a condition (Matches), describes the
// condition without reference to any value (Describe), and explains after the fact why a
// particular value did or did not satisfy it (ExplainMatch). Combinators such as Or,
// ResultOf and ElementsAre nest matchers, and their explanations nest with them:
//
//	m := match.ElementsAre(match.Eq(1), match.Eq(2), match.Eq(3))
//	m.Matches([]int{1, 4, 3})             // match.NoMatch
//	m.ExplainMatch([]int{1, 4, 3}).String() // "where element #1 is 4, which isn't equal to 2"
//
// Matchers work inside gomega assertions through AsGomega, and gomega matchers work as
// leaves of a composition through FromGomega:
//
//	g.Expect(values).To(match.AsGomega(match.ElementsAre(match.Eq(1), match.Ge(2))))
package match

import (
	"errors"
	"fmt"

	"github.com/toejough/verify/description"
)

// ErrTypeMismatch is returned when a matcher is handed a value of a type it cannot match.
var ErrTypeMismatch = errors.New("type mismatch")

// Matcher decides whether values of type T satisfy a condition, and explains the decision.
//
// Implementations must be immutable once constructed: all three methods are callable any
// number of times, in any order, from any goroutine, and give the same answer for the same
// input.
type Matcher[T any] interface {
	// Matches reports whether actual satisfies the matcher.
	Matches(actual T) Result
	// Describe states what the matcher requires in order to produce result.
	Describe(result Result) description.Description
	// ExplainMatch explains why actual did or did not satisfy the matcher.
	ExplainMatch(actual T) description.Description
}

// DefaultExplanation explains a match by describing the outcome actual produces, e.g.
// "which isn't equal to 2". Leaf matchers with nothing more specific to say use it.
func DefaultExplanation[T any](matcher Matcher[T], actual T) description.Description {
	return description.Text("which " + matcher.Describe(matcher.Matches(actual)).String())
}

// Repr returns the representation of a value used in explanations: its Go-syntax form,
// so strings are quoted and slices show their elements. An untyped nil, including a nil
// interface value such as a nil error, renders as "nil"; a typed nil pointer keeps its
// Go-syntax form, e.g. "(*int)(nil)".
func Repr(value any) string {
	if value == nil {
		return "nil"
	}

	return fmt.Sprintf("%#v", value)
}
