package match

import "github.com/toejough/verify/description"

// Satisfies returns a matcher that uses a predicate function to check for a match.
// The predicate should return nil if the value matches, or an error describing
// the mismatch if it does not. The error is only used to explain a mismatch.
//
// Example:
//
//	Satisfies(func(x int) error {
//	    if x < 0 { return fmt.Errorf("expected positive, got %d", x) }
//	    return nil
//	})
func Satisfies[T any](predicate func(T) error) Matcher[T] {
	return satisfiesMatcher[T]{predicate: predicate}
}

type satisfiesMatcher[T any] struct {
	predicate func(T) error
}

func (satisfiesMatcher[T]) Describe(result Result) description.Description {
	if result == Match {
		return description.Text("satisfies the given predicate")
	}

	return description.Text("does not satisfy the given predicate")
}

func (m satisfiesMatcher[T]) ExplainMatch(actual T) description.Description {
	if err := m.predicate(actual); err != nil {
		return description.Text("which does not satisfy the given predicate: " + err.Error())
	}

	return description.Text("which satisfies the given predicate")
}

func (m satisfiesMatcher[T]) Matches(actual T) Result {
	return ResultOfBool(m.predicate(actual) == nil)
}
