package match

import "github.com/toejough/verify/description"

// ResultOf returns a matcher that applies transform to the actual value and matches the
// transformed value against inner.
//
// transform runs exactly once per call to Matches or ExplainMatch and its result is not
// cached, so it must be deterministic and free of side effects. The transformed value is
// handed to inner by value; transforms producing large values should return a pointer or
// slice to avoid the copy.
func ResultOf[I, O any](transform func(I) O, inner Matcher[O]) Matcher[I] {
	return resultOfMatcher[I, O]{transform: transform, inner: inner}
}

type resultOfMatcher[I, O any] struct {
	transform func(I) O
	inner     Matcher[O]
}

func (m resultOfMatcher[I, O]) Describe(result Result) description.Description {
	return description.Text("is mapped by the given callable to a value that " + m.inner.Describe(result).String())
}

func (m resultOfMatcher[I, O]) ExplainMatch(actual I) description.Description {
	mapped := m.transform(actual)

	return description.Text(
		"which is mapped by the given callable to " + Repr(mapped) + ", " + m.inner.ExplainMatch(mapped).String(),
	)
}

func (m resultOfMatcher[I, O]) Matches(actual I) Result {
	return m.inner.Matches(m.transform(actual))
}
