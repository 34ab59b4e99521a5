package match

import "strconv"

// Result is the outcome of a match. Convert from and to bool with ResultOfBool and Matched.
type Result int

// Result values.
const (
	NoMatch Result = iota
	Match
)

// ResultOfBool converts a bool into a Result.
func ResultOfBool(matched bool) Result {
	if matched {
		return Match
	}

	return NoMatch
}

// Matched reports whether r is Match.
func (r Result) Matched() bool {
	return r == Match
}

// Negate returns the opposite Result.
func (r Result) Negate() Result {
	if r == Match {
		return NoMatch
	}

	return Match
}

func (r Result) String() string {
	switch r {
	case Match:
		return "Match"
	case NoMatch:
		return "NoMatch"
	default:
		return "Result(" + strconv.Itoa(int(r)) + ")"
	}
}
