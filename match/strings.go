package match

import (
	"strconv"
	"strings"

	"github.com/toejough/verify/description"
)

// ContainsSubstring returns a matcher for strings containing substring.
func ContainsSubstring(substring string) Matcher[string] {
	return stringMatcher{
		operand: substring,
		test:    strings.Contains,
		match:   "contains a substring",
		noMatch: "does not contain a substring",
	}
}

// EndsWith returns a matcher for strings ending with suffix.
func EndsWith(suffix string) Matcher[string] {
	return stringMatcher{
		operand: suffix,
		test:    strings.HasSuffix,
		match:   "ends with",
		noMatch: "does not end with",
	}
}

// StartsWith returns a matcher for strings starting with prefix.
func StartsWith(prefix string) Matcher[string] {
	return stringMatcher{
		operand: prefix,
		test:    strings.HasPrefix,
		match:   "starts with",
		noMatch: "does not start with",
	}
}

type stringMatcher struct {
	operand string
	test    func(actual, operand string) bool
	match   string
	noMatch string
}

func (m stringMatcher) Describe(result Result) description.Description {
	phrase := m.noMatch
	if result == Match {
		phrase = m.match
	}

	return description.Text(phrase + " " + strconv.Quote(m.operand))
}

func (m stringMatcher) ExplainMatch(actual string) description.Description {
	return DefaultExplanation[string](m, actual)
}

func (m stringMatcher) Matches(actual string) Result {
	return ResultOfBool(m.test(actual, m.operand))
}
