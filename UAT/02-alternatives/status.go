// Package status classifies HTTP-like status codes, as a subject for disjunctions.
package status

// Class returns the hundreds digit of code, e.g. 4 for 404.
func Class(code int) int {
	return code / 100
}

// Retryable reports whether a request that got code may be retried.
func Retryable(code int) bool {
	return code == 429 || Class(code) == 5
}
