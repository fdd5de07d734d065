package engine

import "fmt"

// AssertionError reports a broken internal invariant, such as applying a
// rule at an offset the matcher would have refused.
type AssertionError struct {
	message string
}

func assertionf(format string, args ...any) AssertionError {
	return AssertionError{fmt.Sprintf(format, args...)}
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return "assertion failed: " + e.message
}
