package git

import "fmt"

// ParseError indicates that output from a git query did not match the
// expected shape, e.g. a commit count that is not a number.
type ParseError struct {
	Query  string
	Output string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected output from 'git %s': %q", e.Query, e.Output)
}
