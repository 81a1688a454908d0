package workflow

import "fmt"

// NotImplementedError indicates a verb that is reserved on the CLI
// surface but has no behavior yet.
type NotImplementedError struct {
	Verb string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("'%s' is not implemented yet", e.Verb)
}
