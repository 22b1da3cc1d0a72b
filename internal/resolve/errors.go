package resolve

import "fmt"

// Error represents a company resolution failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resolve error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resolve error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
