package parsing

import "fmt"

// ParseError represents an error decoding a model response into field values
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// GroupError represents a field group whose every strategy failed
type GroupError struct {
	Group string
	Cause error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("field group %s failed: %v", e.Group, e.Cause)
}

func (e *GroupError) Unwrap() error {
	return e.Cause
}
