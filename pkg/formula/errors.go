package formula

import "fmt"

// ParseError represents a parsing error with position information.
type ParseError struct {
	Pos     Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("formula: parse error at column %d: %s", e.Pos.Column, e.Message)
}
