package table

import "fmt"

// BoundsError reports a cursor operation that would leave the 1-based
// coordinate space. It signals a logic error in the calling traversal,
// not a recoverable runtime condition.
type BoundsError struct {
	Op  string
	Row int
	Col int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("table: %s would move cursor out of bounds to (%d, %d)", e.Op, e.Row, e.Col)
}
