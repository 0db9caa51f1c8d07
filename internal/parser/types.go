package parser

import "fmt"

// ParseError reports a filename with no embedded coordinate block.
// It is surfaced to the user as-is and never retried.
type ParseError struct {
	Filename string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not extract coordinates from filename: %s", e.Filename)
}
