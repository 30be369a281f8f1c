// Package compose serializes user input and selected assessments into the
// canonical sectioned document format.
package compose

import "fmt"

// ValidationError indicates a required compose field was empty after trimming.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}
