package payment

import "fmt"

// ValidationError aggregates every constraint a request violated.
type ValidationError struct {
	Details string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input data: %s", e.Details)
}
