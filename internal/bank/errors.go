package bank

import "fmt"

// UpstreamError reports that the acquiring bank was unreachable or replied
// with a client or server error status.
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("acquiring bank returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("acquiring bank unreachable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
