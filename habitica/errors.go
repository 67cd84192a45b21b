package habitica

import "fmt"

// UpstreamError is returned for any failed call to the remote service.
type UpstreamError struct {
	Op         string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("habitica %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("habitica %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
