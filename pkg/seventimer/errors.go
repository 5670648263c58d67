package seventimer

import "fmt"

// ValidationError reports an invalid request parameter. It is returned
// before any network I/O takes place and is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Message)
}

// RequestFailedError reports an HTTP response with a non-success status.
// It carries the status line as returned by the server and is only
// produced by the decoding entry points (Fetch, FetchRaw); Do returns
// failure responses to the caller without raising.
type RequestFailedError struct {
	Status     string
	StatusCode int
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Status)
}
