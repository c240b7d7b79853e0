package collection

import "fmt"

// TransportError reports that the request never produced a response:
// dial or DNS failure, a transport timeout, or cancellation.
type TransportError struct {
	Resource Resource
	Err      error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a non-2xx response.
type HTTPStatusError struct {
	Resource   Resource
	StatusCode int
	Body       string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// DecodeError reports a body that could not be read or is not valid JSON.
type DecodeError struct {
	Resource Resource
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
