package gemini

import "fmt"

// CredentialsError reports a missing or rejected API key.
type CredentialsError struct {
	Reason string
}

func (e *CredentialsError) Error() string {
	return "gemini credentials: " + e.Reason
}

// NetworkError reports a transport-level failure, including timeouts.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("gemini request failed: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ResponseError reports an HTTP error status or a response whose JSON
// structure is not the expected candidates shape. Body carries the raw
// response for diagnostics.
type ResponseError struct {
	StatusCode int
	Reason     string
	Body       string
}

func (e *ResponseError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gemini response: HTTP %d: %s", e.StatusCode, e.Reason)
	}
	return "gemini response: " + e.Reason
}
