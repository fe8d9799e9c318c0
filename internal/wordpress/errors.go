package wordpress

import (
	"errors"
	"fmt"
)

// The client distinguishes two failure kinds so callers can branch on type
// instead of matching strings:
//
//   - transport/status failures: the server answered with a non-2xx status
//     (*HTTPStatusError)
//   - payload failures: the server claimed success but the body was not JSON
//     (*InvalidJSONError), or a required field was missing from an otherwise
//     valid response (*MalformedPayloadError)
//
// Neither kind is retried.

// HTTPStatusError indicates a non-2xx HTTP response from the WordPress API.
type HTTPStatusError struct {
	StatusCode int    // HTTP status code
	URL        string // Request URL
	Body       string // Response body, truncated for display
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("wordpress API returned status %d for %s: %s", e.StatusCode, e.URL, truncate(e.Body, 200))
}

// InvalidJSONError indicates a 2xx response whose body is not valid JSON.
type InvalidJSONError struct {
	URL  string // Request URL
	Body string // Raw response body, kept for diagnosis
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("invalid JSON response from %s: %s", e.URL, truncate(e.Body, 200))
}

// MalformedPayloadError indicates a required field was absent (or had the
// wrong JSON type) in an upstream response object.
type MalformedPayloadError struct {
	Entity string // "post", "category", "site info"
	Key    string // missing key path, e.g. "title.rendered"
}

func (e *MalformedPayloadError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("malformed %s payload: expected a JSON object", e.Entity)
	}
	return fmt.Sprintf("malformed %s payload: missing required key %q", e.Entity, e.Key)
}

// IsTransportError returns true if the error is an HTTP status failure.
func IsTransportError(err error) bool {
	var statusErr *HTTPStatusError
	return errors.As(err, &statusErr)
}

// IsPayloadError returns true if the error is a payload failure
// (non-JSON body or missing required field).
func IsPayloadError(err error) bool {
	var jsonErr *InvalidJSONError
	var shapeErr *MalformedPayloadError
	return errors.As(err, &jsonErr) || errors.As(err, &shapeErr)
}

// ErrorKind returns a short label for the error category, used as a
// metrics label value.
func ErrorKind(err error) string {
	switch {
	case IsTransportError(err):
		return "transport"
	case IsPayloadError(err):
		return "payload"
	default:
		return "other"
	}
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
