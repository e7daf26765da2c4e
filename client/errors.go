package client

import "fmt"

// ErrorKind is the transport error taxonomy. Each kind carries only the data
// needed to render a message.
type ErrorKind string

const (
	KindInvalidURL      ErrorKind = "invalid-url"
	KindInvalidResponse ErrorKind = "invalid-response"
	KindDecodingError   ErrorKind = "decoding-error"
	KindUnauthorized    ErrorKind = "unauthorized"
	KindServerError     ErrorKind = "server-error"
	KindNoConnection    ErrorKind = "no-connection"
)

type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindServerError:
		if e.Message != "" {
			return e.Message
		}
		return fmt.Sprintf("server error (%d)", e.StatusCode)
	case KindUnauthorized:
		return "Session expired. Please login again"
	case KindNoConnection:
		return "No internet connection"
	case KindInvalidURL:
		return "invalid request URL"
	case KindDecodingError:
		return "failed to decode response"
	case KindInvalidResponse:
		return "invalid response from server"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "Something went wrong"
}

func (e *APIError) Unwrap() error { return e.Err }

// Retryable reports whether re-invoking the same request may succeed. Retry
// is user-initiated; the client never retries on its own.
func (e *APIError) Retryable() bool {
	switch e.Kind {
	case KindNoConnection, KindInvalidResponse:
		return true
	case KindServerError:
		return e.StatusCode >= 500 || e.StatusCode == 408 || e.StatusCode == 429
	}
	return false
}
