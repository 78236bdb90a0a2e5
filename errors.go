package typecast

import "fmt"

// ErrorKind classifies an API error by its HTTP status class.
type ErrorKind string

const (
	ErrKindBadRequest      ErrorKind = "bad_request"
	ErrKindUnauthorized    ErrorKind = "unauthorized"
	ErrKindPaymentRequired ErrorKind = "payment_required"
	ErrKindForbidden       ErrorKind = "forbidden"
	ErrKindNotFound        ErrorKind = "not_found"
	ErrKindValidation      ErrorKind = "validation_error"
	ErrKindRateLimited     ErrorKind = "rate_limited"
	ErrKindServerError     ErrorKind = "server_error"
	ErrKindUnknown         ErrorKind = "unknown"
)

// APIError is an error reported by the Typecast API through a non-2xx
// status. Detail carries the message from the error body, or "Unknown error"
// when the body was absent or unreadable.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Detail     string
}

// NewAPIError classifies a status code and detail message into an APIError.
// An empty detail falls back to "Unknown error".
func NewAPIError(statusCode int, detail string) *APIError {
	if detail == "" {
		detail = "Unknown error"
	}

	var kind ErrorKind
	switch {
	case statusCode == 400:
		kind = ErrKindBadRequest
	case statusCode == 401:
		kind = ErrKindUnauthorized
	case statusCode == 402:
		kind = ErrKindPaymentRequired
	case statusCode == 403:
		kind = ErrKindForbidden
	case statusCode == 404:
		kind = ErrKindNotFound
	case statusCode == 422:
		kind = ErrKindValidation
	case statusCode == 429:
		kind = ErrKindRateLimited
	case statusCode >= 500 && statusCode <= 599:
		kind = ErrKindServerError
	default:
		kind = ErrKindUnknown
	}

	return &APIError{
		Kind:       kind,
		StatusCode: statusCode,
		Detail:     detail,
	}
}

func (e *APIError) Error() string {
	var message string
	switch e.Kind {
	case ErrKindBadRequest:
		message = "Bad Request - The request was invalid or cannot be served"
	case ErrKindUnauthorized:
		message = "Unauthorized - Invalid or missing API key"
	case ErrKindPaymentRequired:
		message = "Payment Required - Insufficient credits to complete the request"
	case ErrKindForbidden:
		message = "Forbidden - Access denied, check your API key"
	case ErrKindNotFound:
		message = "Not Found - The requested resource does not exist"
	case ErrKindValidation:
		message = "Validation Error - The request data failed validation"
	case ErrKindRateLimited:
		message = "Too Many Requests - Rate limit exceeded"
	case ErrKindServerError:
		message = "Internal Server Error - Something went wrong on the server"
	default:
		message = fmt.Sprintf("API request failed with status %d", e.StatusCode)
	}
	return message + " - " + e.Detail
}

// IsBadRequest reports whether the error is a 400 Bad Request.
func (e *APIError) IsBadRequest() bool { return e.Kind == ErrKindBadRequest }

// IsUnauthorized reports whether the error is a 401 Unauthorized.
func (e *APIError) IsUnauthorized() bool { return e.Kind == ErrKindUnauthorized }

// IsPaymentRequired reports whether the error is a 402 Payment Required.
func (e *APIError) IsPaymentRequired() bool { return e.Kind == ErrKindPaymentRequired }

// IsForbidden reports whether the error is a 403 Forbidden.
func (e *APIError) IsForbidden() bool { return e.Kind == ErrKindForbidden }

// IsNotFound reports whether the error is a 404 Not Found.
func (e *APIError) IsNotFound() bool { return e.Kind == ErrKindNotFound }

// IsValidationError reports whether the error is a 422 Validation Error.
func (e *APIError) IsValidationError() bool { return e.Kind == ErrKindValidation }

// IsRateLimited reports whether the error is a 429 Too Many Requests.
func (e *APIError) IsRateLimited() bool { return e.Kind == ErrKindRateLimited }

// IsServerError reports whether the error is a 5xx server error.
func (e *APIError) IsServerError() bool { return e.Kind == ErrKindServerError }

// TransportError is a network-level failure (connection refused, timeout,
// TLS) from the HTTP round trip. It is never produced from a status code.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is a request or response body (de)serialization failure,
// distinct from both APIError and TransportError.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
