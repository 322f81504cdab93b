// internal/domain/homework/errors.go
package homework

import (
	"errors"
	"fmt"
)

// Error kinds produced while polling the review API and notifying the chat.
// Concrete errors wrap one of these, so callers classify them with errors.Is.
var (
	ErrGetData           = errors.New("failed to get data from the homework API")
	ErrInvalidStatusCode = errors.New("homework API returned a non-200 status code")
	ErrValidation        = errors.New("homework API response does not match the documented shape")
	ErrParsing           = errors.New("failed to parse homework status")
	ErrDelivery          = errors.New("failed to deliver notification")
)

// StatusCodeError carries the unexpected HTTP status returned by the API.
type StatusCodeError struct {
	Code int
	Body string
}

func (e *StatusCodeError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: got %d", ErrInvalidStatusCode, e.Code)
	}
	return fmt.Sprintf("%s: got %d: %s", ErrInvalidStatusCode, e.Code, e.Body)
}

// Is reports StatusCodeError as ErrInvalidStatusCode.
func (e *StatusCodeError) Is(target error) bool {
	return target == ErrInvalidStatusCode
}
