package executor

import (
	"errors"
	"fmt"
)

// ErrResponseTooLarge is returned when a response body exceeds the configured limit.
var ErrResponseTooLarge = errors.New("response body too large")

// APIError is a non-success response from the gateway.
type APIError struct {
	StatusCode int
	Code       int
	Category   int
	Message    string
	Reference  string
	Body       []byte
}

type apiErrorResponse struct {
	Code      int    `json:"code"`
	Category  int    `json:"category"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway error [%d]: %s (status: %d)", e.Code, e.Message, e.StatusCode)
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	ok := errors.As(err, &apiErr)
	return apiErr, ok
}
