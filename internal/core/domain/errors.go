package domain

import (
	"errors"
	"fmt"
)

// GatewayError is returned by every capability call that fails.
type GatewayError struct {
	Code    string
	Reason  string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *GatewayError) Unwrap() error {
	return e.Err
}

const (
	ErrCodeInvalidArgument   = "INVALID_ARGUMENT"
	ErrCodeMissingCredential = "MISSING_CREDENTIAL"
	ErrCodeTransport         = "TRANSPORT_ERROR"
	ErrCodeDecode            = "DECODE_ERROR"
	ErrCodeEncode            = "ENCODE_ERROR"
)

// Reasons attached to INVALID_ARGUMENT errors.
const (
	ReasonMissingDate  = "missing-date"
	ReasonDateRange    = "date-range"
	ReasonRowRange     = "row-range"
	ReasonPageTooLarge = "page-too-large"

	ReasonMissingPaymentMethod = "missing-payment-method"
)

func NewMissingDateError() *GatewayError {
	return &GatewayError{
		Code:    ErrCodeInvalidArgument,
		Reason:  ReasonMissingDate,
		Message: "start date and end date cannot be empty",
	}
}

func NewDateRangeError() *GatewayError {
	return &GatewayError{
		Code:    ErrCodeInvalidArgument,
		Reason:  ReasonDateRange,
		Message: "end date cannot be before start date",
	}
}

func NewRowRangeError(startRow, endRow int) *GatewayError {
	return &GatewayError{
		Code:    ErrCodeInvalidArgument,
		Reason:  ReasonRowRange,
		Message: fmt.Sprintf("end row %d cannot be less than start row %d", endRow, startRow),
	}
}

func NewPageTooLargeError(startRow, endRow, limit int) *GatewayError {
	return &GatewayError{
		Code:    ErrCodeInvalidArgument,
		Reason:  ReasonPageTooLarge,
		Message: fmt.Sprintf("cannot query more than %d rows at a time (rows %d to %d)", limit, startRow, endRow),
	}
}

func NewMissingPaymentMethodError() *GatewayError {
	return &GatewayError{
		Code:    ErrCodeInvalidArgument,
		Reason:  ReasonMissingPaymentMethod,
		Message: "a card, token or payment profile is required",
	}
}

func NewMissingCredentialError(capability Capability) *GatewayError {
	return &GatewayError{
		Code:    ErrCodeMissingCredential,
		Reason:  string(capability),
		Message: fmt.Sprintf("%s api passcode is not set", capability),
	}
}

func NewTransportError(method, url string, err error) *GatewayError {
	return &GatewayError{
		Code:    ErrCodeTransport,
		Message: fmt.Sprintf("%s %s failed", method, url),
		Err:     err,
	}
}

func NewDecodeError(target string, err error) *GatewayError {
	return &GatewayError{
		Code:    ErrCodeDecode,
		Message: fmt.Sprintf("could not decode %s response", target),
		Err:     err,
	}
}

func NewEncodeError(target string, err error) *GatewayError {
	return &GatewayError{
		Code:    ErrCodeEncode,
		Message: fmt.Sprintf("could not encode %s request", target),
		Err:     err,
	}
}

// IsErrorCode checks if an error is a GatewayError with a specific code
func IsErrorCode(err error, code string) bool {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Code == code
	}
	return false
}

// IsInvalidArgument reports whether err is an INVALID_ARGUMENT error for reason.
func IsInvalidArgument(err error, reason string) bool {
	var gwErr *GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.Code == ErrCodeInvalidArgument && gwErr.Reason == reason
	}
	return false
}
