package delhivery

import (
	"errors"
	"fmt"
)

const (
	CodeNotConfigured     = "NOT_CONFIGURED"
	CodeTransport         = "TRANSPORT"
	CodeRejected          = "REJECTED"
	CodeStateNotAllowed   = "STATE_NOT_ALLOWED"
	CodeInvalidPincode    = "INVALID_PINCODE"
	CodeMalformedResponse = "MALFORMED_RESPONSE"
	CodeNotFound          = "NOT_FOUND"
)

var (
	ErrNotConfigured       = errors.New("carrier is not configured")
	ErrTransport           = errors.New("carrier transport failure")
	ErrCarrierRejected     = errors.New("carrier rejected the request")
	ErrStateNotAllowed     = errors.New("shipment state does not allow this operation")
	ErrInvalidPincode      = errors.New("pincode must be 6 digits")
	ErrMalformedResponse   = errors.New("malformed carrier response")
	ErrLabelNotAvailable   = errors.New("label not available")
	ErrInvalidRequest      = errors.New("invalid carrier request")
	ErrNoStrategySucceeded = errors.New("no warehouse registration strategy succeeded")
)

// CarrierError структурированная ошибка перевозчика.
// Message содержит текст перевозчика как есть, его показываем админу.
type CarrierError struct {
	Carrier    string
	Code       string
	Message    string
	StatusCode int
	Retryable  bool
	Cause      error
}

func (e *CarrierError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", e.Carrier, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Carrier, e.Code, e.Message)
}

func (e *CarrierError) Unwrap() error {
	return e.Cause
}

// Is две CarrierError равны по коду.
func (e *CarrierError) Is(target error) bool {
	t, ok := target.(*CarrierError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func NewCarrierError(code, message string) *CarrierError {
	return &CarrierError{
		Carrier: carrierName,
		Code:    code,
		Message: message,
	}
}

func (e *CarrierError) WithCause(err error) *CarrierError {
	e.Cause = err
	return e
}

func (e *CarrierError) WithStatusCode(code int) *CarrierError {
	e.StatusCode = code
	return e
}

func (e *CarrierError) WithRetryable(retryable bool) *CarrierError {
	e.Retryable = retryable
	return e
}

func notConfiguredError() *CarrierError {
	return NewCarrierError(CodeNotConfigured, "API token is not set").WithCause(ErrNotConfigured)
}

func transportError(err error) *CarrierError {
	return NewCarrierError(CodeTransport, "request failed").
		WithCause(fmt.Errorf("%w: %w", ErrTransport, err)).
		WithRetryable(true)
}

func rejectedError(message string) *CarrierError {
	return NewCarrierError(CodeRejected, message).WithCause(ErrCarrierRejected)
}

func malformedError(err error) *CarrierError {
	return NewCarrierError(CodeMalformedResponse, "unexpected response shape").
		WithCause(fmt.Errorf("%w: %w", ErrMalformedResponse, err))
}

// IsRetryable повтор имеет смысл только для транспортных сбоев.
func IsRetryable(err error) bool {
	var carrierErr *CarrierError
	if errors.As(err, &carrierErr) {
		return carrierErr.Retryable
	}
	return errors.Is(err, ErrTransport)
}

// IsBusinessError перевозчик принял запрос, но отверг содержимое.
func IsBusinessError(err error) bool {
	return errors.Is(err, ErrCarrierRejected) ||
		errors.Is(err, ErrInvalidPincode) ||
		errors.Is(err, ErrStateNotAllowed)
}
