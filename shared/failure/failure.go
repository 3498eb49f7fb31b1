package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a failure beyond its HTTP code, so callers can tell a
// retry-eligible read failure from a validation problem or a write that
// may have landed partially.
type Kind string

const (
	KindDataFetch     Kind = "data_fetch"
	KindValidation    Kind = "validation"
	KindDataWrite     Kind = "data_write"
	KindPartialCommit Kind = "partial_commit"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindInternal      Kind = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Validation returns a new Failure for a rejected precondition or contact field.
// Recoverable by user correction; state is left unchanged by convention.
func Validation(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// DataFetch returns a new Failure for a catalog or ledger read that could not
// be completed. Retry-eligible; callers must treat the whole view as unavailable.
func DataFetch(err error) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Kind:    KindDataFetch,
		Message: err.Error(),
	}
}

// DataWrite returns a new Failure for a ledger write that did not happen.
func DataWrite(err error) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Kind:    KindDataWrite,
		Message: err.Error(),
	}
}

// PartialCommit returns a new Failure for a batch write left in an
// indeterminate state. Never to be treated as success.
func PartialCommit(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindPartialCommit,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether err carries the given failure kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return GetKind(err) == kind
}
