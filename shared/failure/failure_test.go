package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Lucasteinmann/Aarebooking/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Kind:    failure.KindValidation,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind failure.Kind
	}{
		{
			name: "Validation",
			err:  failure.Validation("incomplete selection"),
			code: http.StatusBadRequest,
			kind: failure.KindValidation,
		},
		{
			name: "DataFetch",
			err:  failure.DataFetch(errors.New("connection refused")),
			code: http.StatusBadGateway,
			kind: failure.KindDataFetch,
		},
		{
			name: "DataWrite",
			err:  failure.DataWrite(errors.New("insert failed")),
			code: http.StatusBadGateway,
			kind: failure.KindDataWrite,
		},
		{
			name: "PartialCommit",
			err:  failure.PartialCommit("commit outcome unknown"),
			code: http.StatusInternalServerError,
			kind: failure.KindPartialCommit,
		},
		{
			name: "NotFound",
			err:  failure.NotFound("boat not found"),
			code: http.StatusNotFound,
			kind: failure.KindNotFound,
		},
		{
			name: "Conflict",
			err:  failure.Conflict("insufficient availability"),
			code: http.StatusConflict,
			kind: failure.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, got)
			}
			if got := failure.GetKind(tt.err); got != tt.kind {
				t.Errorf("expected kind to be %s, got %s", tt.kind, got)
			}
		})
	}
}

func TestGetKind_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("submit booking: %w", failure.PartialCommit("commit outcome unknown"))

	if !failure.IsKind(wrapped, failure.KindPartialCommit) {
		t.Errorf("expected wrapped error to keep kind %s", failure.KindPartialCommit)
	}
}

func TestGetKind_PlainError(t *testing.T) {
	err := errors.New("plain")

	if got := failure.GetKind(err); got != failure.KindInternal {
		t.Errorf("expected plain errors to map to %s, got %s", failure.KindInternal, got)
	}
	if got := failure.GetCode(err); got != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", got)
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil input")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil input")
	}
}
