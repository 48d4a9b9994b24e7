package app

import (
	"errors"
	"strings"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/optimizer"
	"github.com/alexanderramin/golive/internal/repository"
)

type EngineErrorCode string

const (
	EngineErrInvalidInput  EngineErrorCode = "INVALID_INPUT"
	EngineErrSolverTimeout EngineErrorCode = "SOLVER_TIMEOUT"
	EngineErrNotFound      EngineErrorCode = "NOT_FOUND"
	EngineErrInternal      EngineErrorCode = "INTERNAL_ERROR"
)

type EngineError struct {
	Code    EngineErrorCode
	Message string
	Err     error
}

func (e *EngineError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// AsEngineError classifies err by the sentinel it wraps. Nil stays nil and
// an existing EngineError passes through.
func AsEngineError(err error) *EngineError {
	if err == nil {
		return nil
	}
	var ee *EngineError
	if errors.As(err, &ee) {
		return ee
	}
	code := EngineErrInternal
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		code = EngineErrInvalidInput
	case errors.Is(err, optimizer.ErrSolverTimeout):
		code = EngineErrSolverTimeout
	case errors.Is(err, repository.ErrNotFound):
		code = EngineErrNotFound
	}
	msg := err.Error()
	if code == EngineErrInvalidInput {
		msg = strings.TrimPrefix(msg, domain.ErrInvalidInput.Error()+": ")
	}
	return &EngineError{Code: code, Message: msg, Err: err}
}
