package plerr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeSessionNotFound = "SESSION_NOT_FOUND"
	CodeLocked          = "LOCKED"
)

var (
	// ErrInvalidReq is returned when a request is invalid.
	ErrInvalidReq = New(fiber.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")

	// ErrInternalError is returned when an internal error occurs.
	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "internal server error occurred")

	// ErrSessionNotFound is returned when an event arrives for a profile without a captured session.
	ErrSessionNotFound = New(fiber.StatusNotFound, CodeSessionNotFound, "no session captured for profile: start a session first")

	// ErrLocked is returned when the tracker record lock could not be acquired in time.
	ErrLocked = New(fiber.StatusConflict, CodeLocked, "tracker record is locked by another writer")
)

type Extras map[string]any

type PityError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *PityError {
	return &PityError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e PityError) Msg(format string, parts ...any) *PityError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e PityError) WithExtras(extras Extras) *PityError {
	e.Extras = &extras
	return &e
}

func NewInvalidViolations(violations any) *PityError {
	// copy ErrInvalidReq as e
	e := *ErrInvalidReq
	e.Extras = &Extras{
		"violations": violations,
	}
	return &e
}

func (e *PityError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
