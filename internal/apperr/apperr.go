package apperr

import (
	"errors"
	"net/http"
)

// Code classifies a service failure. The 4xx/5xx values double as the HTTP
// status they map to; the 46x range holds domain codes that the public API
// collapses onto standard statuses via HTTPStatus.
type Code int32

const (
	BadRequestCode      Code = 400
	UnauthenticatedCode Code = 401
	NotFoundCode        Code = 404
	InternalErrorCode   Code = 500

	ConflictCode          Code = 460
	UnavailableCode       Code = 461
	InsufficientStockCode Code = 462
)

var ErrStrMap = map[Code]string{
	BadRequestCode:        "bad request",
	UnauthenticatedCode:   "unauthenticated",
	NotFoundCode:          "not found",
	InternalErrorCode:     "internal server error",
	ConflictCode:          "conflict",
	UnavailableCode:       "unavailable",
	InsufficientStockCode: "insufficient stock",
}

// HTTPStatus maps a code onto the wire status. Conflict, Unavailable and
// InsufficientStock all surface as 400 to API clients.
func (c Code) HTTPStatus() int {
	switch c {
	case ConflictCode, UnavailableCode, InsufficientStockCode:
		return http.StatusBadRequest
	case BadRequestCode, UnauthenticatedCode, NotFoundCode, InternalErrorCode:
		return int(c)
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Code Code
	Msg  string
}

func New(code Code, msg string) *Error {
	if msg == "" {
		msg = ErrStrMap[code]
	}
	return &Error{Code: code, Msg: msg}
}

func (e *Error) Error() string {
	return e.Msg
}

// CodeOf extracts the classification from err, returning InternalErrorCode for
// anything that is not an *Error.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return InternalErrorCode
}
