package apperr

import (
	"fmt"
	"net/http"
)

// Kind classifies an error into the response taxonomy.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

type Error struct {
	Kind   Kind
	Msg    string
	Fields map[string]string // per-field messages, validation only
}

func (e *Error) Error() string { return e.Msg }

// HTTPStatus maps the kind to its response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }

// ValidationFields carries field->message details alongside the generic message.
func ValidationFields(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Msg: "VALIDATION_ERROR", Fields: fields}
}

func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Msg: msg} }

func Forbidden(msg string) *Error { return &Error{Kind: KindForbidden, Msg: msg} }

func NotFound(what string) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf("%s not found", what)}
}

func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Msg: msg} }

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "INTERNAL_ERROR: " + err.Error()}
}
