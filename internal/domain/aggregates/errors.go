package aggregates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode standardizes aggregate failure semantics across repositories.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "validation"
	CodeNotFound           ErrorCode = "not_found"
	CodeAlreadyExists      ErrorCode = "already_exists"
	CodeConflict           ErrorCode = "conflict"
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

// Error is the canonical aggregate error wrapper.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an aggregate error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates an existing error with aggregate error semantics.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

// NotFound is shorthand for the "entity does not exist" failure of Update/Delete.
func NotFound(op, what string) error {
	return NewError(CodeNotFound, op, what+" does not exist", nil)
}

// AlreadyExists is shorthand for the "identity already persisted" failure of Add.
func AlreadyExists(op, what string) error {
	return NewError(CodeAlreadyExists, op, what+" already exists", nil)
}

// IsCode checks whether err (or wrapped err) carries the given aggregate code.
func IsCode(err error, code ErrorCode) bool {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return false
	}
	return aggErr.Code == code
}

// CodeOf extracts the aggregate error code when available.
func CodeOf(err error) ErrorCode {
	var aggErr *Error
	if !errors.As(err, &aggErr) {
		return ""
	}
	return aggErr.Code
}

// Describe flattens err and its causes into the newline separated message
// shown to a user. A cause whose text is already part of an emitted line is
// skipped, so fmt-wrapped chains print once.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var lines []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		for _, l := range lines {
			if strings.Contains(l, s) {
				return
			}
		}
		lines = append(lines, s)
	}
	var walk func(error)
	walk = func(e error) {
		for e != nil {
			if aggErr, ok := e.(*Error); ok {
				if aggErr.Cause == nil || aggErr.Message != aggErr.Cause.Error() {
					add(aggErr.Message)
				}
				e = aggErr.Cause
				continue
			}
			if joined, ok := e.(interface{ Unwrap() []error }); ok {
				for _, inner := range joined.Unwrap() {
					walk(inner)
				}
				return
			}
			add(e.Error())
			e = errors.Unwrap(e)
		}
	}
	walk(err)
	return strings.Join(lines, "\n")
}
