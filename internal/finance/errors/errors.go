package errors

import (
	"errors"
)

// ErrNotFound is returned when a record does not exist or belongs to a
// different user. The two cases are deliberately indistinguishable so
// the API never leaks whether another user's record exists.
var ErrNotFound = errors.New("resource not found")

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

type DuplicateError struct {
	Msg string
}

func (e *DuplicateError) Error() string {
	return e.Msg
}

func NewDuplicateError(msg string) error {
	return &DuplicateError{Msg: msg}
}

func IsDuplicateError(err error) bool {
	var duplicateError *DuplicateError
	return errors.As(err, &duplicateError)
}

var ErrEmailTaken = NewDuplicateError("an account with this email already exists")
var ErrBudgetExists = NewDuplicateError("a budget for this category and period already exists")
