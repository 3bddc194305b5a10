package locale

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// LocalizedError is an error that has the concept of user facing (localized) errors as well as whether an error is due
// to user input or not
type LocalizedError struct {
	wrapped   error
	localized string
	stack     pkgerrors.StackTrace
	inputErr  bool
}

// Error is the error message
func (e *LocalizedError) Error() string {
	return e.localized
}

// LocaleError is the user facing error message, it's the same as Error() but identifies it as being user facing
func (e *LocalizedError) LocaleError() string {
	return e.localized
}

// UserError satisfies errs.UserFacingError
func (e *LocalizedError) UserError() string {
	return e.localized
}

// Stack is the stacktrace leading up to where this error was triggered
func (e *LocalizedError) Stack() pkgerrors.StackTrace {
	return e.stack
}

// Unwrap returns the parent error, if applicable
func (e *LocalizedError) Unwrap() error {
	return e.wrapped
}

// InputError returns whether this is an error due to user input
func (e *LocalizedError) InputError() bool {
	return e.inputErr
}

// ErrorLocalizer represents a localized error
type ErrorLocalizer interface {
	error
	LocaleError() string
}

// NewError creates a new error, it does a locale.Tl lookup of the given id, if the lookup fails it will use the
// locale string instead
func NewError(id string, args ...string) *LocalizedError {
	return newLocalized(nil, false, id, args...)
}

// WrapError creates a new error that wraps the given error, it does a locale.Tl lookup of the given id, if the lookup
// fails it will use the locale string instead
func WrapError(err error, id string, args ...string) *LocalizedError {
	return newLocalized(err, false, id, args...)
}

// NewInputError is like NewError but marks it as an input error
func NewInputError(id string, args ...string) *LocalizedError {
	return newLocalized(nil, true, id, args...)
}

// WrapInputError is like WrapError but marks it as an input error
func WrapInputError(err error, id string, args ...string) *LocalizedError {
	return newLocalized(err, true, id, args...)
}

// args[0] is the fallback locale string, the rest are its numbered values
func newLocalized(err error, input bool, id string, args ...string) *LocalizedError {
	locale := id
	if len(args) > 0 {
		locale, args = args[0], args[1:]
	}
	if locale == "" {
		locale = id
	}

	stack := pkgerrors.New(id).(interface{ StackTrace() pkgerrors.StackTrace }).StackTrace()
	if len(stack) > 2 {
		stack = stack[2:]
	}

	return &LocalizedError{
		wrapped:   err,
		localized: Tl(id, locale, args...),
		stack:     stack,
		inputErr:  input,
	}
}

// IsError checks if the given error is an ErrorLocalizer
func IsError(err error) bool {
	_, ok := err.(ErrorLocalizer)
	return ok
}

// HasError checks the error chain for an ErrorLocalizer
func HasError(err error) bool {
	var el ErrorLocalizer
	return errors.As(err, &el)
}

// ErrorMessage returns the localized message of the outermost localized error in the chain
func ErrorMessage(err error) string {
	var el ErrorLocalizer
	if errors.As(err, &el) {
		return el.LocaleError()
	}
	return err.Error()
}
