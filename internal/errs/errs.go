package errs

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Error enforces errors that include a stacktrace
type Error interface {
	Unwrap() error
	Stack() pkgerrors.StackTrace
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// WrappedErr is what we use for errors created from this package, this does not mean every error returned from this
// package is wrapping something, it simply has the plumbing to.
type WrappedErr struct {
	msg     string
	wrapped error
	stack   pkgerrors.StackTrace
}

// Error returns the error message
func (e *WrappedErr) Error() string {
	return e.msg
}

// Unwrap returns the parent error, if one exists
func (e *WrappedErr) Unwrap() error {
	return e.wrapped
}

// Stack returns the stacktrace for where this error was created
func (e *WrappedErr) Stack() pkgerrors.StackTrace {
	return e.stack
}

// newError is always called from one of the exported constructors, the first two frames (newError and the
// constructor) are dropped so the stack starts at the caller.
func newError(message string, wrapTarget error) error {
	stack := pkgerrors.New(message).(stackTracer).StackTrace()
	if len(stack) > 2 {
		stack = stack[2:]
	}
	return &WrappedErr{message, wrapTarget, stack}
}

// New creates a new error, similar to errors.New
func New(message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), nil)
}

// Wrap creates a new error that wraps the given error
func Wrap(wrapTarget error, message string, args ...interface{}) error {
	return newError(fmt.Sprintf(message, args...), wrapTarget)
}

// Join all error messages in the Unwrap stack
func Join(err error, sep string) error {
	return newError(JoinMessage(err, sep), nil)
}

// JoinMessage is a convenience function that joins all unwrapped messages with ": "
// when sep is empty.
func JoinMessage(err error, sep ...string) string {
	separator := ": "
	if len(sep) > 0 {
		separator = sep[0]
	}
	var message []string
	for err != nil {
		message = append(message, err.Error())
		err = errors.Unwrap(err)
	}
	return strings.Join(message, separator)
}

// StackString renders the stack of the first error in the chain that carries one.
func StackString(err error) string {
	var ee Error
	if errors.As(err, &ee) && ee.Stack() != nil {
		return fmt.Sprintf("%+v", ee.Stack())
	}
	return "not provided"
}

// Matches is an analog for errors.As that just checks whether err matches the given type, so you can do:
// errs.Matches(err, &ErrStruct{})
// Without having to first assign it to a variable
// This is useful if you ONLY care about the bool return value and not about setting the variable
func Matches(err error, target interface{}) bool {
	if target == nil {
		panic("errors: target cannot be nil")
	}

	val := reflect.ValueOf(target)
	targetType := val.Type()
	if targetType.Kind() != reflect.Ptr || val.IsNil() {
		panic("errors: target must be a non-nil pointer")
	}
	if e := targetType.Elem(); e.Kind() != reflect.Interface && !e.Implements(reflect.TypeOf((*error)(nil)).Elem()) {
		panic("errors: *target must be interface or implement error")
	}
	for err != nil {
		if reflect.TypeOf(err).AssignableTo(targetType) {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
