package errs

import (
	"errors"
)

// UserFacingError is an error whose UserError message is safe to print to the user as is.
type UserFacingError interface {
	error
	UserError() string
}

type ErrOpt func(err *userFacingError)

type userFacingError struct {
	wrapped error
	message string
	input   bool
	tips    []string
}

func (e *userFacingError) Error() string {
	return "User Facing Error: " + e.UserError()
}

func (e *userFacingError) UserError() string {
	return e.message
}

func (e *userFacingError) ErrorTips() []string {
	return e.tips
}

func (e *userFacingError) InputError() bool {
	return e.input
}

func (e *userFacingError) Unwrap() error {
	return e.wrapped
}

func WrapUserFacing(wrapTarget error, message string, opts ...ErrOpt) *userFacingError {
	err := &userFacingError{
		wrapped: wrapTarget,
		message: message,
	}

	for _, opt := range opts {
		opt(err)
	}

	return err
}

func IsUserFacing(err error) bool {
	var userFacingError UserFacingError
	return errors.As(err, &userFacingError)
}

// UserMessage returns the message of the outermost user facing error in the chain, or the plain error message if
// there is none.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var userFacingError UserFacingError
	if errors.As(err, &userFacingError) {
		return userFacingError.UserError()
	}
	return err.Error()
}

// Tips collects the tips of every error in the chain that has them.
func Tips(err error) []string {
	var tips []string
	for err != nil {
		if tipper, ok := err.(interface{ ErrorTips() []string }); ok {
			tips = append(tips, tipper.ErrorTips()...)
		}
		err = errors.Unwrap(err)
	}
	return tips
}

// IsInputError returns true if any error in the chain was caused by user input.
func IsInputError(err error) bool {
	var inputErr interface{ InputError() bool }
	return errors.As(err, &inputErr) && inputErr.InputError()
}

func SetTips(tips ...string) ErrOpt {
	return func(err *userFacingError) {
		err.tips = append(err.tips, tips...)
	}
}

func SetInput() ErrOpt {
	return func(err *userFacingError) {
		err.input = true
	}
}
