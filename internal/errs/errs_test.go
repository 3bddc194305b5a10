package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ActiveState/launcher/internal/errs"
)

func TestErrs(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantMessage     string
		wantJoinMessage string
	}{
		{
			"Creates error",
			errs.New("hello %s", "world"),
			"hello world",
			"hello world",
		},
		{
			"Creates wrapped error",
			errs.Wrap(errors.New("Wrapped"), "Wrapper %s", "error"),
			"Wrapper error",
			"Wrapper error,Wrapped",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.err
			assert.Equal(t, tt.wantMessage, err.Error())

			ee, ok := err.(errs.Error)
			require.True(t, ok, "Error should be of type errs.Error")
			require.NotNil(t, ee.Stack(), "Stacktrace was not created")
			assert.Contains(t, fmt.Sprintf("%+v", ee.Stack()), "errs_test.go")

			assert.Equal(t, tt.wantJoinMessage, errs.Join(tt.err, ",").Error())
		})
	}
}

func TestJoinMessage(t *testing.T) {
	err := errs.Wrap(errs.Wrap(errors.New("inner"), "middle"), "outer")
	assert.Equal(t, "outer: middle: inner", errs.JoinMessage(err))
	assert.Equal(t, "outer\nmiddle\ninner", errs.JoinMessage(err, "\n"))
	assert.Equal(t, "", errs.JoinMessage(nil))
}

func TestStackString(t *testing.T) {
	assert.Equal(t, "not provided", errs.StackString(errors.New("plain")))
	assert.Contains(t, errs.StackString(errs.New("with stack")), "TestStackString")
}

type customErr struct{ error }

type codedErr struct {
	error
	code int
}

func (e *codedErr) ExitCode() int { return e.code }

func TestMatches(t *testing.T) {
	err := errs.Wrap(&customErr{errors.New("custom")}, "wrapped")
	assert.True(t, errs.Matches(err, &customErr{}))
	assert.False(t, errs.Matches(errors.New("plain"), &customErr{}))
}

func TestParseExitCode(t *testing.T) {
	assert.Equal(t, 0, errs.ParseExitCode(nil))
	assert.Equal(t, 1, errs.ParseExitCode(errs.New("no code")))
	assert.Equal(t, 3, errs.ParseExitCode(errs.Wrap(&codedErr{errors.New("inner"), 3}, "outer")))
}

func TestUserFacing(t *testing.T) {
	inner := errs.New("internal detail")
	err := errs.WrapUserFacing(inner, "Something you can fix", errs.SetInput(), errs.SetTips("try this"))

	assert.True(t, errs.IsUserFacing(err))
	assert.True(t, errs.IsInputError(err))
	assert.Equal(t, "Something you can fix", errs.UserMessage(errs.Wrap(err, "outer")))
	assert.Equal(t, []string{"try this"}, errs.Tips(errs.Wrap(err, "outer")))
	assert.True(t, errors.Is(err, inner))

	plain := errs.New("plain")
	assert.False(t, errs.IsUserFacing(plain))
	assert.False(t, errs.IsInputError(plain))
	assert.Equal(t, "plain", errs.UserMessage(plain))

	assert.False(t, errs.IsInputError(errs.WrapUserFacing(plain, "msg")))
}

func TestSilence(t *testing.T) {
	err := errs.Silence(errs.New("quiet"))
	assert.True(t, errs.IsSilent(errs.Wrap(err, "wrapped")))
	assert.False(t, errs.IsSilent(errs.New("loud")))
}
