package launcher

import (
	"github.com/ActiveState/launcher/internal/constants"
	"github.com/ActiveState/launcher/internal/locale"
)

// ProcessCreationError is returned when the OS could not create a child process at all.
type ProcessCreationError struct {
	*locale.LocalizedError
}

func (e *ProcessCreationError) ExitCode() int {
	return constants.ExitFailure
}

func newProcessCreationError(err error) *ProcessCreationError {
	return &ProcessCreationError{locale.WrapError(err, "err_process_creation", "", "-1")}
}

// ExecutionError is returned when a child could not be turned into the requested program, because it was not found
// or is not executable.
type ExecutionError struct {
	*locale.LocalizedError
	Program string
}

func (e *ExecutionError) ExitCode() int {
	return constants.ExitFailure
}

func newExecutionError(err error, program string) *ExecutionError {
	return &ExecutionError{locale.WrapInputError(err, "err_execution", "", program), program}
}

// WaitError is returned when waiting on a started child failed for a reason other than the child's exit status.
type WaitError struct {
	*locale.LocalizedError
}

func (e *WaitError) ExitCode() int {
	return constants.ExitFailure
}

func newWaitError(err error, program string) *WaitError {
	return &WaitError{locale.WrapError(err, "err_wait", "", program)}
}
