package errs

import "errors"

type ExitCodeable interface {
	ExitCode() int
}

// ParseExitCode returns the exit code carried by err, 0 for a nil error and 1
// when nothing in the chain specifies one.
func ParseExitCode(err error) int {
	if err == nil {
		return 0
	}

	var eerr ExitCodeable
	if errors.As(err, &eerr) {
		return eerr.ExitCode()
	}

	return 1
}
