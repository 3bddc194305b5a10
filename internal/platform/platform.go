// Package platform verifies at startup that the host can fork, exec and wait on a child process.
package platform

import (
	"runtime"

	"github.com/thoas/go-funk"

	"github.com/ActiveState/launcher/internal/constants"
	"github.com/ActiveState/launcher/internal/locale"
	"github.com/ActiveState/launcher/internal/logging"
)

// Supported lists the GOOS values of the POSIX fork/exec/wait family.
var Supported = []string{"linux", "darwin", "freebsd", "netbsd", "openbsd", "dragonfly"}

// UnsupportedPlatformError is returned by Check when the launcher cannot run on this host.
type UnsupportedPlatformError struct {
	*locale.LocalizedError
	OS string
}

func (e *UnsupportedPlatformError) ExitCode() int {
	return constants.ExitFailure
}

func newUnsupportedPlatformError(goos string, err error) *UnsupportedPlatformError {
	return &UnsupportedPlatformError{locale.WrapError(err, "err_platform_unsupported"), goos}
}

// Check returns an *UnsupportedPlatformError unless the host operating system is supported.
func Check() error {
	return CheckOS(runtime.GOOS)
}

// CheckOS is like Check for a given GOOS value, the kernel name is still read from the host.
func CheckOS(goos string) error {
	return check(goos, kernelName)
}

func check(goos string, kernel func() (string, error)) error {
	if !funk.Contains(Supported, goos) {
		return newUnsupportedPlatformError(goos, nil)
	}

	name, err := kernel()
	if err != nil {
		return newUnsupportedPlatformError(goos, err)
	}
	if name == "" {
		return newUnsupportedPlatformError(goos, nil)
	}

	logging.Debug("Running on %s (%s)", name, goos)
	return nil
}
