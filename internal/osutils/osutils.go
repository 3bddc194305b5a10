package osutils

import (
	"os"
	"os/exec"

	"github.com/ActiveState/launcher/internal/logging"
)

// Command returns an exec.Cmd for the given program that shares the standard streams and environment of the current
// process. Arguments are passed verbatim, argv[0] of the child is name as given.
func Command(name string, arg ...string) *exec.Cmd {
	cmd := exec.Command(name, arg...)
	cmd.Env = os.Environ()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	return cmd
}

// CmdExitCode returns the exit code of a command that has finished, in a platform agnostic way.
// A child that was terminated by a signal reports -1.
func CmdExitCode(cmd *exec.Cmd) int {
	if cmd == nil || cmd.ProcessState == nil {
		logging.Debug("Could not get exit code of a command that has not finished, returning 128 instead")
		return 128
	}

	return cmd.ProcessState.ExitCode()
}
