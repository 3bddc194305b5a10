//go:build unix

package launcher

import (
	"errors"

	"golang.org/x/sys/unix"
)

// errnos with which fork/clone fails before a child exists, anything else happened while exec'ing the program.
// This is a heuristic: execve can also fail with ENOMEM or EAGAIN (RLIMIT_NPROC), which lands here too.
var creationErrnos = []unix.Errno{unix.EAGAIN, unix.ENOMEM, unix.ENOSYS}

func isProcessCreationFailure(err error) bool {
	for _, errno := range creationErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
