//go:build unix

package platform

import (
	"golang.org/x/sys/unix"

	"github.com/ActiveState/launcher/internal/errs"
)

func kernelName() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", errs.Wrap(err, "uname failed")
	}
	return unix.ByteSliceToString(uts.Sysname[:]), nil
}
