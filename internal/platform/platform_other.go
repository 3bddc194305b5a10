//go:build !unix

package platform

import "github.com/ActiveState/launcher/internal/errs"

func kernelName() (string, error) {
	return "", errs.New("no kernel name on this platform")
}
