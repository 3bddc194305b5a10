//go:build !unix

package launcher

func isProcessCreationFailure(err error) bool {
	return false
}
