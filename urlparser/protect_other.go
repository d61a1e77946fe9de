//go:build !windows

package urlparser

import "errors"

const protectionSupported = false

func protectMarker() (string, error) {
	return "", errors.New("credential protection is only available on windows")
}
