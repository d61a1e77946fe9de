//go:build windows

package urlparser

import (
	"encoding/hex"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const protectionSupported = true

// protectMarker encrypts the password marker for the current user with DPAPI
// and returns the blob hex encoded.
func protectMarker() (string, error) {
	data := []byte(passwordMarker)
	in := windows.DataBlob{Size: uint32(len(data)), Data: &data[0]}
	var out windows.DataBlob

	if err := windows.CryptProtectData(&in, nil, nil, 0, nil, windows.CRYPTPROTECT_UI_FORBIDDEN, &out); err != nil {
		return "", fmt.Errorf("CryptProtectData failed: %w", err)
	}
	defer func() { _, _ = windows.LocalFree(windows.Handle(unsafe.Pointer(out.Data))) }()

	return hex.EncodeToString(unsafe.Slice(out.Data, out.Size)), nil
}
