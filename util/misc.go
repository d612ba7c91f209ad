package util

import (
	"encoding/binary"
	"os"
	"os/user"
)

// HomeDir returns the home directory of the current user, looked up in the
// user database first and in the environment second.
func HomeDir() (string, bool) {
	if current, err := user.Current(); err == nil && len(current.HomeDir) > 0 {
		return current.HomeDir, true
	}
	home, err := os.UserHomeDir()
	if err != nil || len(home) == 0 {
		return "", false
	}
	return home, true
}

// FileReadAccessOK reports whether the current user may read the file.
func FileReadAccessOK(filePath string) bool {
	return checkReadAccess(filePath) == nil
}

// Ntohll converts a 64-bit value from network to host byte order.
func Ntohll(value uint64) uint64 {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], value)
	return binary.BigEndian.Uint64(buf[:])
}
