package util

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeDir(t *testing.T) {
	home, ok := HomeDir()
	if !ok {
		t.Skip("no home directory for the current user")
	}
	assert.NotEmpty(t, home)
	assert.True(t, filepath.IsAbs(home), "home directory should be absolute: %v", home)
}

func TestFileReadAccessOK(t *testing.T) {
	dir := t.TempDir()

	readable := filepath.Join(dir, "readable")
	require.NoError(t, os.WriteFile(readable, []byte("data"), 0600))
	assert.True(t, FileReadAccessOK(readable))
	assert.True(t, FileReadAccessOK(dir))

	assert.False(t, FileReadAccessOK(filepath.Join(dir, "missing")))
	assert.False(t, FileReadAccessOK(""))

	if os.Geteuid() == 0 || runtime.GOOS == "windows" {
		return
	}
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.WriteFile(locked, []byte("data"), 0200))
	assert.False(t, FileReadAccessOK(locked))
}

func TestNtohll(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	network := binary.NativeEndian.Uint64(raw)
	assert.Equal(t, uint64(0x0102030405060708), Ntohll(network))
	assert.Equal(t, network, Ntohll(Ntohll(network)))
}
