package handrank

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.dat"))
	require.Error(t, err)
	require.ErrorContains(t, err, "open hand-rank table")
}

func TestLoadWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.dat")
	require.NoError(t, os.WriteFile(path, make([]byte, 1024), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrTableSize)
}

func TestReadEntriesLittleEndian(t *testing.T) {
	// 1, -1, 0x01020304 as little-endian int32.
	raw := []byte{
		0x01, 0x00, 0x00, 0x00,
		0xff, 0xff, 0xff, 0xff,
		0x04, 0x03, 0x02, 0x01,
	}
	entries, err := readEntries(bytes.NewReader(raw), 3)
	require.NoError(t, err)
	require.Equal(t, []int32{1, -1, 0x01020304}, entries)
}

func TestReadEntriesShortRead(t *testing.T) {
	_, err := readEntries(bytes.NewReader(make([]byte, 8)), 3)
	require.Error(t, err)
}
