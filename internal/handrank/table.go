// Package handrank evaluates 7-card Texas Hold'em hands with the two-plus-two
// lookup table: a precomputed state machine where each card indexes the next
// table entry and the final entry is the hand's strength.
package handrank

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// TableEntries is the exact element count of a valid hand-rank table.
const TableEntries = 32487834

// initialIndex is the root state of the lookup chain.
const initialIndex = 53

// ErrTableSize is returned when a table file does not hold exactly
// TableEntries 32-bit integers.
var ErrTableSize = errors.New("hand-rank table has wrong size")

// Table is the read-only hand-rank array. It is loaded once and shared by
// every evaluation; it is safe for concurrent use.
type Table struct {
	entries []int32
}

// NewTable wraps an in-memory entry array. Production code loads the real
// table with Load; NewTable exists so evaluators can be exercised against
// small synthetic tables.
func NewTable(entries []int32) *Table {
	return &Table{entries: entries}
}

// Load reads a hand-rank table from disk, validating that the file holds
// exactly TableEntries little-endian int32 values before decoding.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hand-rank table: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat hand-rank table: %w", err)
	}
	if want := int64(TableEntries) * 4; info.Size() != want {
		return nil, fmt.Errorf("%w: %s is %d bytes, want %d", ErrTableSize, path, info.Size(), want)
	}

	entries, err := readEntries(bufio.NewReaderSize(f, 1<<20), TableEntries)
	if err != nil {
		return nil, fmt.Errorf("read hand-rank table: %w", err)
	}
	return &Table{entries: entries}, nil
}

func readEntries(r io.Reader, n int) ([]int32, error) {
	entries := make([]int32, n)
	buf := make([]byte, 4*8192)
	filled := 0
	for filled < n {
		chunk := len(buf)
		if remaining := (n - filled) * 4; remaining < chunk {
			chunk = remaining
		}
		if _, err := io.ReadFull(r, buf[:chunk]); err != nil {
			return nil, err
		}
		for i := 0; i < chunk; i += 4 {
			entries[filled] = int32(binary.LittleEndian.Uint32(buf[i : i+4]))
			filled++
		}
	}
	return entries, nil
}
