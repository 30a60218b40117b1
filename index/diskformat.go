package index

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/bits-and-blooms/bitset"
)

// The on-disk zone-row format: an 8-byte little-endian length header (the
// number of logical bits, N) followed by ceil(N/64) little-endian uint64
// words, each bit i living at word i/64, bit i%64. The format is opaque
// and internal; the only external contract (spec §6) is that a directory
// written by one version is readable by the same version.

const wordBits = 64

func numWords(n uint64) uint64 {
	return (n + wordBits - 1) / wordBits
}

// writeRow serializes row to w in the on-disk format.
func writeRow(w io.Writer, row *bitset.BitSet) error {
	n := uint64(row.Len())
	var header [8]byte
	binary.LittleEndian.PutUint64(header[:], n)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("index: write row header: %w", err)
	}

	words := make([]uint64, numWords(n))
	for i, ok := row.NextSet(0); ok; i, ok = row.NextSet(i + 1) {
		words[i/wordBits] |= 1 << (i % wordBits)
	}

	buf := make([]byte, 8*len(words))
	for i, word := range words {
		binary.LittleEndian.PutUint64(buf[i*8:], word)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("index: write row body: %w", err)
	}

	return nil
}

// zoneFileName is the on-disk name for a zone's bit-vector file, ordered
// lexicographically by zone index.
func zoneFileName(dir string, z int) string {
	return fmt.Sprintf("%s/zone-%08d.bits", dir, z)
}

// writeZoneFiles persists every row under dir, one file per zone. dir must
// not already exist: it is created with a non-recursive mkdir, matching
// the contract that on-disk setup fails if the directory exists or its
// parent is missing.
func writeZoneFiles(dir string, rows []*bitset.BitSet) error {
	if err := os.Mkdir(dir, 0o755); err != nil {
		return fmt.Errorf("index: create index directory: %w: %w", ErrDiskBuildFailed, err)
	}

	for z, row := range rows {
		f, err := os.Create(zoneFileName(dir, z))
		if err != nil {
			return fmt.Errorf("index: create zone file %d: %w: %w", z, ErrDiskBuildFailed, err)
		}
		err = writeRow(f, row)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("index: write zone file %d: %w: %w", z, ErrDiskBuildFailed, err)
		}
		if closeErr != nil {
			return fmt.Errorf("index: close zone file %d: %w: %w", z, ErrDiskBuildFailed, closeErr)
		}
	}

	return nil
}
