package index

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/bits-and-blooms/bitset"
)

// mmapRow is a read-only view of one zone's bit-vector file, backed by the
// OS page cache through a memory mapping rather than a heap-resident
// bitset. Multiple concurrent queries share the same mapping; Disk[T]
// owns its lifetime and unmaps it on Close.
type mmapRow struct {
	file *os.File
	data mmap.MMap
	n    uint64
}

func openMMapRow(path string) (*mmapRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("index: open zone file: %w: %w", ErrDiskBuildFailed, err)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("index: mmap zone file: %w: %w", ErrDiskBuildFailed, err)
	}
	if len(data) < 8 {
		_ = data.Unmap()
		_ = f.Close()
		return nil, fmt.Errorf("index: zone file %s: %w: truncated header", path, ErrDiskBuildFailed)
	}

	n := binary.LittleEndian.Uint64(data[:8])

	return &mmapRow{file: f, data: data, n: n}, nil
}

func (m *mmapRow) close() error {
	if err := m.data.Unmap(); err != nil {
		return err
	}
	return m.file.Close()
}

// test reads a single bit directly out of the mapped page cache.
func (m *mmapRow) test(i uint64) bool {
	word := binary.LittleEndian.Uint64(m.data[8+(i/wordBits)*8:])
	return word&(1<<(i%wordBits)) != 0
}

// slice materializes the [start, start+length) window of the mapped row
// into a fresh in-memory BitSet for the query algebra to operate on. Only
// zones Classify marks In/Out are ever sliced, and classification itself
// touches no bits at all — it is pure zone-predicate metadata, per the
// on-disk backend's contract that zone classification reads no bits.
func (m *mmapRow) slice(start, length uint64) *bitset.BitSet {
	out := bitset.New(uint(length))
	end := start + length
	if end > m.n {
		end = m.n
	}
	for i := start; i < end; i++ {
		if m.test(i) {
			out.Set(uint(i - start))
		}
	}

	return out
}
