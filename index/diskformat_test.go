package index

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"
)

func TestWriteRow_RoundTripsHeaderAndBits(t *testing.T) {
	row := bitset.New(20)
	row.Set(0).Set(5).Set(19)

	var buf bytes.Buffer
	require.NoError(t, writeRow(&buf, row))

	data := buf.Bytes()
	require.GreaterOrEqual(t, len(data), 8)

	n := binary.LittleEndian.Uint64(data[:8])
	require.EqualValues(t, 20, n)
	require.Len(t, data[8:], int(numWords(n)*8))

	word0 := binary.LittleEndian.Uint64(data[8:16])
	require.NotZero(t, word0&(1<<0))
	require.NotZero(t, word0&(1<<5))
}

func TestNumWords(t *testing.T) {
	require.EqualValues(t, 0, numWords(0))
	require.EqualValues(t, 1, numWords(1))
	require.EqualValues(t, 1, numWords(64))
	require.EqualValues(t, 2, numWords(65))
}

func TestZoneFileName_OrdersLexicographically(t *testing.T) {
	require.Equal(t, "/tmp/zone-00000000.bits", zoneFileName("/tmp", 0))
	require.True(t, zoneFileName("/tmp", 2) < zoneFileName("/tmp", 10))
}

func TestWriteZoneFiles_RejectsExistingDirectory(t *testing.T) {
	dir := t.TempDir() + "/already-there"
	require.NoError(t, writeZoneFiles(dir, []*bitset.BitSet{bitset.New(4)}))

	err := writeZoneFiles(dir, []*bitset.BitSet{bitset.New(4)})
	require.Error(t, err)
}
