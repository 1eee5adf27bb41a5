package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoClusterNoCuesFixture() (data []byte, clusterAOffset, clusterBOffset uint64) {
	blockA := elem(0xA3, blockPayload(1, 0, 0x80, []byte("HELLO")))
	clusterA := elem(0x1F43B675, concat(elem(0xE7, encUint(0)), blockA))

	blockB1 := elem(0xA3, blockPayload(1, 0, 0x80, []byte("WORLD")))
	blockB2 := elem(0xA3, blockPayload(1, 100, 0x80, []byte("THIRD")))
	clusterB := elem(0x1F43B675, concat(elem(0xE7, encUint(100)), blockB1, blockB2))

	return concat(clusterA, clusterB), 0, uint64(len(clusterA))
}

func newSeekEngine(data []byte) (*seekEngine, *cursor) {
	r := bytes.NewReader(data)
	c := newCursor(r, 0)
	return &seekEngine{r: r, cursor: c, segment: Location{Offset: 0, Size: uint64(len(data))}}, c
}

// TestBroadPhaseLinearScanExactMatch covers target == a cluster's own
// timestamp: the scan lands directly on that cluster's header.
func TestBroadPhaseLinearScanExactMatch(t *testing.T) {
	data, _, clusterBOffset := twoClusterNoCuesFixture()
	s, _ := newSeekEngine(data)
	off, err := s.broadPhaseLinearScan(100)
	require.NoError(t, err)
	assert.Equal(t, clusterBOffset, off)
}

// TestBroadPhaseLinearScanBetweenClusters covers a target that falls strictly
// between two clusters' timestamps: the scan must return the earlier
// ("last") cluster, per the last/current/next rule.
func TestBroadPhaseLinearScanBetweenClusters(t *testing.T) {
	data, clusterAOffset, _ := twoClusterNoCuesFixture()
	s, _ := newSeekEngine(data)
	off, err := s.broadPhaseLinearScan(50)
	require.NoError(t, err)
	assert.Equal(t, clusterAOffset, off)
}

// TestBroadPhaseLinearScanPastLastCluster covers a target beyond every
// cluster's timestamp: the scan must return the last cluster seen, not an
// error, leaving the narrow phase to discover end-of-stream.
func TestBroadPhaseLinearScanPastLastCluster(t *testing.T) {
	data, _, clusterBOffset := twoClusterNoCuesFixture()
	s, _ := newSeekEngine(data)
	off, err := s.broadPhaseLinearScan(1_000_000)
	require.NoError(t, err)
	assert.Equal(t, clusterBOffset, off)
}

// TestSeekWithoutCuesUsesLinearScan exercises the full seek() entry point on
// a file with no Cues element at all.
func TestSeekWithoutCuesUsesLinearScan(t *testing.T) {
	data, _, _ := twoClusterNoCuesFixture()
	s, c := newSeekEngine(data)
	require.NoError(t, s.seek(150))

	var f Frame
	ok, err := c.nextFrame(&f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(200), f.Timestamp)
	assert.Equal(t, "THIRD", string(f.Data))
}

// TestNarrowPhaseLandsOnFirstBlockAtOrAfterTarget covers the narrow phase in
// isolation: starting from a cluster's header, it must rewind the cursor to
// the first block whose timestamp is >= target, skipping earlier ones.
func TestNarrowPhaseLandsOnFirstBlockAtOrAfterTarget(t *testing.T) {
	data, _, clusterBOffset := twoClusterNoCuesFixture()
	s, c := newSeekEngine(data)

	require.NoError(t, s.narrowPhase(clusterBOffset, 150))

	var f Frame
	ok, err := c.nextFrame(&f)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(200), f.Timestamp)
	assert.Equal(t, "THIRD", string(f.Data))
}
