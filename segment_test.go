package matroska

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsIOEOFRecognizesWrappedEOF(t *testing.T) {
	_, err := readByte(bytes.NewReader(nil))
	require.Error(t, err)
	assert.True(t, isIOEOF(err))
}

func TestIsIOEOFFalseForOtherErrors(t *testing.T) {
	assert.False(t, isIOEOF(errUnsupportedDocType("mp4")))
}

func TestDiscoverSeekIndexFindsSeekHead(t *testing.T) {
	info := elem(0x1549A966, elem(0x2AD7B1, encUint(1_000_000)))

	// placeholder SeekHead just to measure its own encoded length first
	placeholder := elem(0x114D9B74, elem(0x4DBB, concat(
		elem(0x53AB, encUint(0x1549A966)),
		elem(0x53AC, encUint(0)),
	)))
	infoRelOffset := uint64(len(placeholder)) // Info's header-start offset once SeekHead precedes it

	seekEntry := elem(0x4DBB, concat(
		elem(0x53AB, encUint(0x1549A966)), // SeekID = Info's wire ID
		elem(0x53AC, encUint(infoRelOffset)),
	))
	seekHead := elem(0x114D9B74, seekEntry)
	require.Equal(t, len(placeholder), len(seekHead), "SeekPosition must encode to the same width as the placeholder used to size it")

	segBody := concat(seekHead, info)
	r := bytes.NewReader(segBody)

	idx, err := discoverSeekIndex(r, Location{Offset: 0, Size: uint64(len(segBody))})
	require.NoError(t, err)
	require.Contains(t, idx, TagInfo)
	assert.Equal(t, uint64(len(seekHead)), idx[TagInfo])
}

func TestDiscoverSeekIndexEmptyWhenFirstElementIsNotSeekHead(t *testing.T) {
	info := elem(0x1549A966, elem(0x2AD7B1, encUint(1_000_000)))
	r := bytes.NewReader(info)
	idx, err := discoverSeekIndex(r, Location{Offset: 0, Size: uint64(len(info))})
	require.NoError(t, err)
	assert.Empty(t, idx)
}

func TestRebuildSeekIndexRecordsFirstOccurrenceOnly(t *testing.T) {
	cluster1 := elem(0x1F43B675, elem(0xE7, encUint(0)))
	cluster2 := elem(0x1F43B675, elem(0xE7, encUint(100)))
	segBody := concat(cluster1, cluster2)
	r := bytes.NewReader(segBody)

	idx := make(seekIndex)
	err := rebuildSeekIndex(r, Location{Offset: 0, Size: uint64(len(segBody))}, idx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), idx[TagCluster], "first Cluster's header offset must win, not the second")
}

func TestLocateFirstClusterFallsBackPastTracks(t *testing.T) {
	trackEntry := elem(0xAE, concat(elem(0xD7, encUint(1)), elem(0x73C5, encUint(1)), elem(0x83, encUint(1)), elem(0x86, []byte("V_TEST"))))
	tracks := elem(0x1654AE6B, trackEntry)
	cluster := elem(0x1F43B675, elem(0xE7, encUint(0)))
	segBody := concat(tracks, cluster)

	idx := seekIndex{TagTracks: 0}
	r := bytes.NewReader(segBody)
	err := locateFirstCluster(r, Location{Offset: 0, Size: uint64(len(segBody))}, idx)
	require.NoError(t, err)
	assert.Equal(t, uint64(len(tracks)), idx[TagCluster])
}

func TestLocateFirstClusterErrorsWhenAbsent(t *testing.T) {
	tracks := elem(0x1654AE6B, elem(0xAE, elem(0xD7, encUint(1))))
	idx := seekIndex{TagTracks: 0}
	r := bytes.NewReader(tracks)
	err := locateFirstCluster(r, Location{Offset: 0, Size: uint64(len(tracks))}, idx)
	require.Error(t, err)
	var de *DemuxError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrCantFindCluster, de.Kind)
}

// TestBootstrapFallsBackToLinearScan covers a file with no SeekHead: bootstrap
// must still locate Info/Tracks/Cluster by scanning the Segment's children.
func TestBootstrapFallsBackToLinearScan(t *testing.T) {
	data := buildFixture(t)
	state, err := bootstrap(bytes.NewReader(data), zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, "matroska", state.header.DocType)
	assert.Len(t, state.tracks, 1)
	assert.Len(t, state.cues, 1)
	assert.Greater(t, state.firstClusterOffset, uint64(0))
}

// sanity: a reader that always errors is never silently swallowed as EOF.
type alwaysErrReader struct{}

func (alwaysErrReader) Read([]byte) (int, error)               { return 0, errors.New("boom") }
func (alwaysErrReader) Seek(int64, int) (int64, error)          { return 0, nil }

func TestIsIOEOFDoesNotMatchUnrelatedIOErrors(t *testing.T) {
	_, err := readByte(alwaysErrReader{})
	require.Error(t, err)
	assert.False(t, isIOEOF(err))
}

var _ io.ReadSeeker = alwaysErrReader{}
