package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLacedFramesNone covers a SimpleBlock with no lacing (S5-adjacent):
// one frame whose size is deduced by subtracting the header's own length
// from the element's total payload size.
func TestParseLacedFramesNone(t *testing.T) {
	header := []byte{0x81, 0x00, 0x00, 0x00} // track=1, timestamp=0, flag=0 (no lace)
	blockSize := uint64(len(header)) + 10     // 10-byte frame follows

	var frames []LacedFrame
	err := parseLacedFrames(bytes.NewReader(header), &frames, blockSize, 1000, 0, true)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, uint64(1), frames[0].Track)
	assert.Equal(t, uint64(1000), frames[0].Timestamp)
	assert.Equal(t, uint64(10), frames[0].Size)
}

// TestParseLacedFramesXiph covers Xiph lacing (S6): explicit sizes for all
// but the last frame, whose size is deduced by subtraction.
func TestParseLacedFramesXiph(t *testing.T) {
	header := []byte{
		0x81,       // track = 1
		0x00, 0x00, // timestamp delta = 0
		0x02, // flag: Xiph lacing
		0x01, // frame count - 1 = 1 (2 frames)
		0x05, // first frame size = 5
	}
	blockSize := uint64(len(header)) + 5 + 7 // frame1=5, frame2=7 (deduced)

	var frames []LacedFrame
	err := parseLacedFrames(bytes.NewReader(header), &frames, blockSize, 0, 0, true)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, uint64(5), frames[0].Size)
	assert.Equal(t, uint64(7), frames[1].Size)
}

// TestParseLacedFramesXiphMultiByteSize covers a Xiph frame size spanning
// more than one 0xFF continuation byte.
func TestParseLacedFramesXiphMultiByteSize(t *testing.T) {
	header := []byte{
		0x81,
		0x00, 0x00,
		0x02,             // Xiph lacing
		0x01,             // 2 frames
		0xFF, 0xFF, 0x05, // 255+255+5 = 515
	}
	blockSize := uint64(len(header)) + 515 + 3

	var frames []LacedFrame
	err := parseLacedFrames(bytes.NewReader(header), &frames, blockSize, 0, 0, true)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, uint64(515), frames[0].Size)
	assert.Equal(t, uint64(3), frames[1].Size)
}

// TestParseLacedFramesEBML covers EBML lacing (signed VINT deltas) across
// three frames, with the last frame's size deduced by subtraction.
func TestParseLacedFramesEBML(t *testing.T) {
	header := []byte{
		0x81,       // track = 1
		0x00, 0x00, // timestamp delta = 0
		0x06, // flag: EBML lacing
		0x02, // frame count - 1 = 2 (3 frames)
		0x8A, // first frame size = 10 (1-byte VINT, 0x80|10)
		0xC4, // delta = +5 (0x80|(63+5)=0xC4)
	}
	blockSize := uint64(len(header)) + 10 + 15 + 8

	var frames []LacedFrame
	err := parseLacedFrames(bytes.NewReader(header), &frames, blockSize, 0, 0, true)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	assert.Equal(t, uint64(10), frames[0].Size)
	assert.Equal(t, uint64(15), frames[1].Size)
	assert.Equal(t, uint64(8), frames[2].Size)
}

// TestParseLacedFramesFixedSize covers fixed-size lacing: the header-deduced
// total splits evenly by frame count, with any remainder simply dropped per
// the resolved Open Question 1.
func TestParseLacedFramesFixedSize(t *testing.T) {
	header := []byte{
		0x81,
		0x00, 0x00,
		0x04, // flag: fixed-size lacing
		0x03, // frame count - 1 = 3 (4 frames)
	}
	blockSize := uint64(len(header)) + 24 // 4 frames * 6 bytes each

	var frames []LacedFrame
	err := parseLacedFrames(bytes.NewReader(header), &frames, blockSize, 0, 0, true)
	require.NoError(t, err)
	require.Len(t, frames, 4)
	for _, f := range frames {
		assert.Equal(t, uint64(6), f.Size)
	}
}

func TestParseLacedFramesNegativeTimestampSaturates(t *testing.T) {
	header := []byte{0x81, 0xFF, 0xF0, 0x00} // rel = -16, clusterTimestamp = 10
	var frames []LacedFrame
	err := parseLacedFrames(bytes.NewReader(header), &frames, uint64(len(header)), 10, 0, true)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, uint64(0), frames[0].Timestamp, "timestamp must saturate at zero, not wrap")
}

func TestProbeBlockTimestampSkipsTrackWithoutLacing(t *testing.T) {
	data := []byte{0x81, 0x00, 0x0A} // track=1, rel=10
	ts, err := probeBlockTimestamp(bytes.NewReader(data), 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(110), ts)
}

func TestSaturatingArithmetic(t *testing.T) {
	assert.Equal(t, ^uint64(0), saturatingAddU64(^uint64(0), 1))
	assert.Equal(t, uint64(0), saturatingSubU64(5, 10))
	assert.Equal(t, uint64(5), saturatingSubU64(10, 5))
}
