package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ebmlHeaderFixture(docType string, maxID, maxSize uint64) []byte {
	return concat(
		elem(0x4286, encUint(1)),       // EBMLVersion
		elem(0x42F7, encUint(1)),       // EBMLReadVersion
		elem(0x42F2, encUint(maxID)),   // EBMLMaxIDLength
		elem(0x42F3, encUint(maxSize)), // EBMLMaxSizeLength
		elem(0x4282, []byte(docType)),  // DocType
		elem(0x4287, encUint(2)),       // DocTypeVersion
		elem(0x4285, encUint(2)),       // DocTypeReadVersion
	)
}

// TestBindEBMLHeaderRoundTrip is S1: a well-formed header round-trips with
// its doc type NUL-padding trimmed.
func TestBindEBMLHeaderRoundTrip(t *testing.T) {
	payload := ebmlHeaderFixture("matroska\x00\x00", 4, 8)
	fields, err := collectChildren(bytes.NewReader(payload), 0, uint64(len(payload)))
	require.NoError(t, err)

	h, err := bindEBMLHeader(fields)
	require.NoError(t, err)
	assert.Equal(t, "matroska", h.DocType)
	assert.Equal(t, uint64(1), h.Version)
	assert.Equal(t, uint64(2), h.DocTypeVersion)
}

func TestBindEBMLHeaderAcceptsWebm(t *testing.T) {
	payload := ebmlHeaderFixture("webm", 4, 8)
	fields, err := collectChildren(bytes.NewReader(payload), 0, uint64(len(payload)))
	require.NoError(t, err)
	h, err := bindEBMLHeader(fields)
	require.NoError(t, err)
	assert.Equal(t, "webm", h.DocType)
}

func TestBindEBMLHeaderRejectsUnsupportedDocType(t *testing.T) {
	payload := ebmlHeaderFixture("mp4", 4, 8)
	fields, err := collectChildren(bytes.NewReader(payload), 0, uint64(len(payload)))
	require.NoError(t, err)
	_, err = bindEBMLHeader(fields)
	require.Error(t, err)
	var de *DemuxError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrUnsupportedDocType, de.Kind)
}

// TestBindEBMLHeaderRejectsOversizeLengths covers the §8 boundary case:
// max_id_length=5 or max_size_length=9 must fail as InvalidEbmlHeader.
func TestBindEBMLHeaderRejectsOversizeLengths(t *testing.T) {
	cases := []struct {
		name           string
		maxID, maxSize uint64
	}{
		{"max_id_length=5", 5, 8},
		{"max_size_length=9", 4, 9},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := ebmlHeaderFixture("matroska", tc.maxID, tc.maxSize)
			fields, err := collectChildren(bytes.NewReader(payload), 0, uint64(len(payload)))
			require.NoError(t, err)
			_, err = bindEBMLHeader(fields)
			require.Error(t, err)
			var de *DemuxError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, ErrInvalidEbmlHeader, de.Kind)
		})
	}
}

func TestBindSegmentInfoDefaultsTimestampScale(t *testing.T) {
	info, err := bindSegmentInfo(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1_000_000), info.TimestampScale)
}

func TestBindSegmentInfoRejectsNegativeDuration(t *testing.T) {
	fields := []Field{{Tag: TagDuration, Kind: wireFloat, Float: -1}}
	_, err := bindSegmentInfo(fields)
	require.Error(t, err)
	var de *DemuxError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrPositiveValueIsNotPositive, de.Kind)
}

func TestBindSegmentInfoExplicitZeroTimestampScaleIsRejected(t *testing.T) {
	fields := []Field{{Tag: TagTimestampScale, Kind: wireUnsigned, Unsigned: 0}}
	_, err := bindSegmentInfo(fields)
	require.Error(t, err)
	var de *DemuxError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ErrNonZeroValueIsZero, de.Kind)
}

func TestTrimNulPad(t *testing.T) {
	assert.Equal(t, "matroska", trimNulPad("matroska\x00\x00\x00"))
	assert.Equal(t, "", trimNulPad("\x00"))
	assert.Equal(t, "webm", trimNulPad("webm"))
}

func TestBindColourDefaults(t *testing.T) {
	c, err := bindColour(bytes.NewReader(nil), Location{Offset: 0, Size: 0})
	require.NoError(t, err)
	assert.Equal(t, MatrixCoefficientsUnknown, c.MatrixCoefficients)
	assert.Nil(t, c.MasteringMetadata)
}
