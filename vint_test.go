package matroska

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadElementID(t *testing.T) {
	cases := []struct {
		name    string
		input   []byte
		want    uint32
		wantErr bool
	}{
		{"1-byte id", []byte{0x80 | 0x1A}, 0x9A, false},
		{"2-byte id", []byte{0x40, 0x11}, 0x4011, false},
		{"3-byte id", []byte{0x20, 0x12, 0x34}, 0x201234, false},
		{"4-byte id", []byte{0x10, 0x53, 0xAB, 0x84}, 0x1053AB84, false},
		{"skips leading zero-nibble byte", []byte{0x00, 0x80 | 0x1A}, 0x9A, false},
		{"zero-nibble byte with nothing after it", []byte{0x0F}, 0, true},
		{"truncated", []byte{0x40}, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readElementID(bytes.NewReader(tc.input))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadDataSize(t *testing.T) {
	cases := []struct {
		name    string
		input   []byte
		want    uint64
		wantErr bool
	}{
		{"1-byte size", []byte{0x81}, 1, false},
		{"1-byte max", []byte{0xFE}, 126, false},
		{"1-byte unknown", []byte{0xFF}, unknownSize, false},
		{"2-byte size", []byte{0x40, 0x01}, 1, false},
		{"2-byte unknown", []byte{0x7F, 0xFF}, unknownSize, false},
		{"4-byte size", []byte{0x10, 0x00, 0x00, 0x01}, 1, false},
		{"8-byte size", []byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, 1, false},
		{"invalid lead byte", []byte{0x00}, 0, true},
		{"truncated", []byte{0x40}, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readDataSize(bytes.NewReader(tc.input))
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadSignedLaceSize(t *testing.T) {
	cases := []struct {
		name  string
		input []byte
		want  int64
	}{
		{"1-byte zero delta", []byte{0x80 | 63}, 0},
		{"1-byte negative delta", []byte{0x80 | 0}, -63},
		{"1-byte positive delta", []byte{0xFF}, 64},
		{"2-byte delta", []byte{0x40, 0x00}, -8191},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readSignedLaceSize(bytes.NewReader(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestVIntWidthRoundTrip exercises every VINT width class (1-8 bytes),
// confirming that an all-ones payload across the width's full span
// (2^(7*width) - 1) is decoded as the unknown-size sentinel at every
// width, not only for the single lead byte 0xFF.
func TestVIntWidthRoundTrip(t *testing.T) {
	widths := []struct {
		lead    byte
		tailLen int
		mask    byte
		want    uint64
	}{
		{0x40, 1, 0x3F, unknownSize},
		{0x20, 2, 0x1F, unknownSize},
		{0x10, 3, 0x0F, unknownSize},
		{0x08, 4, 0x07, unknownSize},
		{0x04, 5, 0x03, unknownSize},
		{0x02, 6, 0x01, unknownSize},
		{0x01, 7, 0x00, unknownSize},
	}
	for _, w := range widths {
		buf := make([]byte, 1+w.tailLen)
		buf[0] = w.lead | w.mask
		for i := 1; i <= w.tailLen; i++ {
			buf[i] = 0xFF
		}
		got, err := readDataSize(bytes.NewReader(buf))
		require.NoError(t, err)
		assert.Equal(t, w.want, got, "all-ones payload at width %d is the unknown-size sentinel", w.tailLen+1)
	}

	got, err := readDataSize(bytes.NewReader([]byte{0xFF}))
	require.NoError(t, err)
	assert.Equal(t, unknownSize, got, "lead byte 0xFF alone is the unknown-size sentinel")
}
