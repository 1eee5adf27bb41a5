package matroska

import "io"

// readElementID reads an EBML element ID VINT. Unlike a data-size VINT, the
// marker bit stays in the returned value — element IDs are compared as the
// raw encoded byte pattern, not as a magnitude.
//
// A byte whose top nibble is entirely zero is not a valid VINT lead byte at
// all; such bytes are skipped rather than rejected, matching corrupted files
// that pad element boundaries with zero bytes.
func readElementID(r io.Reader) (uint32, error) {
	for {
		b, err := readByte(r)
		if err != nil {
			return 0, err
		}
		switch {
		case b&0xF0 == 0x00:
			continue
		case b&0x80 == 0x80:
			return uint32(b), nil
		case b&0xC0 == 0x40:
			return readVIntU32Tail(r, b, 1)
		case b&0xE0 == 0x20:
			return readVIntU32Tail(r, b, 2)
		case b&0xF0 == 0x10:
			return readVIntU32Tail(r, b, 3)
		default:
			return 0, errInvalidElementID()
		}
	}
}

// readDataSize reads an EBML data-size VINT and strips the marker bit,
// yielding the element's byte length. All-ones across the VINT's width (the
// largest representable value for that width) is the "unknown size"
// sentinel and is reported as math.MaxUint64 regardless of width, per the
// EBML unknown-size convention.
func readDataSize(r io.Reader) (uint64, error) {
	b, err := readByte(r)
	if err != nil {
		return 0, err
	}
	switch {
	case b == 0xFF:
		return unknownSize, nil
	case b&0x80 == 0x80:
		return uint64(b & 0x7F), nil
	case b&0xC0 == 0x40:
		return readVIntU64Tail(r, b&0x3F, 1)
	case b&0xE0 == 0x20:
		return readVIntU64Tail(r, b&0x1F, 2)
	case b&0xF0 == 0x10:
		return readVIntU64Tail(r, b&0x0F, 3)
	case b&0xF8 == 0x08:
		return readVIntU64Tail(r, b&0x07, 4)
	case b&0xFC == 0x04:
		return readVIntU64Tail(r, b&0x03, 5)
	case b&0xFE == 0x02:
		return readVIntU64Tail(r, b&0x01, 6)
	case b == 0x01:
		return readVIntU64Tail(r, 0, 7)
	default:
		return 0, errInvalidDataSize()
	}
}

// unknownSize is the sentinel data-size value meaning "unknown, determine
// from context" (an EBML VINT with every payload bit set to 1).
const unknownSize = ^uint64(0)

// readSignedLaceSize reads the signed VINT used for EBML-lacing frame-size
// deltas. Its width classes mirror readDataSize but the payload is
// range-shifted back to a signed delta rather than marker-stripped.
func readSignedLaceSize(r io.Reader) (int64, error) {
	for {
		b, err := readByte(r)
		if err != nil {
			return 0, err
		}
		switch {
		case b&0xF0 == 0x00:
			continue
		case b&0x80 == 0x80:
			return int64(0x7F&b) - 63, nil
		case b&0xC0 == 0x40:
			v, err := readVIntU32Tail(r, b&0x3F, 1)
			if err != nil {
				return 0, err
			}
			return int64(v) - 8191, nil
		case b&0xE0 == 0x20:
			v, err := readVIntU32Tail(r, b&0x1F, 2)
			if err != nil {
				return 0, err
			}
			return int64(v) - 1048575, nil
		case b&0xF0 == 0x10:
			v, err := readVIntU32Tail(r, b&0x0F, 3)
			if err != nil {
				return 0, err
			}
			return int64(v) - 134217727, nil
		default:
			return 0, errInvalidElementID()
		}
	}
}

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, wrapIO(err)
	}
	return buf[0], nil
}

// readVIntU32Tail reads `left` further bytes following a VINT lead byte,
// packing `lead` and the tail bytes into an up-to-32-bit value left-aligned
// at the VINT's total width. Callers that want the marker bit preserved
// (element IDs) pass the raw lead byte; callers that want a bare magnitude
// (lace-size deltas) pass it with the marker bit already masked off.
func readVIntU32Tail(r io.Reader, lead byte, left int) (uint32, error) {
	var buf [4]byte
	buf[0] = lead
	if _, err := io.ReadFull(r, buf[1:1+left]); err != nil {
		return 0, wrapIO(err)
	}
	shift := uint(8 * (3 - left))
	v := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	return v >> shift, nil
}

// readVIntU64Tail reads `left` further bytes following a VINT lead byte
// whose masked high bits are `lead`, producing an up-to-64-bit magnitude.
// An all-ones payload across the VINT's full width (left+1 bytes) is
// reported as unknownSize.
func readVIntU64Tail(r io.Reader, lead byte, left int) (uint64, error) {
	var buf [8]byte
	buf[0] = lead
	if _, err := io.ReadFull(r, buf[1:1+left]); err != nil {
		return 0, wrapIO(err)
	}
	shift := uint(8 * (7 - left))
	var v uint64
	for _, b := range buf {
		v = v<<8 | uint64(b)
	}
	v >>= shift
	if v == 1<<(7*uint(left+1))-1 {
		return unknownSize, nil
	}
	return v, nil
}
