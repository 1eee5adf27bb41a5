package matroska

import "io"

// lacing names a Block/SimpleBlock's lacing algorithm, decoded from bits
// 1-2 of its flag byte.
type lacing int

const (
	lacingNone lacing = iota
	lacingXiph
	lacingFixedSize
	lacingEBML
)

func lacingFromBits(b byte) lacing {
	switch b {
	case 1:
		return lacingXiph
	case 2:
		return lacingFixedSize
	case 3:
		return lacingEBML
	default:
		return lacingNone
	}
}

// LacedFrame is one frame extracted from a (possibly laced) Block or
// SimpleBlock. KeyFrame and Discardable are only meaningful for
// SimpleBlock — a BlockGroup's frames carry that information, if any,
// on the surrounding BlockGroup's ReferenceBlock instead.
type LacedFrame struct {
	Track       uint64
	Timestamp   uint64
	Size        uint64
	Invisible   bool
	KeyFrame    *bool
	Discardable *bool
}

// probeBlockTimestamp reads just enough of a Block/SimpleBlock payload — the
// track number VINT and the 16-bit relative timestamp — to resolve the
// absolute timestamp, without decoding lacing. Used by the seek engine's
// narrow phase, which walks blocks linearly, to avoid paying for full frame
// decode at each probe point.
func probeBlockTimestamp(r io.Reader, clusterTimestamp uint64) (uint64, error) {
	if _, err := readDataSize(r); err != nil {
		return 0, err
	}
	return parseBlockTimestamp(r, clusterTimestamp)
}

// parseLacedFrames decodes the track number, timestamp, flag byte and
// lacing table of one Block/SimpleBlock payload, appending every resulting
// frame to `frames` in bitstream order. `blockSize` is the element's total
// payload size as read from its header; `headerStart` is the stream
// position at which that payload began, used to compute how many bytes the
// still-unread header fields have consumed so the final (or only) frame's
// size can be deduced by subtraction.
func parseLacedFrames(r byteReader, frames *[]LacedFrame, blockSize, clusterTimestamp, headerStart uint64, isSimpleBlock bool) error {
	track, err := readDataSize(r)
	if err != nil {
		return err
	}
	timestamp, err := parseBlockTimestamp(r, clusterTimestamp)
	if err != nil {
		return err
	}

	flag, err := readByte(r)
	if err != nil {
		return err
	}

	var keyFrame, discardable *bool
	if isSimpleBlock {
		kf := flag&0x80 != 0
		keyFrame = &kf
		dc := flag&0x01 != 0
		discardable = &dc
	}
	invisible := flag&0x08 != 0
	lace := lacingFromBits((flag & 0x06) >> 1)

	headerSize := func() (uint64, error) {
		end, err := position(r)
		if err != nil {
			return 0, err
		}
		return end - headerStart, nil
	}

	push := func(size uint64) {
		*frames = append(*frames, LacedFrame{
			Track: track, Timestamp: timestamp, Size: size,
			Invisible: invisible, KeyFrame: keyFrame, Discardable: discardable,
		})
	}

	if lace == lacingNone {
		hs, err := headerSize()
		if err != nil {
			return err
		}
		remaining, err := remainingFrameSize(blockSize, hs)
		if err != nil {
			return err
		}
		push(remaining)
		return nil
	}

	countByte, err := readByte(r)
	if err != nil {
		return err
	}
	frameCount := uint64(countByte) + 1

	switch lace {
	case lacingXiph:
		var encoded uint64
		for i := uint64(0); i < frameCount-1; i++ {
			size, err := parseXiphFrameSize(r)
			if err != nil {
				return err
			}
			encoded += size
			push(size)
		}
		hs, err := headerSize()
		if err != nil {
			return err
		}
		remaining, err := remainingFrameSize(blockSize, saturatingAddU64(hs, encoded))
		if err != nil {
			return err
		}
		push(remaining)

	case lacingEBML:
		size, err := readDataSize(r)
		if err != nil {
			return err
		}
		encoded := size
		push(size)

		if frameCount > 2 {
			for i := uint64(0); i < frameCount-2; i++ {
				delta, err := readSignedLaceSize(r)
				if err != nil {
					return err
				}
				if delta >= 0 {
					size = saturatingAddU64(size, uint64(delta))
				} else {
					size = saturatingSubU64(size, uint64(-delta))
				}
				encoded += size
				push(size)
			}
		}
		hs, err := headerSize()
		if err != nil {
			return err
		}
		remaining, err := remainingFrameSize(blockSize, saturatingAddU64(hs, encoded))
		if err != nil {
			return err
		}
		push(remaining)

	case lacingFixedSize:
		hs, err := headerSize()
		if err != nil {
			return err
		}
		remaining, err := remainingFrameSize(blockSize, hs)
		if err != nil {
			return err
		}
		size := remaining / frameCount
		for i := uint64(0); i < frameCount; i++ {
			push(size)
		}
	}
	return nil
}

func parseBlockTimestamp(r io.Reader, clusterTimestamp uint64) (uint64, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, wrapIO(err)
	}
	rel := int16(uint16(buf[0])<<8 | uint16(buf[1]))
	if rel >= 0 {
		return clusterTimestamp + uint64(rel), nil
	}
	return saturatingSubU64(clusterTimestamp, uint64(-int64(rel))), nil
}

func parseXiphFrameSize(r io.Reader) (uint64, error) {
	var size uint64
	for {
		b, err := readByte(r)
		if err != nil {
			return 0, err
		}
		size += uint64(b)
		if b != 255 {
			break
		}
	}
	return size, nil
}

func saturatingAddU64(a, b uint64) uint64 {
	c := a + b
	if c < a {
		return ^uint64(0)
	}
	return c
}

func saturatingSubU64(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// remainingFrameSize subtracts the bytes a lacing header has already
// consumed from the block's declared total size, erroring instead of
// wrapping when a truncated or malformed block claims to be smaller than
// the header fields it was just made to yield.
func remainingFrameSize(blockSize, consumed uint64) (uint64, error) {
	if consumed > blockSize {
		return 0, errTruncatedBlock()
	}
	return blockSize - consumed, nil
}
