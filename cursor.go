package matroska

import "io"

// Frame is one media frame produced by next_frame, reusing its Data buffer
// across calls to avoid a per-frame allocation (spec.md §5's memory
// discipline).
type Frame struct {
	Track         uint64
	Timestamp     uint64
	Data          []byte
	IsInvisible   bool
	IsKeyFrame    *bool
	IsDiscardable *bool
	Duration      *uint64
}

// cursor is the mutable frame-production state: current cluster timestamp,
// the queue of laced frames pending delivery, and the reader's logical
// walk position.
type cursor struct {
	r byteReader

	currentClusterTimestamp uint64
	pending                 []LacedFrame

	pos uint64
	end uint64 // end of the current descent scope; unknownSize means "until EOF/parent"

	// descent stack: when we enter a Cluster or BlockGroup we push the
	// enclosing scope's remaining bound so we can pop back out after its
	// children are exhausted.
	stack []scopeFrame
}

type scopeFrame struct {
	end uint64
}

func newCursor(r byteReader, start uint64) *cursor {
	return &cursor{r: r, pos: start, end: unknownSize}
}

// resetTo repositions the cursor at `offset` with no pending frames and a
// freshly-zeroed cluster timestamp, used by seek's broad phase.
func (c *cursor) resetTo(offset uint64) {
	c.pending = nil
	c.currentClusterTimestamp = 0
	c.pos = offset
	c.end = unknownSize
	c.stack = nil
}

// nextFrame implements spec.md §4.8: drain pending laced frames first, else
// walk elements until a block is decoded or the stream ends.
func (c *cursor) nextFrame(out *Frame) (bool, error) {
	if len(c.pending) > 0 {
		lf := c.pending[0]
		c.pending = c.pending[1:]
		if cap(out.Data) < int(lf.Size) {
			out.Data = make([]byte, lf.Size)
		} else {
			out.Data = out.Data[:lf.Size]
		}
		if lf.Size > 0 {
			if _, err := io.ReadFull(c.r, out.Data); err != nil {
				return false, wrapIO(err)
			}
		}
		out.Track = lf.Track
		out.Timestamp = lf.Timestamp
		out.IsInvisible = lf.Invisible
		out.IsKeyFrame = lf.KeyFrame
		out.IsDiscardable = lf.Discardable
		out.Duration = nil
		return true, nil
	}

	for {
		if err := seekTo(c.r, c.pos); err != nil {
			return false, err
		}
		for len(c.stack) > 0 && c.end != unknownSize && c.pos >= c.end {
			top := c.stack[len(c.stack)-1]
			c.stack = c.stack[:len(c.stack)-1]
			c.end = top.end
		}

		tag, size, err := readElementHeader(c.r, nil)
		if err != nil {
			if isIOEOF(err) {
				return false, nil
			}
			return false, err
		}
		offset, err := position(c.r)
		if err != nil {
			return false, err
		}

		switch tag {
		case TagCluster, TagBlockGroup:
			c.stack = append(c.stack, scopeFrame{end: c.end})
			c.pos = offset
			if size == unknownSize {
				c.end = unknownSize
			} else {
				c.end = offset + size
			}
			continue

		case TagTimestamp:
			v, err := parseUnsigned(c.r, size)
			if err != nil {
				return false, err
			}
			c.currentClusterTimestamp = v
			c.pos = offset + size

		case TagSimpleBlock, TagBlock:
			if err := seekTo(c.r, offset); err != nil {
				return false, err
			}
			if err := parseLacedFrames(c.r, &c.pending, size, c.currentClusterTimestamp, offset, tag == TagSimpleBlock); err != nil {
				return false, err
			}
			c.pos = offset + size
			return c.nextFrame(out)

		default:
			if size == unknownSize {
				c.pos = offset
			} else {
				c.pos = offset + size
			}
		}
	}
}
