package matroska

import (
	"go.uber.org/zap"
)

// OpenOption configures Open per spec.md §6's functional-options surface:
// a logger attachment and a defensive ceiling on the EBML header's own
// max_id_length/max_size_length fields.
type OpenOption func(*openConfig)

type openConfig struct {
	logger           *zap.SugaredLogger
	maxIDLengthCap   uint64
	maxSizeLengthCap uint64
}

// WithLogger attaches a zap logger for Debug-level fallback diagnostics
// emitted while bootstrapping a file whose SeekHead is absent or stale.
func WithLogger(log *zap.SugaredLogger) OpenOption {
	return func(c *openConfig) { c.logger = log }
}

// WithMaxIDLength rejects files whose EBML header advertises an
// max_id_length above cap, tighter than the format's own ceiling of 4.
func WithMaxIDLength(cap uint64) OpenOption {
	return func(c *openConfig) { c.maxIDLengthCap = cap }
}

// WithMaxSizeLength rejects files whose EBML header advertises a
// max_size_length above cap, tighter than the format's own ceiling of 8.
func WithMaxSizeLength(cap uint64) OpenOption {
	return func(c *openConfig) { c.maxSizeLengthCap = cap }
}

// Demuxer is the public handle over a read-only Matroska/WebM byte source:
// bound metadata plus the mutable frame cursor and seek engine operating
// over the same reader.
type Demuxer struct {
	state  *demuxerState
	cursor *cursor
	seeker *seekEngine
	log    *zap.SugaredLogger
}

// Open runs the full bootstrap pipeline (EBML header, Segment entry,
// SeekHead discovery/rebuild, Info/Tracks/Cues/Chapters/Tags binding) and
// positions the frame cursor at the first cluster.
func Open(r byteReader, opts ...OpenOption) (*Demuxer, error) {
	cfg := openConfig{maxIDLengthCap: 4, maxSizeLengthCap: 8}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	state, err := bootstrap(r, log)
	if err != nil {
		return nil, err
	}
	if state.header.MaxIDLength > cfg.maxIDLengthCap {
		return nil, errInvalidHeader("max_id_length exceeds configured cap")
	}
	if state.header.MaxSizeLength > cfg.maxSizeLengthCap {
		return nil, errInvalidHeader("max_size_length exceeds configured cap")
	}

	c := newCursor(r, state.firstClusterOffset)
	return &Demuxer{
		state:  state,
		cursor: c,
		seeker: &seekEngine{r: r, cues: state.cues, cursor: c, segment: state.segmentLoc},
		log:    log,
	}, nil
}

// EBMLHeader returns the file's bound EBML header.
func (d *Demuxer) EBMLHeader() EBMLHeader { return d.state.header }

// Info returns the Segment's bound Info metadata.
func (d *Demuxer) Info() SegmentInfo { return d.state.info }

// Tracks returns the Segment's bound TrackEntry list.
func (d *Demuxer) Tracks() []TrackEntry { return d.state.tracks }

// Chapters returns the Segment's bound chapter editions, or nil when
// absent.
func (d *Demuxer) Chapters() []EditionEntry { return d.state.chapters }

// Tags returns the Segment's bound tags, or nil when absent.
func (d *Demuxer) Tags() []Tag { return d.state.tags }

// Cues returns the Segment's bound cue points, or nil when absent. Exposed
// so seek's broad phase is independently observable and testable (spec.md
// S7), even though it names no public accessor for it.
func (d *Demuxer) Cues() []CuePoint { return d.state.cues }

// NextFrame pulls one frame into out, reusing its Data buffer, and reports
// true iff a frame was written. false marks end-of-stream.
func (d *Demuxer) NextFrame(out *Frame) (bool, error) {
	return d.cursor.nextFrame(out)
}

// Seek resets the pending-frame queue and jumps to the first frame whose
// timestamp is >= target, per spec.md §4.9's two-phase algorithm. The next
// NextFrame call yields that frame (or a later one, or EOS if target is
// beyond the last frame).
func (d *Demuxer) Seek(target uint64) error {
	return d.seeker.seek(target)
}
