package matroska

import (
	"errors"
	"io"

	"go.uber.org/zap"
)

// seekIndex maps a tag of interest (Info, Tracks, Cues, Chapters, Tags,
// Cluster) to the absolute offset of that element's header within the
// byte source, per spec.md's SeekIndex.
type seekIndex map[ElementID]uint64

// bootstrap runs segment discovery: EBML header, Segment entry, SeekHead
// discovery with rebuild/linear-scan fallbacks, and binding of Info/Tracks
// plus the optional Cues/Chapters/Tags metadata. It leaves the reader
// positioned nowhere in particular; callers reposition explicitly before
// reading frames.
func bootstrap(r byteReader, log *zap.SugaredLogger) (*demuxerState, error) {
	headerLoc, err := expectMaster(r, TagEbml, uint64Ptr(0))
	if err != nil {
		return nil, err
	}
	headerFields, err := collectChildren(r, headerLoc.Offset, headerLoc.Size)
	if err != nil {
		return nil, err
	}
	header, err := bindEBMLHeader(headerFields)
	if err != nil {
		return nil, err
	}

	segLoc, err := expectMaster(r, TagSegment, nil)
	if err != nil {
		return nil, err
	}
	segmentDataOffset := segLoc.Offset

	idx, err := discoverSeekIndex(r, segLoc)
	if err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		log.Debug("seek head absent or empty, rebuilding index by linear scan")
		if err := rebuildSeekIndex(r, segLoc, idx); err != nil {
			return nil, err
		}
	}
	if _, ok := idx[TagCluster]; !ok {
		log.Debug("cluster offset unknown after rebuild, scanning tracks tail for first cluster")
		if err := locateFirstCluster(r, segLoc, idx); err != nil {
			return nil, err
		}
	}

	infoOffset, ok := idx[TagInfo]
	if !ok {
		return nil, errElementNotFound(TagInfo)
	}
	infoLoc, err := expectMaster(r, TagInfo, &infoOffset)
	if err != nil {
		return nil, err
	}
	infoFields, err := collectChildren(r, infoLoc.Offset, infoLoc.Size)
	if err != nil {
		return nil, err
	}
	info, err := bindSegmentInfo(infoFields)
	if err != nil {
		return nil, err
	}

	tracksOffset, ok := idx[TagTracks]
	if !ok {
		return nil, errElementNotFound(TagTracks)
	}
	tracksLoc, err := expectMaster(r, TagTracks, &tracksOffset)
	if err != nil {
		return nil, err
	}
	tracksFields, err := collectChildren(r, tracksLoc.Offset, tracksLoc.Size)
	if err != nil {
		return nil, err
	}
	var tracks []TrackEntry
	for _, f := range findAll(tracksFields, TagTrackEntry) {
		entryFields, err := collectChildren(r, f.Loc.Offset, f.Loc.Size)
		if err != nil {
			return nil, err
		}
		te, err := bindTrackEntry(r, entryFields)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, te)
	}
	if len(tracks) == 0 {
		return nil, errElementNotFound(TagTrackEntry)
	}

	var cues []CuePoint
	if cuesOffset, ok := idx[TagCues]; ok {
		cuesLoc, err := expectMaster(r, TagCues, &cuesOffset)
		if err != nil {
			return nil, err
		}
		cuesFields, err := collectChildren(r, cuesLoc.Offset, cuesLoc.Size)
		if err != nil {
			return nil, err
		}
		for _, f := range findAll(cuesFields, TagCuePoint) {
			cpFields, err := collectChildren(r, f.Loc.Offset, f.Loc.Size)
			if err != nil {
				return nil, err
			}
			cp, err := bindCuePoint(r, cpFields)
			if err != nil {
				return nil, err
			}
			for i := range cp.Positions {
				cp.Positions[i].ClusterPosition += segmentDataOffset
			}
			cues = append(cues, cp)
		}
	}

	var chapters []EditionEntry
	if chOffset, ok := idx[TagChapters]; ok {
		chLoc, err := expectMaster(r, TagChapters, &chOffset)
		if err != nil {
			return nil, err
		}
		chFields, err := collectChildren(r, chLoc.Offset, chLoc.Size)
		if err != nil {
			return nil, err
		}
		for _, f := range findAll(chFields, TagEditionEntry) {
			eeFields, err := collectChildren(r, f.Loc.Offset, f.Loc.Size)
			if err != nil {
				return nil, err
			}
			ee, err := bindEditionEntry(r, eeFields)
			if err != nil {
				return nil, err
			}
			chapters = append(chapters, ee)
		}
	}

	var tags []Tag
	if tagsOffset, ok := idx[TagTags]; ok {
		tagsLoc, err := expectMaster(r, TagTags, &tagsOffset)
		if err != nil {
			return nil, err
		}
		tagsFields, err := collectChildren(r, tagsLoc.Offset, tagsLoc.Size)
		if err != nil {
			return nil, err
		}
		for _, f := range findAll(tagsFields, TagTag) {
			tagFields, err := collectChildren(r, f.Loc.Offset, f.Loc.Size)
			if err != nil {
				return nil, err
			}
			tag, err := bindTag(r, tagFields)
			if err != nil {
				return nil, err
			}
			tags = append(tags, tag)
		}
	}

	clusterOffset := idx[TagCluster]

	return &demuxerState{
		header:            header,
		info:              info,
		tracks:            tracks,
		cues:              cues,
		chapters:          chapters,
		tags:              tags,
		segmentLoc:        segLoc,
		segmentDataOffset: segmentDataOffset,
		firstClusterOffset: clusterOffset,
	}, nil
}

// discoverSeekIndex scans forward from the segment's data offset skipping
// Void and unrecognized elements (CRC-32 has no registry entry, so it is
// among them), and if the first remaining element is a SeekHead, parses its
// Seek entries into absolute offsets.
func discoverSeekIndex(r byteReader, segLoc Location) (seekIndex, error) {
	idx := make(seekIndex)
	pos := segLoc.Offset
	for {
		tag, size, err := readElementHeader(r, &pos)
		if err != nil {
			if errors.Is(err, io.EOF) || isIOEOF(err) {
				return idx, nil
			}
			return nil, err
		}
		if tag == TagVoid || tag == TagUnknown {
			if size == unknownSize {
				return idx, nil
			}
			dataOffset, err := position(r)
			if err != nil {
				return nil, err
			}
			pos = dataOffset + size
			continue
		}
		if tag != TagSeekHead {
			return idx, nil
		}
		offset, err := position(r)
		if err != nil {
			return nil, err
		}
		seekFields, err := collectChildren(r, offset, size)
		if err != nil {
			return nil, err
		}
		for _, f := range findAll(seekFields, TagSeek) {
			entryFields, err := collectChildren(r, f.Loc.Offset, f.Loc.Size)
			if err != nil {
				return nil, err
			}
			seekID, err := findUnsigned(entryFields, TagSeekID)
			if err != nil {
				continue
			}
			seekPos, err := findUnsigned(entryFields, TagSeekPosition)
			if err != nil {
				continue
			}
			tag := lookupTag(uint32(seekID))
			if tag != TagUnknown {
				idx[tag] = segLoc.Offset + seekPos
			}
		}
		return idx, nil
	}
}

// rebuildSeekIndex linearly walks the Segment's top-level children,
// recording the first offset of each tag of interest, for files lacking a
// usable SeekHead.
func rebuildSeekIndex(r byteReader, segLoc Location, idx seekIndex) error {
	pos := segLoc.Offset
	end := segLoc.Offset + segLoc.Size
	unknownSegmentSize := segLoc.Size == unknownSize

	for unknownSegmentSize || pos < end {
		tag, size, err := readElementHeader(r, &pos)
		if err != nil {
			if isIOEOF(err) {
				return nil
			}
			return err
		}
		offset, err := position(r)
		if err != nil {
			return err
		}

		switch tag {
		case TagInfo, TagTracks, TagChapters, TagCues, TagTags, TagCluster:
			if _, ok := idx[tag]; !ok {
				idx[tag] = pos
			}
		}

		if size == unknownSize {
			return nil
		}
		pos = offset + size
	}
	return nil
}

// locateFirstCluster seeks past the end of Tracks (if known) or the
// segment's data offset otherwise, and linearly scans for the first
// Cluster header.
func locateFirstCluster(r byteReader, segLoc Location, idx seekIndex) error {
	start := segLoc.Offset
	if tracksOffset, ok := idx[TagTracks]; ok {
		tag, size, err := readElementHeader(r, &tracksOffset)
		if err != nil {
			return err
		}
		if tag == TagTracks && size != unknownSize {
			dataOffset, err := position(r)
			if err != nil {
				return err
			}
			start = dataOffset + size
		}
	}

	pos := start
	for {
		tag, size, err := readElementHeader(r, &pos)
		if err != nil {
			if isIOEOF(err) {
				return errCantFindCluster()
			}
			return err
		}
		offset, err := position(r)
		if err != nil {
			return err
		}
		if tag == TagCluster {
			idx[TagCluster] = pos
			return nil
		}
		if size == unknownSize {
			return errCantFindCluster()
		}
		pos = offset + size
	}
}

func isIOEOF(err error) bool {
	var de *DemuxError
	if errors.As(err, &de) {
		return errors.Is(de.Wrapped, io.EOF) || errors.Is(de.Wrapped, io.ErrUnexpectedEOF)
	}
	return false
}

func uint64Ptr(v uint64) *uint64 { return &v }

// demuxerState holds everything bootstrap produces: the immutable metadata
// plus enough bookkeeping for the frame cursor and seek engine to operate.
type demuxerState struct {
	header   EBMLHeader
	info     SegmentInfo
	tracks   []TrackEntry
	cues     []CuePoint
	chapters []EditionEntry
	tags     []Tag

	segmentLoc         Location
	segmentDataOffset  uint64
	firstClusterOffset uint64
}
