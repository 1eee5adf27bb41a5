package matroska

import "sort"

// seekEngine implements spec.md §4.9: a broad phase (cue-point binary
// search or linear cluster scan) followed by a narrow phase (block
// timestamp probing without lacing decode) to land the cursor just before
// the first block whose timestamp is ≥ target.
type seekEngine struct {
	r       byteReader
	cues    []CuePoint
	cursor  *cursor
	segment Location
}

func (s *seekEngine) seek(target uint64) error {
	s.cursor.resetTo(0)

	broadOffset, err := s.broadPhase(target)
	if err != nil {
		return err
	}

	return s.narrowPhase(broadOffset, target)
}

func (s *seekEngine) broadPhase(target uint64) (uint64, error) {
	if len(s.cues) > 0 {
		return s.broadPhaseCues(target)
	}
	return s.broadPhaseLinearScan(target)
}

// broadPhaseCues picks the last cue point with time <= target (or the
// first cue point if every one exceeds target), then resolves its cluster
// position, adjusting current_cluster_timestamp from the cluster's own
// Timestamp child when a RelativePosition is available.
func (s *seekEngine) broadPhaseCues(target uint64) (uint64, error) {
	i := sort.Search(len(s.cues), func(i int) bool {
		return s.cues[i].Time > target
	})
	idx := i - 1
	if idx < 0 {
		idx = 0
	}
	cue := s.cues[idx]
	if len(cue.Positions) == 0 {
		return s.cursor.pos, nil
	}
	pos := cue.Positions[0]

	clusterOffset := pos.ClusterPosition
	tag, size, err := readElementHeader(s.r, &clusterOffset)
	if err != nil {
		return 0, err
	}
	if tag != TagCluster {
		return clusterOffset, nil
	}
	dataOffset, err := position(s.r)
	if err != nil {
		return 0, err
	}

	if pos.RelativePosition != nil {
		fields, err := collectChildren(s.r, dataOffset, size)
		if err != nil {
			return 0, err
		}
		ts, err := findUnsignedOr(fields, TagTimestamp, 0)
		if err != nil {
			return 0, err
		}
		s.cursor.currentClusterTimestamp = ts
		return dataOffset + *pos.RelativePosition, nil
	}
	return pos.ClusterPosition, nil
}

// broadPhaseLinearScan walks top-level Cluster elements comparing each
// one's Timestamp child to target, per spec.md's last/current/next rule.
func (s *seekEngine) broadPhaseLinearScan(target uint64) (uint64, error) {
	pos := s.segment.Offset
	var last uint64 = s.segment.Offset
	first := true

	for {
		tag, size, err := readElementHeader(s.r, &pos)
		if err != nil {
			if isIOEOF(err) {
				return last, nil
			}
			return 0, err
		}
		dataOffset, err := position(s.r)
		if err != nil {
			return 0, err
		}

		if tag != TagCluster {
			if size == unknownSize {
				return last, nil
			}
			pos = dataOffset + size
			continue
		}

		clusterHeaderOffset := pos
		if size == unknownSize {
			if first {
				return clusterHeaderOffset, nil
			}
			return last, nil
		}

		fields, err := collectChildren(s.r, dataOffset, size)
		if err != nil {
			return 0, err
		}
		ts, err := findUnsignedOr(fields, TagTimestamp, 0)
		if err != nil {
			return 0, err
		}

		next := dataOffset + size
		switch {
		case ts < target:
			last = clusterHeaderOffset
			pos = next
			first = false
			continue
		case ts > target:
			return last, nil
		default:
			return clusterHeaderOffset, nil
		}
	}
}

// narrowPhase walks elements from broadOffset like the frame cursor does,
// probing each block's timestamp without decoding lacing. The first block
// whose timestamp is >= target is rewound to and left for the next
// next_frame call to reparse. Its descent stack mirrors cursor.go's: each
// Cluster/BlockGroup entry pushes the enclosing scope's bound so pos is
// correctly re-bounded against the parent once the child scope is
// exhausted, rather than drifting past it into the next sibling.
func (s *seekEngine) narrowPhase(broadOffset, target uint64) error {
	clusterTimestamp := s.cursor.currentClusterTimestamp
	s.cursor.resetTo(broadOffset)
	s.cursor.currentClusterTimestamp = clusterTimestamp
	pos := broadOffset
	end := uint64(unknownSize)
	var stack []scopeFrame

	for {
		for len(stack) > 0 && end != unknownSize && pos >= end {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			end = top.end
		}

		headerOffset := pos
		tag, size, err := readElementHeader(s.r, &pos)
		if err != nil {
			if isIOEOF(err) {
				s.cursor.pos = headerOffset
				return nil
			}
			return err
		}
		dataOffset, err := position(s.r)
		if err != nil {
			return err
		}

		switch tag {
		case TagCluster, TagBlockGroup:
			stack = append(stack, scopeFrame{end: end})
			pos = dataOffset
			if size == unknownSize {
				end = unknownSize
			} else {
				end = dataOffset + size
			}
			continue

		case TagTimestamp:
			v, err := parseUnsigned(s.r, size)
			if err != nil {
				return err
			}
			s.cursor.currentClusterTimestamp = v
			pos = dataOffset + size

		case TagSimpleBlock, TagBlock:
			if err := seekTo(s.r, dataOffset); err != nil {
				return err
			}
			ts, err := probeBlockTimestamp(s.r, s.cursor.currentClusterTimestamp)
			if err != nil {
				return err
			}
			if ts < target {
				pos = dataOffset + size
				continue
			}
			s.cursor.pos = headerOffset
			return nil

		default:
			if size == unknownSize {
				pos = dataOffset
			} else {
				pos = dataOffset + size
			}
		}
	}
}
