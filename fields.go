package matroska

import "io"

// collectChildren walks the children of a master element whose payload
// spans [offset, offset+size), leaving the reader past the master's payload
// on return. Unrecognized elements (TagUnknown) are read for their size
// (so the walk can advance past them) but dropped from the result, matching
// the Rust reference's collect_children.
//
// Collection stops early at the first child with an unknown size: the
// number of bytes it occupies can't be known without decoding its own
// children, so nothing past it can be reliably located. Matroska in
// practice only ever places an unknown-size element (Segment, occasionally
// Cluster) as the outermost element of a nesting level, so this is not a
// practical limitation.
func collectChildren(r byteReader, offset, size uint64) ([]Field, error) {
	children := make([]Field, 0, 16)
	if err := seekTo(r, offset); err != nil {
		return nil, err
	}
	end := offset + size

	for {
		pos, err := position(r)
		if err != nil {
			return nil, err
		}
		if size != unknownSize && pos >= end {
			break
		}

		field, err := nextElement(r)
		if err != nil {
			return nil, err
		}

		if field.Kind == wireMaster {
			if field.Loc.Size == unknownSize {
				break
			}
		}

		if field.Tag != TagUnknown {
			children = append(children, field)
		}
	}
	return children, nil
}

func find(fields []Field, tag ElementID) (Field, bool) {
	for _, f := range fields {
		if f.Tag == tag {
			return f, true
		}
	}
	return Field{}, false
}

func findAll(fields []Field, tag ElementID) []Field {
	var out []Field
	for _, f := range fields {
		if f.Tag == tag {
			out = append(out, f)
		}
	}
	return out
}

func findLocation(fields []Field, tag ElementID) (Location, bool, error) {
	f, ok := find(fields, tag)
	if !ok {
		return Location{}, false, nil
	}
	if f.Kind != wireMaster {
		return Location{}, false, errUnexpectedDataType()
	}
	return f.Loc, true, nil
}

func findUnsigned(fields []Field, tag ElementID) (uint64, error) {
	v, ok, err := tryFindUnsigned(fields, tag)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errElementNotFound(tag)
	}
	return v, nil
}

func findUnsignedOr(fields []Field, tag ElementID, def uint64) (uint64, error) {
	v, ok, err := tryFindUnsigned(fields, tag)
	if err != nil {
		return 0, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

func tryFindUnsigned(fields []Field, tag ElementID) (uint64, bool, error) {
	f, ok := find(fields, tag)
	if !ok {
		return 0, false, nil
	}
	if f.Kind != wireUnsigned {
		return 0, false, errUnexpectedDataType()
	}
	return f.Unsigned, true, nil
}

// findCustomType resolves a field as an unsigned integer and converts it
// through `conv`, for fields whose wire representation is an enum encoded
// as a small unsigned integer (TrackType, DisplayUnit, ...).
func findCustomType[T any](fields []Field, tag ElementID, conv func(uint64) T) (T, error) {
	var zero T
	v, err := findUnsigned(fields, tag)
	if err != nil {
		return zero, err
	}
	return conv(v), nil
}

func findCustomTypeOr[T any](fields []Field, tag ElementID, def T, conv func(uint64) T) (T, error) {
	v, ok, err := tryFindUnsigned(fields, tag)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	return conv(v), nil
}

func findBoolOr(fields []Field, tag ElementID, def bool) (bool, error) {
	v, ok, err := tryFindUnsigned(fields, tag)
	if err != nil {
		return false, err
	}
	if !ok {
		return def, nil
	}
	return v != 0, nil
}

func tryFindBool(fields []Field, tag ElementID) (bool, bool, error) {
	v, ok, err := tryFindUnsigned(fields, tag)
	if err != nil || !ok {
		return false, ok, err
	}
	return v != 0, true, nil
}

// findNonzero requires the field to be present and decode to a non-zero
// unsigned integer, mirroring the Rust reference's NonZeroU64 fields
// (TrackNumber, TrackUID, TimestampScale, ...).
func findNonzero(fields []Field, tag ElementID) (uint64, error) {
	v, err := findUnsigned(fields, tag)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errNonZeroIsZero(tag)
	}
	return v, nil
}

func findNonzeroOr(fields []Field, tag ElementID, def uint64) (uint64, error) {
	v, err := findUnsignedOr(fields, tag, def)
	if err != nil {
		return 0, err
	}
	if v == 0 {
		return 0, errNonZeroIsZero(tag)
	}
	return v, nil
}

func findFloatOr(fields []Field, tag ElementID, def float64) (float64, error) {
	f, ok := find(fields, tag)
	if !ok {
		return def, nil
	}
	if f.Kind != wireFloat {
		return 0, errUnexpectedDataType()
	}
	return f.Float, nil
}

func tryFindFloat(fields []Field, tag ElementID) (float64, bool, error) {
	f, ok := find(fields, tag)
	if !ok {
		return 0, false, nil
	}
	if f.Kind != wireFloat {
		return 0, false, errUnexpectedDataType()
	}
	return f.Float, true, nil
}

func findString(fields []Field, tag ElementID) (string, error) {
	v, ok, err := tryFindString(fields, tag)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errElementNotFound(tag)
	}
	return v, nil
}

func tryFindString(fields []Field, tag ElementID) (string, bool, error) {
	f, ok := find(fields, tag)
	if !ok {
		return "", false, nil
	}
	if f.Kind != wireString {
		return "", false, errUnexpectedDataType()
	}
	return f.Str, true, nil
}

// findBinary reads a binary/master-typed field's full payload from `r`
// using its recorded Location, for fields such as CodecPrivate, SegmentUID
// or SimpleBlock whose bytes are only materialized on demand.
func findBinary(r byteReader, fields []Field, tag ElementID) ([]byte, bool, error) {
	f, ok := find(fields, tag)
	if !ok {
		return nil, false, nil
	}
	if f.Kind != wireMaster {
		return nil, false, errUnexpectedDataType()
	}
	data, err := readLocationBytes(r, f.Loc)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func readLocationBytes(r byteReader, loc Location) ([]byte, error) {
	if err := seekTo(r, loc.Offset); err != nil {
		return nil, err
	}
	buf := make([]byte, loc.Size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, wrapIO(err)
	}
	return buf, nil
}

func tryFindDate(fields []Field, tag ElementID) (int64, bool, error) {
	f, ok := find(fields, tag)
	if !ok {
		return 0, false, nil
	}
	if f.Kind != wireDate {
		return 0, false, errUnexpectedDataType()
	}
	return f.Date, true, nil
}
