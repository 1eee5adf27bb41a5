package matroska

import "fmt"

// Kind classifies a DemuxError into the taxonomy a caller can switch on
// with errors.Is, without needing to match error strings.
type Kind int

const (
	// ErrIO wraps an underlying read or seek failure.
	ErrIO Kind = iota
	// ErrInvalidEbmlElementID means no VINT marker bit could be found while
	// decoding an element ID.
	ErrInvalidEbmlElementID
	// ErrInvalidEbmlDataSize means no VINT marker bit could be found while
	// decoding a data size.
	ErrInvalidEbmlDataSize
	// ErrWrongFloatSize means a Float element's payload was not 0, 4, or 8 bytes.
	ErrWrongFloatSize
	// ErrWrongIntegerSize means an Unsigned/Signed element's payload exceeded 8 bytes.
	ErrWrongIntegerSize
	// ErrWrongDateSize means a Date element's payload exceeded 8 bytes.
	ErrWrongDateSize
	// ErrUnsupportedDocType means the EBML header's DocType was neither matroska nor webm.
	ErrUnsupportedDocType
	// ErrUnsupportedDocTypeReadVersion means DocTypeReadVersion exceeded what this demuxer supports.
	ErrUnsupportedDocTypeReadVersion
	// ErrInvalidEbmlHeader means an EBML header field violated one of the header invariants.
	ErrInvalidEbmlHeader
	// ErrUnexpectedElement means a required top-level element (e.g. Segment) was not found in its place.
	ErrUnexpectedElement
	// ErrUnexpectedDataType means a field was queried as one wire type but stored as another.
	ErrUnexpectedDataType
	// ErrElementNotFound means a required field was absent from a children list.
	ErrElementNotFound
	// ErrCantFindCluster means segment bootstrap exhausted every fallback without locating a Cluster.
	ErrCantFindCluster
	// ErrNonZeroValueIsZero means a field required to be non-zero decoded as zero.
	ErrNonZeroValueIsZero
	// ErrPositiveValueIsNotPositive means a field required to be non-negative decoded as negative.
	ErrPositiveValueIsNotPositive
	// ErrTruncatedBlock means a Block/SimpleBlock's header fields consumed more
	// bytes than its declared size, so no frame size can be deduced by subtraction.
	ErrTruncatedBlock
)

func (k Kind) String() string {
	switch k {
	case ErrIO:
		return "io"
	case ErrInvalidEbmlElementID:
		return "invalid ebml element id"
	case ErrInvalidEbmlDataSize:
		return "invalid ebml data size"
	case ErrWrongFloatSize:
		return "wrong float size"
	case ErrWrongIntegerSize:
		return "wrong integer size"
	case ErrWrongDateSize:
		return "wrong date size"
	case ErrUnsupportedDocType:
		return "unsupported doc type"
	case ErrUnsupportedDocTypeReadVersion:
		return "unsupported doc type read version"
	case ErrInvalidEbmlHeader:
		return "invalid ebml header"
	case ErrUnexpectedElement:
		return "unexpected element"
	case ErrUnexpectedDataType:
		return "unexpected data type"
	case ErrElementNotFound:
		return "element not found"
	case ErrCantFindCluster:
		return "can't find cluster"
	case ErrNonZeroValueIsZero:
		return "non-zero value is zero"
	case ErrPositiveValueIsNotPositive:
		return "positive value is not positive"
	case ErrTruncatedBlock:
		return "truncated block"
	default:
		return "unknown"
	}
}

// DemuxError is the single error type surfaced across the package's public
// API. Kind lets callers branch with errors.Is(err, matroska.KindError(X)),
// which the Is method below matches on Kind alone.
type DemuxError struct {
	Kind    Kind
	Tag     ElementID // zero value (TagUnknown) when not tag-specific
	Size    uint64    // populated for WrongFloatSize/WrongIntegerSize/WrongDateSize
	Detail  string
	Wanted  ElementID // populated for UnexpectedElement
	Found   ElementID
	Wrapped error
}

func (e *DemuxError) Error() string {
	switch e.Kind {
	case ErrIO:
		return fmt.Sprintf("matroska: i/o error: %v", e.Wrapped)
	case ErrWrongFloatSize, ErrWrongIntegerSize, ErrWrongDateSize:
		return fmt.Sprintf("matroska: %s: %d bytes", e.Kind, e.Size)
	case ErrUnsupportedDocType:
		return fmt.Sprintf("matroska: unsupported doc type %q", e.Detail)
	case ErrUnsupportedDocTypeReadVersion:
		return fmt.Sprintf("matroska: unsupported doc type read version: %s", e.Detail)
	case ErrInvalidEbmlHeader:
		return fmt.Sprintf("matroska: invalid ebml header: %s", e.Detail)
	case ErrUnexpectedElement:
		return fmt.Sprintf("matroska: expected element %v, found %v", e.Wanted, e.Found)
	case ErrElementNotFound:
		return fmt.Sprintf("matroska: element not found: %v", e.Tag)
	case ErrNonZeroValueIsZero:
		return fmt.Sprintf("matroska: value for %v must be non-zero", e.Tag)
	default:
		return fmt.Sprintf("matroska: %s", e.Kind)
	}
}

func (e *DemuxError) Unwrap() error { return e.Wrapped }

// Is lets callers write errors.Is(err, matroska.KindError(matroska.ErrElementNotFound))
// against a bare Kind sentinel without matching Tag/Size/Detail fields.
func (e *DemuxError) Is(target error) bool {
	other, ok := target.(*DemuxError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// KindError builds a bare sentinel usable with errors.Is to test only the
// Kind of a returned DemuxError, e.g. errors.Is(err, matroska.KindError(matroska.ErrElementNotFound)).
func KindError(k Kind) error { return &DemuxError{Kind: k} }

func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &DemuxError{Kind: ErrIO, Wrapped: err}
}

func errInvalidElementID() error {
	return &DemuxError{Kind: ErrInvalidEbmlElementID}
}

func errInvalidDataSize() error {
	return &DemuxError{Kind: ErrInvalidEbmlDataSize}
}

func errWrongFloatSize(n uint64) error {
	return &DemuxError{Kind: ErrWrongFloatSize, Size: n}
}

func errWrongIntegerSize(n uint64) error {
	return &DemuxError{Kind: ErrWrongIntegerSize, Size: n}
}

func errWrongDateSize(n uint64) error {
	return &DemuxError{Kind: ErrWrongDateSize, Size: n}
}

func errUnsupportedDocType(docType string) error {
	return &DemuxError{Kind: ErrUnsupportedDocType, Detail: docType}
}

func errInvalidHeader(detail string) error {
	return &DemuxError{Kind: ErrInvalidEbmlHeader, Detail: detail}
}

func errUnexpectedElement(wanted, found ElementID) error {
	return &DemuxError{Kind: ErrUnexpectedElement, Wanted: wanted, Found: found}
}

func errUnexpectedDataType() error {
	return &DemuxError{Kind: ErrUnexpectedDataType}
}

func errElementNotFound(tag ElementID) error {
	return &DemuxError{Kind: ErrElementNotFound, Tag: tag}
}

func errCantFindCluster() error {
	return &DemuxError{Kind: ErrCantFindCluster}
}

func errNonZeroIsZero(tag ElementID) error {
	return &DemuxError{Kind: ErrNonZeroValueIsZero, Tag: tag}
}

func errPositiveNotPositive() error {
	return &DemuxError{Kind: ErrPositiveValueIsNotPositive}
}

func errTruncatedBlock() error {
	return &DemuxError{Kind: ErrTruncatedBlock}
}
