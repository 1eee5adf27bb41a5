package matroska

import "github.com/google/uuid"

// EBMLHeader is the bound form of the file's leading EBML master element.
type EBMLHeader struct {
	Version          uint64
	ReadVersion      uint64
	MaxIDLength      uint64
	MaxSizeLength    uint64
	DocType          string
	DocTypeVersion   uint64
	DocTypeReadVersion uint64
}

func bindEBMLHeader(fields []Field) (EBMLHeader, error) {
	h := EBMLHeader{}
	var err error
	if h.Version, err = findUnsignedOr(fields, TagEbmlVersion, 1); err != nil {
		return h, err
	}
	if h.ReadVersion, err = findUnsignedOr(fields, TagEbmlReadVersion, 1); err != nil {
		return h, err
	}
	if h.MaxIDLength, err = findUnsignedOr(fields, TagEbmlMaxIDLength, 4); err != nil {
		return h, err
	}
	if h.MaxSizeLength, err = findUnsignedOr(fields, TagEbmlMaxSizeLength, 8); err != nil {
		return h, err
	}
	if h.DocType, err = findString(fields, TagDocType); err != nil {
		return h, err
	}
	if h.DocTypeVersion, err = findUnsignedOr(fields, TagDocTypeVersion, 1); err != nil {
		return h, err
	}
	if h.DocTypeReadVersion, err = findUnsignedOr(fields, TagDocTypeReadVersion, 1); err != nil {
		return h, err
	}

	h.DocType = trimNulPad(h.DocType)
	if h.DocType != "matroska" && h.DocType != "webm" {
		return h, errUnsupportedDocType(h.DocType)
	}
	if h.DocTypeReadVersion >= 4 {
		return h, errInvalidHeader("doc_type_read_version must be < 4")
	}
	if h.MaxIDLength > 4 {
		return h, errInvalidHeader("max_id_length must be <= 4")
	}
	if h.MaxSizeLength > 8 {
		return h, errInvalidHeader("max_size_length must be <= 8")
	}
	return h, nil
}

func trimNulPad(s string) string {
	i := len(s)
	for i > 0 && s[i-1] == 0 {
		i--
	}
	return s[:i]
}

// SegmentInfo is the bound form of the Segment's Info master element.
type SegmentInfo struct {
	TimestampScale uint64
	Duration       *float64
	DateUTC        *int64
	Title          string
	MuxingApp      string
	WritingApp     string
}

func bindSegmentInfo(fields []Field) (SegmentInfo, error) {
	info := SegmentInfo{}
	var err error
	if info.TimestampScale, err = findNonzeroOr(fields, TagTimestampScale, 1_000_000); err != nil {
		return info, err
	}
	if d, ok, err := tryFindFloat(fields, TagDuration); err != nil {
		return info, err
	} else if ok {
		if d < 0 {
			return info, errPositiveNotPositive()
		}
		info.Duration = &d
	}
	if d, ok, err := tryFindDate(fields, TagDateUTC); err != nil {
		return info, err
	} else if ok {
		info.DateUTC = &d
	}
	if info.Title, err = tryFindStringOr(fields, TagTitle, ""); err != nil {
		return info, err
	}
	if info.MuxingApp, err = tryFindStringOr(fields, TagMuxingApp, ""); err != nil {
		return info, err
	}
	if info.WritingApp, err = tryFindStringOr(fields, TagWritingApp, ""); err != nil {
		return info, err
	}
	return info, nil
}

func tryFindStringOr(fields []Field, tag ElementID, def string) (string, error) {
	v, ok, err := tryFindString(fields, tag)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Colour is the bound form of a Video track's Colour master element.
type Colour struct {
	MatrixCoefficients     MatrixCoefficients
	BitsPerChannel         uint64
	ChromaSubsamplingHorz  uint64
	ChromaSubsamplingVert  uint64
	CbSubsamplingHorz      uint64
	CbSubsamplingVert      uint64
	ChromaSitingHorz       ChromaSiting
	ChromaSitingVert       ChromaSiting
	Range                  Range
	TransferCharacteristics TransferCharacteristics
	Primaries              Primaries
	MaxCLL                 uint64
	MaxFALL                uint64
	MasteringMetadata      *MasteringMetadata
}

// MasteringMetadata is the bound form of a Colour's MasteringMetadata child.
type MasteringMetadata struct {
	PrimaryRChromaticityX, PrimaryRChromaticityY     float64
	PrimaryGChromaticityX, PrimaryGChromaticityY     float64
	PrimaryBChromaticityX, PrimaryBChromaticityY     float64
	WhitePointChromaticityX, WhitePointChromaticityY float64
	LuminanceMax, LuminanceMin                       float64
}

func bindColour(r byteReader, loc Location) (Colour, error) {
	fields, err := collectChildren(r, loc.Offset, loc.Size)
	if err != nil {
		return Colour{}, err
	}
	c := Colour{}
	if c.MatrixCoefficients, err = findCustomTypeOr(fields, TagMatrixCoefficients, MatrixCoefficientsUnknown, matrixCoefficientsFromUint); err != nil {
		return c, err
	}
	if c.BitsPerChannel, err = findUnsignedOr(fields, TagBitsPerChannel, 0); err != nil {
		return c, err
	}
	if c.ChromaSubsamplingHorz, err = findUnsignedOr(fields, TagChromaSubsamplingHorz, 0); err != nil {
		return c, err
	}
	if c.ChromaSubsamplingVert, err = findUnsignedOr(fields, TagChromaSubsamplingVert, 0); err != nil {
		return c, err
	}
	if c.CbSubsamplingHorz, err = findUnsignedOr(fields, TagCbSubsamplingHorz, 0); err != nil {
		return c, err
	}
	if c.CbSubsamplingVert, err = findUnsignedOr(fields, TagCbSubsamplingVert, 0); err != nil {
		return c, err
	}
	if c.ChromaSitingHorz, err = findCustomTypeOr(fields, TagChromaSitingHorz, ChromaSitingUnknown, chromaSitingFromUint); err != nil {
		return c, err
	}
	if c.ChromaSitingVert, err = findCustomTypeOr(fields, TagChromaSitingVert, ChromaSitingUnknown, chromaSitingFromUint); err != nil {
		return c, err
	}
	if c.Range, err = findCustomTypeOr(fields, TagRange, RangeUnknown, rangeFromUint); err != nil {
		return c, err
	}
	if c.TransferCharacteristics, err = findCustomTypeOr(fields, TagTransferCharacteristics, TransferCharacteristicsUnknown, transferCharacteristicsFromUint); err != nil {
		return c, err
	}
	if c.Primaries, err = findCustomTypeOr(fields, TagPrimaries, PrimariesUnknown, primariesFromUint); err != nil {
		return c, err
	}
	if c.MaxCLL, err = findUnsignedOr(fields, TagMaxCll, 0); err != nil {
		return c, err
	}
	if c.MaxFALL, err = findUnsignedOr(fields, TagMaxFall, 0); err != nil {
		return c, err
	}
	if loc, ok, err := findLocation(fields, TagMasteringMetadata); err != nil {
		return c, err
	} else if ok {
		mm, err := bindMasteringMetadata(r, loc)
		if err != nil {
			return c, err
		}
		c.MasteringMetadata = &mm
	}
	return c, nil
}

func bindMasteringMetadata(r byteReader, loc Location) (MasteringMetadata, error) {
	fields, err := collectChildren(r, loc.Offset, loc.Size)
	if err != nil {
		return MasteringMetadata{}, err
	}
	mm := MasteringMetadata{}
	for _, pair := range []struct {
		tag ElementID
		out *float64
	}{
		{TagPrimaryRChromaticityX, &mm.PrimaryRChromaticityX},
		{TagPrimaryRChromaticityY, &mm.PrimaryRChromaticityY},
		{TagPrimaryGChromaticityX, &mm.PrimaryGChromaticityX},
		{TagPrimaryGChromaticityY, &mm.PrimaryGChromaticityY},
		{TagPrimaryBChromaticityX, &mm.PrimaryBChromaticityX},
		{TagPrimaryBChromaticityY, &mm.PrimaryBChromaticityY},
		{TagWhitePointChromaticityX, &mm.WhitePointChromaticityX},
		{TagWhitePointChromaticityY, &mm.WhitePointChromaticityY},
		{TagLuminanceMax, &mm.LuminanceMax},
		{TagLuminanceMin, &mm.LuminanceMin},
	} {
		v, err := findFloatOr(fields, pair.tag, 0)
		if err != nil {
			return mm, err
		}
		*pair.out = v
	}
	return mm, nil
}

// Video is the bound form of a TrackEntry's Video master element.
type Video struct {
	FlagInterlaced  FlagInterlaced
	StereoMode      StereoMode
	AlphaMode       uint64
	PixelWidth      uint64
	PixelHeight     uint64
	PixelCropBottom uint64
	PixelCropTop    uint64
	PixelCropLeft   uint64
	PixelCropRight  uint64
	DisplayWidth    uint64
	DisplayHeight   uint64
	DisplayUnit     DisplayUnit
	AspectRatioType AspectRatioType
	Colour          *Colour
}

func bindVideo(r byteReader, loc Location) (Video, error) {
	fields, err := collectChildren(r, loc.Offset, loc.Size)
	if err != nil {
		return Video{}, err
	}
	v := Video{}
	if v.FlagInterlaced, err = findCustomTypeOr(fields, TagFlagInterlaced, FlagInterlacedUnknown, flagInterlacedFromUint); err != nil {
		return v, err
	}
	if v.StereoMode, err = findCustomTypeOr(fields, TagStereoMode, StereoModeUnknown, stereoModeFromUint); err != nil {
		return v, err
	}
	if v.AlphaMode, err = findUnsignedOr(fields, TagAlphaMode, 0); err != nil {
		return v, err
	}
	if v.PixelWidth, err = findNonzero(fields, TagPixelWidth); err != nil {
		return v, err
	}
	if v.PixelHeight, err = findNonzero(fields, TagPixelHeight); err != nil {
		return v, err
	}
	if v.PixelCropBottom, err = findUnsignedOr(fields, TagPixelCropBottom, 0); err != nil {
		return v, err
	}
	if v.PixelCropTop, err = findUnsignedOr(fields, TagPixelCropTop, 0); err != nil {
		return v, err
	}
	if v.PixelCropLeft, err = findUnsignedOr(fields, TagPixelCropLeft, 0); err != nil {
		return v, err
	}
	if v.PixelCropRight, err = findUnsignedOr(fields, TagPixelCropRight, 0); err != nil {
		return v, err
	}
	if v.DisplayWidth, err = findUnsignedOr(fields, TagDisplayWidth, v.PixelWidth); err != nil {
		return v, err
	}
	if v.DisplayHeight, err = findUnsignedOr(fields, TagDisplayHeight, v.PixelHeight); err != nil {
		return v, err
	}
	if v.DisplayUnit, err = findCustomTypeOr(fields, TagDisplayUnit, DisplayUnitPixels, displayUnitFromUint); err != nil {
		return v, err
	}
	if v.AspectRatioType, err = findCustomTypeOr(fields, TagAspectRatioType, AspectRatioTypeUnknown, aspectRatioTypeFromUint); err != nil {
		return v, err
	}
	if loc, ok, err := findLocation(fields, TagColour); err != nil {
		return v, err
	} else if ok {
		c, err := bindColour(r, loc)
		if err != nil {
			return v, err
		}
		v.Colour = &c
	}
	return v, nil
}

// Audio is the bound form of a TrackEntry's Audio master element.
type Audio struct {
	SamplingFrequency       float64
	OutputSamplingFrequency float64
	Channels                uint64
	BitDepth                uint64
}

func bindAudio(fields []Field) (Audio, error) {
	a := Audio{}
	var err error
	if a.SamplingFrequency, err = findFloatOr(fields, TagSamplingFrequency, 8000); err != nil {
		return a, err
	}
	if a.SamplingFrequency < 0 {
		return a, errPositiveNotPositive()
	}
	if a.OutputSamplingFrequency, err = findFloatOr(fields, TagOutputSamplingFrequency, a.SamplingFrequency); err != nil {
		return a, err
	}
	if a.Channels, err = findNonzeroOr(fields, TagChannels, 1); err != nil {
		return a, err
	}
	if a.BitDepth, err = findUnsignedOr(fields, TagBitDepth, 0); err != nil {
		return a, err
	}
	return a, nil
}

// ContentEncAesSettings is the bound form of a ContentEncryption's AES settings child.
type ContentEncAesSettings struct {
	CipherMode AesSettingsCipherMode
}

// ContentEncryption is the bound form of a ContentEncoding's encryption settings.
type ContentEncryption struct {
	Algo        ContentEncAlgo
	KeyID       []byte
	AesSettings *ContentEncAesSettings
}

// ContentEncoding is the bound form of one entry in a track's ContentEncodings list.
type ContentEncoding struct {
	Order      uint64
	Scope      ContentEncodingScope
	Type       ContentEncodingType
	Encryption *ContentEncryption
}

func bindContentEncoding(r byteReader, fields []Field) (ContentEncoding, error) {
	ce := ContentEncoding{}
	var err error
	if ce.Order, err = findUnsignedOr(fields, TagContentEncodingOrder, 0); err != nil {
		return ce, err
	}
	if ce.Scope, err = findCustomTypeOr(fields, TagContentEncodingScope, ContentEncodingScopeAllFrameContent, contentEncodingScopeFromUint); err != nil {
		return ce, err
	}
	if ce.Type, err = findCustomTypeOr(fields, TagContentEncodingType, ContentEncodingTypeCompression, contentEncodingTypeFromUint); err != nil {
		return ce, err
	}
	if loc, ok, err := findLocation(fields, TagContentEncryption); err != nil {
		return ce, err
	} else if ok {
		encFields, err := collectChildren(r, loc.Offset, loc.Size)
		if err != nil {
			return ce, err
		}
		enc := ContentEncryption{}
		if enc.Algo, err = findCustomTypeOr(encFields, TagContentEncAlgo, ContentEncAlgoNotEncrypted, contentEncAlgoFromUint); err != nil {
			return ce, err
		}
		if data, ok, err := findBinary(r, encFields, TagContentEncKeyID); err != nil {
			return ce, err
		} else if ok {
			enc.KeyID = data
		}
		if loc, ok, err := findLocation(encFields, TagContentEncAesSettings); err != nil {
			return ce, err
		} else if ok {
			aesFields, err := collectChildren(r, loc.Offset, loc.Size)
			if err != nil {
				return ce, err
			}
			mode, err := findCustomTypeOr(aesFields, TagAesSettingsCipherMode, AesSettingsCipherModeCTR, aesSettingsCipherModeFromUint)
			if err != nil {
				return ce, err
			}
			enc.AesSettings = &ContentEncAesSettings{CipherMode: mode}
		}
		ce.Encryption = &enc
	}
	return ce, nil
}

// TrackEntry is the bound form of one Tracks/TrackEntry master element.
type TrackEntry struct {
	TrackNumber          uint64
	TrackUID             uint64
	TrackType            TrackType
	FlagEnabled          bool
	FlagDefault          bool
	FlagForced           bool
	FlagHearingImpaired  bool
	FlagVisualImpaired   bool
	FlagTextDescriptions bool
	FlagOriginal         bool
	FlagCommentary       bool
	FlagLacing           bool
	DefaultDuration      uint64
	Name                 string
	Language             string
	CodecID              string
	CodecPrivate         []byte
	CodecName            string
	CodecDelay           uint64
	SeekPreRoll          uint64
	Video                *Video
	Audio                *Audio
	ContentEncodings     []ContentEncoding
}

func bindTrackEntry(r byteReader, fields []Field) (TrackEntry, error) {
	t := TrackEntry{}
	var err error
	if t.TrackNumber, err = findNonzero(fields, TagTrackNumber); err != nil {
		return t, err
	}
	if t.TrackUID, err = findNonzero(fields, TagTrackUID); err != nil {
		return t, err
	}
	if t.TrackType, err = findCustomType(fields, TagTrackType, trackTypeFromUint); err != nil {
		return t, err
	}
	if t.FlagEnabled, err = findBoolOr(fields, TagFlagEnabled, true); err != nil {
		return t, err
	}
	if t.FlagDefault, err = findBoolOr(fields, TagFlagDefault, true); err != nil {
		return t, err
	}
	if t.FlagForced, err = findBoolOr(fields, TagFlagForced, false); err != nil {
		return t, err
	}
	if t.FlagHearingImpaired, err = findBoolOr(fields, TagFlagHearingImpaired, false); err != nil {
		return t, err
	}
	if t.FlagVisualImpaired, err = findBoolOr(fields, TagFlagVisualImpaired, false); err != nil {
		return t, err
	}
	if t.FlagTextDescriptions, err = findBoolOr(fields, TagFlagTextDescriptions, false); err != nil {
		return t, err
	}
	if t.FlagOriginal, err = findBoolOr(fields, TagFlagOriginal, false); err != nil {
		return t, err
	}
	if t.FlagCommentary, err = findBoolOr(fields, TagFlagCommentary, false); err != nil {
		return t, err
	}
	if t.FlagLacing, err = findBoolOr(fields, TagFlagLacing, false); err != nil {
		return t, err
	}
	if t.DefaultDuration, err = findUnsignedOr(fields, TagDefaultDuration, 0); err != nil {
		return t, err
	}
	if t.Name, err = tryFindStringOr(fields, TagName, ""); err != nil {
		return t, err
	}
	if t.Language, err = tryFindStringOr(fields, TagLanguage, "eng"); err != nil {
		return t, err
	}
	if t.CodecID, err = findString(fields, TagCodecID); err != nil {
		return t, err
	}
	if data, ok, err := findBinary(r, fields, TagCodecPrivate); err != nil {
		return t, err
	} else if ok {
		t.CodecPrivate = data
	}
	if t.CodecName, err = tryFindStringOr(fields, TagCodecName, ""); err != nil {
		return t, err
	}
	if t.CodecDelay, err = findUnsignedOr(fields, TagCodecDelay, 0); err != nil {
		return t, err
	}
	if t.SeekPreRoll, err = findUnsignedOr(fields, TagSeekPreRoll, 0); err != nil {
		return t, err
	}
	if loc, ok, err := findLocation(fields, TagVideo); err != nil {
		return t, err
	} else if ok {
		v, err := bindVideo(r, loc)
		if err != nil {
			return t, err
		}
		t.Video = &v
	}
	if loc, ok, err := findLocation(fields, TagAudio); err != nil {
		return t, err
	} else if ok {
		audioFields, err := collectChildren(r, loc.Offset, loc.Size)
		if err != nil {
			return t, err
		}
		a, err := bindAudio(audioFields)
		if err != nil {
			return t, err
		}
		t.Audio = &a
	}
	if loc, ok, err := findLocation(fields, TagContentEncodings); err != nil {
		return t, err
	} else if ok {
		ceFields, err := collectChildren(r, loc.Offset, loc.Size)
		if err != nil {
			return t, err
		}
		for _, f := range findAll(ceFields, TagContentEncoding) {
			childFields, err := collectChildren(r, f.Loc.Offset, f.Loc.Size)
			if err != nil {
				return t, err
			}
			ce, err := bindContentEncoding(r, childFields)
			if err != nil {
				return t, err
			}
			t.ContentEncodings = append(t.ContentEncodings, ce)
		}
	}
	return t, nil
}

// CueTrackPosition is one TrackPositions entry of a CuePoint.
type CueTrackPosition struct {
	Track            uint64
	ClusterPosition  uint64
	RelativePosition *uint64
	Duration         *uint64
	BlockNumber      *uint64
}

// CuePoint is the bound form of one Cues/CuePoint master element.
type CuePoint struct {
	Time      uint64
	Positions []CueTrackPosition
}

func bindCuePoint(r byteReader, fields []Field) (CuePoint, error) {
	cp := CuePoint{}
	var err error
	if cp.Time, err = findUnsigned(fields, TagCueTime); err != nil {
		return cp, err
	}
	for _, f := range findAll(fields, TagCueTrackPositions) {
		posFields, err := collectChildren(r, f.Loc.Offset, f.Loc.Size)
		if err != nil {
			return cp, err
		}
		pos := CueTrackPosition{}
		if pos.Track, err = findUnsigned(posFields, TagCueTrack); err != nil {
			return cp, err
		}
		if pos.ClusterPosition, err = findUnsigned(posFields, TagCueClusterPosition); err != nil {
			return cp, err
		}
		if v, ok, err := tryFindUnsigned(posFields, TagCueRelativePosition); err != nil {
			return cp, err
		} else if ok {
			pos.RelativePosition = &v
		}
		if v, ok, err := tryFindUnsigned(posFields, TagCueDuration); err != nil {
			return cp, err
		} else if ok {
			pos.Duration = &v
		}
		if v, ok, err := tryFindUnsigned(posFields, TagCueBlockNumber); err != nil {
			return cp, err
		} else if ok {
			pos.BlockNumber = &v
		}
		cp.Positions = append(cp.Positions, pos)
	}
	return cp, nil
}

// ChapterDisplay is the bound form of one ChapterAtom/ChapterDisplay entry.
type ChapterDisplay struct {
	String   string
	Language string
	Country  string
}

// ChapterAtom is the bound form of one EditionEntry/ChapterAtom entry.
type ChapterAtom struct {
	UID       uint64
	TimeStart uint64
	TimeEnd   *uint64
	Displays  []ChapterDisplay
}

// EditionEntry is the bound form of one Chapters/EditionEntry entry.
type EditionEntry struct {
	Chapters []ChapterAtom
}

func bindChapterAtom(r byteReader, fields []Field) (ChapterAtom, error) {
	ca := ChapterAtom{}
	var err error
	if ca.UID, err = findNonzero(fields, TagChapterUID); err != nil {
		return ca, err
	}
	if ca.TimeStart, err = findUnsigned(fields, TagChapterTimeStart); err != nil {
		return ca, err
	}
	if v, ok, err := tryFindUnsigned(fields, TagChapterTimeEnd); err != nil {
		return ca, err
	} else if ok {
		ca.TimeEnd = &v
	}
	for _, f := range findAll(fields, TagChapterDisplay) {
		dispFields, err := collectChildren(r, f.Loc.Offset, f.Loc.Size)
		if err != nil {
			return ca, err
		}
		disp := ChapterDisplay{}
		if disp.String, err = findString(dispFields, TagChapString); err != nil {
			return ca, err
		}
		if disp.Language, err = tryFindStringOr(dispFields, TagChapLanguage, "eng"); err != nil {
			return ca, err
		}
		if disp.Country, err = tryFindStringOr(dispFields, TagChapCountry, ""); err != nil {
			return ca, err
		}
		ca.Displays = append(ca.Displays, disp)
	}
	return ca, nil
}

func bindEditionEntry(r byteReader, fields []Field) (EditionEntry, error) {
	ee := EditionEntry{}
	for _, f := range findAll(fields, TagChapterAtom) {
		atomFields, err := collectChildren(r, f.Loc.Offset, f.Loc.Size)
		if err != nil {
			return ee, err
		}
		ca, err := bindChapterAtom(r, atomFields)
		if err != nil {
			return ee, err
		}
		ee.Chapters = append(ee.Chapters, ca)
	}
	return ee, nil
}

// Targets is the bound form of a Tag's optional Targets child.
type Targets struct {
	TargetTypeValue uint64
	TargetType      string
	TagTrackUID     uint64
}

// SimpleTag is the bound form of one Tag/SimpleTag entry.
type SimpleTag struct {
	Name     string
	Language string
	Default  bool
	String   string
	Binary   []byte
}

// Tag is the bound form of one Tags/Tag master element.
type Tag struct {
	Targets    *Targets
	SimpleTags []SimpleTag
}

func bindTag(r byteReader, fields []Field) (Tag, error) {
	t := Tag{}
	if loc, ok, err := findLocation(fields, TagTargets); err != nil {
		return t, err
	} else if ok {
		tgFields, err := collectChildren(r, loc.Offset, loc.Size)
		if err != nil {
			return t, err
		}
		tg := Targets{}
		if tg.TargetTypeValue, err = findUnsignedOr(tgFields, TagTargetTypeValue, 50); err != nil {
			return t, err
		}
		if tg.TargetType, err = tryFindStringOr(tgFields, TagTargetType, ""); err != nil {
			return t, err
		}
		if tg.TagTrackUID, err = findUnsignedOr(tgFields, TagTagTrackUID, 0); err != nil {
			return t, err
		}
		t.Targets = &tg
	}
	for _, f := range findAll(fields, TagSimpleTag) {
		stFields, err := collectChildren(r, f.Loc.Offset, f.Loc.Size)
		if err != nil {
			return t, err
		}
		st := SimpleTag{}
		if st.Name, err = findString(stFields, TagTagName); err != nil {
			return t, err
		}
		if st.Language, err = tryFindStringOr(stFields, TagTagLanguage, "und"); err != nil {
			return t, err
		}
		if st.Default, err = findBoolOr(stFields, TagTagDefault, true); err != nil {
			return t, err
		}
		if v, ok, err := tryFindString(stFields, TagTagString); err != nil {
			return t, err
		} else if ok {
			st.String = v
		}
		if data, ok, err := findBinary(r, stFields, TagTagBinary); err != nil {
			return t, err
		} else if ok {
			st.Binary = data
		}
		t.SimpleTags = append(t.SimpleTags, st)
	}
	return t, nil
}

// segmentUIDFromBinary converts a 16-byte SegmentUID/PrevUID/NextUID/
// SegmentFamily field into a uuid.UUID, for callers that want the
// idiomatic Go representation of a 128-bit identifier. Fields shorter than
// 16 bytes (malformed files) are zero-padded on the left.
func segmentUIDFromBinary(b []byte) uuid.UUID {
	var u uuid.UUID
	if len(b) >= 16 {
		copy(u[:], b[len(b)-16:])
	} else {
		copy(u[16-len(b):], b)
	}
	return u
}
