package matroska

// ElementID names an EBML/Matroska element by its semantic identity rather
// than its wire-encoded numeric ID, mirroring the element registry in
// _examples/original_source/src/element_id.rs.
type ElementID int

const (
	TagUnknown ElementID = iota
	TagEbml
	TagEbmlVersion
	TagEbmlReadVersion
	TagEbmlMaxIDLength
	TagEbmlMaxSizeLength
	TagDocType
	TagDocTypeVersion
	TagDocTypeReadVersion
	TagVoid
	TagSegment
	TagSeekHead
	TagSeek
	TagSeekID
	TagSeekPosition
	TagInfo
	TagTimestampScale
	TagDuration
	TagDateUTC
	TagTitle
	TagMuxingApp
	TagWritingApp
	TagSegmentUID
	TagSegmentFilename
	TagPrevUID
	TagNextUID
	TagSegmentFamily
	TagCluster
	TagTimestamp
	TagPrevSize
	TagSimpleBlock
	TagBlockGroup
	TagBlock
	TagBlockAdditions
	TagBlockMore
	TagBlockAddID
	TagBlockAdditional
	TagBlockDuration
	TagReferenceBlock
	TagDiscardPadding
	TagTracks
	TagTrackEntry
	TagTrackNumber
	TagTrackUID
	TagTrackType
	TagFlagEnabled
	TagFlagDefault
	TagFlagForced
	TagFlagHearingImpaired
	TagFlagVisualImpaired
	TagFlagTextDescriptions
	TagFlagOriginal
	TagFlagCommentary
	TagFlagLacing
	TagDefaultDuration
	TagName
	TagLanguage
	TagCodecID
	TagCodecPrivate
	TagCodecName
	TagCodecDelay
	TagSeekPreRoll
	TagVideo
	TagFlagInterlaced
	TagStereoMode
	TagAlphaMode
	TagPixelWidth
	TagPixelHeight
	TagPixelCropBottom
	TagPixelCropTop
	TagPixelCropLeft
	TagPixelCropRight
	TagDisplayWidth
	TagDisplayHeight
	TagDisplayUnit
	TagAspectRatioType
	TagAudio
	TagSamplingFrequency
	TagOutputSamplingFrequency
	TagChannels
	TagBitDepth
	TagContentEncodings
	TagContentEncoding
	TagContentEncodingOrder
	TagContentEncodingScope
	TagContentEncodingType
	TagContentEncryption
	TagContentEncAlgo
	TagContentEncKeyID
	TagContentEncAesSettings
	TagAesSettingsCipherMode
	TagColour
	TagMatrixCoefficients
	TagBitsPerChannel
	TagChromaSubsamplingHorz
	TagChromaSubsamplingVert
	TagCbSubsamplingHorz
	TagCbSubsamplingVert
	TagChromaSitingHorz
	TagChromaSitingVert
	TagRange
	TagTransferCharacteristics
	TagPrimaries
	TagMaxCll
	TagMaxFall
	TagMasteringMetadata
	TagPrimaryRChromaticityX
	TagPrimaryRChromaticityY
	TagPrimaryGChromaticityX
	TagPrimaryGChromaticityY
	TagPrimaryBChromaticityX
	TagPrimaryBChromaticityY
	TagWhitePointChromaticityX
	TagWhitePointChromaticityY
	TagLuminanceMax
	TagLuminanceMin
	TagCues
	TagCuePoint
	TagCueTime
	TagCueTrackPositions
	TagCueTrack
	TagCueClusterPosition
	TagCueRelativePosition
	TagCueDuration
	TagCueBlockNumber
	TagChapters
	TagEditionEntry
	TagChapterAtom
	TagChapterUID
	TagChapterStringUID
	TagChapterTimeStart
	TagChapterTimeEnd
	TagChapterDisplay
	TagChapString
	TagChapLanguage
	TagChapCountry
	TagTags
	TagTag
	TagTargets
	TagTargetTypeValue
	TagTargetType
	TagTagTrackUID
	TagSimpleTag
	TagTagName
	TagTagLanguage
	TagTagDefault
	TagTagString
	TagTagBinary
)

func (t ElementID) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "Unknown"
}

var tagNames = map[ElementID]string{
	TagEbml: "EBML", TagEbmlVersion: "EBMLVersion", TagEbmlReadVersion: "EBMLReadVersion",
	TagEbmlMaxIDLength: "EBMLMaxIDLength", TagEbmlMaxSizeLength: "EBMLMaxSizeLength",
	TagDocType: "DocType", TagDocTypeVersion: "DocTypeVersion", TagDocTypeReadVersion: "DocTypeReadVersion",
	TagVoid: "Void", TagSegment: "Segment", TagSeekHead: "SeekHead", TagSeek: "Seek",
	TagSeekID: "SeekID", TagSeekPosition: "SeekPosition", TagInfo: "Info",
	TagTimestampScale: "TimestampScale", TagDuration: "Duration", TagDateUTC: "DateUTC",
	TagTitle: "Title", TagMuxingApp: "MuxingApp", TagWritingApp: "WritingApp",
	TagSegmentUID: "SegmentUID", TagSegmentFilename: "SegmentFilename", TagPrevUID: "PrevUID",
	TagNextUID: "NextUID", TagSegmentFamily: "SegmentFamily", TagCluster: "Cluster",
	TagTimestamp: "Timestamp", TagPrevSize: "PrevSize", TagSimpleBlock: "SimpleBlock",
	TagBlockGroup: "BlockGroup", TagBlock: "Block", TagBlockAdditions: "BlockAdditions",
	TagBlockMore: "BlockMore", TagBlockAddID: "BlockAddID", TagBlockAdditional: "BlockAdditional",
	TagBlockDuration: "BlockDuration", TagReferenceBlock: "ReferenceBlock", TagDiscardPadding: "DiscardPadding",
	TagTracks: "Tracks", TagTrackEntry: "TrackEntry", TagTrackNumber: "TrackNumber",
	TagTrackUID: "TrackUID", TagTrackType: "TrackType", TagFlagEnabled: "FlagEnabled",
	TagFlagDefault: "FlagDefault", TagFlagForced: "FlagForced", TagFlagHearingImpaired: "FlagHearingImpaired",
	TagFlagVisualImpaired: "FlagVisualImpaired", TagFlagTextDescriptions: "FlagTextDescriptions",
	TagFlagOriginal: "FlagOriginal", TagFlagCommentary: "FlagCommentary", TagFlagLacing: "FlagLacing",
	TagDefaultDuration: "DefaultDuration", TagName: "Name", TagLanguage: "Language",
	TagCodecID: "CodecID", TagCodecPrivate: "CodecPrivate", TagCodecName: "CodecName",
	TagCodecDelay: "CodecDelay", TagSeekPreRoll: "SeekPreRoll", TagVideo: "Video",
	TagFlagInterlaced: "FlagInterlaced", TagStereoMode: "StereoMode", TagAlphaMode: "AlphaMode",
	TagPixelWidth: "PixelWidth", TagPixelHeight: "PixelHeight", TagPixelCropBottom: "PixelCropBottom",
	TagPixelCropTop: "PixelCropTop", TagPixelCropLeft: "PixelCropLeft", TagPixelCropRight: "PixelCropRight",
	TagDisplayWidth: "DisplayWidth", TagDisplayHeight: "DisplayHeight", TagDisplayUnit: "DisplayUnit",
	TagAspectRatioType: "AspectRatioType", TagAudio: "Audio", TagSamplingFrequency: "SamplingFrequency",
	TagOutputSamplingFrequency: "OutputSamplingFrequency", TagChannels: "Channels", TagBitDepth: "BitDepth",
	TagContentEncodings: "ContentEncodings", TagContentEncoding: "ContentEncoding",
	TagContentEncodingOrder: "ContentEncodingOrder", TagContentEncodingScope: "ContentEncodingScope",
	TagContentEncodingType: "ContentEncodingType", TagContentEncryption: "ContentEncryption",
	TagContentEncAlgo: "ContentEncAlgo", TagContentEncKeyID: "ContentEncKeyID",
	TagContentEncAesSettings: "ContentEncAesSettings", TagAesSettingsCipherMode: "AesSettingsCipherMode",
	TagColour: "Colour", TagMatrixCoefficients: "MatrixCoefficients", TagBitsPerChannel: "BitsPerChannel",
	TagChromaSubsamplingHorz: "ChromaSubsamplingHorz", TagChromaSubsamplingVert: "ChromaSubsamplingVert",
	TagCbSubsamplingHorz: "CbSubsamplingHorz", TagCbSubsamplingVert: "CbSubsamplingVert",
	TagChromaSitingHorz: "ChromaSitingHorz", TagChromaSitingVert: "ChromaSitingVert",
	TagRange: "Range", TagTransferCharacteristics: "TransferCharacteristics", TagPrimaries: "Primaries",
	TagMaxCll: "MaxCLL", TagMaxFall: "MaxFALL", TagMasteringMetadata: "MasteringMetadata",
	TagPrimaryRChromaticityX: "PrimaryRChromaticityX", TagPrimaryRChromaticityY: "PrimaryRChromaticityY",
	TagPrimaryGChromaticityX: "PrimaryGChromaticityX", TagPrimaryGChromaticityY: "PrimaryGChromaticityY",
	TagPrimaryBChromaticityX: "PrimaryBChromaticityX", TagPrimaryBChromaticityY: "PrimaryBChromaticityY",
	TagWhitePointChromaticityX: "WhitePointChromaticityX", TagWhitePointChromaticityY: "WhitePointChromaticityY",
	TagLuminanceMax: "LuminanceMax", TagLuminanceMin: "LuminanceMin",
	TagCues: "Cues", TagCuePoint: "CuePoint", TagCueTime: "CueTime", TagCueTrackPositions: "CueTrackPositions",
	TagCueTrack: "CueTrack", TagCueClusterPosition: "CueClusterPosition", TagCueRelativePosition: "CueRelativePosition",
	TagCueDuration: "CueDuration", TagCueBlockNumber: "CueBlockNumber",
	TagChapters: "Chapters", TagEditionEntry: "EditionEntry", TagChapterAtom: "ChapterAtom",
	TagChapterUID: "ChapterUID", TagChapterStringUID: "ChapterStringUID", TagChapterTimeStart: "ChapterTimeStart",
	TagChapterTimeEnd: "ChapterTimeEnd", TagChapterDisplay: "ChapterDisplay", TagChapString: "ChapString",
	TagChapLanguage: "ChapLanguage", TagChapCountry: "ChapCountry",
	TagTags: "Tags", TagTag: "Tag", TagTargets: "Targets", TagTargetTypeValue: "TargetTypeValue",
	TagTargetType: "TargetType", TagTagTrackUID: "TagTrackUID", TagSimpleTag: "SimpleTag",
	TagTagName: "TagName", TagTagLanguage: "TagLanguage", TagTagDefault: "TagDefault",
	TagTagString: "TagString", TagTagBinary: "TagBinary",
}

// wireType classifies how an element's payload bytes should be interpreted
// once its size is known, matching the EBML/Matroska schema's declared type
// per tag (Master/Unsigned/Signed/Float/String/Date/Binary).
type wireType int

const (
	wireMaster wireType = iota
	wireUnsigned
	wireSigned
	wireFloat
	wireString
	wireDate
	wireBinary
)

// idToTag maps the wire-encoded element ID (with its VINT marker bit intact,
// as produced by readElementID) to its ElementID.
var idToTag = map[uint32]ElementID{
	0x1A45DFA3: TagEbml, 0x4286: TagEbmlVersion, 0x42F7: TagEbmlReadVersion,
	0x42F2: TagEbmlMaxIDLength, 0x42F3: TagEbmlMaxSizeLength,
	0x4282: TagDocType, 0x4287: TagDocTypeVersion, 0x4285: TagDocTypeReadVersion,
	0xEC: TagVoid, 0x18538067: TagSegment,
	0x114D9B74: TagSeekHead, 0x4DBB: TagSeek, 0x53AB: TagSeekID, 0x53AC: TagSeekPosition,
	0x1549A966: TagInfo, 0x2AD7B1: TagTimestampScale, 0x4489: TagDuration, 0x4461: TagDateUTC,
	0x7BA9: TagTitle, 0x4D80: TagMuxingApp, 0x5741: TagWritingApp,
	0x73A4: TagSegmentUID, 0x7384: TagSegmentFilename, 0x3CB923: TagPrevUID, 0x3EB923: TagNextUID,
	0x4444: TagSegmentFamily,
	0x1F43B675: TagCluster, 0xE7: TagTimestamp, 0xAB: TagPrevSize,
	0xA3: TagSimpleBlock, 0xA0: TagBlockGroup, 0xA1: TagBlock,
	0x75A1: TagBlockAdditions, 0xA6: TagBlockMore, 0xEE: TagBlockAddID, 0xA5: TagBlockAdditional,
	0x9B: TagBlockDuration, 0xFB: TagReferenceBlock, 0x75A2: TagDiscardPadding,
	0x1654AE6B: TagTracks, 0xAE: TagTrackEntry, 0xD7: TagTrackNumber, 0x73C5: TagTrackUID,
	0x83: TagTrackType, 0xB9: TagFlagEnabled, 0x88: TagFlagDefault, 0x55AA: TagFlagForced,
	0x55AB: TagFlagHearingImpaired, 0x55AC: TagFlagVisualImpaired, 0x55AD: TagFlagTextDescriptions,
	0x55AE: TagFlagOriginal, 0x55AF: TagFlagCommentary, 0x9C: TagFlagLacing,
	0x23E383: TagDefaultDuration, 0x536E: TagName, 0x22B59C: TagLanguage,
	0x86: TagCodecID, 0x63A2: TagCodecPrivate, 0x258688: TagCodecName,
	0x56AA: TagCodecDelay, 0x56BB: TagSeekPreRoll,
	0xE0: TagVideo, 0x9A: TagFlagInterlaced, 0x53B8: TagStereoMode, 0x53C0: TagAlphaMode,
	0xB0: TagPixelWidth, 0xBA: TagPixelHeight, 0x54AA: TagPixelCropBottom, 0x54BB: TagPixelCropTop,
	0x54CC: TagPixelCropLeft, 0x54DD: TagPixelCropRight,
	0x54B0: TagDisplayWidth, 0x54BA: TagDisplayHeight, 0x54B2: TagDisplayUnit, 0x54B3: TagAspectRatioType,
	0xE1: TagAudio, 0xB5: TagSamplingFrequency, 0x78B5: TagOutputSamplingFrequency,
	0x9F: TagChannels, 0x6264: TagBitDepth,
	0x6D80: TagContentEncodings, 0x6240: TagContentEncoding, 0x5031: TagContentEncodingOrder,
	0x5032: TagContentEncodingScope, 0x5033: TagContentEncodingType, 0x5035: TagContentEncryption,
	0x47E1: TagContentEncAlgo, 0x47E2: TagContentEncKeyID, 0x47E7: TagContentEncAesSettings,
	0x47E8: TagAesSettingsCipherMode,
	0x55B0: TagColour, 0x55B1: TagMatrixCoefficients, 0x55B2: TagBitsPerChannel,
	0x55B3: TagChromaSubsamplingHorz, 0x55B4: TagChromaSubsamplingVert,
	0x55B5: TagCbSubsamplingHorz, 0x55B6: TagCbSubsamplingVert,
	0x55B7: TagChromaSitingHorz, 0x55B8: TagChromaSitingVert,
	0x55B9: TagRange, 0x55BA: TagTransferCharacteristics, 0x55BB: TagPrimaries,
	0x55BC: TagMaxCll, 0x55BD: TagMaxFall, 0x55D0: TagMasteringMetadata,
	0x55D1: TagPrimaryRChromaticityX, 0x55D2: TagPrimaryRChromaticityY,
	0x55D3: TagPrimaryGChromaticityX, 0x55D4: TagPrimaryGChromaticityY,
	0x55D5: TagPrimaryBChromaticityX, 0x55D6: TagPrimaryBChromaticityY,
	0x55D7: TagWhitePointChromaticityX, 0x55D8: TagWhitePointChromaticityY,
	0x55D9: TagLuminanceMax, 0x55DA: TagLuminanceMin,
	0x1C53BB6B: TagCues, 0xBB: TagCuePoint, 0xB3: TagCueTime, 0xB7: TagCueTrackPositions,
	0xF7: TagCueTrack, 0xF1: TagCueClusterPosition, 0xF0: TagCueRelativePosition,
	0xB2: TagCueDuration, 0x5378: TagCueBlockNumber,
	0x1043A770: TagChapters, 0x45B9: TagEditionEntry, 0xB6: TagChapterAtom,
	0x73C4: TagChapterUID, 0x5654: TagChapterStringUID, 0x91: TagChapterTimeStart,
	0x92: TagChapterTimeEnd, 0x80: TagChapterDisplay, 0x85: TagChapString,
	0x437C: TagChapLanguage, 0x437E: TagChapCountry,
	0x1254C367: TagTags, 0x7373: TagTag, 0x63C0: TagTargets, 0x68CA: TagTargetTypeValue,
	0x63CA: TagTargetType, 0x63C5: TagTagTrackUID, 0x67C8: TagSimpleTag,
	0x45A3: TagTagName, 0x447A: TagTagLanguage, 0x4484: TagTagDefault,
	0x4487: TagTagString, 0x4485: TagTagBinary,
}

// tagWireType maps an ElementID to the wire type its payload is decoded as.
// SeekID is stored as Unsigned here (not Binary): the referenced element ID
// is a small big-endian integer and callers want it comparable to idToTag's
// keys directly, matching the same choice in element_id.rs.
var tagWireType = map[ElementID]wireType{
	TagEbml: wireMaster, TagEbmlVersion: wireUnsigned, TagEbmlReadVersion: wireUnsigned,
	TagEbmlMaxIDLength: wireUnsigned, TagEbmlMaxSizeLength: wireUnsigned,
	TagDocType: wireString, TagDocTypeVersion: wireUnsigned, TagDocTypeReadVersion: wireUnsigned,
	TagVoid: wireBinary, TagSegment: wireMaster,
	TagSeekHead: wireMaster, TagSeek: wireMaster, TagSeekID: wireUnsigned, TagSeekPosition: wireUnsigned,
	TagInfo: wireMaster, TagTimestampScale: wireUnsigned, TagDuration: wireFloat, TagDateUTC: wireDate,
	TagTitle: wireString, TagMuxingApp: wireString, TagWritingApp: wireString,
	TagSegmentUID: wireBinary, TagSegmentFilename: wireString, TagPrevUID: wireBinary, TagNextUID: wireBinary,
	TagSegmentFamily: wireBinary,
	TagCluster: wireMaster, TagTimestamp: wireUnsigned, TagPrevSize: wireUnsigned,
	TagSimpleBlock: wireBinary, TagBlockGroup: wireMaster, TagBlock: wireBinary,
	TagBlockAdditions: wireMaster, TagBlockMore: wireMaster, TagBlockAddID: wireUnsigned, TagBlockAdditional: wireBinary,
	TagBlockDuration: wireUnsigned, TagReferenceBlock: wireSigned, TagDiscardPadding: wireSigned,
	TagTracks: wireMaster, TagTrackEntry: wireMaster, TagTrackNumber: wireUnsigned, TagTrackUID: wireUnsigned,
	TagTrackType: wireUnsigned, TagFlagEnabled: wireUnsigned, TagFlagDefault: wireUnsigned, TagFlagForced: wireUnsigned,
	TagFlagHearingImpaired: wireUnsigned, TagFlagVisualImpaired: wireUnsigned, TagFlagTextDescriptions: wireUnsigned,
	TagFlagOriginal: wireUnsigned, TagFlagCommentary: wireUnsigned, TagFlagLacing: wireUnsigned,
	TagDefaultDuration: wireUnsigned, TagName: wireString, TagLanguage: wireString,
	TagCodecID: wireString, TagCodecPrivate: wireBinary, TagCodecName: wireString,
	TagCodecDelay: wireUnsigned, TagSeekPreRoll: wireUnsigned,
	TagVideo: wireMaster, TagFlagInterlaced: wireUnsigned, TagStereoMode: wireUnsigned, TagAlphaMode: wireUnsigned,
	TagPixelWidth: wireUnsigned, TagPixelHeight: wireUnsigned, TagPixelCropBottom: wireUnsigned,
	TagPixelCropTop: wireUnsigned, TagPixelCropLeft: wireUnsigned, TagPixelCropRight: wireUnsigned,
	TagDisplayWidth: wireUnsigned, TagDisplayHeight: wireUnsigned, TagDisplayUnit: wireUnsigned, TagAspectRatioType: wireUnsigned,
	TagAudio: wireMaster, TagSamplingFrequency: wireFloat, TagOutputSamplingFrequency: wireFloat,
	TagChannels: wireUnsigned, TagBitDepth: wireUnsigned,
	TagContentEncodings: wireMaster, TagContentEncoding: wireMaster, TagContentEncodingOrder: wireUnsigned,
	TagContentEncodingScope: wireUnsigned, TagContentEncodingType: wireUnsigned, TagContentEncryption: wireMaster,
	TagContentEncAlgo: wireUnsigned, TagContentEncKeyID: wireBinary, TagContentEncAesSettings: wireMaster,
	TagAesSettingsCipherMode: wireUnsigned,
	TagColour: wireMaster, TagMatrixCoefficients: wireUnsigned, TagBitsPerChannel: wireUnsigned,
	TagChromaSubsamplingHorz: wireUnsigned, TagChromaSubsamplingVert: wireUnsigned,
	TagCbSubsamplingHorz: wireUnsigned, TagCbSubsamplingVert: wireUnsigned,
	TagChromaSitingHorz: wireUnsigned, TagChromaSitingVert: wireUnsigned,
	TagRange: wireUnsigned, TagTransferCharacteristics: wireUnsigned, TagPrimaries: wireUnsigned,
	TagMaxCll: wireUnsigned, TagMaxFall: wireUnsigned, TagMasteringMetadata: wireMaster,
	TagPrimaryRChromaticityX: wireFloat, TagPrimaryRChromaticityY: wireFloat,
	TagPrimaryGChromaticityX: wireFloat, TagPrimaryGChromaticityY: wireFloat,
	TagPrimaryBChromaticityX: wireFloat, TagPrimaryBChromaticityY: wireFloat,
	TagWhitePointChromaticityX: wireFloat, TagWhitePointChromaticityY: wireFloat,
	TagLuminanceMax: wireFloat, TagLuminanceMin: wireFloat,
	TagCues: wireMaster, TagCuePoint: wireMaster, TagCueTime: wireUnsigned, TagCueTrackPositions: wireMaster,
	TagCueTrack: wireUnsigned, TagCueClusterPosition: wireUnsigned, TagCueRelativePosition: wireUnsigned,
	TagCueDuration: wireUnsigned, TagCueBlockNumber: wireUnsigned,
	TagChapters: wireMaster, TagEditionEntry: wireMaster, TagChapterAtom: wireMaster,
	TagChapterUID: wireUnsigned, TagChapterStringUID: wireString, TagChapterTimeStart: wireUnsigned,
	TagChapterTimeEnd: wireUnsigned, TagChapterDisplay: wireMaster, TagChapString: wireString,
	TagChapLanguage: wireString, TagChapCountry: wireString,
	TagTags: wireMaster, TagTag: wireMaster, TagTargets: wireMaster, TagTargetTypeValue: wireUnsigned,
	TagTargetType: wireString, TagTagTrackUID: wireUnsigned, TagSimpleTag: wireMaster,
	TagTagName: wireString, TagTagLanguage: wireString, TagTagDefault: wireUnsigned,
	TagTagString: wireString, TagTagBinary: wireBinary,
}

// lookupTag resolves a raw wire element ID to its ElementID, or TagUnknown
// when the ID is not part of the registry (unrecognized elements are still
// readable by size — see Location — they simply carry no typed binding).
func lookupTag(wireID uint32) ElementID {
	if t, ok := idToTag[wireID]; ok {
		return t
	}
	return TagUnknown
}

func typeOf(tag ElementID) (wireType, bool) {
	t, ok := tagWireType[tag]
	return t, ok
}
