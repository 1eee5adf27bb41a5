package matroska

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTagKnown(t *testing.T) {
	assert.Equal(t, TagEbml, lookupTag(0x1A45DFA3))
	assert.Equal(t, TagSegment, lookupTag(0x18538067))
	assert.Equal(t, TagSimpleBlock, lookupTag(0xA3))
}

func TestLookupTagUnknown(t *testing.T) {
	assert.Equal(t, TagUnknown, lookupTag(0x3F0000))
}

func TestTypeOfKnownAndUnknown(t *testing.T) {
	kind, ok := typeOf(TagEbmlVersion)
	assert.True(t, ok)
	assert.Equal(t, wireUnsigned, kind)

	_, ok = typeOf(TagUnknown)
	assert.False(t, ok)
}

func TestElementIDString(t *testing.T) {
	assert.Equal(t, "Segment", TagSegment.String())
}
