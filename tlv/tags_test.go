package tlv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagMapLookupIsCaseInsensitive(t *testing.T) {
	info, ok := StandardTags.TagInfo("9f02")

	require.True(t, ok)
	assert.Equal(t, "Amount, Authorised (Numeric)", info.Name)
	assert.Equal(t, Primitive, info.Format)
}

func TestTagMapUnknownTag(t *testing.T) {
	_, ok := StandardTags.TagInfo("C0")
	assert.False(t, ok)
}

func TestStandardTagsTemplates(t *testing.T) {
	for _, id := range []string{"61", "6F", "70", "77", "A5", "BF0C"} {
		info, ok := StandardTags.TagInfo(id)
		require.True(t, ok, "tag %s", id)
		assert.Equal(t, Constructed, info.Format, "tag %s", id)
	}
}
