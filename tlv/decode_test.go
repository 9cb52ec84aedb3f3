package tlv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSingleElement(t *testing.T) {
	result := Decode("9F0206000000001000", StandardTags, DecodeOptions{})

	require.Len(t, result.Elements, 1)
	assert.Empty(t, result.Errors)

	element := result.Elements[0]
	assert.Equal(t, "9F02", element.Tag)
	assert.Equal(t, 6, element.Length)
	assert.Equal(t, "000000001000", element.Value)
	assert.Equal(t, "9F0206000000001000", element.Raw)
	assert.Equal(t, 0, element.Offset)
	assert.True(t, element.Known)
	assert.Equal(t, "Amount, Authorised (Numeric)", element.Info.Name)
}

func TestDecodeNormalizesInput(t *testing.T) {
	result := Decode(" 9f 02 06 0000 0000 1000 ", StandardTags, DecodeOptions{})

	require.Len(t, result.Elements, 1)
	assert.Equal(t, "9F0206000000001000", result.RawHex)
	assert.Equal(t, "9F0206000000001000", result.Elements[0].Raw)
}

func TestDecodeMalformedInput(t *testing.T) {
	tt := []struct {
		desc  string
		value string
	}{
		{desc: "odd digit count", value: "9F020"},
		{desc: "non-hex characters", value: "not hex at all"},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			result := Decode(tc.value, StandardTags, DecodeOptions{})

			assert.Empty(t, result.Elements)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, -1, result.Errors[0].Offset)
		})
	}
}

func TestDecodeMultipleElements(t *testing.T) {
	result := Decode("9F02060000000010009A039901019C0100", StandardTags, DecodeOptions{})

	require.Len(t, result.Elements, 3)
	assert.Empty(t, result.Errors)

	assert.Equal(t, "9F02", result.Elements[0].Tag)
	assert.Equal(t, 0, result.Elements[0].Offset)
	assert.Equal(t, "9A", result.Elements[1].Tag)
	assert.Equal(t, 9, result.Elements[1].Offset)
	assert.Equal(t, "990101", result.Elements[1].Value)
	assert.Equal(t, "9C", result.Elements[2].Tag)
	assert.Equal(t, 14, result.Elements[2].Offset)
}

func TestDecodeThreeByteTag(t *testing.T) {
	result := Decode("DF810400", nil, DecodeOptions{IgnoreUnknown: true})

	require.Len(t, result.Elements, 1)
	assert.Empty(t, result.Errors)

	element := result.Elements[0]
	assert.Equal(t, "DF8104", element.Tag)
	assert.Equal(t, 0, element.Length)
	assert.Equal(t, "", element.Value)
	assert.False(t, element.Known)
}

func TestDecodeUnknownTagPolicy(t *testing.T) {
	strict := Decode("DF810400", nil, DecodeOptions{})
	require.Len(t, strict.Elements, 1)
	require.Len(t, strict.Errors, 1)
	assert.Equal(t, "DF8104", strict.Errors[0].Tag)
	assert.Equal(t, "unknown tag", strict.Errors[0].Message)

	lenient := Decode("DF810400", nil, DecodeOptions{IgnoreUnknown: true})
	require.Len(t, lenient.Elements, 1)
	assert.Empty(t, lenient.Errors)
}

func TestDecodeConstructed(t *testing.T) {
	result := Decode("6F07A5055003414243", StandardTags, DecodeOptions{})

	require.Len(t, result.Elements, 1)
	assert.Empty(t, result.Errors)

	fci := result.Elements[0]
	assert.Equal(t, "6F", fci.Tag)
	assert.Equal(t, 7, fci.Length)
	assert.Equal(t, "A5055003414243", fci.Value)
	require.Len(t, fci.Children, 1)

	proprietary := fci.Children[0]
	assert.Equal(t, "A5", proprietary.Tag)
	assert.Equal(t, 0, proprietary.Offset)
	require.Len(t, proprietary.Children, 1)

	label := proprietary.Children[0]
	assert.Equal(t, "50", label.Tag)
	assert.Equal(t, "414243", label.Value)
	assert.Equal(t, 0, label.Offset)

	// the constructed value equals the concatenation of the children's raw bytes
	assert.Equal(t, proprietary.Raw, fci.Value)
	assert.Equal(t, label.Raw, proprietary.Value)
}

func TestDecodeSkipConstructed(t *testing.T) {
	result := Decode("6F07A5055003414243", StandardTags, DecodeOptions{SkipConstructed: true})

	require.Len(t, result.Elements, 1)
	assert.Empty(t, result.Elements[0].Children)
	assert.Equal(t, "A5055003414243", result.Elements[0].Value)
}

func TestDecodeNestedError(t *testing.T) {
	result := Decode("6F039F0206", StandardTags, DecodeOptions{})

	require.Len(t, result.Elements, 1)
	assert.Empty(t, result.Elements[0].Children)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, "9F02", result.Errors[0].Tag)
	assert.Equal(t, 2, result.Errors[0].Offset)
	assert.True(t, strings.HasPrefix(result.Errors[0].Message, "6F: "), result.Errors[0].Message)
}

func TestDecodeTruncatedValue(t *testing.T) {
	result := Decode("9F02060000000010", StandardTags, DecodeOptions{})

	assert.Empty(t, result.Elements)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "9F02", result.Errors[0].Tag)
	assert.Equal(t, 0, result.Errors[0].Offset)
	assert.Contains(t, result.Errors[0].Message, "truncated")
}

func TestDecodeResynchronization(t *testing.T) {
	// 0x80 as length byte declares an unsupported indefinite length. The
	// decoder records the error, skips one byte and scans on, which here
	// produces a follow-up error instead of a clean recovery.
	result := Decode("5080", StandardTags, DecodeOptions{})

	assert.Empty(t, result.Elements)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "50", result.Errors[0].Tag)
	assert.Equal(t, 0, result.Errors[0].Offset)
	assert.Equal(t, 1, result.Errors[1].Offset)
}

func TestDecodeStopOnError(t *testing.T) {
	result := Decode("5080", StandardTags, DecodeOptions{StopOnError: true})

	assert.Empty(t, result.Elements)
	assert.Len(t, result.Errors, 1)
}

func TestDecodeTagTooLong(t *testing.T) {
	result := Decode("9F8080808080808080808000", StandardTags, DecodeOptions{})

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Message, "exceeds")
}

func TestDecodeRebuildRawRoundTrip(t *testing.T) {
	tt := []struct {
		desc  string
		value string
	}{
		{desc: "single primitive", value: "9F0206000000001000"},
		{desc: "nested templates", value: "6F07A5055003414243"},
		{desc: "multiple elements", value: "9F02060000000010009A039901019C0100"},
		{desc: "zero length", value: "5000"},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			result := Decode(tc.value, StandardTags, DecodeOptions{})
			assert.Empty(t, result.Errors)
			assert.Equal(t, tc.value, result.RebuildRaw())
		})
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	templates := TagMap{"6F": {Name: "Template", Format: Constructed}}

	nested := ""
	for i := 0; i < maxNestingDepth+5; i++ {
		lengthHex, err := EncodeLength(len(nested) / 2)
		require.NoError(t, err)
		nested = "6F" + lengthHex + nested
	}

	result := Decode(nested, templates, DecodeOptions{})

	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[len(result.Errors)-1].Message, "nesting exceeds")
}
