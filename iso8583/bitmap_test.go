package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBitmap(t *testing.T) {
	tt := []struct {
		desc     string
		segment  string
		offset   int
		binary   bool
		expected []int
		invalid  bool
	}{
		{
			desc:     "first nibble 0x7 announces fields 2, 3, 4",
			segment:  "7220000000000000",
			expected: []int{2, 3, 4, 7, 11},
		},
		{
			desc:     "empty bitmap",
			segment:  "0000000000000000",
			expected: []int{},
		},
		{
			desc:     "all bits set",
			segment:  "FFFF000000000000",
			expected: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		},
		{
			desc:     "secondary segment offset",
			segment:  "8000000000000001",
			offset:   64,
			expected: []int{65, 128},
		},
		{
			desc:     "binary encoding",
			segment:  string([]byte{0x72, 0x20, 0, 0, 0, 0, 0, 0}),
			binary:   true,
			expected: []int{2, 3, 4, 7, 11},
		},
		{
			desc:    "hex segment too short",
			segment: "7220",
			invalid: true,
		},
		{
			desc:    "binary segment too short",
			segment: string([]byte{0x72, 0x20}),
			binary:  true,
			invalid: true,
		},
		{
			desc:    "invalid hex",
			segment: "GG20000000000000",
			invalid: true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := DecodeBitmap(tc.segment, tc.offset, tc.binary)
			if tc.invalid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestDecodeBitmapMatchesSetBits(t *testing.T) {
	// every set bit except bit 1 corresponds to exactly one field in 2..64
	tt := []struct {
		desc    string
		segment string
		bits    []int
	}{
		{desc: "alternating nibbles", segment: "5555555555555555", bits: []int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26, 28, 30, 32, 34, 36, 38, 40, 42, 44, 46, 48, 50, 52, 54, 56, 58, 60, 62, 64}},
		{desc: "last bit only", segment: "0000000000000001", bits: []int{64}},
		{desc: "first data bit only", segment: "4000000000000000", bits: []int{2}},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := DecodeBitmap(tc.segment, 0, false)
			require.NoError(t, err)
			assert.Equal(t, tc.bits, actual)
		})
	}
}
