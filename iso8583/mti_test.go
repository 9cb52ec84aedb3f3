package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMTI(t *testing.T) {
	tt := []struct {
		desc            string
		raw             string
		fallback        Version
		expectedVersion Version
		invalid         bool
	}{
		{
			desc:            "1987 authorization request",
			raw:             "0100",
			fallback:        Version1987,
			expectedVersion: Version1987,
		},
		{
			desc:            "1993 financial request",
			raw:             "1200",
			fallback:        Version1987,
			expectedVersion: Version1993,
		},
		{
			desc:            "2003 network management",
			raw:             "2800",
			fallback:        Version1987,
			expectedVersion: Version2003,
		},
		{
			desc:            "undefined version digit falls back",
			raw:             "8800",
			fallback:        Version1993,
			expectedVersion: Version1993,
		},
		{
			desc:     "non-digit character",
			raw:      "01A0",
			fallback: Version1987,
			invalid:  true,
		},
		{
			desc:     "too short",
			raw:      "010",
			fallback: Version1987,
			invalid:  true,
		},
		{
			desc:     "too long",
			raw:      "01000",
			fallback: Version1987,
			invalid:  true,
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			actual, err := ParseMTI(tc.raw, tc.fallback)
			if tc.invalid {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.raw, actual.Raw)
			assert.Equal(t, tc.expectedVersion, actual.Version)
			assert.Equal(t, tc.raw[1:2], actual.Class)
			assert.Equal(t, tc.raw[2:3], actual.Function)
			assert.Equal(t, tc.raw[3:4], actual.Origin)
		})
	}
}

func TestVersionByName(t *testing.T) {
	version, err := VersionByName(" 1993 ")
	require.NoError(t, err)
	assert.Equal(t, Version1993, version)

	_, err = VersionByName("2097")
	assert.Error(t, err)
}
