package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicatorWidth(t *testing.T) {
	tt := []struct {
		desc     string
		def      FieldDefinition
		expected int
	}{
		{desc: "fixed length", def: FieldDefinition{Length: 6}, expected: 0},
		{desc: "LLVAR", def: FieldDefinition{Length: 19, Variable: true}, expected: 2},
		{desc: "LLLVAR", def: FieldDefinition{Length: 999, Variable: true}, expected: 3},
		{desc: "single digit maximum", def: FieldDefinition{Length: 9, Variable: true}, expected: 1},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.def.IndicatorWidth())
		})
	}
}

func TestStandardFields(t *testing.T) {
	pan, ok := StandardFields.FieldDefinition(2, Version1987)
	require.True(t, ok)
	assert.True(t, pan.Variable)
	assert.Equal(t, 19, pan.Length)

	icc, ok := StandardFields.FieldDefinition(55, Version1987)
	require.True(t, ok)
	assert.True(t, icc.Variable)
	assert.Equal(t, 3, icc.IndicatorWidth())

	_, ok = StandardFields.FieldDefinition(1, Version1987)
	assert.False(t, ok, "the secondary bitmap indicator is not a data field")

	_, ok = StandardFields.FieldDefinition(65, Version1987)
	assert.False(t, ok, "the tertiary bitmap indicator is not a data field")
}
