package iso8583

import (
	"fmt"

	"github.com/emvtools/paymsg/hexbin"
)

// Field number offsets of the three bitmap segments.
const (
	primaryOffset   = 0
	secondaryOffset = 64
	tertiaryOffset  = 128
)

// Continuation indicator fields: their bit signals that another bitmap
// segment follows, they never carry data and are excluded from PresentFields.
const (
	secondaryIndicator = 1
	tertiaryIndicator  = 65
)

// Bitmap holds the decoded bitmap segments of one message.
type Bitmap struct {
	// Primary, Secondary and Tertiary hold each segment as 16 uppercase hex
	// characters. Secondary and Tertiary are empty when not present.
	Primary   string
	Secondary string
	Tertiary  string
	// PresentFields are the data-carrying field numbers announced by all
	// segments, sorted ascending. The continuation indicator fields 1, 65
	// and 129 are excluded.
	PresentFields []int
}

// DecodeBitmap scans one bitmap segment and returns the announced field
// numbers in ascending order. A segment is 16 hex characters, or 8 raw bytes
// when binary is set. Bit i, counted from the most significant bit of the
// segment, announces field number offset+i+1.
func DecodeBitmap(segment string, offset int, binary bool) ([]int, error) {
	var raw []byte
	if binary {
		if len(segment) != 8 {
			return nil, fmt.Errorf("binary bitmap must be 8 bytes, got %d", len(segment))
		}
		raw = []byte(segment)
	} else {
		if len(segment) != 16 {
			return nil, fmt.Errorf("bitmap must be 16 hex characters, got %d", len(segment))
		}
		var err error
		raw, err = hexbin.HexToBinary(segment)
		if err != nil {
			return nil, fmt.Errorf("invalid bitmap: %v", err)
		}
	}

	fields := make([]int, 0, 64)
	for i := 0; i < len(raw)*8; i++ {
		if hexbin.GetBit(raw, i) {
			fields = append(fields, offset+i+1)
		}
	}
	return fields, nil
}

// segmentHex returns the uppercase hex representation of a bitmap segment as
// it was carried in the message.
func segmentHex(segment string, binary bool) string {
	if binary {
		return hexbin.BinaryToHex([]byte(segment))
	}
	normalized, err := hexbin.Normalize(segment)
	if err != nil {
		return segment
	}
	return normalized
}

func containsField(fields []int, id int) bool {
	for _, field := range fields {
		if field == id {
			return true
		}
	}
	return false
}
