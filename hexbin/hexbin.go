package hexbin

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

var hexSanitizer = regexp.MustCompile(`\s+`)

// HexToBinary converts the hex representation of a payment message into a slice of bytes
func HexToBinary(s string) ([]byte, error) {
	sanitized := hexSanitizer.ReplaceAllString(s, "")
	return hex.DecodeString(sanitized)
}

// BinaryToHex converts a slice of bytes into the uppercase hex representation used throughout this library
func BinaryToHex(data []byte) string {
	return strings.ToUpper(hex.EncodeToString(data))
}

// Normalize strips all whitespace from the given string, folds it to uppercase,
// and validates that the result consists of an even number of hex digits.
func Normalize(s string) (string, error) {
	sanitized := strings.ToUpper(hexSanitizer.ReplaceAllString(s, ""))
	if len(sanitized)%2 != 0 {
		return "", fmt.Errorf("odd number of hex digits: %d", len(sanitized))
	}
	for i := 0; i < len(sanitized); i++ {
		c := sanitized[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return "", fmt.Errorf("invalid hex character %q at position %d", c, i)
		}
	}
	return sanitized, nil
}

// GetBit returns bit i of the given bytes, counting from the most significant
// bit of the first byte. Out-of-range indexes yield false.
func GetBit(data []byte, i int) bool {
	if i < 0 || i >= len(data)*8 {
		return false
	}
	return data[i/8]&(1<<uint(7-i%8)) != 0
}

// SetBit returns a copy of the given bytes with bit i set, counting from the
// most significant bit of the first byte. The input is left untouched.
func SetBit(data []byte, i int) []byte {
	result := append([]byte(nil), data...)
	if i < 0 || i >= len(result)*8 {
		return result
	}
	result[i/8] |= 1 << uint(7-i%8)
	return result
}

// ClearBit returns a copy of the given bytes with bit i cleared, counting from
// the most significant bit of the first byte. The input is left untouched.
func ClearBit(data []byte, i int) []byte {
	result := append([]byte(nil), data...)
	if i < 0 || i >= len(result)*8 {
		return result
	}
	result[i/8] &^= 1 << uint(7-i%8)
	return result
}
