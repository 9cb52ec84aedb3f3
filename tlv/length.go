package tlv

import (
	"fmt"

	"github.com/emvtools/paymsg/hexbin"
)

// maxLengthBytes caps the byte count of a long form length field. Four bytes
// already allow for lengths far beyond any real-world EMV data object.
const maxLengthBytes = 4

// EncodeLength encodes a value length as a BER-TLV length field according to
// [BER] 8.1.3 and returns it as uppercase hex. Lengths below 0x80 use the
// short form, everything else the long form with the minimal number of
// big-endian length bytes. This is the exact inverse of DecodeLength.
func EncodeLength(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("length must not be negative: %d", n)
	}
	if n < 0x80 {
		return hexbin.BinaryToHex([]byte{byte(n)}), nil
	}

	var lengthBytes []byte
	for v := n; v > 0; v >>= 8 {
		lengthBytes = append([]byte{byte(v)}, lengthBytes...)
	}
	result := append([]byte{0x80 | byte(len(lengthBytes))}, lengthBytes...)
	return hexbin.BinaryToHex(result), nil
}

// DecodeLength decodes a BER-TLV length field from the beginning of the given
// bytes. It returns the value length and the number of bytes the length field
// occupies. Indefinite lengths are not supported.
func DecodeLength(data []byte) (length int, consumed int, err error) {
	if len(data) == 0 {
		return 0, 0, fmt.Errorf("no bytes left for the length field")
	}

	if data[0]&0x80 == 0 {
		return int(data[0]), 1, nil
	}

	count := int(data[0] & 0x7F)
	if count == 0 {
		return 0, 0, fmt.Errorf("indefinite length is not supported")
	}
	if count > maxLengthBytes {
		return 0, 0, fmt.Errorf("length field of %d bytes exceeds the maximum of %d", count, maxLengthBytes)
	}
	if len(data) < 1+count {
		return 0, 0, fmt.Errorf("length field truncated: %d bytes declared, %d left", count, len(data)-1)
	}

	for i := 1; i <= count; i++ {
		length = length<<8 | int(data[i])
	}
	return length, 1 + count, nil
}
