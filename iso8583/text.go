package iso8583

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

/* Interchange text encoding related types and functions */

// TextEncoding enum for the character encodings found in ISO 8583 interchanges.
type TextEncoding byte

// All supported interchange text encodings
const (
	ASCII TextEncoding = iota
	Latin1
	EBCDIC037
	EBCDIC1047
	EBCDIC1140
)

// TextCodecs contains encoding.Encoding instances for all supported
// interchange text encodings. ASCII needs no codec and is not listed.
var TextCodecs = map[TextEncoding]encoding.Encoding{
	Latin1:     charmap.ISO8859_1,
	EBCDIC037:  charmap.CodePage037,
	EBCDIC1047: charmap.CodePage1047,
	EBCDIC1140: charmap.CodePage1140,
}

var fallbackCodec encoding.Encoding = charmap.ISO8859_1 // be lenient and use ISO8859-1 as fallback if anything goes havoc

// EncodingByName maps all supported interchange text encodings by their name as string
var EncodingByName = map[string]TextEncoding{
	"ASCII":       ASCII,
	"ISO8859-1":   Latin1,
	"EBCDIC-037":  EBCDIC037,
	"EBCDIC-1047": EBCDIC1047,
	"EBCDIC-1140": EBCDIC1140,
}

// DecodeText converts raw message or field bytes from the given interchange
// encoding into a UTF-8 string.
func DecodeText(textEncoding TextEncoding, data []byte) (string, error) {
	if textEncoding == ASCII {
		return string(data), nil
	}

	codec, ok := TextCodecs[textEncoding]
	if !ok { // we have no matching codec, but be lenient and use the fallback
		codec = fallbackCodec
	}

	utf8, err := codec.NewDecoder().Bytes(data)
	return string(utf8), err
}

// EncodeText converts a string into raw bytes in the given interchange encoding.
func EncodeText(textEncoding TextEncoding, text string) ([]byte, error) {
	if textEncoding == ASCII {
		return []byte(text), nil
	}

	codec, ok := TextCodecs[textEncoding]
	if !ok { // we have no matching codec, but be lenient and use the fallback
		codec = fallbackCodec
	}

	return codec.NewEncoder().Bytes([]byte(text))
}

// ParseBytes decodes a message that is carried in a non-ASCII interchange
// encoding, e.g. one of the EBCDIC code pages. The raw bytes are converted to
// their UTF-8 representation first and then parsed like an ASCII message.
func ParseBytes(raw []byte, textEncoding TextEncoding, fields FieldSource, opts ParseOptions) (Result, error) {
	message, err := DecodeText(textEncoding, raw)
	if err != nil {
		return Result{}, err
	}
	return Parse(message, fields, opts), nil
}
