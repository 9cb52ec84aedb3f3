package tlv

import (
	"encoding/hex"
	"fmt"

	"github.com/emvtools/paymsg/hexbin"
)

const (
	// maxTagBytes guards the tag reader against malformed data that would
	// otherwise keep the continuation bit set forever.
	maxTagBytes = 10
	// maxNestingDepth bounds the recursion into constructed data objects on
	// pathologically nested malformed input.
	maxNestingDepth = 64
)

// DecodeOptions control the behavior of Decode.
type DecodeOptions struct {
	// IgnoreUnknown suppresses the error for tags missing from the registry.
	// The element is produced either way, marked as unknown.
	IgnoreUnknown bool
	// StopOnError stops decoding at the first recoverable error instead of
	// resynchronizing and scanning on.
	StopOnError bool
	// SkipConstructed disables recursing into constructed data objects, their
	// value is kept as an opaque byte string.
	SkipConstructed bool
	// SkipLengthCheck is reserved: validation of value lengths against the
	// registry's length rules is not implemented yet.
	SkipLengthCheck bool
}

// Decode decodes the given hex string into a forest of BER-TLV elements,
// looking up tag metadata in the given registry. Decoding is best-effort:
// recoverable problems are collected in the result's Errors while scanning
// continues, only malformed input (non-hex characters, odd digit count)
// short-circuits with a single error and no elements. A nil registry marks
// every tag as unknown.
func Decode(hexString string, tags TagSource, opts DecodeOptions) Result {
	normalized, err := hexbin.Normalize(hexString)
	if err != nil {
		return Result{Errors: []ParseError{{Message: fmt.Sprintf("invalid input: %v", err), Offset: -1}}}
	}

	data, _ := hex.DecodeString(normalized) // cannot fail after Normalize
	result := Result{RawHex: normalized}
	result.Elements, result.Errors = decodeElements(data, 0, tags, opts, 0)
	return result
}

// elementError describes a problem with a single data object before it could
// be fully decoded. Offsets are assigned by the caller.
type elementError struct {
	message   string
	tag       string
	truncated bool
}

func decodeElements(data []byte, base int, tags TagSource, opts DecodeOptions, depth int) ([]Element, []ParseError) {
	if depth > maxNestingDepth {
		return nil, []ParseError{{
			Message: fmt.Sprintf("nesting exceeds %d levels", maxNestingDepth),
			Offset:  base,
		}}
	}

	var elements []Element
	var errors []ParseError

	cursor := 0
	for cursor < len(data) {
		element, consumed, decodeErr := decodeElement(data[cursor:])
		if decodeErr != nil {
			errors = append(errors, ParseError{
				Message: decodeErr.message,
				Offset:  base + cursor,
				Tag:     decodeErr.tag,
			})
			if opts.StopOnError {
				break
			}
			if decodeErr.truncated {
				// The declared value extends beyond the available bytes,
				// everything up to the end belongs to the truncated element.
				break
			}
			// Best-effort resynchronization: skip one byte and retry. This may
			// produce follow-up errors on genuinely malformed data.
			cursor++
			continue
		}

		element.Offset = cursor
		element.Info, element.Known = lookupTag(tags, element.Tag)

		unknown := !element.Known && !opts.IgnoreUnknown
		if unknown {
			errors = append(errors, ParseError{
				Message: "unknown tag",
				Offset:  base + cursor,
				Tag:     element.Tag,
			})
		}

		if element.Known && element.Info.Format == Constructed && !opts.SkipConstructed && element.Length > 0 {
			headerLen := consumed - element.Length
			value := data[cursor+headerLen : cursor+consumed]
			children, childErrors := decodeElements(value, base+cursor+headerLen, tags, opts, depth+1)
			element.Children = children
			for _, childError := range childErrors {
				childError.Message = element.Tag + ": " + childError.Message
				errors = append(errors, childError)
			}
		}

		elements = append(elements, element)
		cursor += consumed

		if unknown && opts.StopOnError {
			break
		}
	}

	return elements, errors
}

func decodeElement(data []byte) (Element, int, *elementError) {
	tag, tagLen, tagErr := readTag(data)
	if tagErr != nil {
		return Element{}, 0, tagErr
	}

	length, lengthLen, err := DecodeLength(data[tagLen:])
	if err != nil {
		return Element{}, 0, &elementError{message: err.Error(), tag: tag}
	}

	headerLen := tagLen + lengthLen
	if headerLen+length > len(data) {
		return Element{}, 0, &elementError{
			message:   fmt.Sprintf("value truncated: %d bytes declared, %d left", length, len(data)-headerLen),
			tag:       tag,
			truncated: true,
		}
	}

	return Element{
		Tag:    tag,
		Length: length,
		Value:  hexbin.BinaryToHex(data[headerLen : headerLen+length]),
		Raw:    hexbin.BinaryToHex(data[:headerLen+length]),
	}, headerLen + length, nil
}

// readTag reads a tag of one or more bytes according to [BER] 8.1.2. The low
// five bits of the first byte all set indicate a multi-byte tag, subsequent
// bytes belong to the tag as long as their high bit is set.
func readTag(data []byte) (string, int, *elementError) {
	if len(data) == 0 {
		return "", 0, &elementError{message: "no bytes left for a tag"}
	}

	n := 1
	if data[0]&0x1F == 0x1F {
		for {
			if n >= len(data) {
				return "", 0, &elementError{
					message:   "multi-byte tag truncated",
					tag:       hexbin.BinaryToHex(data),
					truncated: true,
				}
			}
			if n >= maxTagBytes {
				return "", 0, &elementError{
					message: fmt.Sprintf("tag exceeds %d bytes", maxTagBytes),
					tag:     hexbin.BinaryToHex(data[:n]),
				}
			}
			continuation := data[n]&0x80 != 0
			n++
			if !continuation {
				break
			}
		}
	}

	return hexbin.BinaryToHex(data[:n]), n, nil
}

func lookupTag(tags TagSource, id string) (TagInfo, bool) {
	if tags == nil {
		return TagInfo{}, false
	}
	return tags.TagInfo(id)
}
