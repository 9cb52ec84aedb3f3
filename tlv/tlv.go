package tlv

import (
	"fmt"
	"strings"
)

// Format describes how a tag's value is to be interpreted according to [BER] 8.1.2.5.
type Format byte

// All defined tag formats
const (
	Primitive Format = iota
	Constructed
)

// TagInfo holds the static metadata of a single tag as supplied by a registry.
type TagInfo struct {
	Name      string
	Format    Format
	Class     string
	MinLength int
	MaxLength int
}

// TagSource supplies static tag metadata to the decoder. Implementations must
// be side-effect free and safe for concurrent lookups.
type TagSource interface {
	TagInfo(id string) (TagInfo, bool)
}

// TagMap is a simple immutable map-backed TagSource.
type TagMap map[string]TagInfo

// TagInfo looks up the metadata for the given tag id, case-insensitively.
func (m TagMap) TagInfo(id string) (TagInfo, bool) {
	info, ok := m[strings.ToUpper(id)]
	return info, ok
}

// Element represents one decoded data object in a BER-TLV forest.
type Element struct {
	// Tag is the hex representation of all tag bytes, e.g. "9F02".
	Tag string
	// Length is the declared value length in bytes, independent of the
	// encoding form of the length field.
	Length int
	// Value is the hex representation of the value bytes, empty when Length is 0.
	// For a constructed element it equals the concatenation of the children's Raw.
	Value string
	// Raw is the hex representation of the complete data object:
	// tag bytes, length field and value bytes.
	Raw string
	// Children holds the nested data objects of a constructed element in byte order.
	Children []Element
	// Info is the registry metadata of this element's tag, valid only when Known is true.
	Info TagInfo
	// Known indicates whether the tag was found in the registry.
	Known bool
	// Offset is the byte offset of this element within its immediate container.
	Offset int
}

// IsConstructed indicates whether this element is a constructed data object,
// either by its decoded children or by its registry metadata.
func (e Element) IsConstructed() bool {
	return len(e.Children) > 0 || (e.Known && e.Info.Format == Constructed)
}

// Result holds the outcome of decoding one BER-TLV message.
type Result struct {
	// Elements are the decoded top-level data objects in byte order.
	Elements []Element
	// Errors are the problems encountered while decoding, in order of occurrence.
	Errors []ParseError
	// RawHex is the normalized input the elements were decoded from.
	RawHex string
}

// RebuildRaw concatenates the raw bytes of all top-level elements.
func (r Result) RebuildRaw() string {
	var sb strings.Builder
	for _, e := range r.Elements {
		sb.WriteString(e.Raw)
	}
	return sb.String()
}

// ParseError describes one problem encountered while decoding.
type ParseError struct {
	Message string
	// Offset is the byte offset the problem was detected at, -1 when it
	// concerns the input as a whole.
	Offset int
	// Tag is the hex representation of the affected tag, empty when the
	// problem occurred before a tag could be read.
	Tag string
}

func (e ParseError) Error() string {
	switch {
	case e.Tag != "" && e.Offset >= 0:
		return fmt.Sprintf("tag %s at offset %d: %s", e.Tag, e.Offset, e.Message)
	case e.Offset >= 0:
		return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
	default:
		return e.Message
	}
}
