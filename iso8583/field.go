package iso8583

import (
	"fmt"
	"strconv"
)

// FieldDefinition holds the static metadata of one data element as supplied
// by a registry.
type FieldDefinition struct {
	Name string
	// Length is the exact length for fixed-length fields, or the maximum
	// length for variable-length fields. The width of a variable field's
	// length indicator equals the decimal digit count of Length: up to 99
	// gives LLVAR, up to 999 gives LLLVAR.
	Length   int
	Variable bool
	// Format names the permitted content, e.g. "n", "an", "ans", "b".
	Format string
}

// IndicatorWidth returns the digit count of the length indicator preceding a
// variable-length field, 0 for fixed-length fields.
func (d FieldDefinition) IndicatorWidth() int {
	if !d.Variable {
		return 0
	}
	return len(strconv.Itoa(d.Length))
}

// FieldSource supplies static field metadata to the decoder. Implementations
// must be side-effect free and safe for concurrent lookups.
type FieldSource interface {
	FieldDefinition(id int, version Version) (FieldDefinition, bool)
}

// FieldMap is a simple immutable map-backed FieldSource that serves the same
// definitions for every standard revision.
type FieldMap map[int]FieldDefinition

// FieldDefinition looks up the definition for the given field number.
func (m FieldMap) FieldDefinition(id int, _ Version) (FieldDefinition, bool) {
	def, ok := m[id]
	return def, ok
}

// Field represents one decoded data element.
type Field struct {
	// ID is the field number announced by the bitmap.
	ID int
	// Value is the field's payload without the length indicator.
	Value string
	// Raw is the complete slice of the message belonging to this field,
	// length indicator included.
	Raw string
	// LengthIndicator holds the digits of the length indicator, empty for
	// fixed-length fields.
	LengthIndicator string
	// Def is the registry definition of this field, valid only when Known is true.
	Def FieldDefinition
	// Known indicates whether the field was found in the registry.
	Known bool
}

// decodeFields extracts all announced fields from the message, starting at
// pos, strictly in ascending field order. An overrun aborts the walk but
// preserves the fields decoded so far.
func decodeFields(message string, pos int, present []int, src FieldSource, version Version, opts ParseOptions) (map[int]Field, []ParseError) {
	fields := make(map[int]Field, len(present))
	var errors []ParseError

	for _, id := range present {
		def, known := lookupField(src, id, version)
		if !known {
			if !opts.DisableFieldValidation {
				errors = append(errors, ParseError{
					Message:  "unknown field, skipped without consuming data",
					Position: pos,
					Field:    id,
				})
				continue
			}
			// Best-effort fallback: the private-use range 102-125 is commonly
			// LLLVAR, anything else is read as a single character. This can
			// misalign all subsequent fields.
			def = FieldDefinition{Name: "Unknown", Length: 1}
			if id >= 102 && id <= 125 {
				def = FieldDefinition{Name: "Unknown", Length: 999, Variable: true}
			}
		}

		field, consumed, err := decodeField(message, pos, id, def)
		if err != nil {
			errors = append(errors, *err)
			break
		}
		field.Known = known
		fields[id] = field
		pos += consumed
	}

	return fields, errors
}

func decodeField(message string, pos int, id int, def FieldDefinition) (Field, int, *ParseError) {
	if !def.Variable {
		if pos+def.Length > len(message) {
			return Field{}, 0, &ParseError{
				Message:  fmt.Sprintf("field truncated: %d characters declared, %d left", def.Length, len(message)-pos),
				Position: pos,
				Field:    id,
			}
		}
		value := message[pos : pos+def.Length]
		return Field{ID: id, Value: value, Raw: value, Def: def}, def.Length, nil
	}

	width := def.IndicatorWidth()
	if pos+width > len(message) {
		return Field{}, 0, &ParseError{
			Message:  fmt.Sprintf("length indicator truncated: %d digits expected, %d characters left", width, len(message)-pos),
			Position: pos,
			Field:    id,
		}
	}
	indicator := message[pos : pos+width]
	length, err := strconv.Atoi(indicator)
	if err != nil {
		return Field{}, 0, &ParseError{
			Message:  fmt.Sprintf("invalid length indicator %q", indicator),
			Position: pos,
			Field:    id,
		}
	}
	if pos+width+length > len(message) {
		return Field{}, 0, &ParseError{
			Message:  fmt.Sprintf("field truncated: %d characters declared, %d left", length, len(message)-pos-width),
			Position: pos + width,
			Field:    id,
		}
	}

	value := message[pos+width : pos+width+length]
	return Field{
		ID:              id,
		Value:           value,
		Raw:             indicator + value,
		LengthIndicator: indicator,
		Def:             def,
	}, width + length, nil
}

func lookupField(src FieldSource, id int, version Version) (FieldDefinition, bool) {
	if src == nil {
		return FieldDefinition{}, false
	}
	return src.FieldDefinition(id, version)
}
