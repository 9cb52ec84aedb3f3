package iso8583

import (
	"fmt"
	"sort"
)

// minMessageLength is MTI plus primary bitmap in hex representation.
const minMessageLength = 20

// ParseOptions control the behavior of Parse. The zero value decodes a 1987
// message with a hex bitmap, follows the secondary bitmap when announced,
// ignores the tertiary bitmap and validates fields against the registry.
type ParseOptions struct {
	// Version is the standard revision used for registry lookups and as
	// fallback for undefined MTI version digits. Zero means Version1987.
	Version Version
	// BinaryBitmap indicates that bitmap segments are carried as 8 raw bytes
	// instead of 16 hex characters.
	BinaryBitmap bool
	// DisableSecondaryBitmap skips the secondary bitmap even when field 1
	// announces it.
	DisableSecondaryBitmap bool
	// TertiaryBitmap enables decoding of the tertiary bitmap when field 65
	// announces it.
	TertiaryBitmap bool
	// DisableFieldValidation replaces the error for fields missing from the
	// registry with a best-effort length heuristic.
	DisableFieldValidation bool
}

// ParseError describes one problem encountered while decoding a message.
type ParseError struct {
	Message string
	// Position is the character position within the message the problem was
	// detected at.
	Position int
	// Field is the affected field number, 0 when the problem is not tied to
	// a single field.
	Field int
}

func (e ParseError) Error() string {
	if e.Field > 0 {
		return fmt.Sprintf("field %d at position %d: %s", e.Field, e.Position, e.Message)
	}
	return fmt.Sprintf("position %d: %s", e.Position, e.Message)
}

// Result holds the outcome of decoding one ISO 8583 message.
type Result struct {
	MTI    MTI
	Bitmap Bitmap
	// Fields maps each decoded field number to its data element.
	Fields map[int]Field
	// Errors are the problems encountered while decoding, in order of occurrence.
	Errors []ParseError
	// RawMessage is the input the message was decoded from.
	RawMessage string
}

// Parse decodes the given ISO 8583 message, looking up field definitions in
// the given registry. Decoding is best-effort: recoverable problems are
// collected in the result's Errors and decoding continues where possible. A
// message shorter than MTI plus primary bitmap or with an invalid MTI
// short-circuits with a single error. A nil registry marks every field as
// unknown.
func Parse(message string, fields FieldSource, opts ParseOptions) Result {
	result := Result{RawMessage: message}

	version := opts.Version
	if version == 0 {
		version = Version1987
	}

	if len(message) < minMessageLength {
		result.Errors = append(result.Errors, ParseError{
			Message: fmt.Sprintf("message too short: %d characters, minimum is %d", len(message), minMessageLength),
		})
		return result
	}

	mti, err := ParseMTI(message[:4], version)
	if err != nil {
		result.Errors = append(result.Errors, ParseError{Message: err.Error()})
		return result
	}
	result.MTI = mti
	version = mti.Version

	segmentWidth := 16
	if opts.BinaryBitmap {
		segmentWidth = 8
	}

	pos := 4
	present, bitmap, bitmapErr := decodeBitmaps(message, &pos, segmentWidth, opts)
	result.Bitmap = bitmap
	if bitmapErr != nil {
		result.Errors = append(result.Errors, *bitmapErr)
		return result
	}

	fieldValues, fieldErrors := decodeFields(message, pos, present, fields, version, opts)
	result.Fields = fieldValues
	result.Errors = append(result.Errors, fieldErrors...)

	return result
}

// decodeBitmaps reads the primary bitmap and, when announced and requested,
// the secondary and tertiary bitmaps. It advances pos past all consumed
// segments and returns the data-carrying field numbers sorted ascending.
// Once bitmap alignment is lost the rest of the message cannot be
// interpreted, so the first problem halts decoding.
func decodeBitmaps(message string, pos *int, segmentWidth int, opts ParseOptions) ([]int, Bitmap, *ParseError) {
	var bitmap Bitmap

	segment, err := takeSegment(message, pos, segmentWidth, "primary bitmap")
	if err != nil {
		return nil, bitmap, err
	}
	bitmap.Primary = segmentHex(segment, opts.BinaryBitmap)
	present, decodeErr := DecodeBitmap(segment, primaryOffset, opts.BinaryBitmap)
	if decodeErr != nil {
		return nil, bitmap, &ParseError{Message: decodeErr.Error(), Position: *pos - segmentWidth}
	}

	if containsField(present, secondaryIndicator) && !opts.DisableSecondaryBitmap {
		segment, err = takeSegment(message, pos, segmentWidth, "secondary bitmap")
		if err != nil {
			return nil, bitmap, err
		}
		bitmap.Secondary = segmentHex(segment, opts.BinaryBitmap)
		secondary, decodeErr := DecodeBitmap(segment, secondaryOffset, opts.BinaryBitmap)
		if decodeErr != nil {
			return nil, bitmap, &ParseError{Message: decodeErr.Error(), Position: *pos - segmentWidth}
		}
		present = append(present, secondary...)
	}

	if containsField(present, tertiaryIndicator) && opts.TertiaryBitmap {
		segment, err = takeSegment(message, pos, segmentWidth, "tertiary bitmap")
		if err != nil {
			return nil, bitmap, err
		}
		bitmap.Tertiary = segmentHex(segment, opts.BinaryBitmap)
		tertiary, decodeErr := DecodeBitmap(segment, tertiaryOffset, opts.BinaryBitmap)
		if decodeErr != nil {
			return nil, bitmap, &ParseError{Message: decodeErr.Error(), Position: *pos - segmentWidth}
		}
		present = append(present, tertiary...)
	}

	dataFields := make([]int, 0, len(present))
	for _, field := range present {
		switch field {
		case secondaryIndicator, tertiaryIndicator, tertiaryOffset + 1:
			continue
		}
		dataFields = append(dataFields, field)
	}
	sort.Ints(dataFields)

	bitmap.PresentFields = dataFields
	return dataFields, bitmap, nil
}

func takeSegment(message string, pos *int, width int, what string) (string, *ParseError) {
	if *pos+width > len(message) {
		return "", &ParseError{
			Message:  fmt.Sprintf("message ends before the %s: %d characters expected, %d left", what, width, len(message)-*pos),
			Position: *pos,
		}
	}
	segment := message[*pos : *pos+width]
	*pos += width
	return segment, nil
}
