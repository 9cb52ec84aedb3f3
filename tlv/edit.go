package tlv

import (
	"fmt"
	"strings"

	"github.com/emvtools/paymsg/hexbin"
)

// EditValue replaces the value of the primitive data object addressed by the
// given path and returns the re-serialized message. The path is a
// colon-separated sequence of tag ids from the outermost template down to the
// target, e.g. "6F:A5:50". The length fields of all data objects along the
// path are rebuilt bottom-up, the order of all data objects is preserved.
//
// Unlike Decode, EditValue fails loud: a missing path segment, a constructed
// target or an invalid new value returns an error and no output, so a failed
// edit can never yield a corrupted byte stream.
func EditValue(rawHex, path, newValueHex string, tags TagSource) (string, error) {
	newValue, err := hexbin.Normalize(newValueHex)
	if err != nil {
		return "", fmt.Errorf("invalid new value: %w", err)
	}

	segments := splitPath(path)
	if len(segments) == 0 {
		return "", fmt.Errorf("empty path")
	}

	// Externally held trees are not to be trusted, work on a fresh decode.
	decoded := Decode(rawHex, tags, DecodeOptions{IgnoreUnknown: true})
	if len(decoded.Elements) == 0 {
		if len(decoded.Errors) > 0 {
			return "", fmt.Errorf("cannot decode message: %s", decoded.Errors[0].Error())
		}
		return "", fmt.Errorf("cannot decode message: no data objects found")
	}

	elements, err := editIn(decoded.Elements, segments, newValue)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, element := range elements {
		sb.WriteString(element.Raw)
	}
	return sb.String(), nil
}

func splitPath(path string) []string {
	var result []string
	for _, segment := range strings.Split(path, ":") {
		segment = strings.ToUpper(strings.TrimSpace(segment))
		if segment != "" {
			result = append(result, segment)
		}
	}
	return result
}

// editIn walks the given elements along the path and returns a new slice with
// the affected branch replaced. Untouched elements are shared with the input.
func editIn(elements []Element, path []string, newValue string) ([]Element, error) {
	for i := range elements {
		if elements[i].Tag != path[0] {
			continue
		}

		element := elements[i]
		if len(path) == 1 {
			if element.IsConstructed() {
				return nil, fmt.Errorf("cannot set the value of constructed tag %s directly", element.Tag)
			}
			element.Value = newValue
			element.Length = len(newValue) / 2
		} else {
			children, err := editIn(element.Children, path[1:], newValue)
			if err != nil {
				return nil, err
			}
			element.Children = children

			var sb strings.Builder
			for _, child := range children {
				sb.WriteString(child.Raw)
			}
			element.Value = sb.String()
			element.Length = len(element.Value) / 2
		}

		lengthHex, err := EncodeLength(element.Length)
		if err != nil {
			return nil, err
		}
		element.Raw = element.Tag + lengthHex + element.Value

		result := append([]Element(nil), elements...)
		result[i] = element
		return result, nil
	}

	return nil, fmt.Errorf("tag %s not found", path[0])
}
