package iso8583

import (
	"fmt"
	"strconv"
	"strings"
)

// Version represents a revision of the ISO 8583 standard.
type Version int

// All supported standard revisions
const (
	Version1987 Version = 1987
	Version1993 Version = 1993
	Version2003 Version = 2003
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// VersionsByName maps all supported standard revisions by their string representation
var VersionsByName = map[string]Version{
	"1987": Version1987,
	"1993": Version1993,
	"2003": Version2003,
}

// VersionByName returns the Version with the given name
func VersionByName(name string) (Version, error) {
	sanitized := strings.TrimSpace(name)
	result, ok := VersionsByName[sanitized]
	if !ok {
		return 0, fmt.Errorf("invalid ISO 8583 version %s", name)
	}
	return result, nil
}

// MTI represents the decoded message type indicator, the four digit header of
// every ISO 8583 message according to [ISO] 4.3.
type MTI struct {
	// Raw holds the four ASCII digits as they appeared in the message.
	Raw string
	// Version is the standard revision indicated by the first digit.
	Version Version
	// Class, Function and Origin hold the second, third and fourth digit
	// verbatim. Their human-readable descriptions live in the registry, not here.
	Class    string
	Function string
	Origin   string
}

// ParseMTI parses the given four digit message type indicator. The first
// digit selects the standard revision, digits outside the defined revisions
// fall back to the given default. Any non-digit character is a fatal error.
func ParseMTI(raw string, fallback Version) (MTI, error) {
	if len(raw) != 4 {
		return MTI{}, fmt.Errorf("MTI must be 4 digits, got %d characters", len(raw))
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return MTI{}, fmt.Errorf("invalid MTI digit %q at position %d", raw[i], i)
		}
	}

	version := fallback
	switch raw[0] {
	case '0':
		version = Version1987
	case '1':
		version = Version1993
	case '2':
		version = Version2003
	}

	return MTI{
		Raw:      raw,
		Version:  version,
		Class:    raw[1:2],
		Function: raw[2:3],
		Origin:   raw[3:4],
	}, nil
}
