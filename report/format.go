package report

import (
	"fmt"
	"strings"
)

type Format int

const (
	TextFormat Format = iota
	HTMLFormat
	JSONFormat
	YAMLFormat
)

var formatNames = []string{"text", "html", "json", "yaml"}

func (t Format) String() string {
	if int(t) >= 0 && int(t) < len(formatNames) {
		return formatNames[t]
	}

	return fmt.Sprintf("Format?%d", int(t))
}

// Extension returns the conventional file name extension, including the dot.
func (t Format) Extension() string {
	switch t {
	case HTMLFormat:
		return ".html"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	}

	return ".txt"
}

// FormatNames returns the names accepted by ParseFormat.
func FormatNames() []string {
	return append([]string{}, formatNames...)
}

// ParseFormat converts a case-insensitive format name to a Format. "yml" and "txt" are
// accepted as aliases.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "txt":
		return TextFormat, nil
	case "yml":
		return YAMLFormat, nil
	}
	for ix, name := range formatNames {
		if s == name {
			return Format(ix), nil
		}
	}

	return TextFormat, fmt.Errorf("Unknown report format '%s' (choose from %s)",
		s, strings.Join(formatNames, ", "))
}
