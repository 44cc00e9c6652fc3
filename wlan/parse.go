package wlan

import (
	"fmt"
	"strings"
)

// DefaultMarker selects scan output lines that carry a network name.
const DefaultMarker = "SSID"

// LineParser extracts a network name from one marked scan line.
type LineParser func(line string) (string, error)

// ParseFormatError reports a marked line without the expected "label : name"
// shape.
type ParseFormatError struct {
	Line string
}

func (e *ParseFormatError) Error() string {
	return fmt.Sprintf("malformed network line %q: expected \"<label> : <name>\"", e.Line)
}

// ParseSSIDField returns the second ':'-separated segment of line, trimmed.
// Names that themselves contain ':' are truncated at the first one.
func ParseSSIDField(line string) (string, error) {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return "", &ParseFormatError{Line: line}
	}
	return strings.TrimSpace(parts[1]), nil
}

// markedLines returns the trimmed lines of output containing marker. Lines of
// any length are kept.
func markedLines(output, marker string) []string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(output, "\r\n", "\n"), "\n") {
		if strings.Contains(line, marker) {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	return lines
}
