package schedule

import (
	"fmt"
	"strings"
)

// Extract returns the first balanced JSON object following marker in text.
// The scan is string-literal aware, so braces inside quoted values do not
// corrupt the boundary. Returns ErrMarkerNotFound when the marker is absent.
func Extract(text, marker string) (string, error) {
	at := strings.Index(text, marker)
	if at == -1 {
		return "", fmt.Errorf("%w: %s", ErrMarkerNotFound, marker)
	}
	start := strings.IndexByte(text[at:], '{')
	if start == -1 {
		return "", fmt.Errorf("no object start after marker %s", marker)
	}
	start += at

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unterminated object after marker %s", marker)
}
