package apx

import (
	"fmt"
	"strings"
)

// SplitLine tokenizes one APX text line into exactly four fields:
// role marker, name, signature and attribute. The attribute field is
// empty when the line carries no attribute.
//
// Line shape: <marker>"<name>"<signature>[:<attribute>]
func SplitLine(line string) ([4]string, error) {
	var parts [4]string
	open := strings.IndexByte(line, '"')
	if open < 0 {
		return parts, lineError("SplitLine", fmt.Errorf("%w: missing name: %q", ErrInvalidLine, line))
	}
	rest := line[open+1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return parts, lineError("SplitLine", fmt.Errorf("%w: unterminated name: %q", ErrInvalidLine, line))
	}
	parts[0] = line[:open]
	parts[1] = rest[:end]
	tail := rest[end+1:]
	// The signature grammar never contains a colon, so the first colon
	// after the name starts the attribute.
	if sep := strings.IndexByte(tail, ':'); sep >= 0 {
		parts[2] = tail[:sep]
		parts[3] = tail[sep+1:]
	} else {
		parts[2] = tail
	}
	if parts[0] == "" {
		return parts, lineError("SplitLine", fmt.Errorf("%w: missing role marker: %q", ErrInvalidLine, line))
	}
	return parts, nil
}
