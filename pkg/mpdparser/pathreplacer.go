package mpdparser

import (
	"regexp"
	"strconv"
	"strings"
)

// Closed token grammar of SegmentTemplate@media and @initialization:
// $RepresentationID$, $Bandwidth$, $Number$, $Time$, with an optional
// %0[width]d padding specifier on the numeric tokens, and $$ escaping a
// literal dollar sign.
var templateTokenRE = regexp.MustCompile(`\$(RepresentationID|Bandwidth|Number|Time)(%0(\d+)d)?\$|\$\$`)

// PathReplacer expands segment path templates.
type PathReplacer struct {
	pattern string
}

func NewPathReplacer(pattern string) *PathReplacer {
	return &PathReplacer{pattern: pattern}
}

// ToPath fills the template for one segment.
func (r *PathReplacer) ToPath(time, number uint64, representationId string, bandwidth uint64) string {
	return templateTokenRE.ReplaceAllStringFunc(r.pattern, func(tok string) string {
		if tok == "$$" {
			return "$"
		}
		m := templateTokenRE.FindStringSubmatch(tok)
		width := 1
		if m[3] != "" {
			// Bounded by the regexp to digits, cannot fail
			width, _ = strconv.Atoi(m[3])
		}
		switch m[1] {
		case "RepresentationID":
			return representationId
		case "Bandwidth":
			return pad(bandwidth, width)
		case "Number":
			return pad(number, width)
		case "Time":
			return pad(time, width)
		}
		return tok
	})
}

func pad(v uint64, width int) string {
	s := strconv.FormatUint(v, 10)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
