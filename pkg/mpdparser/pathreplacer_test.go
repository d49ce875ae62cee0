package mpdparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPath(t *testing.T) {

	var testdata = []struct {
		pattern   string
		time      uint64
		number    uint64
		repId     string
		bandwidth uint64
		expect    string
	}{
		{"$RepresentationID$/$Number$.m4s", 0, 7, "v0", 0, "v0/7.m4s"},
		{"seg-$Time$.m4s", 95232, 0, "v0", 0, "seg-95232.m4s"},
		{"$RepresentationID$-$Bandwidth$-$Number%05d$.m4s", 0, 42, "audio", 128000, "audio-128000-00042.m4s"},
		{"$Number%03d$", 0, 12345, "", 0, "12345"},
		{"literal$$dollar-$Number$", 0, 1, "", 0, "literal$dollar-1"},
		{"no-tokens.mp4", 0, 0, "", 0, "no-tokens.mp4"},
		{"init-$RepresentationID$.mp4", 0, 0, "v1", 0, "init-v1.mp4"},
	}
	for _, elem := range testdata {
		r := NewPathReplacer(elem.pattern)
		assert.Equal(t, elem.expect, r.ToPath(elem.time, elem.number, elem.repId, elem.bandwidth))
	}
}
