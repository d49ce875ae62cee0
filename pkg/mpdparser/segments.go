package mpdparser

import (
	"math"
	"strconv"
	"strings"
)

// ByteRange is an inclusive byte span as declared in range attributes.
type ByteRange struct {
	Start uint64 `json:"start"`
	End   uint64 `json:"end"`
}

// InitSegment references the initialization segment shared by the media
// segments of one Representation.
type InitSegment struct {
	URI         string     `json:"uri"`
	ResolvedURI string     `json:"resolvedUri"`
	ByteRange   *ByteRange `json:"byterange,omitempty"`
}

// SegmentEntry is one playable chunk in playback order.
// Timeline restarts at 0 for every Period; a consumer needing a
// continuous timeline across Periods can offset by the periodIndex
// attribute.
type SegmentEntry struct {
	URI         string       `json:"uri"`
	ResolvedURI string       `json:"resolvedUri"`
	Duration    float64      `json:"duration"`
	Timeline    int          `json:"timeline"`
	Number      *uint64      `json:"number,omitempty"`
	Map         *InitSegment `json:"map,omitempty"`
	ByteRange   *ByteRange   `json:"byterange,omitempty"`
}

// GenerateSegments expands one Representation into its ordered segment
// list. Pure: the same input always yields the same output.
//
// The segment description kinds rank template, list, base. A template
// inherited from an ancestor level therefore shadows a list declared
// deeper, matching how the duplicate-description tolerance resolves at
// a single level.
func GenerateSegments(rep Representation) []SegmentEntry {
	si := rep.SegmentInfo
	switch {
	case si.Template != nil && len(si.Timeline) > 0:
		return segmentsFromTimeline(rep)
	case si.Template != nil:
		return segmentsFromDuration(rep)
	case si.List != nil:
		return segmentsFromList(rep)
	case si.Base != nil:
		return segmentsFromBase(rep)
	}
	// No segment description anywhere in the chain: a single unsegmented
	// asset, the consumer decides what to do with it.
	return []SegmentEntry{}
}

// segmentsFromTimeline expands a SegmentTemplate refined by an explicit
// SegmentTimeline. Each S entry contributes r+1 segments of duration d;
// the running start time accumulates across entries and an explicit t
// resets it.
func segmentsFromTimeline(rep Representation) []SegmentEntry {
	tpl := rep.SegmentInfo.Template
	baseUrl := attrString(rep.Attributes, "baseUrl")
	repId := attrString(rep.Attributes, "id")
	bandwidth := attrUint(rep.Attributes, "bandwidth")
	timescale := timescaleOf(tpl.Timescale)
	number := startNumberOf(tpl.StartNumber)
	initSeg := templateInitSegment(tpl, baseUrl, repId, bandwidth)

	var media *PathReplacer
	if tpl.Media != nil {
		media = NewPathReplacer(*tpl.Media)
	}

	var out []SegmentEntry
	var t uint64
	for _, s := range rep.SegmentInfo.Timeline {
		if s.T != nil {
			t = *s.T
		}
		var repeat int64
		if s.R != nil {
			repeat = *s.R
		}
		for r := int64(0); r <= repeat; r++ {
			uri := ""
			if media != nil {
				uri = media.ToPath(t, number, repId, bandwidth)
			}
			n := number
			out = append(out, SegmentEntry{
				URI:         uri,
				ResolvedURI: ResolveUrl(baseUrl, uri),
				Duration:    TLP2Duration(int64(s.D), timescale).Seconds(),
				Number:      &n,
				Map:         initSeg,
			})
			t += s.D
			number++
		}
	}
	return out
}

// segmentsFromDuration expands a SegmentTemplate with implicit
// numbering: fixed-duration segments covering the source (or Period)
// duration, the last one truncated to the exact remainder so durations
// sum up to the whole.
func segmentsFromDuration(rep Representation) []SegmentEntry {
	tpl := rep.SegmentInfo.Template
	if tpl.Duration == nil || *tpl.Duration == 0 {
		return []SegmentEntry{}
	}
	baseUrl := attrString(rep.Attributes, "baseUrl")
	repId := attrString(rep.Attributes, "id")
	bandwidth := attrUint(rep.Attributes, "bandwidth")
	timescale := timescaleOf(tpl.Timescale)
	startNumber := startNumberOf(tpl.StartNumber)
	initSeg := templateInitSegment(tpl, baseUrl, repId, bandwidth)

	total := attrFloat(rep.Attributes, "sourceDuration")
	if d, ok := rep.Attributes["duration"].(float64); ok {
		total = d
	}
	segDuration := TLP2Duration(int64(*tpl.Duration), timescale).Seconds()
	if total <= 0 || segDuration <= 0 {
		return []SegmentEntry{}
	}
	count := int(math.Ceil(total / segDuration))

	var media *PathReplacer
	if tpl.Media != nil {
		media = NewPathReplacer(*tpl.Media)
	}

	out := make([]SegmentEntry, 0, count)
	for i := 0; i < count; i++ {
		duration := segDuration
		if i == count-1 {
			duration = total - segDuration*float64(count-1)
		}
		number := startNumber + uint64(i)
		t := uint64(i) * *tpl.Duration
		uri := ""
		if media != nil {
			uri = media.ToPath(t, number, repId, bandwidth)
		}
		n := number
		out = append(out, SegmentEntry{
			URI:         uri,
			ResolvedURI: ResolveUrl(baseUrl, uri),
			Duration:    duration,
			Number:      &n,
			Map:         initSeg,
		})
	}
	return out
}

// segmentsFromList emits one segment per SegmentURL entry, all sharing
// the list's duration and initialization reference.
func segmentsFromList(rep Representation) []SegmentEntry {
	list := rep.SegmentInfo.List
	baseUrl := attrString(rep.Attributes, "baseUrl")
	timescale := timescaleOf(list.Timescale)

	var duration float64
	if list.Duration != nil {
		duration = TLP2Duration(int64(*list.Duration), timescale).Seconds()
	}
	initSeg := urlTypeInitSegment(list.Initialization, baseUrl)

	out := make([]SegmentEntry, 0, len(list.SegmentURLs))
	for _, su := range list.SegmentURLs {
		uri := ""
		if su.Media != nil {
			uri = *su.Media
		}
		out = append(out, SegmentEntry{
			URI:         uri,
			ResolvedURI: ResolveUrl(baseUrl, uri),
			Duration:    duration,
			Map:         initSeg,
			ByteRange:   parseByteRange(su.MediaRange),
		})
	}
	return out
}

// segmentsFromBase emits a single segment covering the whole
// Representation, addressed by the base URL and an index byte range.
func segmentsFromBase(rep Representation) []SegmentEntry {
	base := rep.SegmentInfo.Base
	baseUrl := attrString(rep.Attributes, "baseUrl")

	duration := attrFloat(rep.Attributes, "sourceDuration")
	if d, ok := rep.Attributes["duration"].(float64); ok {
		duration = d
	}
	return []SegmentEntry{{
		ResolvedURI: baseUrl,
		Duration:    duration,
		Map:         urlTypeInitSegment(base.Initialization, baseUrl),
		ByteRange:   parseByteRange(base.IndexRange),
	}}
}

// templateInitSegment builds the initialization segment reference from
// a template's initialization pattern, once per Representation.
func templateInitSegment(tpl *SegmentTemplateInfo, baseUrl, repId string, bandwidth uint64) *InitSegment {
	if tpl.Initialization == nil {
		return nil
	}
	uri := NewPathReplacer(*tpl.Initialization).ToPath(0, 0, repId, bandwidth)
	return &InitSegment{URI: uri, ResolvedURI: ResolveUrl(baseUrl, uri)}
}

// urlTypeInitSegment builds the initialization segment reference from
// an Initialization element (SegmentList and SegmentBase shapes).
func urlTypeInitSegment(init InitializationInfo, baseUrl string) *InitSegment {
	if init.SourceURL == nil && init.Range == nil {
		return nil
	}
	uri := ""
	if init.SourceURL != nil {
		uri = *init.SourceURL
	}
	return &InitSegment{
		URI:         uri,
		ResolvedURI: ResolveUrl(baseUrl, uri),
		ByteRange:   parseByteRange(init.Range),
	}
}

// parseByteRange parses "start-end" range attributes, both bounds
// inclusive as declared.
func parseByteRange(r *string) *ByteRange {
	if r == nil {
		return nil
	}
	first, last, found := strings.Cut(*r, "-")
	if !found {
		return nil
	}
	start, err := strconv.ParseUint(first, 10, 64)
	if err != nil {
		return nil
	}
	end, err := strconv.ParseUint(last, 10, 64)
	if err != nil {
		return nil
	}
	return &ByteRange{Start: start, End: end}
}

func timescaleOf(v *uint64) uint64 {
	if v == nil || *v == 0 {
		return 1
	}
	return *v
}

func startNumberOf(v *uint64) uint64 {
	if v == nil {
		return 0
	}
	return *v
}

// Attribute readers with the same tolerance as extraction: absent or
// differently-typed values read as the zero value.

func attrString(attrs AttributeSet, name string) string {
	if v, ok := attrs[name].(string); ok {
		return v
	}
	return ""
}

func attrUint(attrs AttributeSet, name string) uint64 {
	if v, ok := attrs[name].(uint64); ok {
		return v
	}
	return 0
}

func attrFloat(attrs AttributeSet, name string) float64 {
	if v, ok := attrs[name].(float64); ok {
		return v
	}
	return 0
}
