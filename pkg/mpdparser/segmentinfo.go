package mpdparser

import (
	"strconv"

	"github.com/isabella232/mpd-parser/pkg/go-mpd"
)

// TimelineS is one S element of a SegmentTimeline: duration d in
// timescale units, optional explicit start t, optional repeat count r.
type TimelineS struct {
	T *uint64
	D uint64
	R *int64
}

// SegmentTemplateInfo captures a SegmentTemplate element.
type SegmentTemplateInfo struct {
	Media                  *string
	Initialization         *string
	Duration               *uint64
	Timescale              *uint64
	StartNumber            *uint64
	PresentationTimeOffset *uint64
}

// InitializationInfo captures an Initialization child or the
// initialization attribute of a SegmentList.
type InitializationInfo struct {
	SourceURL *string
	Range     *string
}

// SegmentURLInfo captures one SegmentURL entry of a SegmentList.
type SegmentURLInfo struct {
	Media      *string
	MediaRange *string
}

// SegmentListInfo captures a SegmentList element.
type SegmentListInfo struct {
	Duration       *uint64
	Timescale      *uint64
	SegmentURLs    []SegmentURLInfo
	Initialization InitializationInfo
}

// SegmentBaseInfo captures a SegmentBase element.
type SegmentBaseInfo struct {
	IndexRange      *string
	IndexRangeExact *bool
	Initialization  InitializationInfo
}

// SegmentInfo is the segment description found at one hierarchy level.
// At most one of Template, List and Base is set by extraction; across
// levels the members inherit independently, so a merged SegmentInfo may
// carry several.
type SegmentInfo struct {
	Template *SegmentTemplateInfo
	List     *SegmentListInfo
	Base     *SegmentBaseInfo
	Timeline []TimelineS
}

// Empty reports whether no segment description was found.
func (si SegmentInfo) Empty() bool {
	return si.Template == nil && si.List == nil && si.Base == nil && len(si.Timeline) == 0
}

// ExtractSegmentInfo inspects the direct children of a hierarchy node
// for a segment description. A manifest declaring more than one kind at
// the same level violates the schema; the first of SegmentTemplate,
// SegmentList, SegmentBase wins and the rest is ignored.
func ExtractSegmentInfo(node *mpd.Node) SegmentInfo {
	var info SegmentInfo
	if st := node.FirstChild("SegmentTemplate"); st != nil {
		info.Template = extractTemplate(st)
		if stl := st.FirstChild("SegmentTimeline"); stl != nil {
			info.Timeline = extractTimeline(stl)
		}
		return info
	}
	if sl := node.FirstChild("SegmentList"); sl != nil {
		info.List = extractList(sl)
		return info
	}
	if sb := node.FirstChild("SegmentBase"); sb != nil {
		info.Base = extractBase(sb)
		return info
	}
	return info
}

// mergeSegmentInfo combines the parent level's segment description with
// this level's. Each member inherits independently: a member this level
// does not declare stays at the parent's value.
func mergeSegmentInfo(parent, child SegmentInfo) SegmentInfo {
	out := parent
	if child.Template != nil {
		out.Template = child.Template
	}
	if child.List != nil {
		out.List = child.List
	}
	if child.Base != nil {
		out.Base = child.Base
	}
	if len(child.Timeline) > 0 {
		out.Timeline = child.Timeline
	}
	return out
}

func extractTemplate(node *mpd.Node) *SegmentTemplateInfo {
	t := new(SegmentTemplateInfo)
	t.Media = stringAttr(node, "media")
	t.Initialization = stringAttr(node, "initialization")
	t.Duration = uintAttr(node, "duration")
	t.Timescale = uintAttr(node, "timescale")
	t.StartNumber = uintAttr(node, "startNumber")
	t.PresentationTimeOffset = uintAttr(node, "presentationTimeOffset")
	return t
}

func extractTimeline(node *mpd.Node) []TimelineS {
	entries := node.FindChildren("S")
	out := make([]TimelineS, 0, len(entries))
	for _, s := range entries {
		e := TimelineS{T: uintAttr(s, "t"), R: intAttr(s, "r")}
		if d := uintAttr(s, "d"); d != nil {
			e.D = *d
		}
		out = append(out, e)
	}
	return out
}

func extractList(node *mpd.Node) *SegmentListInfo {
	l := new(SegmentListInfo)
	l.Duration = uintAttr(node, "duration")
	l.Timescale = uintAttr(node, "timescale")
	l.SegmentURLs = make([]SegmentURLInfo, 0)
	for _, su := range node.FindChildren("SegmentURL") {
		l.SegmentURLs = append(l.SegmentURLs, SegmentURLInfo{
			Media:      stringAttr(su, "media"),
			MediaRange: stringAttr(su, "mediaRange"),
		})
	}
	l.Initialization = extractInitialization(node)
	return l
}

func extractBase(node *mpd.Node) *SegmentBaseInfo {
	b := new(SegmentBaseInfo)
	b.IndexRange = stringAttr(node, "indexRange")
	b.IndexRangeExact = boolAttr(node, "indexRangeExact")
	b.Initialization = extractInitialization(node)
	return b
}

func extractInitialization(node *mpd.Node) InitializationInfo {
	init := node.FirstChild("Initialization")
	if init == nil {
		return InitializationInfo{}
	}
	return InitializationInfo{
		SourceURL: stringAttr(init, "sourceURL"),
		Range:     stringAttr(init, "range"),
	}
}

// Attribute accessors with the tolerant coercion policy: a missing or
// malformed value yields nil, never an error.

func stringAttr(node *mpd.Node, name string) *string {
	if v, ok := node.AttrValue(name); ok {
		return &v
	}
	return nil
}

func uintAttr(node *mpd.Node, name string) *uint64 {
	v, ok := node.AttrValue(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func intAttr(node *mpd.Node, name string) *int64 {
	v, ok := node.AttrValue(name)
	if !ok {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func boolAttr(node *mpd.Node, name string) *bool {
	v, ok := node.AttrValue(name)
	if !ok {
		return nil
	}
	b := v == "true" || v == "1"
	return &b
}
