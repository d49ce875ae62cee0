package mpdparser

import (
	"errors"
	"strconv"

	"github.com/isabella232/mpd-parser/pkg/go-mpd"
	"github.com/isabella232/mpd-parser/pkg/go-xsd-types"
	"github.com/rs/zerolog"
)

// ErrNoPeriods is returned for a manifest whose MPD element declares no
// Period children. This is the one structural defect that stops the
// walk; everything else degrades gracefully.
var ErrNoPeriods = errors.New("no periods in MPD")

// AttributeSet is the merged attribute state at one point of the
// MPD/Period/AdaptationSet/Representation hierarchy. Values are strings
// as declared, uint64 for the known integer attributes, float64 for
// durations converted to seconds, or a nested AttributeSet.
type AttributeSet map[string]any

// Integer-valued attributes worth using as numbers downstream.
var numericAttrs = map[string]bool{
	"bandwidth":              true,
	"width":                  true,
	"height":                 true,
	"timescale":              true,
	"startNumber":            true,
	"presentationTimeOffset": true,
	"audioSamplingRate":      true,
}

// Options configures one walk over a manifest snapshot.
type Options struct {
	// NOW is the client wall clock in milliseconds since the epoch.
	NOW int64
	// ClientOffset is the offset between client and server clock.
	ClientOffset float64
	// ManifestURI is the fetch location of the manifest, the reference
	// all relative BaseURL elements resolve against.
	ManifestURI string
	// Logger receives warnings about tolerated malformations.
	Logger zerolog.Logger
}

// Representation is one fully resolved playback alternative: the merged
// attributes of its ancestor chain with baseUrl picked from the resolved
// alternatives, plus the merged segment description.
type Representation struct {
	Attributes  AttributeSet
	SegmentInfo SegmentInfo
}

// InheritAttributes flattens the manifest tree into one Representation
// per (resolved base URL x Representation element) pair. Attributes
// declared deeper always override inherited ones; BaseURL alternatives
// multiply per level; segment descriptions inherit member by member.
// Emission order is Period, AdaptationSet, Representation document
// order, base URL alternatives innermost.
func InheritAttributes(root *mpd.Node, opts Options) ([]Representation, error) {
	if root == nil {
		return nil, ErrNoPeriods
	}
	logger := opts.Logger
	periods := root.FindChildren("Period")
	if len(periods) == 0 {
		return nil, ErrNoPeriods
	}

	mpdAttrs := parseAttributes(root)
	var sourceDuration float64
	if secs, ok := durationAttrSeconds(root, "mediaPresentationDuration", logger); ok {
		sourceDuration = secs
		mpdAttrs["mediaPresentationDuration"] = secs
	}
	mpdAttrs["sourceDuration"] = sourceDuration
	mpdAttrs["NOW"] = opts.NOW
	mpdAttrs["clientOffset"] = opts.ClientOffset
	mpdBaseUrls := BuildBaseUrls([]string{opts.ManifestURI}, root.FindChildren("BaseURL"))

	var out []Representation
	for periodIndex, period := range periods {
		periodAttrs := mergeAttributes(mpdAttrs, parseAttributes(period))
		periodAttrs["periodIndex"] = periodIndex
		if secs, ok := durationAttrSeconds(period, "duration", logger); ok {
			periodAttrs["duration"] = secs
		}
		periodBaseUrls := BuildBaseUrls(mpdBaseUrls, period.FindChildren("BaseURL"))
		periodSegInfo := ExtractSegmentInfo(period)

		for _, as := range period.FindChildren("AdaptationSet") {
			asAttrs := mergeAttributes(periodAttrs, parseAttributes(as))
			asAttrs["role"] = roleAttributes(as)
			asBaseUrls := BuildBaseUrls(periodBaseUrls, as.FindChildren("BaseURL"))
			asSegInfo := mergeSegmentInfo(periodSegInfo, ExtractSegmentInfo(as))

			for _, rep := range as.FindChildren("Representation") {
				repAttrs := mergeAttributes(asAttrs, parseAttributes(rep))
				repBaseUrls := BuildBaseUrls(asBaseUrls, rep.FindChildren("BaseURL"))
				repSegInfo := mergeSegmentInfo(asSegInfo, ExtractSegmentInfo(rep))

				for _, baseUrl := range repBaseUrls {
					attrs := mergeAttributes(repAttrs, AttributeSet{"baseUrl": baseUrl})
					out = append(out, Representation{
						Attributes:  attrs,
						SegmentInfo: repSegInfo,
					})
				}
			}
		}
	}
	RepresentationsEmitted.Add(float64(len(out)))
	return out, nil
}

// mergeAttributes derives a new AttributeSet from a parent's, the
// child's entries winning on key collision. Neither input is mutated.
func mergeAttributes(parent, child AttributeSet) AttributeSet {
	out := make(AttributeSet, len(parent)+len(child))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range child {
		out[k] = v
	}
	return out
}

// parseAttributes captures all attributes a node declares, coercing the
// known integer attributes to uint64. A malformed number stays a string
// rather than failing the walk.
func parseAttributes(node *mpd.Node) AttributeSet {
	out := make(AttributeSet, len(node.Attr))
	for _, a := range node.Attr {
		if numericAttrs[a.Name] {
			if n, err := strconv.ParseUint(a.Value, 10, 64); err == nil {
				out[a.Name] = n
				continue
			}
		}
		out[a.Name] = a.Value
	}
	return out
}

// roleAttributes returns the attributes of the first Role child, or an
// empty set when the AdaptationSet declares none.
func roleAttributes(as *mpd.Node) AttributeSet {
	role := as.FirstChild("Role")
	if role == nil {
		return AttributeSet{}
	}
	return parseAttributes(role)
}

// durationAttrSeconds reads an ISO-8601 duration attribute and converts
// it to seconds. Unparsable values are logged and skipped.
func durationAttrSeconds(node *mpd.Node, name string, logger zerolog.Logger) (float64, bool) {
	v, ok := node.AttrValue(name)
	if !ok {
		return 0, false
	}
	d, err := xsd.DurationFromString(v)
	if err != nil {
		logger.Warn().Err(err).Str("attribute", name).Str("value", v).Msg("Parse duration")
		return 0, false
	}
	nsec, err := d.ToNanoseconds()
	if err != nil {
		logger.Warn().Err(err).Str("attribute", name).Str("value", v).Msg("Convert duration")
		return 0, false
	}
	return float64(nsec) / 1e9, true
}
