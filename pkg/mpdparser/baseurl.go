package mpdparser

import (
	"net/url"

	"github.com/isabella232/mpd-parser/pkg/go-mpd"
)

// ResolveUrl combines a reference URL with a URL reference per RFC 3986.
// An absolute relative part replaces the reference entirely, otherwise it
// is resolved against the reference, the reference path acting as a
// directory when it ends in a slash.
func ResolveUrl(reference, relative string) string {
	if relative == "" {
		return reference
	}
	rel, err := url.Parse(relative)
	if err != nil {
		return relative
	}
	if rel.IsAbs() {
		return rel.String()
	}
	base, err := url.Parse(reference)
	if err != nil {
		return relative
	}
	return base.ResolveReference(rel).String()
}

// BuildBaseUrls expands a set of inherited reference URLs by the BaseURL
// elements declared at one level. Without BaseURL elements the references
// pass through unchanged. Otherwise the result is the Cartesian product,
// references outer, elements inner, so alternatives declared closer to
// the root vary slowest.
func BuildBaseUrls(references []string, baseUrlNodes []*mpd.Node) []string {
	if len(baseUrlNodes) == 0 {
		return references
	}
	out := make([]string, 0, len(references)*len(baseUrlNodes))
	for _, ref := range references {
		for _, node := range baseUrlNodes {
			out = append(out, ResolveUrl(ref, node.Content()))
		}
	}
	return out
}
