package mpdparser

import (
	"testing"

	"github.com/isabella232/mpd-parser/pkg/go-mpd"
	"github.com/stretchr/testify/assert"
)

func baseUrlNodes(contents ...string) []*mpd.Node {
	out := make([]*mpd.Node, 0, len(contents))
	for _, c := range contents {
		out = append(out, &mpd.Node{Tag: "BaseURL", Text: c})
	}
	return out
}

func TestResolveUrl(t *testing.T) {

	var testdata = []struct {
		reference string
		relative  string
		expect    string
	}{
		{"https://example.com/", "a/", "https://example.com/a/"},
		{"https://example.com/a/", "b/", "https://example.com/a/b/"},
		{"https://example.com/sub/manifest.mpd", "seg.m4s", "https://example.com/sub/seg.m4s"},
		{"https://example.com/sub/", "/root.m4s", "https://example.com/root.m4s"},
		{"https://example.com/a/", "https://cdn.example.net/x/", "https://cdn.example.net/x/"},
		{"https://example.com/a/", "", "https://example.com/a/"},
	}
	for _, elem := range testdata {
		assert.Equal(t, elem.expect, ResolveUrl(elem.reference, elem.relative))
	}
}

func TestBuildBaseUrlsIdentity(t *testing.T) {

	refs := []string{"https://a.example.com/", "https://b.example.com/"}
	assert.Equal(t, refs, BuildBaseUrls(refs, nil))
}

func TestBuildBaseUrlsCartesian(t *testing.T) {

	refs := []string{"https://a.example.com/", "https://b.example.com/"}
	nodes := baseUrlNodes("x/", "y/", "z/")
	got := BuildBaseUrls(refs, nodes)
	// |references| x |nodes|, references outer, nodes inner
	assert.Equal(t, []string{
		"https://a.example.com/x/",
		"https://a.example.com/y/",
		"https://a.example.com/z/",
		"https://b.example.com/x/",
		"https://b.example.com/y/",
		"https://b.example.com/z/",
	}, got)
}

func TestBuildBaseUrlsAbsoluteOverride(t *testing.T) {

	got := BuildBaseUrls([]string{"https://a.example.com/deep/path/"},
		baseUrlNodes("https://cdn.example.net/media/"))
	assert.Equal(t, []string{"https://cdn.example.net/media/"}, got)
}

func TestBuildBaseUrlsChained(t *testing.T) {

	// MPD / Period / AdaptationSet / Representation declare one BaseURL each
	urls := []string{"https://example.com/manifest.mpd"}
	urls = BuildBaseUrls(urls, baseUrlNodes("https://example.com/"))
	urls = BuildBaseUrls(urls, baseUrlNodes("a/"))
	urls = BuildBaseUrls(urls, baseUrlNodes("b/"))
	urls = BuildBaseUrls(urls, baseUrlNodes("c/"))
	assert.Equal(t, []string{"https://example.com/a/b/c/"}, urls)
}
