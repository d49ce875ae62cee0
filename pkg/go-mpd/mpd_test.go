package mpd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testManifest = `<?xml version="1.0" encoding="utf-8"?>
<MPD xmlns="urn:mpeg:dash:schema:mpd:2011" type="static" mediaPresentationDuration="PT30S">
  <BaseURL>https://example.com/</BaseURL>
  <Period>
    <AdaptationSet mimeType="video/mp4" segmentAlignment="true">
      <SegmentTemplate media="$RepresentationID$/$Number$.m4s" timescale="48000" duration="95232"/>
      <Representation id="v0" bandwidth="5000000" width="1920" height="1080"/>
      <Representation id="v1" bandwidth="1000000" width="1280" height="720"/>
    </AdaptationSet>
  </Period>
</MPD>`

func TestDecode(t *testing.T) {

	root, err := Decode([]byte(testManifest))
	assert.NoError(t, err)
	assert.Equal(t, "MPD", root.Tag)

	// Namespace declarations are dropped, declared attributes kept in order
	assert.Equal(t, []Attr{
		{Name: "type", Value: "static"},
		{Name: "mediaPresentationDuration", Value: "PT30S"},
	}, root.Attr)

	v, ok := root.AttrValue("type")
	assert.True(t, ok)
	assert.Equal(t, "static", v)
	_, ok = root.AttrValue("minimumUpdatePeriod")
	assert.False(t, ok)

	base := root.FirstChild("BaseURL")
	assert.NotNil(t, base)
	assert.Equal(t, "https://example.com/", base.Content())

	periods := root.FindChildren("Period")
	assert.Len(t, periods, 1)

	as := periods[0].FirstChild("AdaptationSet")
	assert.NotNil(t, as)
	reps := as.FindChildren("Representation")
	assert.Len(t, reps, 2)
	id0, _ := reps[0].AttrValue("id")
	id1, _ := reps[1].AttrValue("id")
	assert.Equal(t, "v0", id0)
	assert.Equal(t, "v1", id1)

	// Direct children only
	assert.Nil(t, root.FirstChild("Representation"))
}

func TestDecodeInvalid(t *testing.T) {

	_, err := Decode([]byte("not an mpd"))
	assert.Error(t, err)
}
