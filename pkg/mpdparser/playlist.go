package mpdparser

import (
	"github.com/isabella232/mpd-parser/pkg/go-mpd"
)

// Playlist is the per-Representation view handed to a playback engine:
// the merged attributes plus the generated segment sequence.
type Playlist struct {
	Attributes AttributeSet   `json:"attributes"`
	Segments   []SegmentEntry `json:"segments"`
}

// ToPlaylists runs the segment generator once per Representation,
// keeping the walker's emission order.
func ToPlaylists(representations []Representation) []Playlist {
	out := make([]Playlist, 0, len(representations))
	for _, rep := range representations {
		out = append(out, Playlist{
			Attributes: rep.Attributes,
			Segments:   GenerateSegments(rep),
		})
	}
	return out
}

// Parse flattens one manifest snapshot: decode, inherit, generate.
func Parse(manifest []byte, opts Options) ([]Playlist, error) {
	root, err := mpd.Decode(manifest)
	if err != nil {
		return nil, err
	}
	representations, err := InheritAttributes(root, opts)
	if err != nil {
		return nil, err
	}
	ManifestsProcessed.Inc()
	return ToPlaylists(representations), nil
}
