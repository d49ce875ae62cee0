package mpdparser

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
)

// Duration wraps time.Duration to serialize as a human-readable string in JSON.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// ManifestSummary condenses a walk result to one entry per playlist.
type ManifestSummary struct {
	Playlists []PlaylistSummary `json:"playlists"`
}

type PlaylistSummary struct {
	RepresentationID string   `json:"id,omitempty"`
	MimeType         string   `json:"mimeType,omitempty"`
	Codecs           string   `json:"codecs,omitempty"`
	Bandwidth        uint64   `json:"bandwidth,omitempty"`
	BaseURL          string   `json:"baseUrl,omitempty"`
	PeriodIndex      int      `json:"periodIndex"`
	SegmentCount     int      `json:"segmentCount"`
	TotalDuration    Duration `json:"totalDuration"`
}

// Summarize collects per-playlist totals from a flattening result.
func Summarize(playlists []Playlist) *ManifestSummary {
	sum := &ManifestSummary{Playlists: make([]PlaylistSummary, 0, len(playlists))}
	for _, pl := range playlists {
		var total float64
		for _, seg := range pl.Segments {
			total += seg.Duration
		}
		periodIndex, _ := pl.Attributes["periodIndex"].(int)
		sum.Playlists = append(sum.Playlists, PlaylistSummary{
			RepresentationID: attrString(pl.Attributes, "id"),
			MimeType:         attrString(pl.Attributes, "mimeType"),
			Codecs:           attrString(pl.Attributes, "codecs"),
			Bandwidth:        attrUint(pl.Attributes, "bandwidth"),
			BaseURL:          attrString(pl.Attributes, "baseUrl"),
			PeriodIndex:      periodIndex,
			SegmentCount:     len(pl.Segments),
			TotalDuration:    Duration(time.Duration(total * float64(time.Second))),
		})
	}
	return sum
}

// Log renders the summary as one text line per playlist.
func (m *ManifestSummary) Log(logger zerolog.Logger) {
	for _, pl := range m.Playlists {
		codecs := ""
		if pl.Codecs != "" {
			codecs = "/" + pl.Codecs
		}
		logger.Info().Msgf("%30s: p%d %8d bit/s %4d segments %8s",
			pl.MimeType+codecs, pl.PeriodIndex, pl.Bandwidth, pl.SegmentCount,
			RoundTo(time.Duration(pl.TotalDuration), 10*time.Millisecond))
	}
}
