package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/isabella232/mpd-parser/pkg/mpdparser"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36"

func main() {

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}).With().Timestamp().Logger()

	url := flag.String("url", "", "Manifest URL")
	file := flag.String("file", "", "Manifest file (instead of fetching)")
	debug := flag.Bool("debug", false, "set log level to debug")
	summaryOnly := flag.Bool("summary", false, "log the per-playlist summary instead of dumping JSON")
	clientOffset := flag.Float64("clientoffset", 0, "Client clock offset in seconds")
	listen := flag.String("metricsport", "", "socket:Port for the metrics endpoint (e.g. :9090)")

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if *url == "" && *file == "" {
		flag.Usage()
		return
	}

	if *listen != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			logger.Fatal().Err(http.ListenAndServe(*listen, nil)).Send()
		}()
		logger.Info().Msgf("Metrics listening on %s", *listen)
	}

	manifest, manifestUri, err := loadManifest(*url, *file)
	if err != nil {
		logger.Fatal().Err(err).Msg("Load manifest")
	}

	playlists, err := mpdparser.Parse(manifest, mpdparser.Options{
		NOW:          time.Now().UnixMilli(),
		ClientOffset: *clientOffset,
		ManifestURI:  manifestUri,
		Logger:       logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Flatten manifest")
	}

	mpdparser.Summarize(playlists).Log(logger)

	if !*summaryOnly {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(playlists); err != nil {
			logger.Fatal().Err(err).Msg("Encode playlists")
		}
	}
}

// loadManifest reads the manifest from a file or fetches it over HTTP.
// The returned URI is the reference for relative BaseURL resolution.
func loadManifest(url, file string) ([]byte, string, error) {
	if file != "" {
		contents, err := os.ReadFile(file)
		return contents, url, err
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", DefaultUserAgent)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	contents, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", errors.New("Not successful")
	}
	return contents, url, nil
}
