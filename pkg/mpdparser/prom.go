package mpdparser

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "mpdparser"
)

var (
	ManifestsProcessed     prometheus.Counter
	RepresentationsEmitted prometheus.Counter
)

func init() {
	ManifestsProcessed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "manifests_processed",
		Help:      "Processed Manifests",
	})
	RepresentationsEmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "representations_emitted",
		Help:      "Representations emitted by the inheritance walk",
	})
	prometheus.MustRegister(ManifestsProcessed, RepresentationsEmitted)
}
