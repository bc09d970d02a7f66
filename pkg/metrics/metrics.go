package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Corpus lookup outcome labels.
const (
	LookupHit   = "hit"
	LookupMiss  = "miss"
	LookupFault = "fault"
)

var (
	resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devicekit",
		Subsystem: "resolution",
		Name:      "total",
		Help:      "Resolution outcomes by tier and confidence score.",
	}, []string{"tier", "confidence"})

	corpusLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devicekit",
		Subsystem: "corpus",
		Name:      "lookups_total",
		Help:      "Reference corpus lookups by outcome.",
	}, []string{"outcome"})

	verdicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devicekit",
		Subsystem: "capability",
		Name:      "verdicts_total",
		Help:      "eSIM capability verdicts by support and evidence source.",
	}, []string{"support", "source"})
)

// RecordResolution counts one finished resolution call.
func RecordResolution(tier string, confidence int) {
	resolutions.WithLabelValues(tier, strconv.Itoa(confidence)).Inc()
}

// RecordCorpusLookup counts one corpus lookup outcome.
func RecordCorpusLookup(outcome string) {
	corpusLookups.WithLabelValues(outcome).Inc()
}

// RecordVerdict counts one capability verdict.
func RecordVerdict(support, source string) {
	verdicts.WithLabelValues(support, source).Inc()
}
