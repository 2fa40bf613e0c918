// Package metrics records model construction and analysis with Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Representation labels.
const (
	ReprFloat  = "float"
	ReprExact  = "exact"
	ReprSparse = "sparse"
)

// Recorder receives construction and analysis events.
type Recorder interface {
	ObserveBuild(repr string, elapsed time.Duration, edges int)
	ObserveRegularity(power int, regular bool)
}

// Nop discards every observation.
type Nop struct{}

func (Nop) ObserveBuild(string, time.Duration, int) {}
func (Nop) ObserveRegularity(int, bool)             {}

// Prometheus is a Recorder backed by a private registry.
type Prometheus struct {
	registry    *prometheus.Registry
	builds      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	transitions *prometheus.GaugeVec
	checks      *prometheus.CounterVec
}

// NewPrometheus creates and registers the boardchain collectors.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boardchain_builds_total",
				Help: "Total number of transition models built",
			},
			[]string{"repr"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "boardchain_build_duration_seconds",
				Help:    "Duration of transition model construction",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
			[]string{"repr"},
		),
		transitions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "boardchain_transitions",
				Help: "Number of transitions in the most recently built model",
			},
			[]string{"repr"},
		),
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "boardchain_regularity_checks_total",
				Help: "Regularity checks by outcome",
			},
			[]string{"power", "result"},
		),
	}
	p.registry.MustRegister(p.builds, p.duration, p.transitions, p.checks)
	return p
}

func (p *Prometheus) ObserveBuild(repr string, elapsed time.Duration, edges int) {
	p.builds.WithLabelValues(repr).Inc()
	p.duration.WithLabelValues(repr).Observe(elapsed.Seconds())
	p.transitions.WithLabelValues(repr).Set(float64(edges))
}

func (p *Prometheus) ObserveRegularity(power int, regular bool) {
	result := "irregular"
	if regular {
		result = "regular"
	}
	p.checks.WithLabelValues(strconv.Itoa(power), result).Inc()
}

// Registry exposes the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
