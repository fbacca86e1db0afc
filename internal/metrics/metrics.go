// Package metrics holds the Prometheus collectors describing the resolved environment
// and the publication API.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yourorg/amm-envconfig/internal/resolver"
)

// Metrics groups the service collectors
type Metrics struct {
	activeChain        *prometheus.GaugeVec
	bundleInfo         *prometheus.GaugeVec
	resolutionWarnings *prometheus.CounterVec
	resolutionFailures *prometheus.CounterVec
	requestCounter     *prometheus.CounterVec
	requestDuration    *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		activeChain: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "envconfig_active_chain_id",
				Help: "Chain id of the active environment",
			},
			[]string{"key"},
		),
		bundleInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "envconfig_bundle_info",
				Help: "Always 1, labelled with the resolved bundle identity",
			},
			[]string{"key", "chain_id", "contract"},
		),
		resolutionWarnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "envconfig_resolution_warnings_total",
				Help: "Non-fatal findings raised while resolving the environment",
			},
			[]string{"kind"},
		),
		resolutionFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "envconfig_resolution_failures_total",
				Help: "Fatal configuration errors raised while resolving the environment",
			},
			[]string{"kind"},
		),
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "envconfig_http_requests_total",
				Help: "Total number of API requests processed",
			},
			[]string{"route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "envconfig_http_request_duration_seconds",
				Help:    "API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.activeChain,
		m.bundleInfo,
		m.resolutionWarnings,
		m.resolutionFailures,
		m.requestCounter,
		m.requestDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveBundle records the identity of a successfully resolved bundle
func (m *Metrics) ObserveBundle(b resolver.Bundle) {
	n := b.Network()
	key := b.Key().String()
	m.activeChain.WithLabelValues(key).Set(float64(n.ID))
	m.bundleInfo.WithLabelValues(key, strconv.FormatUint(n.ID, 10), b.ContractAddress()).Set(1)
}

// ObserveWarnings counts warnings by kind
func (m *Metrics) ObserveWarnings(warnings []resolver.Warning) {
	for _, w := range warnings {
		m.resolutionWarnings.WithLabelValues(string(w.Kind)).Inc()
	}
}

// ObserveFailure counts a fatal resolution error. Errors that are not configuration
// errors are counted under "Unknown".
func (m *Metrics) ObserveFailure(err error) {
	kind := "Unknown"
	if k, ok := resolver.KindOf(err); ok {
		kind = string(k)
	}
	m.resolutionFailures.WithLabelValues(kind).Inc()
}

// ObserveRequest records one served API request
func (m *Metrics) ObserveRequest(route string, status int, seconds float64) {
	m.requestCounter.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route).Observe(seconds)
}
