// Package observability collects Prometheus metrics for the pricing
// core. The registry is instance-scoped so tests never share state.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics gathers counters for the pricing engines.
type Metrics struct {
	registry          *prometheus.Registry
	handler           http.Handler
	rateFallbacks     *prometheus.CounterVec
	quoteRecomputes   prometheus.Counter
	campaignEstimates prometheus.Counter
}

// NewMetrics initialises the registry and the core counters.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	fallbacks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "marquee_rate_lookup_fallback_total",
		Help: "Rate lookups that resolved through the fallback card, by category key.",
	}, []string{"category"})
	recomputes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marquee_quotation_recompute_total",
		Help: "Full quotation pricing recomputations.",
	})
	estimates := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "marquee_campaign_estimate_total",
		Help: "Campaign price/impression estimate runs.",
	})
	registry.MustRegister(fallbacks, recomputes, estimates)
	return &Metrics{
		registry:          registry,
		handler:           promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		rateFallbacks:     fallbacks,
		quoteRecomputes:   recomputes,
		campaignEstimates: estimates,
	}
}

// Handler returns the http.Handler for a metrics endpoint; wiring it to a
// listener is the caller's business.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// IncRateFallback records a lookup that missed the rate card.
func (m *Metrics) IncRateFallback(category string) {
	if m == nil || m.rateFallbacks == nil {
		return
	}
	if category == "" {
		category = "unknown"
	}
	m.rateFallbacks.WithLabelValues(category).Inc()
}

// IncQuoteRecompute records one full quotation recomputation.
func (m *Metrics) IncQuoteRecompute() {
	if m == nil || m.quoteRecomputes == nil {
		return
	}
	m.quoteRecomputes.Inc()
}

// IncCampaignEstimate records one campaign estimate run.
func (m *Metrics) IncCampaignEstimate() {
	if m == nil || m.campaignEstimates == nil {
		return
	}
	m.campaignEstimates.Inc()
}

// Registerer exposes the registry for auxiliary metrics.
func (m *Metrics) Registerer() prometheus.Registerer {
	if m == nil {
		return prometheus.DefaultRegisterer
	}
	return m.registry
}
