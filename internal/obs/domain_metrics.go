package obs

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// PricingComputeTotal counts pricing engine invocations by call site.
	PricingComputeTotal *prometheus.CounterVec
	// ExportRenderDuration records itinerary render latency in milliseconds by format.
	ExportRenderDuration *prometheus.HistogramVec
	// DirectoryCacheTotal counts directory cache lookups by outcome.
	DirectoryCacheTotal *prometheus.CounterVec
	// NarrativeRequestTotal counts narrative generation outcomes.
	NarrativeRequestTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		PricingComputeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pricing_compute_total",
			Help:      "Count of pricing engine invocations by call site.",
		}, []string{"surface"})
		ExportRenderDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_render_duration_ms",
			Help:      "Latency for itinerary document rendering in milliseconds.",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"format"})
		DirectoryCacheTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "directory_cache_total",
			Help:      "Count of directory cache lookups by outcome.",
		}, []string{"entity", "outcome"})
		NarrativeRequestTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "narrative_request_total",
			Help:      "Count of itinerary narrative generation outcomes.",
		}, []string{"result"})

		mustRegisterCollector(reg, PricingComputeTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				PricingComputeTotal = v
			}
		})
		mustRegisterCollector(reg, ExportRenderDuration, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.HistogramVec); ok {
				ExportRenderDuration = v
			}
		})
		mustRegisterCollector(reg, DirectoryCacheTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				DirectoryCacheTotal = v
			}
		})
		mustRegisterCollector(reg, NarrativeRequestTotal, func(existing prometheus.Collector) {
			if v, ok := existing.(*prometheus.CounterVec); ok {
				NarrativeRequestTotal = v
			}
		})
	})
}

func mustRegisterCollector(reg prometheus.Registerer, collector prometheus.Collector, reuse func(prometheus.Collector)) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if reuse != nil {
				reuse(are.ExistingCollector)
			}
			return
		}
		panic(fmt.Errorf("register domain metric: %w", err))
	}
}
