// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics interface consumed by the pipeline and service
// layers.
type Recorder interface {
	RecordLLMCall(kind string, success bool, duration time.Duration)
	RecordFallbackReply()
	RecordFollowUpScheduled()
	RecordFollowUpDelivered()
	RecordFollowUpSuppressed()
	RecordFollowUpCancelled()
	RecordSummaryCacheHit()
	RecordSummaryDerived()
}

// Collector implements Recorder with Prometheus metrics.
type Collector struct {
	llmCalls            *prometheus.CounterVec
	llmLatency          prometheus.Histogram
	fallbackReplies     prometheus.Counter
	followUpsScheduled  prometheus.Counter
	followUpsDelivered  prometheus.Counter
	followUpsSuppressed prometheus.Counter
	followUpsCancelled  prometheus.Counter
	summaryCacheHits    prometheus.Counter
	summariesDerived    prometheus.Counter
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		llmCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "echod_llm_calls_total",
			Help: "Text-generation calls by kind and outcome.",
		}, []string{"kind", "outcome"}),
		llmLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "echod_llm_latency_seconds",
			Help:    "Text-generation call latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}),
		fallbackReplies: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echod_fallback_replies_total",
			Help: "Check-in replies served from the hardcoded fallback.",
		}),
		followUpsScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echod_followups_scheduled_total",
			Help: "Follow-up messages scheduled.",
		}),
		followUpsDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echod_followups_delivered_total",
			Help: "Follow-up messages delivered.",
		}),
		followUpsSuppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echod_followups_suppressed_total",
			Help: "Follow-up messages suppressed by policy.",
		}),
		followUpsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echod_followups_cancelled_total",
			Help: "Pending follow-ups cancelled by a newer message.",
		}),
		summaryCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echod_summary_cache_hits_total",
			Help: "Daily summary requests served from the cache.",
		}),
		summariesDerived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "echod_summaries_derived_total",
			Help: "Daily summaries derived on demand.",
		}),
	}
	reg.MustRegister(c.llmCalls, c.llmLatency, c.fallbackReplies,
		c.followUpsScheduled, c.followUpsDelivered, c.followUpsSuppressed,
		c.followUpsCancelled, c.summaryCacheHits, c.summariesDerived)
	return c
}

func (c *Collector) RecordLLMCall(kind string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	c.llmCalls.WithLabelValues(kind, outcome).Inc()
	c.llmLatency.Observe(duration.Seconds())
}

func (c *Collector) RecordFallbackReply()      { c.fallbackReplies.Inc() }
func (c *Collector) RecordFollowUpScheduled()  { c.followUpsScheduled.Inc() }
func (c *Collector) RecordFollowUpDelivered()  { c.followUpsDelivered.Inc() }
func (c *Collector) RecordFollowUpSuppressed() { c.followUpsSuppressed.Inc() }
func (c *Collector) RecordFollowUpCancelled()  { c.followUpsCancelled.Inc() }
func (c *Collector) RecordSummaryCacheHit()    { c.summaryCacheHits.Inc() }
func (c *Collector) RecordSummaryDerived()     { c.summariesDerived.Inc() }

// Handler returns the HTTP handler exposing the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Nop is a Recorder that discards everything. Used in tests.
type Nop struct{}

var _ Recorder = Nop{}

func (Nop) RecordLLMCall(string, bool, time.Duration) {}
func (Nop) RecordFallbackReply()                      {}
func (Nop) RecordFollowUpScheduled()                  {}
func (Nop) RecordFollowUpDelivered()                  {}
func (Nop) RecordFollowUpSuppressed()                 {}
func (Nop) RecordFollowUpCancelled()                  {}
func (Nop) RecordSummaryCacheHit()                    {}
func (Nop) RecordSummaryDerived()                     {}
