// Package metrics exposes prometheus counters for the chat service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics counts chat replies, booking dialogues, model calls and VIN
// lookups. A nil *ChatMetrics is a valid no-op.
type ChatMetrics struct {
	responsesTotal  *prometheus.CounterVec
	sessionsTotal   *prometheus.CounterVec
	llmTotal        *prometheus.CounterVec
	llmLatency      *prometheus.HistogramVec
	vinDecodesTotal *prometheus.CounterVec
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		responsesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bodyshop",
			Subsystem: "chat",
			Name:      "responses_total",
			Help:      "Chat replies by answering path and degradation reason",
		}, []string{"source", "reason"}),
		sessionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bodyshop",
			Subsystem: "booking",
			Name:      "sessions_total",
			Help:      "Booking dialogue lifecycle events",
		}, []string{"event"}),
		llmTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bodyshop",
			Subsystem: "llm",
			Name:      "requests_total",
			Help:      "Hosted model requests by provider and status",
		}, []string{"provider", "status"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bodyshop",
			Subsystem: "llm",
			Name:      "request_duration_seconds",
			Help:      "Latency of hosted model requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		vinDecodesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bodyshop",
			Subsystem: "vin",
			Name:      "decodes_total",
			Help:      "VIN lookups by whether the manufacturer was identified",
		}, []string{"make_known"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.responsesTotal, m.sessionsTotal, m.llmTotal, m.llmLatency, m.vinDecodesTotal)
	return m
}

func (m *ChatMetrics) ObserveResponse(source, reason string) {
	if m == nil {
		return
	}
	if reason == "" {
		reason = "none"
	}
	m.responsesTotal.WithLabelValues(source, reason).Inc()
}

// ObserveSession records a booking event such as "started" or "completed".
func (m *ChatMetrics) ObserveSession(event string) {
	if m == nil {
		return
	}
	m.sessionsTotal.WithLabelValues(event).Inc()
}

func (m *ChatMetrics) ObserveLLM(provider string, ok bool, seconds float64) {
	if m == nil {
		return
	}
	status := "ok"
	if !ok {
		status = "error"
	}
	m.llmTotal.WithLabelValues(provider, status).Inc()
	m.llmLatency.WithLabelValues(provider).Observe(seconds)
}

func (m *ChatMetrics) ObserveVINDecode(makeKnown bool) {
	if m == nil {
		return
	}
	label := "false"
	if makeKnown {
		label = "true"
	}
	m.vinDecodesTotal.WithLabelValues(label).Inc()
}
