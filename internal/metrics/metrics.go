package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the bot.
type Metrics struct {
	registry *prometheus.Registry

	// Telegram metrics
	MessagesReceivedTotal prometheus.Counter
	MessagesSentTotal     prometheus.Counter
	TelegramErrorsTotal   prometheus.Counter

	// Completion metrics
	CompletionsTotal      *prometheus.CounterVec
	CompletionErrorsTotal *prometheus.CounterVec
	CompletionDuration    prometheus.Histogram

	// Session metrics
	SessionsActive     prometheus.Gauge
	SessionResetsTotal prometheus.Counter
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		MessagesReceivedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "telegram_messages_received_total",
				Help: "Total number of Telegram messages received",
			},
		),
		MessagesSentTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "telegram_messages_sent_total",
				Help: "Total number of Telegram messages sent",
			},
		),
		TelegramErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "telegram_errors_total",
				Help: "Total number of Telegram API errors",
			},
		),

		CompletionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "completions_total",
				Help: "Total number of completion requests",
			},
			[]string{"status"},
		),
		CompletionErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "completion_errors_total",
				Help: "Total number of completion failures",
			},
			[]string{"kind"},
		),
		CompletionDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "completion_duration_seconds",
				Help:    "Duration of completion requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		SessionsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sessions_active",
				Help: "Number of user sessions currently held in memory",
			},
		),
		SessionResetsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "session_resets_total",
				Help: "Total number of session resets",
			},
		),
	}

	registry.MustRegister(
		m.MessagesReceivedTotal,
		m.MessagesSentTotal,
		m.TelegramErrorsTotal,
		m.CompletionsTotal,
		m.CompletionErrorsTotal,
		m.CompletionDuration,
		m.SessionsActive,
		m.SessionResetsTotal,
	)

	return m
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry for testing.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
