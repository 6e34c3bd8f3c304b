package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the business metrics of the engagement pipeline.
type Metrics struct {
	CommandsTotal      *prometheus.CounterVec
	CommandDuration    *prometheus.HistogramVec
	RetriesTotal       *prometheus.CounterVec
	SideEffectFailures *prometheus.CounterVec
	AccessFeeCoins     prometheus.Counter
	NotificationsTotal *prometheus.CounterVec
}

// New registers the metrics with reg. Tests pass a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		CommandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jobmart_commands_total",
			Help: "Engagement commands by outcome",
		}, []string{"command", "outcome"}),
		CommandDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "jobmart_command_duration_seconds",
			Help:    "Duration of engagement commands including retries",
			Buckets: prometheus.DefBuckets,
		}, []string{"command"}),
		RetriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jobmart_command_retries_total",
			Help: "Commands replayed after a transient storage error",
		}, []string{"command"}),
		SideEffectFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jobmart_side_effect_failures_total",
			Help: "Post-commit side effects that failed and went to reconciliation",
		}, []string{"effect"}),
		AccessFeeCoins: factory.NewCounter(prometheus.CounterOpts{
			Name: "jobmart_access_fee_coins_total",
			Help: "Coins charged as access fees",
		}),
		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jobmart_notifications_total",
			Help: "Notification deliveries by event and result",
		}, []string{"event", "result"}),
	}
}

func (m *Metrics) ObserveCommand(command, outcome string, elapsed time.Duration) {
	m.CommandsTotal.WithLabelValues(command, outcome).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
}

func (m *Metrics) Retry(command string) {
	m.RetriesTotal.WithLabelValues(command).Inc()
}

func (m *Metrics) SideEffectFailed(effect string) {
	m.SideEffectFailures.WithLabelValues(effect).Inc()
}

func (m *Metrics) AccessFeeCharged(coins int64) {
	m.AccessFeeCoins.Add(float64(coins))
}

func (m *Metrics) NotificationDelivered(event string, ok bool) {
	result := "ok"
	if !ok {
		result = "failed"
	}
	m.NotificationsTotal.WithLabelValues(event, result).Inc()
}
