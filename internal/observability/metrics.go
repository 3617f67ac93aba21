package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	commandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "attendance_bot",
		Subsystem: "commands",
		Name:      "handled_total",
		Help:      "Commands handled, labelled by command and outcome.",
	}, []string{"command", "outcome"})
	lastCheckInGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "attendance_bot",
		Subsystem: "attendance",
		Name:      "last_check_in_timestamp_seconds",
		Help:      "Unix timestamp of the most recent check-in stored.",
	})
)

func init() {
	prometheus.MustRegister(commandsTotal, lastCheckInGauge)
}

// RecordCommand counts one handled command with its outcome.
func RecordCommand(command, outcome string) {
	commandsTotal.WithLabelValues(command, outcome).Inc()
}

// RecordCheckIn updates the check-in watermark gauge.
func RecordCheckIn(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastCheckInGauge.Set(float64(ts.Unix()))
}
