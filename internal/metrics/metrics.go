package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsInvoked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashbot_commands_invoked_total",
		Help: "Total number of slash command invocations",
	}, []string{"command"})

	ReplyDeliveryFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashbot_reply_delivery_failures_total",
		Help: "Total number of replies Discord did not accept",
	}, []string{"command"})

	CommandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "slashbot_command_duration_seconds",
		Help:    "Time from dispatch to handler return",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})

	GatewayLatency = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slashbot_gateway_latency_milliseconds",
		Help: "Last gateway heartbeat round trip read by /ping",
	})
)
