package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var NotificationPublishTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notification_publish_total",
		Help: "Total number of notification publish attempts",
	},
	[]string{"event", "result"},
)
