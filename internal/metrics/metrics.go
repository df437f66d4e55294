package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messmate_orders_created_total",
		Help: "Total number of subscription orders successfully created.",
	})

	OrderTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "messmate_order_transitions_total",
		Help: "Total number of order status transitions, labelled by target status.",
	},
		[]string{"status"},
	)

	NotificationsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messmate_notifications_sent_total",
		Help: "Total number of notifications written.",
	})

	NotificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "messmate_notification_failures_total",
		Help: "Total number of notification writes that failed after a successful primary mutation.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "messmate_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	MessCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "messmate_mess_cache_items",
		Help: "Current number of active messes in the catalog cache.",
	})
)
