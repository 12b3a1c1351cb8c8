package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RatesQuotedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "packetery_rates_quoted_total",
		Help: "Total number of shipping rate requests by outcome.",
	},
		[]string{"outcome"},
	)

	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packetery_orders_placed_total",
		Help: "Total number of order shipping snapshots stored at placement.",
	})

	PricingRulesSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packetery_pricing_rules_saved_total",
		Help: "Total number of pricing rules successfully saved.",
	})

	PacketsExportedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packetery_packets_exported_total",
		Help: "Total number of orders successfully exported as packets.",
	})

	PacketExportErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "packetery_packet_export_errors_total",
		Help: "Total number of orders that failed to export.",
	})

	PacketAPIRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "packetery_packet_api_request_duration_seconds",
		Help:    "Duration of Packet API calls.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"operation", "status"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "packetery_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	CarrierCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "packetery_carrier_cache_items",
		Help: "Current number of carriers in the carrier cache.",
	})

	OutboxTasksPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "packetery_outbox_tasks_published_total",
		Help: "Total number of outbox tasks processed by result.",
	},
		[]string{"result"},
	)

	AuditPendingEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "packetery_audit_pending_entries",
		Help: "Audit entries accepted but not yet written.",
	})

	DBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "packetery_db_query_duration_seconds",
		Help:    "Duration of database statements by operation.",
		Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
	},
		[]string{"operation"},
	)
)
