package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks request latency per route and status
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// SalesCreated counts successfully committed sales
	SalesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_created_total",
			Help: "Number of sales committed",
		},
	)

	// SalesRejected counts rejected sale attempts by reason
	SalesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sales_rejected_total",
			Help: "Number of sale attempts rejected",
		},
		[]string{"reason"},
	)

	// SalesDeleted counts sale deletions with inventory restoration
	SalesDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sales_deleted_total",
			Help: "Number of sales deleted",
		},
	)

	// InventoryReservations counts applied inventory reservations
	InventoryReservations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_reservations_total",
			Help: "Number of inventory reservations applied",
		},
	)

	// LowStockDetected counts records observed at or below reorder level
	LowStockDetected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_low_stock_total",
			Help: "Number of low-stock conditions detected after a sale",
		},
	)
)
