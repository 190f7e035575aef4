package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Request metrics
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kalavara_requests_total",
			Help: "Total number of requests by role, method and status",
		},
		[]string{"role", "method", "status"},
	)

	// Directory metrics
	KeysPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kalavara_keys_placed_total",
			Help: "Total number of keys placed on volume servers",
		},
	)

	KeysDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kalavara_keys_deleted_total",
			Help: "Total number of keys removed from the index",
		},
	)

	VolumeServers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "kalavara_volume_servers",
			Help: "Number of registered volume servers",
		},
	)

	PlacementLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kalavara_placement_latency_seconds",
			Help:    "Time taken to place a key in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Blob metrics
	BlobBytesWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kalavara_blob_bytes_written_total",
			Help: "Total bytes published to the blob store",
		},
	)

	BlobsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "kalavara_blobs_deleted_total",
			Help: "Total number of blobs unlinked from the blob store",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(KeysPlaced)
	prometheus.MustRegister(KeysDeleted)
	prometheus.MustRegister(VolumeServers)
	prometheus.MustRegister(PlacementLatency)
	prometheus.MustRegister(BlobBytesWritten)
	prometheus.MustRegister(BlobsDeleted)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the duration to a histogram
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	duration := time.Since(t.start).Seconds()
	histogram.Observe(duration)
}
