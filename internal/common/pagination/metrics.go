package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Listing metrics. Pages are bucketed so the page label stays low-cardinality
// even when clients walk deep into the result set.
var (
	listRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_pagination_requests_total",
			Help: "Total number of paginated news listing requests",
		},
		[]string{"status", "page_range"},
	)

	listDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_pagination_duration_seconds",
			Help:    "Paginated listing duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	listErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_pagination_errors_total",
			Help: "Total number of paginated listing errors",
		},
		[]string{"type"},
	)
)

// RecordRequest counts a completed listing request under its status code and
// page bucket.
func RecordRequest(statusCode, page int) {
	listRequests.WithLabelValues(strconv.Itoa(statusCode), pageBucket(page)).Inc()
}

// RecordDuration observes how long a listing stage took; operation is
// "handler" or "repository".
func RecordDuration(operation string, seconds float64) {
	listDuration.WithLabelValues(operation).Observe(seconds)
}

// RecordError counts a failed listing; errorType is "database" or "timeout".
func RecordError(errorType string) {
	listErrors.WithLabelValues(errorType).Inc()
}

func pageBucket(page int) string {
	switch {
	case page <= 10:
		return "1-10"
	case page <= 50:
		return "11-50"
	case page <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
