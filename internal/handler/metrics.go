package handler

import (
	"fmt"
	"net/http"

	"github.com/stockroom/stockroom/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "stockroom_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "stockroom_logins_total{status=\"success\"} %d\n", snap.LoginsSucceeded)
	writeMetric(w, "stockroom_logins_total{status=\"failure\"} %d\n", snap.LoginsFailed)
	writeMetric(w, "stockroom_tokens_rejected_total %d\n", snap.TokensRejected)

	writeMetric(w, "stockroom_items_created_total %d\n", snap.ItemsCreated)
	writeMetric(w, "stockroom_items_updated_total %d\n", snap.ItemsUpdated)
	writeMetric(w, "stockroom_items_deleted_total %d\n", snap.ItemsDeleted)

	writeMetric(w, "stockroom_profile_cache_hits_total %d\n", snap.ProfileCacheHits)
	writeMetric(w, "stockroom_profile_cache_misses_total %d\n", snap.ProfileCacheMisses)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
