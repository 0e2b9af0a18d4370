// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Identity metrics
	IncUserRegistered()
	IncLoginSucceeded()
	IncLoginFailed()
	IncTokenRejected()

	// Inventory metrics
	IncItemCreated()
	IncItemUpdated()
	IncItemDeleted()

	// Profile cache metrics
	IncProfileCacheHit()
	IncProfileCacheMiss()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
