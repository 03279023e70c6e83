package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every counter reports zero in the run summary even when it never fired.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	for _, stage := range []string{"read", "resolve", "write"} {
		PlaylistsFailed.WithLabelValues(stage)
	}

	for _, status := range []string{
		StatusExisting, StatusRewritten,
		StatusUnresolvedRoot, StatusNotFound, StatusAmbiguous,
	} {
		PathResolutions.WithLabelValues(status)
	}

	// --- Filesystem retry metrics (per retry-operation × volume) ---
	retryOps := []string{"stat", "read", "write"}
	volumes := []string{"input", "output", "before", "after", "unknown"}

	for _, op := range retryOps {
		for _, vol := range volumes {
			FilesystemRetryAttempts.WithLabelValues(op, vol)
			FilesystemRetrySuccess.WithLabelValues(op, vol)
			FilesystemRetryFailures.WithLabelValues(op, vol)
			FilesystemStaleErrors.WithLabelValues(op, vol)
			FilesystemRetryDuration.WithLabelValues(op, vol)
		}
	}
}
