package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Playlist metrics
var (
	PlaylistsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "m3u_rebase_playlists_processed_total",
			Help: "Total number of playlist files processed",
		},
	)

	PlaylistsRewritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "m3u_rebase_playlists_rewritten_total",
			Help: "Total number of playlist files successfully rewritten",
		},
	)

	PlaylistsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u_rebase_playlists_failed_total",
			Help: "Total number of playlist files that failed processing",
		},
		[]string{"stage"}, // "read", "resolve", "write"
	)
)

// Path resolution metrics
var (
	PathResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u_rebase_path_resolutions_total",
			Help: "Total number of audio path resolution attempts",
		},
		[]string{"status"}, // "existing", "rewritten", "unresolved_root", "not_found", "ambiguous"
	)

	PathLinesParsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "m3u_rebase_path_lines_parsed_total",
			Help: "Total number of path lines parsed from playlist files",
		},
	)
)

// Filesystem retry metrics (NFS resilience)
var (
	FilesystemRetryAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u_rebase_filesystem_retry_attempts_total",
			Help: "Total number of filesystem operation retry attempts",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetrySuccess = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u_rebase_filesystem_retry_success_total",
			Help: "Total number of filesystem operations that succeeded after retry",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u_rebase_filesystem_retry_failures_total",
			Help: "Total number of filesystem operations that failed after all retries",
		},
		[]string{"operation", "volume"},
	)

	FilesystemStaleErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "m3u_rebase_filesystem_stale_errors_total",
			Help: "Total number of NFS stale file handle errors encountered",
		},
		[]string{"operation", "volume"},
	)

	FilesystemRetryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "m3u_rebase_filesystem_retry_duration_seconds",
			Help:    "Duration of filesystem operations including retries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		},
		[]string{"operation", "volume"},
	)
)

// Resolution status label values for PathResolutions.
const (
	StatusExisting       = "existing"
	StatusRewritten      = "rewritten"
	StatusUnresolvedRoot = "unresolved_root"
	StatusNotFound       = "not_found"
	StatusAmbiguous      = "ambiguous"
)
