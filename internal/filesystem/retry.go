// Package filesystem provides utilities for filesystem operations with retry logic for NFS
package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"m3u-rebase/internal/logging"
	"m3u-rebase/internal/metrics"
)

// VolumeResolver maps file paths to known volume names for metric labeling.
// It uses longest-prefix matching on absolute paths.
type VolumeResolver struct {
	// mounts is sorted by path length descending for longest-prefix matching
	mounts []volumeMount
}

type volumeMount struct {
	path string // absolute path with trailing slash (e.g., "/music/")
	name string // volume label (e.g., "before")
}

// NewVolumeResolver creates a resolver from a map of volume name → absolute path.
// Example:
//
//	NewVolumeResolver(map[string]string{
//	    "input":  "/playlists/old",
//	    "output": "/playlists/new",
//	    "after":  "/mnt/music",
//	})
func NewVolumeResolver(volumes map[string]string) *VolumeResolver {
	mounts := make([]volumeMount, 0, len(volumes))
	for name, path := range volumes {
		// Normalize: ensure absolute path with trailing slash for prefix matching
		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}
		if !strings.HasSuffix(absPath, "/") {
			absPath += "/"
		}
		mounts = append(mounts, volumeMount{path: absPath, name: name})
	}

	// Sort by path length descending so longest (most specific) prefix matches first
	sort.Slice(mounts, func(i, j int) bool {
		return len(mounts[i].path) > len(mounts[j].path)
	})

	return &VolumeResolver{mounts: mounts}
}

// Resolve returns the volume name for a given file path.
// Returns "unknown" if the path doesn't match any configured volume.
func (vr *VolumeResolver) Resolve(path string) string {
	if vr == nil {
		return "unknown"
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "unknown"
	}

	// Ensure trailing slash for directory-level comparison,
	// but also match the path itself (for exact directory matches)
	for _, mount := range vr.mounts {
		if strings.HasPrefix(absPath+"/", mount.path) || strings.HasPrefix(absPath, mount.path) {
			return mount.name
		}
	}

	return "unknown"
}

// defaultResolver is the package-level resolver set at startup
var defaultResolver *VolumeResolver

// SetDefaultVolumeResolver sets the package-level volume resolver.
// Call this once at startup after loading configuration.
func SetDefaultVolumeResolver(vr *VolumeResolver) {
	defaultResolver = vr
}

// RetryConfig configures retry behavior for filesystem operations
type RetryConfig struct {
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// VolumeResolver overrides the package-level resolver for this operation.
	// If nil, the package-level default is used.
	VolumeResolver *VolumeResolver
}

// DefaultRetryConfig returns sensible defaults for NFS retry behavior
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: 50 * time.Millisecond,
		MaxBackoff:     500 * time.Millisecond,
	}
}

// resolveVolume returns the volume label for a path using the config's resolver
// or the package-level default.
func (c *RetryConfig) resolveVolume(path string) string {
	if c.VolumeResolver != nil {
		return c.VolumeResolver.Resolve(path)
	}
	return defaultResolver.Resolve(path)
}

// isNFSStaleError checks if an error is an NFS stale file handle error
func isNFSStaleError(err error) bool {
	if err == nil {
		return false
	}

	// Check for ESTALE (stale file handle) - errno 116 on Linux
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == syscall.ESTALE
	}

	return false
}

// withRetry runs op with retry logic for NFS stale file handle errors.
// All other errors fail immediately.
func withRetry(retryOp, path string, config RetryConfig, op func() error) error {
	start := time.Now()
	volume := config.resolveVolume(path)
	var lastErr error
	backoff := config.InitialBackoff

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		err := op()
		if err == nil {
			if attempt > 0 {
				logging.Info("NFS %s succeeded on retry %d for %s", retryOp, attempt, path)
				metrics.FilesystemRetrySuccess.WithLabelValues(retryOp, volume).Inc()
			}
			metrics.FilesystemRetryDuration.WithLabelValues(retryOp, volume).Observe(time.Since(start).Seconds())
			return nil
		}

		lastErr = err

		// Only retry on NFS stale file handle errors
		if !isNFSStaleError(err) {
			metrics.FilesystemRetryDuration.WithLabelValues(retryOp, volume).Observe(time.Since(start).Seconds())
			return err
		}

		// Record ESTALE error occurrence
		metrics.FilesystemStaleErrors.WithLabelValues(retryOp, volume).Inc()

		// Don't sleep after the last attempt
		if attempt < config.MaxRetries {
			metrics.FilesystemRetryAttempts.WithLabelValues(retryOp, volume).Inc()
			logging.Debug("NFS %s stale file handle for %s, retrying in %v (attempt %d/%d)",
				retryOp, path, backoff, attempt+1, config.MaxRetries)
			time.Sleep(backoff)

			// Exponential backoff with cap
			backoff *= 2
			if backoff > config.MaxBackoff {
				backoff = config.MaxBackoff
			}
		}
	}

	logging.Warn("NFS %s failed after %d retries for %s: %v", retryOp, config.MaxRetries, path, lastErr)
	metrics.FilesystemRetryFailures.WithLabelValues(retryOp, volume).Inc()
	return lastErr
}

// StatWithRetry performs os.Stat with retry logic for NFS stale file handle errors
func StatWithRetry(path string, config RetryConfig) (os.FileInfo, error) {
	var info os.FileInfo
	err := withRetry("stat", path, config, func() error {
		var statErr error
		info, statErr = os.Stat(path)
		return statErr
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// Exists reports whether a path exists, retrying NFS stale handle errors.
// Any error other than non-existence is treated as "does not exist"; the
// path resolution layer only needs a yes/no answer.
func Exists(path string, config RetryConfig) bool {
	_, err := StatWithRetry(path, config)
	return err == nil
}

// ReadFileWithRetry performs os.ReadFile with retry logic for NFS stale file handle errors
func ReadFileWithRetry(path string, config RetryConfig) ([]byte, error) {
	var data []byte
	err := withRetry("read", path, config, func() error {
		var readErr error
		data, readErr = os.ReadFile(path)
		return readErr
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// WriteFileExclWithRetry creates path exclusively (O_CREATE|O_EXCL) and writes
// data to it, retrying NFS stale file handle errors. If the file already
// exists the fs.ErrExist error is returned immediately without retrying.
func WriteFileExclWithRetry(path string, data []byte, perm os.FileMode, config RetryConfig) error {
	return withRetry("write", path, config, func() error {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	})
}
