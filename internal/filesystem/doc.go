/*
Package filesystem provides resilient filesystem operations with automatic retry logic
for NFS stale file handle errors.

# Purpose

The rebase tool's whole reason to exist is a music library that moved between
servers, which in practice means playlists and audio files on NFS mounts. This
package wraps the filesystem operations the tool performs (stat, read, exclusive
write) with retry logic for transient ESTALE (stale file handle) errors that
occur when NFS-mounted files are accessed during network issues or server-side
changes.

# Usage

	// Probe a candidate audio path with automatic NFS retry
	if filesystem.Exists("/mnt/music/Album/Song.mp3", filesystem.DefaultRetryConfig()) {
	    ...
	}

	// Read a playlist with automatic NFS retry
	data, err := filesystem.ReadFileWithRetry("/playlists/mix.m3u8", filesystem.DefaultRetryConfig())

# Retry Behavior

Exponential backoff with the following defaults:
  - MaxRetries: 3 attempts
  - InitialBackoff: 50ms
  - MaxBackoff: 500ms

Only NFS stale file handle errors (ESTALE) trigger retries. All other errors,
including fs.ErrExist from the exclusive writer, fail immediately.

# Metric Labeling

Operations are labeled by volume through a VolumeResolver built from the run's
configured directories (input, output, before/after roots), so retry and stale
counters point at the mount that is misbehaving.
*/
package filesystem
