// Package audiopath represents one audio file reference from a playlist and
// resolves it against candidate library roots after a move.
//
// Resolution strips the matching "before" root from a path that no longer
// exists and probes the remainder under each "after" root, requiring exactly
// one existing match. Existence probes go through internal/filesystem so NFS
// stale handles are retried.
package audiopath
