/*
Package workers provides utilities for determining worker pool sizes in
containerized environments.

When running Go applications in containers, the number of available CPUs may
be limited by cgroup constraints. While Go 1.19+ automatically sets GOMAXPROCS
based on container CPU limits, runtime.NumCPU() still returns the host
machine's CPU count. The helpers here derive worker counts from GOMAXPROCS so
the playlist loop respects container resource limits.

The REBASE_WORKERS environment variable overrides the computed count, which is
mostly useful for throttling concurrent access to a struggling NFS server:

	REBASE_WORKERS=1 m3u-rebase --config config.yaml
*/
package workers
