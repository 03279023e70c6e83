// Command m3ucheck verifies that a playlist tree can be rebased without
// writing anything.
//
// It loads the same YAML configuration as m3u-rebase, discovers every
// M3U/M3U8 playlist under input_dir, and resolves each audio path against
// the configured before/after roots. Playlists whose paths all resolve are
// reported as OK; the rest are listed with the paths that failed.
//
// Usage:
//
//	m3ucheck <config.yaml>
//
// The exit code is 0 when every playlist resolves and 1 otherwise, so the
// command can gate a real rebase run in scripts.
package main
