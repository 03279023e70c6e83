// Package config loads and validates the tool's YAML configuration file:
// where to find playlists, where to write the rewritten copies, and the
// before/after library roots used for path resolution.
package config
