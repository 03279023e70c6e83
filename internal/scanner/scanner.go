package scanner

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"m3u-rebase/internal/logging"
)

// playlistExtensions are the file extensions treated as playlists,
// lowercase with leading dot.
var playlistExtensions = map[string]bool{
	".m3u":  true,
	".m3u8": true,
}

// IsPlaylist reports whether name has a playlist extension. Matching is
// case-insensitive, so "Mix.M3U" counts.
func IsPlaylist(name string) bool {
	return playlistExtensions[strings.ToLower(filepath.Ext(name))]
}

// FindPlaylists recursively collects every playlist file under root and
// returns the paths sorted. Unreadable subtrees are logged and skipped
// rather than aborting the walk; only a failure to read root itself is an
// error. An empty result is not an error here — the caller decides whether
// a tree without playlists is worth refusing.
func FindPlaylists(root string) ([]string, error) {
	var playlists []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logging.Warn("Error accessing path %s: %v", path, err)
			return nil // Continue walking
		}

		if d.IsDir() {
			return nil
		}

		if IsPlaylist(d.Name()) {
			playlists = append(playlists, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(playlists)
	return playlists, nil
}
