package audiopath

import (
	"path/filepath"
	"strings"

	"m3u-rebase/internal/filesystem"
)

// AudioPath is an immutable value type wrapping one audio file path parsed
// from a playlist. Equality is by path value, so AudioPath can be used
// directly as a map key or set member. The wrapped string is expected to be
// Unicode-precomposed by the caller (see internal/textnorm).
type AudioPath struct {
	path string
}

// New creates an AudioPath from a normalized path string.
func New(path string) AudioPath {
	return AudioPath{path: path}
}

// String returns the wrapped path.
func (p AudioPath) String() string {
	return p.path
}

// SearchExistingPath resolves the path to its current location on disk.
//
// If the path still exists it is returned unchanged. Otherwise the first
// beforeRoots entry that is a parent of the path yields the relative tail,
// and the tail is joined onto every afterRoots entry; exactly one of those
// candidates must exist. The error cases are:
//
//   - *UnresolvedRootError: the path is under none of beforeRoots
//   - *PathNotFoundError: no candidate exists on disk
//   - *AmbiguousPathError: more than one candidate exists
//
// Only existence probes touch the filesystem; nothing is read or written.
func (p AudioPath) SearchExistingPath(beforeRoots, afterRoots []string) (AudioPath, error) {
	cfg := filesystem.DefaultRetryConfig()

	// Fast path: the library never moved, or the playlist already points at
	// a valid location.
	if filesystem.Exists(p.path, cfg) {
		return p, nil
	}

	tail, ok := p.relativeTail(beforeRoots)
	if !ok {
		return AudioPath{}, &UnresolvedRootError{Path: p.path}
	}

	var existing []string
	seen := make(map[string]bool)
	for _, root := range afterRoots {
		candidate := filepath.Join(root, tail)
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		if filesystem.Exists(candidate, cfg) {
			existing = append(existing, candidate)
		}
	}

	switch len(existing) {
	case 0:
		return AudioPath{}, &PathNotFoundError{Path: p.path}
	case 1:
		return New(existing[0]), nil
	default:
		return AudioPath{}, &AmbiguousPathError{Path: p.path, Candidates: existing}
	}
}

// relativeTail strips the first root that is a parent of the path and
// returns the remainder. Roots are tried in order.
func (p AudioPath) relativeTail(roots []string) (string, bool) {
	for _, root := range roots {
		rel, err := filepath.Rel(root, p.path)
		if err != nil {
			continue
		}
		if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		return rel, true
	}
	return "", false
}
