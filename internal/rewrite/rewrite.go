package rewrite

import (
	"errors"
	"fmt"

	"m3u-rebase/internal/audiopath"
	"m3u-rebase/internal/logging"
	"m3u-rebase/internal/metrics"
	"m3u-rebase/internal/playlist"
)

// Failure records one path reference that could not be resolved.
type Failure struct {
	Path audiopath.AudioPath
	Err  error
}

// BatchError aborts a playlist rewrite because one or more of its path
// references failed resolution. The playlist is rejected whole: a rewrite
// that silently dropped or dangled even one track would leave the playlist
// internally inconsistent. Each individual failure has already been logged
// by the time this error is returned.
type BatchError struct {
	Failures []Failure
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d audio path(s) could not be resolved, playlist left unchanged", len(e.Failures))
}

// RewritePaths resolves every path reference in doc against the root lists
// and returns a new document with all references pointing at their current
// locations.
//
// Duplicate references are resolved once. Every reference is attempted even
// after failures, so one run surfaces every problem path; if any reference
// failed, a *BatchError carrying all of them is returned and no document is
// produced.
func RewritePaths(doc *playlist.Document, beforeRoots, afterRoots []string) (*playlist.Document, error) {
	mapping := make(map[audiopath.AudioPath]audiopath.AudioPath)
	var failures []Failure
	seen := make(map[audiopath.AudioPath]bool)

	for _, original := range doc.AudioPaths() {
		if seen[original] {
			continue
		}
		seen[original] = true

		resolved, err := original.SearchExistingPath(beforeRoots, afterRoots)
		if err != nil {
			metrics.PathResolutions.WithLabelValues(resolutionStatus(err)).Inc()
			logging.Error("%v", err)
			failures = append(failures, Failure{Path: original, Err: err})
			continue
		}

		if resolved == original {
			metrics.PathResolutions.WithLabelValues(metrics.StatusExisting).Inc()
		} else {
			metrics.PathResolutions.WithLabelValues(metrics.StatusRewritten).Inc()
		}
		mapping[original] = resolved
	}

	if len(failures) > 0 {
		return nil, &BatchError{Failures: failures}
	}

	return doc.Replace(mapping)
}

// resolutionStatus maps a resolution error to its metric label.
func resolutionStatus(err error) string {
	var unresolved *audiopath.UnresolvedRootError
	var notFound *audiopath.PathNotFoundError
	var ambiguous *audiopath.AmbiguousPathError

	switch {
	case errors.As(err, &unresolved):
		return metrics.StatusUnresolvedRoot
	case errors.As(err, &notFound):
		return metrics.StatusNotFound
	case errors.As(err, &ambiguous):
		return metrics.StatusAmbiguous
	default:
		return "unknown"
	}
}
