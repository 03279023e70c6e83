package audiopath

import (
	"fmt"
	"strings"
)

// UnresolvedRootError indicates a path that falls under none of the
// configured "before" base directories.
type UnresolvedRootError struct {
	Path string
}

func (e *UnresolvedRootError) Error() string {
	return fmt.Sprintf("audio path %q does not belong to any configured base directory", e.Path)
}

// PathNotFoundError indicates that no re-rooted candidate for the path
// exists on the filesystem.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("current location of audio path %q could not be found under any replacement base directory", e.Path)
}

// AmbiguousPathError indicates that more than one re-rooted candidate for
// the path exists simultaneously. Different roots holding different files at
// the same relative path is a data-integrity hazard that needs a human, so
// every existing candidate is named rather than silently picking the first.
type AmbiguousPathError struct {
	Path       string
	Candidates []string
}

func (e *AmbiguousPathError) Error() string {
	quoted := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("audio path %q has multiple existing candidates: %s",
		e.Path, strings.Join(quoted, ", "))
}
