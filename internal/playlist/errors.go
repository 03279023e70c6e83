package playlist

import (
	"fmt"
	"strings"
)

// UnknownPathError indicates replacement keys that match none of the
// document's parsed path references. It lists every missing path, not just
// the first. When the replacement mapping was built by the rewrite
// orchestrator this error points at an internal consistency bug, since the
// mapping is keyed by the document's own references.
type UnknownPathError struct {
	Paths []string
}

func (e *UnknownPathError) Error() string {
	quoted := make([]string, len(e.Paths))
	for i, p := range e.Paths {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return fmt.Sprintf("replacement paths not present in playlist: %s", strings.Join(quoted, ", "))
}

// OutputConflictError indicates that the destination of a playlist write
// already exists. The tool never overwrites.
type OutputConflictError struct {
	Path string
}

func (e *OutputConflictError) Error() string {
	return fmt.Sprintf("output file already exists, refusing to overwrite: %q", e.Path)
}
