package playlist

import (
	"sort"
	"strings"

	"m3u-rebase/internal/audiopath"
	"m3u-rebase/internal/metrics"
	"m3u-rebase/internal/textnorm"
)

// Document is an immutable parsed M3U/M3U8 playlist.
//
// It holds the verbatim file content alongside two aligned sequences: the raw
// text of every path line exactly as it appears in the file (decomposed
// Unicode, surrounding whitespace and all), and the normalized AudioPath
// parsed from it. The raw text is what gets substituted during replacement so
// that decomposed path lines are actually found in the content.
//
// Documents are built only through Parse and Read; replacement produces a new
// Document and never mutates the receiver.
type Document struct {
	content   string
	pathLines []string
	paths     []audiopath.AudioPath
}

// Parse builds a Document from raw playlist text. A line is a path line iff
// it is non-empty and does not start with the '#' directive marker; all other
// lines are preserved verbatim in the content but carry no path reference.
func Parse(content string) *Document {
	doc := &Document{content: content}

	for _, line := range splitLines(content) {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		doc.pathLines = append(doc.pathLines, line)
		normalized := textnorm.Precompose(strings.TrimSpace(line))
		doc.paths = append(doc.paths, audiopath.New(normalized))
	}

	metrics.PathLinesParsed.Add(float64(len(doc.pathLines)))
	return doc
}

// splitLines splits on line breaks without keeping them, treating "\r\n" and
// "\n" alike so that raw path lines never carry a trailing '\r' into the
// substring replacement.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Content returns the playlist text verbatim, including directive lines and
// the original line-ending style.
func (d *Document) Content() string {
	return d.content
}

// AudioPaths returns the parsed path references in file order. Duplicate
// path lines yield duplicate entries. The returned slice is a copy.
func (d *Document) AudioPaths() []audiopath.AudioPath {
	paths := make([]audiopath.AudioPath, len(d.paths))
	copy(paths, d.paths)
	return paths
}

// PathLineCount returns the number of path lines in the document.
func (d *Document) PathLineCount() int {
	return len(d.pathLines)
}

// Replace substitutes path references and returns the resulting Document.
//
// Every mapping key must be present among the document's parsed references;
// all absent keys are collected into a single *UnknownPathError rather than
// failing on the first. For each present pair whose value differs from its
// key, the raw line text of that reference is replaced throughout the
// content with the new path's string form. Identity pairs are skipped, so a
// playlist whose files never moved round-trips byte for byte.
//
// The substitution is textual: if a path line's raw text also occurs inside
// a directive line, that occurrence is rewritten too. Raw path text is in
// practice unique within a playlist; this mirrors the tool's original
// behavior rather than guarding against it.
func (d *Document) Replace(mapping map[audiopath.AudioPath]audiopath.AudioPath) (*Document, error) {
	known := make(map[audiopath.AudioPath]bool, len(d.paths))
	for _, p := range d.paths {
		known[p] = true
	}

	var missing []string
	for original := range mapping {
		if !known[original] {
			missing = append(missing, original.String())
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &UnknownPathError{Paths: missing}
	}

	content := d.content
	replaced := make(map[audiopath.AudioPath]bool, len(mapping))
	for i, p := range d.paths {
		newPath, ok := mapping[p]
		if !ok || newPath == p || replaced[p] {
			continue
		}
		replaced[p] = true
		content = strings.ReplaceAll(content, d.pathLines[i], newPath.String())
	}

	// Re-parse so the new document's raw lines and references line up with
	// its own content.
	return Parse(content), nil
}
