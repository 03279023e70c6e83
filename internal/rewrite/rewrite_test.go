package rewrite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"m3u-rebase/internal/audiopath"
	"m3u-rebase/internal/playlist"
)

func writeFile(t *testing.T, dir string, parts ...string) string {
	t.Helper()
	path := filepath.Join(append([]string{dir}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("Failed to create parent dirs: %v", err)
	}
	if err := os.WriteFile(path, []byte("audio"), 0o644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	return path
}

func TestRewritePaths(t *testing.T) {
	newRoot := t.TempDir()
	writeFile(t, newRoot, "Music", "Song.mp3")

	doc := playlist.Parse("#EXTM3U\n/old/root/Music/Song.mp3\n")
	got, err := RewritePaths(doc, []string{"/old/root"}, []string{newRoot})
	if err != nil {
		t.Fatalf("RewritePaths failed: %v", err)
	}

	want := "#EXTM3U\n" + filepath.Join(newRoot, "Music", "Song.mp3") + "\n"
	if got.Content() != want {
		t.Errorf("content = %q, want %q", got.Content(), want)
	}
}

func TestRewritePathsNoOpRoundTrip(t *testing.T) {
	root := t.TempDir()
	a := writeFile(t, root, "a.mp3")
	b := writeFile(t, root, "sub", "b.flac")

	content := "#EXTM3U\n" + a + "\n\n#EXTINF:1,b\n" + b + "\n"
	doc := playlist.Parse(content)

	got, err := RewritePaths(doc, []string{"/irrelevant"}, []string{"/also/irrelevant"})
	if err != nil {
		t.Fatalf("RewritePaths failed: %v", err)
	}
	if got.Content() != content {
		t.Errorf("no-op rewrite must round-trip exactly:\ngot  %q\nwant %q", got.Content(), content)
	}
}

func TestRewritePathsPreservesDirectives(t *testing.T) {
	newRoot := t.TempDir()
	writeFile(t, newRoot, "a.mp3")
	writeFile(t, newRoot, "b.mp3")

	content := "#EXTM3U\n" +
		"#EXTINF:100,Track A\n" +
		"/old/root/a.mp3\n" +
		"\n" +
		"#EXTINF:200,Track B\n" +
		"/old/root/b.mp3\n"

	doc := playlist.Parse(content)
	got, err := RewritePaths(doc, []string{"/old/root"}, []string{newRoot})
	if err != nil {
		t.Fatalf("RewritePaths failed: %v", err)
	}

	want := "#EXTM3U\n" +
		"#EXTINF:100,Track A\n" +
		filepath.Join(newRoot, "a.mp3") + "\n" +
		"\n" +
		"#EXTINF:200,Track B\n" +
		filepath.Join(newRoot, "b.mp3") + "\n"
	if got.Content() != want {
		t.Errorf("directives and blank lines must pass through:\ngot  %q\nwant %q", got.Content(), want)
	}
}

func TestRewritePathsAllOrNothing(t *testing.T) {
	newRoot := t.TempDir()
	writeFile(t, newRoot, "found.mp3")
	// missing.mp3 deliberately absent

	doc := playlist.Parse("/old/root/found.mp3\n/old/root/missing.mp3\n")
	got, err := RewritePaths(doc, []string{"/old/root"}, []string{newRoot})

	if got != nil {
		t.Error("no document may be produced on batch failure")
	}

	var batch *BatchError
	if !errors.As(err, &batch) {
		t.Fatalf("expected *BatchError, got %v", err)
	}
	if len(batch.Failures) != 1 {
		t.Fatalf("failures = %d, want 1", len(batch.Failures))
	}

	var notFound *audiopath.PathNotFoundError
	if !errors.As(batch.Failures[0].Err, &notFound) {
		t.Errorf("failure should carry *PathNotFoundError, got %v", batch.Failures[0].Err)
	}
}

func TestRewritePathsCollectsAllFailures(t *testing.T) {
	newRoot := t.TempDir()

	// Three references, three distinct failure modes: outside any before
	// root, missing under the after root, missing under the after root.
	doc := playlist.Parse("/elsewhere/a.mp3\n/old/root/b.mp3\n/old/root/c.mp3\n")
	_, err := RewritePaths(doc, []string{"/old/root"}, []string{newRoot})

	var batch *BatchError
	if !errors.As(err, &batch) {
		t.Fatalf("expected *BatchError, got %v", err)
	}
	// All failures surfaced, not just the first
	if len(batch.Failures) != 3 {
		t.Fatalf("failures = %d, want 3", len(batch.Failures))
	}

	var unresolved *audiopath.UnresolvedRootError
	if !errors.As(batch.Failures[0].Err, &unresolved) {
		t.Errorf("first failure should be *UnresolvedRootError, got %v", batch.Failures[0].Err)
	}
}

func TestRewritePathsAmbiguous(t *testing.T) {
	rootA := t.TempDir()
	rootB := t.TempDir()
	writeFile(t, rootA, "dup.mp3")
	writeFile(t, rootB, "dup.mp3")

	doc := playlist.Parse("/old/root/dup.mp3\n")
	_, err := RewritePaths(doc, []string{"/old/root"}, []string{rootA, rootB})

	var batch *BatchError
	if !errors.As(err, &batch) {
		t.Fatalf("expected *BatchError, got %v", err)
	}

	var ambiguous *audiopath.AmbiguousPathError
	if !errors.As(batch.Failures[0].Err, &ambiguous) {
		t.Fatalf("expected *AmbiguousPathError, got %v", batch.Failures[0].Err)
	}
	if len(ambiguous.Candidates) != 2 {
		t.Errorf("candidates = %v, want both named", ambiguous.Candidates)
	}
}

func TestRewritePathsDuplicatesResolvedOnce(t *testing.T) {
	newRoot := t.TempDir()
	writeFile(t, newRoot, "a.mp3")

	doc := playlist.Parse("/old/root/a.mp3\n/old/root/a.mp3\n")
	got, err := RewritePaths(doc, []string{"/old/root"}, []string{newRoot})
	if err != nil {
		t.Fatalf("RewritePaths failed: %v", err)
	}

	resolved := filepath.Join(newRoot, "a.mp3")
	if got.Content() != resolved+"\n"+resolved+"\n" {
		t.Errorf("content = %q", got.Content())
	}
}

func TestRewritePathsDecomposedPlaylist(t *testing.T) {
	newRoot := t.TempDir()
	// On-disk name is precomposed, as real filesystems store it.
	writeFile(t, newRoot, "música", "song.mp3")

	// Playlist content is decomposed, as iTunes exports it.
	doc := playlist.Parse("/old/root/música/song.mp3\n")
	got, err := RewritePaths(doc, []string{"/old/root"}, []string{newRoot})
	if err != nil {
		t.Fatalf("RewritePaths failed: %v", err)
	}

	want := filepath.Join(newRoot, "música", "song.mp3") + "\n"
	if got.Content() != want {
		t.Errorf("content = %q, want %q", got.Content(), want)
	}
}

func TestRewritePathsEmptyDocument(t *testing.T) {
	doc := playlist.Parse("#EXTM3U\n")
	got, err := RewritePaths(doc, []string{"/old"}, []string{"/new"})
	if err != nil {
		t.Fatalf("RewritePaths failed: %v", err)
	}
	if got.Content() != "#EXTM3U\n" {
		t.Errorf("content = %q", got.Content())
	}
}
