package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	afterRoot := t.TempDir()

	path := writeConfig(t, fmt.Sprintf(`
input_dir: %s
output_dir: %s
before_roots:
  - /old/root
  - "  /old/other  "
after_roots:
  - %s
`, inputDir, outputDir, afterRoot))

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.InputDir != inputDir {
		t.Errorf("InputDir = %q, want %q", cfg.InputDir, inputDir)
	}
	if cfg.OutputDir != outputDir {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, outputDir)
	}
	if len(cfg.BeforeRoots) != 2 || cfg.BeforeRoots[1] != "/old/other" {
		t.Errorf("BeforeRoots = %v, want whitespace trimmed", cfg.BeforeRoots)
	}
	if len(cfg.AfterRoots) != 1 || cfg.AfterRoots[0] != afterRoot {
		t.Errorf("AfterRoots = %v", cfg.AfterRoots)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	inputDir := t.TempDir()
	path := writeConfig(t, fmt.Sprintf(`
input_dir: %s
output_dir: %s
before_roots: ["/old"]
after_roots: ["%s"]
surprise_field: true
`, inputDir, inputDir, inputDir))

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "input_dir: [unterminated\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadValidationCollectsAllProblems(t *testing.T) {
	existing := t.TempDir()
	missingAfterA := filepath.Join(existing, "gone-a")
	missingAfterB := filepath.Join(existing, "gone-b")

	path := writeConfig(t, fmt.Sprintf(`
input_dir: %s
output_dir: %s
before_roots: []
after_roots:
  - %s
  - %s
`, filepath.Join(existing, "no-input"), existing, missingAfterA, missingAfterB))

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected validation error")
	}

	// One load reports every problem
	msg := err.Error()
	for _, want := range []string{"input_dir", "before_roots", missingAfterA, missingAfterB} {
		if !strings.Contains(msg, want) {
			t.Errorf("error should mention %q:\n%s", want, msg)
		}
	}
}

func TestLoadRequiresDirs(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "Missing input_dir",
			content: fmt.Sprintf("output_dir: %s\nbefore_roots: [/old]\nafter_roots: [%s]\n", dir, dir),
		},
		{
			name:    "Missing output_dir",
			content: fmt.Sprintf("input_dir: %s\nbefore_roots: [/old]\nafter_roots: [%s]\n", dir, dir),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestVolumes(t *testing.T) {
	cfg := &Config{
		InputDir:   "/in",
		OutputDir:  "/out",
		AfterRoots: []string{"/mnt/a", "/mnt/b"},
	}

	volumes := cfg.Volumes()
	if volumes["input"] != "/in" || volumes["output"] != "/out" {
		t.Errorf("volumes = %v", volumes)
	}
	if volumes["after"] != "/mnt/a" || volumes["after_2"] != "/mnt/b" {
		t.Errorf("after volumes = %v", volumes)
	}
}
