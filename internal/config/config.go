package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"m3u-rebase/internal/filesystem"
)

// Config holds the run configuration loaded from a YAML file.
//
//	input_dir: /playlists/itunes
//	output_dir: /playlists/rebased
//	before_roots:
//	  - /Users/me/Music/iTunes/iTunes Media/Music
//	after_roots:
//	  - /mnt/music
type Config struct {
	// InputDir is searched recursively for playlist files.
	InputDir string `yaml:"input_dir"`
	// OutputDir receives rewritten playlists, mirroring InputDir's layout.
	OutputDir string `yaml:"output_dir"`
	// BeforeRoots are the base directories playlist paths used to live under,
	// tried in order.
	BeforeRoots []string `yaml:"before_roots"`
	// AfterRoots are the candidate base directories the library lives under
	// now. Each must exist.
	AfterRoots []string `yaml:"after_roots"`
}

// Load reads, decodes, and validates the YAML configuration at path.
// Unknown fields are rejected. Validation problems are collected so one
// failed load reports everything wrong with the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.trim()

	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// trim strips surrounding whitespace from every configured path.
func (c *Config) trim() {
	c.InputDir = strings.TrimSpace(c.InputDir)
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	for i, root := range c.BeforeRoots {
		c.BeforeRoots[i] = strings.TrimSpace(root)
	}
	for i, root := range c.AfterRoots {
		c.AfterRoots[i] = strings.TrimSpace(root)
	}
}

// resolve makes the input and output directories absolute. Library roots are
// left as written: they must match playlist content textually.
func (c *Config) resolve() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	var err error
	if c.InputDir, err = filepath.Abs(c.InputDir); err != nil {
		return fmt.Errorf("failed to resolve input_dir: %w", err)
	}
	if c.OutputDir, err = filepath.Abs(c.OutputDir); err != nil {
		return fmt.Errorf("failed to resolve output_dir: %w", err)
	}
	return nil
}

// validate checks directory existence and root lists, collecting every
// problem into one error.
func (c *Config) validate() error {
	var problems []string
	retryCfg := filesystem.DefaultRetryConfig()

	if !filesystem.Exists(c.InputDir, retryCfg) {
		problems = append(problems, fmt.Sprintf("input_dir does not exist: %q", c.InputDir))
	}
	if !filesystem.Exists(c.OutputDir, retryCfg) {
		problems = append(problems, fmt.Sprintf("output_dir does not exist: %q", c.OutputDir))
	}

	if len(c.BeforeRoots) == 0 {
		problems = append(problems, "before_roots must list at least one directory")
	}
	for _, root := range c.BeforeRoots {
		if root == "" {
			problems = append(problems, "before_roots contains an empty entry")
		}
	}

	if len(c.AfterRoots) == 0 {
		problems = append(problems, "after_roots must list at least one directory")
	}
	for _, root := range c.AfterRoots {
		if root == "" {
			problems = append(problems, "after_roots contains an empty entry")
			continue
		}
		// After roots are probed during resolution; a missing one would
		// silently never match, so fail loudly up front.
		if !filesystem.Exists(root, retryCfg) {
			problems = append(problems, fmt.Sprintf("after_roots entry does not exist: %q", root))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Volumes maps volume labels to directories for filesystem metric labeling.
func (c *Config) Volumes() map[string]string {
	volumes := map[string]string{
		"input":  c.InputDir,
		"output": c.OutputDir,
	}
	for i, root := range c.AfterRoots {
		name := "after"
		if i > 0 {
			name = fmt.Sprintf("after_%d", i+1)
		}
		volumes[name] = root
	}
	return volumes
}
