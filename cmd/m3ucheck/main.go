package main

import (
	"fmt"
	"os"

	"m3u-rebase/internal/config"
	"m3u-rebase/internal/filesystem"
	"m3u-rebase/internal/playlist"
	"m3u-rebase/internal/rewrite"
	"m3u-rebase/internal/scanner"
)

func main() {
	if len(os.Args) != 2 {
		printUsage()
		os.Exit(1)
	}

	if !check(os.Args[1]) {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: m3ucheck <config.yaml>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Verifies that every playlist under input_dir can be rebased against")
	fmt.Fprintln(os.Stderr, "the configured before/after roots. Nothing is written.")
}

// check resolves every playlist and reports per-file results. It returns
// false if any playlist failed to read or resolve.
func check(configPath string) bool {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return false
	}
	filesystem.SetDefaultVolumeResolver(filesystem.NewVolumeResolver(cfg.Volumes()))

	playlists, err := scanner.FindPlaylists(cfg.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to scan %s: %v\n", cfg.InputDir, err)
		return false
	}
	if len(playlists) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no playlist files found under %s\n", cfg.InputDir)
		return false
	}

	failed := 0
	for _, path := range playlists {
		if err := checkPlaylist(cfg, path); err != nil {
			failed++
			fmt.Printf("FAILED  %s\n", path)
			fmt.Printf("        %v\n", err)
			continue
		}
		fmt.Printf("OK      %s\n", path)
	}

	fmt.Printf("\n%d playlist(s) checked, %d failed\n", len(playlists), failed)
	return failed == 0
}

func checkPlaylist(cfg *config.Config, path string) error {
	doc, err := playlist.Read(path)
	if err != nil {
		return err
	}
	_, err = rewrite.RewritePaths(doc, cfg.BeforeRoots, cfg.AfterRoots)
	return err
}
