package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"m3u-rebase/internal/config"
	"m3u-rebase/internal/filesystem"
	"m3u-rebase/internal/logging"
	"m3u-rebase/internal/metrics"
	"m3u-rebase/internal/playlist"
	"m3u-rebase/internal/rewrite"
	"m3u-rebase/internal/scanner"
	"m3u-rebase/internal/startup"
	"m3u-rebase/internal/workers"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "m3u-rebase [config.yaml]",
		Short: "Rewrite the base directories of audio paths in M3U playlists",
		Long: `m3u-rebase rewrites the base-directory portion of audio file paths
inside M3U/M3U8 playlists after a music library has moved. Each path is
resolved against the configured before/after roots, and a playlist is
rewritten only if every audio path in it resolves; otherwise it is left
unchanged and reported.`,
		Version:      startup.VersionString(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				configPath = args[0]
			}
			if configPath == "" {
				return fmt.Errorf("a configuration file is required (pass --config or a positional argument)")
			}
			return run(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	return cmd
}

func run(configPath string) error {
	startTime := time.Now()
	startup.PrintBanner()
	startup.LogSystemInfo()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	startup.LogConfig(cfg, configPath)

	filesystem.SetDefaultVolumeResolver(filesystem.NewVolumeResolver(cfg.Volumes()))
	metrics.InitializeMetrics()

	playlists, err := scanner.FindPlaylists(cfg.InputDir)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", cfg.InputDir, err)
	}
	if len(playlists) == 0 {
		return fmt.Errorf("no playlist files found under %s", cfg.InputDir)
	}

	workerCount := workers.ForIO(len(playlists))
	startup.LogRunStarted(len(playlists), workerCount)

	failed := processAll(cfg, playlists, workerCount)

	metrics.LogSummary()
	startup.LogRunComplete(len(playlists)-failed, failed, time.Since(startTime).Round(time.Millisecond))
	if failed > 0 {
		return fmt.Errorf("%d of %d playlist(s) failed", failed, len(playlists))
	}
	return nil
}

// processAll fans the playlist list out over a fixed worker pool and
// returns the number of playlists that failed at any stage.
func processAll(cfg *config.Config, playlists []string, workerCount int) int {
	jobs := make(chan string)
	bar := newProgressBar(len(playlists))

	var failed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := processPlaylist(cfg, path); err != nil {
					failed.Add(1)
				}
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}()
	}

	for _, p := range playlists {
		jobs <- p
	}
	close(jobs)
	wg.Wait()
	if bar != nil {
		_ = bar.Finish()
	}
	return int(failed.Load())
}

func newProgressBar(total int) *progressbar.ProgressBar {
	// Debug logging and a live progress bar fight over the terminal.
	if logging.IsDebugEnabled() {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("rewriting playlists"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func processPlaylist(cfg *config.Config, path string) error {
	metrics.PlaylistsProcessed.Inc()

	doc, err := playlist.Read(path)
	if err != nil {
		metrics.PlaylistsFailed.WithLabelValues("read").Inc()
		logging.Error("Failed to read %s: %v", path, err)
		return err
	}

	rewritten, err := rewrite.RewritePaths(doc, cfg.BeforeRoots, cfg.AfterRoots)
	if err != nil {
		metrics.PlaylistsFailed.WithLabelValues("resolve").Inc()
		logging.Error("Cannot rewrite %s: %v", path, err)
		return err
	}

	outPath, err := outputPath(cfg, path)
	if err != nil {
		metrics.PlaylistsFailed.WithLabelValues("write").Inc()
		logging.Error("Failed to derive output path for %s: %v", path, err)
		return err
	}
	if err := rewritten.Write(outPath); err != nil {
		metrics.PlaylistsFailed.WithLabelValues("write").Inc()
		logging.Error("Failed to write %s: %v", outPath, err)
		return err
	}

	metrics.PlaylistsRewritten.Inc()
	logging.Debug("Rewrote %s -> %s", path, outPath)
	return nil
}

// outputPath mirrors the playlist's location under input_dir into output_dir.
func outputPath(cfg *config.Config, inputPath string) (string, error) {
	rel, err := filepath.Rel(cfg.InputDir, inputPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg.OutputDir, rel), nil
}
