package startup

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"m3u-rebase/internal/config"
	"m3u-rebase/internal/logging"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// VersionString returns a single-line version description for --version.
func VersionString() string {
	info := GetBuildInfo()
	return fmt.Sprintf("m3u-rebase %s (commit %s, built %s, %s, %s/%s)",
		info.Version, info.Commit, info.BuildTime, info.GoVersion, info.OS, info.Arch)
}

// PrintBanner prints the startup banner with version information
func PrintBanner() {
	banner := `
------------------------------------------------------------
            _____                     __
   ____ ___|__  /_  __      ________ / /_  ____ _________
  / __ '__ \/_ <| / / ____ / ___/ _ \/ __ \/ __ '/ ___/ _ \
 / / / / / /__/ / /_/ /___/ /  /  __/ /_/ / /_/ (__  )  __/
/_/ /_/ /_/____/\__,_/   /_/   \___/_.___/\__,_/____/\___/

------------------------------------------------------------`
	fmt.Println(banner)
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

// LogSystemInfo logs runtime environment details
func LogSystemInfo() {
	logging.Info("------------------------------------------------------------")
	logging.Info("SYSTEM INFORMATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Go version:      %s", runtime.Version())
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs available:  %d", runtime.NumCPU())
	logging.Info("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))

	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		logging.Info("  (Container CPU limit detected)")
	}

	if logging.IsDebugEnabled() {
		if wd, err := os.Getwd(); err == nil {
			logging.Debug("  Working dir:     %s", wd)
		}
		if hostname, err := os.Hostname(); err == nil {
			logging.Debug("  Hostname:        %s", hostname)
		}
	}

	logging.Info("")
}

// LogConfig echoes the loaded run configuration
func LogConfig(cfg *config.Config, configPath string) {
	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Config file:  %s", configPath)
	logging.Info("  Input dir:    %s", cfg.InputDir)
	logging.Info("  Output dir:   %s", cfg.OutputDir)
	for i, root := range cfg.BeforeRoots {
		logging.Info("  Before root %d: %s", i+1, root)
	}
	for i, root := range cfg.AfterRoots {
		logging.Info("  After root %d:  %s", i+1, root)
	}
	logging.Info("  Log level:    %s", logging.GetLevel())
	logging.Info("")
}

// LogRunStarted logs the start of the playlist processing loop
func LogRunStarted(playlistCount, workerCount int) {
	logging.Info("------------------------------------------------------------")
	logging.Info("PROCESSING %d PLAYLIST(S) WITH %d WORKER(S)", playlistCount, workerCount)
	logging.Info("------------------------------------------------------------")
}

// LogRunComplete logs the outcome of the run
func LogRunComplete(rewritten, failed int, duration time.Duration) {
	logging.Info("")
	if failed == 0 {
		logging.Info("  [OK] Rewrote %d playlist(s) in %v", rewritten, duration)
	} else {
		logging.Warn("  Rewrote %d playlist(s), %d failed, in %v", rewritten, failed, duration)
	}
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}
