// Package startup handles the tool's startup sequence: banner, build
// information (injected via -ldflags), system details, and configuration
// echoing, plus the run summary lines printed at exit. Keeping the noisy
// console output here keeps main.go readable.
package startup
