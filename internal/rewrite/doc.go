// Package rewrite drives the per-playlist workflow: resolve every audio
// path reference to its current location, then rewrite the playlist in one
// all-or-nothing step.
//
// Resolution failures are accumulated, not short-circuited — every reference
// in a document is attempted before the batch is rejected, so a single run
// reports every problem path to fix.
package rewrite
