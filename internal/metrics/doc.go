// Package metrics defines Prometheus metrics for the playlist rebase run
// and aggregates them into an end-of-run summary.
//
// Metrics are registered on the default registry via promauto at package
// load. Because this is a batch tool rather than a long-running server,
// nothing is scraped; LogSummary gathers the registry once after the run
// loop finishes and reports the totals through the logging package.
package metrics
