package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"m3u-rebase/internal/logging"
)

// Summary holds aggregated run totals read back from the metric registry.
type Summary struct {
	PlaylistsProcessed float64
	PlaylistsRewritten float64
	PlaylistsFailed    map[string]float64 // by stage
	PathResolutions    map[string]float64 // by status
	PathLinesParsed    float64
	StaleErrors        float64
}

// Gather reads the default registry and aggregates this tool's counters
// into a Summary. Gather errors for individual collectors are ignored;
// whatever was collected is still summarized.
func Gather() Summary {
	s := Summary{
		PlaylistsFailed: make(map[string]float64),
		PathResolutions: make(map[string]float64),
	}

	families, _ := prometheus.DefaultGatherer.Gather()
	for _, family := range families {
		name := family.GetName()
		if !strings.HasPrefix(name, "m3u_rebase_") {
			continue
		}

		for _, m := range family.GetMetric() {
			value := m.GetCounter().GetValue()

			switch name {
			case "m3u_rebase_playlists_processed_total":
				s.PlaylistsProcessed += value
			case "m3u_rebase_playlists_rewritten_total":
				s.PlaylistsRewritten += value
			case "m3u_rebase_playlists_failed_total":
				s.PlaylistsFailed[labelValue(m.GetLabel(), "stage")] += value
			case "m3u_rebase_path_resolutions_total":
				s.PathResolutions[labelValue(m.GetLabel(), "status")] += value
			case "m3u_rebase_path_lines_parsed_total":
				s.PathLinesParsed += value
			case "m3u_rebase_filesystem_stale_errors_total":
				s.StaleErrors += value
			}
		}
	}

	return s
}

// LogSummary logs the aggregated run totals.
func LogSummary() {
	s := Gather()

	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("RUN SUMMARY")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Playlists processed: %.0f", s.PlaylistsProcessed)
	logging.Info("  Playlists rewritten: %.0f", s.PlaylistsRewritten)
	logging.Info("  Playlists failed:    %.0f (read: %.0f, resolve: %.0f, write: %.0f)",
		s.PlaylistsFailed["read"]+s.PlaylistsFailed["resolve"]+s.PlaylistsFailed["write"],
		s.PlaylistsFailed["read"], s.PlaylistsFailed["resolve"], s.PlaylistsFailed["write"])
	logging.Info("  Path lines parsed:   %.0f", s.PathLinesParsed)
	logging.Info("  Path resolutions:    existing: %.0f, rewritten: %.0f",
		s.PathResolutions[StatusExisting], s.PathResolutions[StatusRewritten])
	logging.Info("  Resolution failures: unresolved root: %.0f, not found: %.0f, ambiguous: %.0f",
		s.PathResolutions[StatusUnresolvedRoot],
		s.PathResolutions[StatusNotFound],
		s.PathResolutions[StatusAmbiguous])
	if s.StaleErrors > 0 {
		logging.Warn("  NFS stale handle errors: %.0f", s.StaleErrors)
	}
}

func labelValue(pairs []*dto.LabelPair, name string) string {
	for _, p := range pairs {
		if p.GetName() == name {
			return p.GetValue()
		}
	}
	return ""
}
