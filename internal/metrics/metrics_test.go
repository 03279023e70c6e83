package metrics

import (
	"testing"
)

func TestInitializeMetrics(t *testing.T) {
	// Must be safe to call repeatedly without panicking
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("InitializeMetrics panicked: %v", r)
		}
	}()
	InitializeMetrics()
	InitializeMetrics()
}

func TestGatherReflectsCounters(t *testing.T) {
	InitializeMetrics()
	before := Gather()

	PlaylistsProcessed.Inc()
	PlaylistsRewritten.Inc()
	PlaylistsFailed.WithLabelValues("resolve").Inc()
	PathResolutions.WithLabelValues(StatusRewritten).Add(3)
	PathLinesParsed.Add(5)

	after := Gather()

	if got := after.PlaylistsProcessed - before.PlaylistsProcessed; got != 1 {
		t.Errorf("PlaylistsProcessed delta = %.0f, want 1", got)
	}
	if got := after.PlaylistsRewritten - before.PlaylistsRewritten; got != 1 {
		t.Errorf("PlaylistsRewritten delta = %.0f, want 1", got)
	}
	if got := after.PlaylistsFailed["resolve"] - before.PlaylistsFailed["resolve"]; got != 1 {
		t.Errorf("PlaylistsFailed[resolve] delta = %.0f, want 1", got)
	}
	if got := after.PathResolutions[StatusRewritten] - before.PathResolutions[StatusRewritten]; got != 3 {
		t.Errorf("PathResolutions[rewritten] delta = %.0f, want 3", got)
	}
	if got := after.PathLinesParsed - before.PathLinesParsed; got != 5 {
		t.Errorf("PathLinesParsed delta = %.0f, want 5", got)
	}
}

func TestGatherInitializedLabelsPresent(t *testing.T) {
	InitializeMetrics()
	s := Gather()

	for _, status := range []string{
		StatusExisting, StatusRewritten,
		StatusUnresolvedRoot, StatusNotFound, StatusAmbiguous,
	} {
		if _, ok := s.PathResolutions[status]; !ok {
			t.Errorf("expected pre-populated resolution status %q in summary", status)
		}
	}

	for _, stage := range []string{"read", "resolve", "write"} {
		if _, ok := s.PlaylistsFailed[stage]; !ok {
			t.Errorf("expected pre-populated failure stage %q in summary", stage)
		}
	}
}
