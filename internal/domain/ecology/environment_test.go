package ecology

import (
	"reflect"
	"testing"
)

func TestTrackerStartsHealthy(t *testing.T) {
	tr := NewTracker(4)
	if tr.RegionCount() != 4 {
		t.Fatalf("RegionCount() = %d, want 4", tr.RegionCount())
	}
	r := tr.Region(0)
	if r.Health != 1.0 || r.Pollution != 0.0 || r.Biodiversity != InitialBiodiversity {
		t.Fatalf("unexpected initial state: %+v", r)
	}
}

func TestRecordHarvestNeverUnderflows(t *testing.T) {
	tr := NewTracker(1)

	// Harvest far past the region's capacity.
	tr.RecordHarvest(0, 1000, 10)

	r := tr.Region(0)
	if r.Health != 0 {
		t.Fatalf("health = %v, want clamp at 0", r.Health)
	}
}

func TestRecordPollutionNeverOverflows(t *testing.T) {
	tr := NewTracker(1)
	for i := 0; i < 500; i++ {
		tr.RecordPollution(0, 0.1)
	}
	if got := tr.Region(0).Pollution; got != 1 {
		t.Fatalf("pollution = %v, want clamp at 1", got)
	}
}

func TestTickRecoverRestoresHealth(t *testing.T) {
	tr := NewTracker(1)
	tr.RecordHarvest(0, 5, 10)
	before := tr.Region(0)

	tr.TickRecover()
	after := tr.Region(0)

	if after.Health <= before.Health {
		t.Fatalf("health did not recover: %v -> %v", before.Health, after.Health)
	}
	if after.Pollution >= before.Pollution {
		t.Fatalf("pollution did not decay: %v -> %v", before.Pollution, after.Pollution)
	}
}

func TestPollutionSlowsRecovery(t *testing.T) {
	clean := NewTracker(1)
	clean.RecordHarvest(0, 5, 10)

	dirty := NewTracker(1)
	dirty.RecordHarvest(0, 5, 10)
	dirty.RecordPollution(0, 0.9)

	clean.TickRecover()
	dirty.TickRecover()

	if dirty.Region(0).Health >= clean.Region(0).Health {
		t.Fatalf("polluted region recovered at least as fast: dirty=%v clean=%v",
			dirty.Region(0).Health, clean.Region(0).Health)
	}
}

func TestBiodiversityTrailsHealth(t *testing.T) {
	tr := NewTracker(1)
	tr.RecordHarvest(0, 100, 10) // health to 0

	bio := tr.Region(0).Biodiversity
	for i := 0; i < 50; i++ {
		tr.regions[0].Health = 0 // pin health down
		tr.TickRecover()
	}
	if got := tr.Region(0).Biodiversity; got >= bio {
		t.Fatalf("biodiversity did not trail health down: %v -> %v", bio, got)
	}
}

func TestRestoreTrackerRoundTrip(t *testing.T) {
	tr := NewTracker(3)
	tr.RecordHarvest(1, 5, 10)
	tr.RecordPollution(2, 0.3)

	restored := RestoreTracker(tr.Report())
	if !reflect.DeepEqual(tr.Report(), restored.Report()) {
		t.Fatalf("restore round trip mismatch")
	}
}

func TestOutOfRangeRegionIsNoop(t *testing.T) {
	tr := NewTracker(1)
	tr.RecordHarvest(5, 10, 10)
	tr.RecordPollution(-1, 0.5)
	if got := tr.Region(0); got.Health != 1 || got.Pollution != 0 {
		t.Fatalf("out-of-range writes leaked into region 0: %+v", got)
	}
}
