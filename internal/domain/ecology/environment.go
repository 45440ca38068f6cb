package ecology

// RegionState is the environmental feedback triple for one region. All
// three stay within [0,1] under every update path.
type RegionState struct {
	Health       float64 `json:"health"`
	Pollution    float64 `json:"pollution"`
	Biodiversity float64 `json:"biodiversity"`
}

// Tracker holds per-region environmental state. Harvesting drains health
// and adds pollution; TickRecover drifts everything back each tick.
type Tracker struct {
	regions []RegionState
}

func NewTracker(regionCount int) *Tracker {
	regions := make([]RegionState, regionCount)
	for i := range regions {
		regions[i] = RegionState{Health: 1.0, Pollution: 0.0, Biodiversity: InitialBiodiversity}
	}
	return &Tracker{regions: regions}
}

// RestoreTracker rebuilds a tracker from persisted region states.
func RestoreTracker(regions []RegionState) *Tracker {
	out := make([]RegionState, len(regions))
	copy(out, regions)
	return &Tracker{regions: out}
}

func (t *Tracker) RegionCount() int { return len(t.regions) }

func (t *Tracker) Region(id int) RegionState {
	if id < 0 || id >= len(t.regions) {
		return RegionState{Health: 1.0, Biodiversity: InitialBiodiversity}
	}
	return t.regions[id]
}

// RecordHarvest drains health proportional to harvested quantity over the
// region's regenerative capacity, and adds harvest pollution.
func (t *Tracker) RecordHarvest(regionID int, harvested, capacity float64) {
	if regionID < 0 || regionID >= len(t.regions) || harvested <= 0 {
		return
	}
	if capacity <= 0 {
		capacity = 1
	}
	r := &t.regions[regionID]
	r.Health = clampUnit(r.Health - harvested/(capacity*HealthDrainScale))
	r.Pollution = clampUnit(r.Pollution + PollutionPerHarvest)
}

// RecordPollution applies an external pollution event (structure activity,
// simulation input).
func (t *Tracker) RecordPollution(regionID int, amount float64) {
	if regionID < 0 || regionID >= len(t.regions) {
		return
	}
	r := &t.regions[regionID]
	r.Pollution = clampUnit(r.Pollution + amount)
}

// TickRecover runs the passive drift: health climbs toward 1.0 (slowed by
// pollution), pollution decays, biodiversity trails health.
func (t *Tracker) TickRecover() {
	for i := range t.regions {
		r := &t.regions[i]
		recovery := HealthRecoveryRate * (1 - r.Pollution)
		r.Health = clampUnit(r.Health + recovery)
		r.Pollution = clampUnit(r.Pollution - PollutionDecayRate)
		r.Biodiversity = clampUnit(r.Biodiversity + (r.Health-r.Biodiversity)*BiodiversityFollow)
	}
}

// Report returns a copy; the tracker itself is never handed out.
func (t *Tracker) Report() []RegionState {
	out := make([]RegionState, len(t.regions))
	copy(out, t.regions)
	return out
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
