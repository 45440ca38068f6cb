package inmemory

import (
	"sync"
	"time"
)

type Snapshot struct {
	HarvestTotal   uint64  `json:"harvest_total"`
	HarvestPartial uint64  `json:"harvest_partial"`
	HarvestedUnits float64 `json:"harvested_units"`
	Depletions     uint64  `json:"depletions"`
	TickTotal      uint64  `json:"tick_total"`
	TickMillisAvg  float64 `json:"tick_millis_avg"`
	TickMillisMax  float64 `json:"tick_millis_max"`
	LastTickMillis float64 `json:"last_tick_millis"`
}

type Recorder struct {
	mu             sync.Mutex
	harvests       uint64
	partials       uint64
	harvestedUnits float64
	depletions     uint64
	ticks          uint64
	tickMillisSum  float64
	tickMillisMax  float64
	lastTickMillis float64
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordHarvest(granted float64, partial bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.harvests++
	r.harvestedUnits += granted
	if partial {
		r.partials++
	}
}

func (r *Recorder) RecordDepletion() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.depletions++
}

func (r *Recorder) RecordTick(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ms := float64(d.Microseconds()) / 1000
	r.ticks++
	r.tickMillisSum += ms
	r.lastTickMillis = ms
	if ms > r.tickMillisMax {
		r.tickMillisMax = ms
	}
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		HarvestTotal:   r.harvests,
		HarvestPartial: r.partials,
		HarvestedUnits: r.harvestedUnits,
		Depletions:     r.depletions,
		TickTotal:      r.ticks,
		TickMillisMax:  r.tickMillisMax,
		LastTickMillis: r.lastTickMillis,
	}
	if r.ticks > 0 {
		out.TickMillisAvg = r.tickMillisSum / float64(r.ticks)
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
