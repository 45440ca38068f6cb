package ports

import "time"

type SimulationMetrics interface {
	RecordHarvest(granted float64, partial bool)
	RecordDepletion()
	RecordTick(d time.Duration)
}
