package tick

import (
	"evoworld/internal/app/worldstate"
	"evoworld/internal/domain/world"
)

// Request carries the external inputs for one tick. Season is optional;
// when set it overrides the calendar for this tick.
type Request struct {
	Weather   world.WeatherDelta          `json:"weather"`
	Pollution []worldstate.PollutionInput `json:"pollution"`
	Season    *world.Season               `json:"season,omitempty"`
}

type Response struct {
	Tick       uint64       `json:"tick"`
	Season     world.Season `json:"season"`
	EventCount int          `json:"event_count"`
}
