package world

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

type CalendarConfig struct {
	TicksPerDay int
	DaysPerYear int
}

// Calendar derives the in-world season from the tick counter. The broader
// simulation may override the season per tick; the calendar is the default
// when no external input arrives.
type Calendar struct {
	cfg CalendarConfig
}

func NewCalendar(cfg CalendarConfig) Calendar {
	if cfg.TicksPerDay <= 0 {
		cfg.TicksPerDay = 48
	}
	if cfg.DaysPerYear <= 0 {
		cfg.DaysPerYear = 360
	}
	return Calendar{cfg: cfg}
}

func DefaultCalendar() Calendar {
	return NewCalendar(CalendarConfig{})
}

func (c Calendar) SeasonAt(tick uint64) Season {
	dayOfYear := (tick / uint64(c.cfg.TicksPerDay)) % uint64(c.cfg.DaysPerYear)
	quarter := uint64(c.cfg.DaysPerYear) / 4
	switch {
	case dayOfYear < quarter:
		return SeasonSpring
	case dayOfYear < 2*quarter:
		return SeasonSummer
	case dayOfYear < 3*quarter:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

func (c Calendar) DayAt(tick uint64) uint64 {
	return tick / uint64(c.cfg.TicksPerDay)
}

// WeatherDelta is the per-tick live weather input. Values are swings, not
// absolutes; the climate hook applies them scaled and clamped.
type WeatherDelta struct {
	Temperature   float64 `json:"temperature"`
	Precipitation float64 `json:"precipitation"`
}
