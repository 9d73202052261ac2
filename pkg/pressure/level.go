package pressure

import "math"

// Level is the display bucket for a pressure ratio.
type Level string

const (
	LevelCritical Level = "critical"
	LevelHigh     Level = "high"
	LevelModerate Level = "moderate"
	LevelLow      Level = "low"
)

// LevelOf buckets a ratio: >=0.85 critical, >=0.60 high, >=0.40 moderate,
// otherwise low.
func LevelOf(ratio float64) Level {
	switch {
	case ratio >= 0.85:
		return LevelCritical
	case ratio >= 0.60:
		return LevelHigh
	case ratio >= 0.40:
		return LevelModerate
	default:
		return LevelLow
	}
}

// Color is the donut-chart fill color for the level.
func (l Level) Color() string {
	switch l {
	case LevelCritical:
		return "red"
	case LevelHigh:
		return "orange"
	case LevelModerate:
		return "yellow"
	default:
		return "white"
	}
}

// DonutPercent converts a ratio to a display percentage rounded to one
// decimal and capped at 100.
func DonutPercent(ratio float64) float64 {
	pct := math.Round(ratio*1000) / 10
	if pct > 100 {
		return 100
	}
	return pct
}
