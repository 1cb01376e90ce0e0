package spell

// RoundsPerMinute is the number of six-second rounds in a minute
const RoundsPerMinute = 10

// Timeframe is a step on the fixed ritual and enchantment duration ladder.
// Only the step index feeds the cost formulas; Rounds is for display and for
// mapping a duration onto the ladder.
type Timeframe int

const (
	TimeframeMinute Timeframe = iota
	TimeframeTenMinutes
	TimeframeHour
	TimeframeSixHours
	TimeframeDay
	TimeframeWeek
	TimeframeMonth
	TimeframeSixMonths
	TimeframeYear
)

// MaxTimeframe is the last step on the ladder
const MaxTimeframe = TimeframeYear

const (
	roundsPerHour = 60 * RoundsPerMinute
	roundsPerDay  = 24 * roundsPerHour
)

// the ruleset counts a week as five days and a month as thirty
var timeframeRounds = [...]int{
	TimeframeMinute:     RoundsPerMinute,
	TimeframeTenMinutes: 10 * RoundsPerMinute,
	TimeframeHour:       roundsPerHour,
	TimeframeSixHours:   6 * roundsPerHour,
	TimeframeDay:        roundsPerDay,
	TimeframeWeek:       5 * roundsPerDay,
	TimeframeMonth:      30 * roundsPerDay,
	TimeframeSixMonths:  180 * roundsPerDay,
	TimeframeYear:       365 * roundsPerDay,
}

var timeframeNames = [...]string{
	TimeframeMinute:     "1 minute",
	TimeframeTenMinutes: "10 minutes",
	TimeframeHour:       "1 hour",
	TimeframeSixHours:   "6 hours",
	TimeframeDay:        "24 hours",
	TimeframeWeek:       "1 week",
	TimeframeMonth:      "1 month",
	TimeframeSixMonths:  "6 months",
	TimeframeYear:       "1 year",
}

// Valid reports whether the step is on the ladder
func (t Timeframe) Valid() bool {
	return t >= TimeframeMinute && t <= MaxTimeframe
}

// Rounds returns the length of the step in rounds
func (t Timeframe) Rounds() int {
	if !t.Valid() {
		return 0
	}
	return timeframeRounds[t]
}

func (t Timeframe) String() string {
	if !t.Valid() {
		return "invalid timeframe"
	}
	return timeframeNames[t]
}

// TimeframeForRounds returns the shortest step that covers the duration.
// Durations past a year stay on the last step.
func TimeframeForRounds(rounds int) Timeframe {
	for t := TimeframeMinute; t < MaxTimeframe; t++ {
		if rounds <= timeframeRounds[t] {
			return t
		}
	}
	return MaxTimeframe
}
