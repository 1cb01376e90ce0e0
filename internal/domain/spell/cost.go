package spell

import "fmt"

// Stage names a step of the cost pipeline
type Stage string

const (
	StageBase        Stage = "base"
	StageRitual      Stage = "ritual"
	StageMultiTarget Stage = "multi_target"
)

// CastingTime is how long a spell takes to cast. Normal casts take rounds,
// ritual casts take a step on the timeframe ladder.
type CastingTime struct {
	Rounds    int       `json:"rounds"`
	Ritual    bool      `json:"ritual,omitempty"`
	Timeframe Timeframe `json:"timeframe,omitempty"`
}

// ActionTime is the casting time of a normal cast
var ActionTime = CastingTime{Rounds: 1}

// RitualTime is the casting time of a ritual at the given step
func RitualTime(step Timeframe) CastingTime {
	return CastingTime{Rounds: step.Rounds(), Ritual: true, Timeframe: step}
}

func (c CastingTime) String() string {
	if c.Ritual {
		return c.Timeframe.String() + " (ritual)"
	}
	if c.Rounds == 1 {
		return "1 round"
	}
	return fmt.Sprintf("%d rounds", c.Rounds)
}

// StageCost is the cost as it stood after one pipeline stage
type StageCost struct {
	Stage      Stage       `json:"stage"`
	Power      float64     `json:"power"`
	Complexity float64     `json:"complexity"`
	Time       CastingTime `json:"time"`
}

// Cost is the result of costing a spell. Transforms return a new Cost and
// never modify the one they were given.
type Cost struct {
	Power      float64     `json:"power"`
	Complexity float64     `json:"complexity"`
	Time       CastingTime `json:"time"`

	// Trail holds every stage that produced this cost, oldest first
	Trail []StageCost `json:"trail"`
}

// NewCost starts a pipeline with the base stage
func NewCost(power, complexity float64, time CastingTime) Cost {
	return Cost{
		Power:      power,
		Complexity: complexity,
		Time:       time,
		Trail: []StageCost{{
			Stage:      StageBase,
			Power:      power,
			Complexity: complexity,
			Time:       time,
		}},
	}
}

// Derive returns the cost after another stage
func (c Cost) Derive(stage Stage, power, complexity float64, time CastingTime) Cost {
	trail := make([]StageCost, len(c.Trail), len(c.Trail)+1)
	copy(trail, c.Trail)
	trail = append(trail, StageCost{
		Stage:      stage,
		Power:      power,
		Complexity: complexity,
		Time:       time,
	})

	return Cost{
		Power:      power,
		Complexity: complexity,
		Time:       time,
		Trail:      trail,
	}
}

// Stage returns the stage that produced the cost
func (c Cost) Stage() Stage {
	if len(c.Trail) == 0 {
		return ""
	}
	return c.Trail[len(c.Trail)-1].Stage
}

// RitualStep returns the accumulated ritual step, or zero for a normal cast
func (c Cost) RitualStep() int {
	if !c.Time.Ritual {
		return 0
	}
	return int(c.Time.Timeframe)
}
