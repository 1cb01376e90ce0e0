package calculators

import (
	"math"

	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
)

const (
	// DistanceUnit is the length, in feet, range rates are charged per
	DistanceUnit = 5.0

	// RitualComplexityFactor multiplies complexity once per ritual step
	RitualComplexityFactor = 0.75

	// RitualPowerFactor multiplies power once per ritual step
	RitualPowerFactor = 1.25

	// MultiTargetFactor multiplies power once per target beyond the first
	MultiTargetFactor = 2.0
)

// Calculator costs spell assemblies
type Calculator interface {
	ComputeCost(assembly *spell.Assembly) (spell.Cost, error)
	ApplyRitual(cost spell.Cost, step int) (spell.Cost, error)
	ApplyMultiTarget(cost spell.Cost, targetCount int) (spell.Cost, error)
	Evaluate(assembly *spell.Assembly) (spell.Cost, error)
}

// CostCalculator implements the component cost rules. It holds no state and
// is safe for concurrent use.
type CostCalculator struct{}

// NewCostCalculator creates a new cost calculator
func NewCostCalculator() *CostCalculator {
	return &CostCalculator{}
}

// ComputeCost folds the assembly's components into a base cost, before any
// ritual or multi-target adjustment
func (c *CostCalculator) ComputeCost(assembly *spell.Assembly) (spell.Cost, error) {
	if assembly == nil {
		return spell.Cost{}, spellerr.InvalidArgument("assembly is required")
	}
	if err := assembly.Validate(); err != nil {
		return spell.Cost{}, err
	}

	selected := assembly.Components()

	// Bases add, multipliers compound, and only the combined base is multiplied
	var basePower, baseComplexity float64
	powerMultiplier, complexityMultiplier := 1.0, 1.0
	for _, opt := range selected {
		basePower += opt.BasePower
		baseComplexity += opt.BaseComplexity
		powerMultiplier *= opt.PowerMultiplier
		complexityMultiplier *= opt.ComplexityMultiplier
	}

	power := basePower * powerMultiplier
	complexity := baseComplexity * complexityMultiplier

	for i := range selected {
		opt := &selected[i]
		power += rangeTerm(opt, &assembly.Parameters)
		complexity += durationTerm(opt, &assembly.Parameters)
		power += volumeTerm(opt, &assembly.Parameters)
	}

	return spell.NewCost(power, complexity, spell.ActionTime), nil
}

// rangeTerm charges power per distance unit per round of flight. The first
// round of flight happens during the casting round, so a spell always flies
// for at least one round.
func rangeTerm(opt *spell.ComponentOption, p *spell.Parameters) float64 {
	rate := opt.Rate(spell.DimensionRange)
	if !opt.Governs(spell.DimensionRange) || !rate.IsApplicable() || p.Range == 0 {
		return 0
	}

	units := p.Range / DistanceUnit
	flightRounds := max(1, p.DurationRounds)

	perUnit := rate.Value
	if rate.Growth == spell.GrowthDistanceScaled {
		perUnit += rate.Slope * units
	}

	return perUnit * units * float64(flightRounds)
}

// durationTerm charges complexity for the rounds after the first, following
// the component's declared growth law
func durationTerm(opt *spell.ComponentOption, p *spell.Parameters) float64 {
	rate := opt.Rate(spell.DimensionDuration)
	if !opt.Governs(spell.DimensionDuration) || !rate.IsApplicable() || p.DurationRounds == 0 {
		return 0
	}

	switch rate.Growth {
	case spell.GrowthLinear:
		return rate.Value * float64(p.DurationRounds-1)
	case spell.GrowthExponential:
		after := p.DurationRounds - 1
		if after == 0 {
			return 0
		}
		return math.Pow(rate.Value, float64(after))
	case spell.GrowthSteppedExponential:
		step := spell.TimeframeForRounds(p.DurationRounds)
		if step == spell.TimeframeMinute {
			return 0
		}
		return math.Pow(rate.Value, float64(step))
	default:
		return 0
	}
}

func volumeTerm(opt *spell.ComponentOption, p *spell.Parameters) float64 {
	rate := opt.Rate(spell.DimensionVolume)
	if !opt.Governs(spell.DimensionVolume) || !rate.IsApplicable() {
		return 0
	}
	return rate.Value * p.Volume
}

// ApplyRitual trades casting time for complexity. Each step multiplies
// complexity by 0.75 and power by 1.25 and moves casting time one step up the
// timeframe ladder. Applying it to a ritual cost continues from the steps
// already taken.
func (c *CostCalculator) ApplyRitual(cost spell.Cost, step int) (spell.Cost, error) {
	if step < 0 {
		return spell.Cost{}, spell.ValidateRitualStep(step)
	}
	total := cost.RitualStep() + step
	if err := spell.ValidateRitualStep(total); err != nil {
		return spell.Cost{}, err
	}

	return cost.Derive(
		spell.StageRitual,
		cost.Power*math.Pow(RitualPowerFactor, float64(step)),
		cost.Complexity*math.Pow(RitualComplexityFactor, float64(step)),
		spell.RitualTime(spell.Timeframe(total)),
	), nil
}

// ApplyMultiTarget doubles power for every target beyond the first.
// Complexity and casting time are unchanged. A count whose power no longer
// fits in a float64 is refused.
func (c *CostCalculator) ApplyMultiTarget(cost spell.Cost, targetCount int) (spell.Cost, error) {
	if err := spell.ValidateTargetCount(targetCount); err != nil {
		return spell.Cost{}, err
	}
	if targetCount == 1 {
		return cost, nil
	}

	power := cost.Power
	if power != 0 {
		power *= math.Pow(MultiTargetFactor, float64(targetCount-1))
	}
	if math.IsInf(power, 0) {
		return spell.Cost{}, spellerr.Validationf("%d targets puts spell power out of range", targetCount).
			WithConstraint("max_targets").
			WithMeta(spellerr.MetaValue, targetCount)
	}

	return cost.Derive(
		spell.StageMultiTarget,
		power,
		cost.Complexity,
		cost.Time,
	), nil
}

// Evaluate runs the whole pipeline: base cost, ritual when requested, then
// multi-target scaling. The returned cost's trail records each stage.
func (c *CostCalculator) Evaluate(assembly *spell.Assembly) (spell.Cost, error) {
	cost, err := c.ComputeCost(assembly)
	if err != nil {
		return spell.Cost{}, err
	}

	if assembly.Ritual {
		cost, err = c.ApplyRitual(cost, assembly.RitualStep)
		if err != nil {
			return spell.Cost{}, err
		}
	}

	return c.ApplyMultiTarget(cost, assembly.TargetCount)
}
