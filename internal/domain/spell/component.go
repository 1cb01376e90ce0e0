package spell

import (
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
)

// ComponentOption is one choice for a costed slot, e.g. the Ranged delivery method
type ComponentOption struct {
	Key         ComponentKey `json:"key" yaml:"key"`
	Slot        Slot         `json:"slot" yaml:"slot"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`

	// Flat costs added once per spell
	BasePower      float64 `json:"base_power" yaml:"base_power"`
	BaseComplexity float64 `json:"base_complexity" yaml:"base_complexity"`

	// Factors applied to the spell's combined base costs
	PowerMultiplier      float64 `json:"power_multiplier" yaml:"power_multiplier"`
	ComplexityMultiplier float64 `json:"complexity_multiplier" yaml:"complexity_multiplier"`

	Range    Rate `json:"range" yaml:"range"`
	Duration Rate `json:"duration" yaml:"duration"`
	Volume   Rate `json:"volume" yaml:"volume"`

	MaxRange    Limit `json:"max_range" yaml:"max_range"`
	MaxDuration Limit `json:"max_duration" yaml:"max_duration"`
	MaxVolume   Limit `json:"max_volume" yaml:"max_volume"`
}

// Rate returns the option's rate for a dimension
func (o *ComponentOption) Rate(d Dimension) Rate {
	switch d {
	case DimensionRange:
		return o.Range
	case DimensionDuration:
		return o.Duration
	case DimensionVolume:
		return o.Volume
	default:
		return NotApplicable()
	}
}

// Limit returns the option's upper bound for a dimension
func (o *ComponentOption) Limit(d Dimension) Limit {
	switch d {
	case DimensionRange:
		return o.MaxRange
	case DimensionDuration:
		return o.MaxDuration
	case DimensionVolume:
		return o.MaxVolume
	default:
		return UpTo(0)
	}
}

// Governs reports whether the option's slot declares the dimension
func (o *ComponentOption) Governs(d Dimension) bool {
	return o.Slot.Governs(d)
}

// Check verifies the option's own table is consistent
func (o *ComponentOption) Check() error {
	if o.Key == "" {
		return spellerr.Configuration("component key is required").
			WithConstraint("key")
	}
	if !o.Slot.Costed() {
		return spellerr.Configurationf("component %s has no cost table for slot %q", o.Key, o.Slot).
			WithComponent(o.Key.String()).
			WithConstraint("slot")
	}

	numbers := []struct {
		name  string
		value float64
	}{
		{"base_power", o.BasePower},
		{"base_complexity", o.BaseComplexity},
		{"power_multiplier", o.PowerMultiplier},
		{"complexity_multiplier", o.ComplexityMultiplier},
		{"max_range", o.MaxRange.Max},
		{"max_range.per_caster_level", o.MaxRange.PerCasterLevel},
		{"max_duration", o.MaxDuration.Max},
		{"max_duration.per_caster_level", o.MaxDuration.PerCasterLevel},
		{"max_volume", o.MaxVolume.Max},
		{"max_volume.per_caster_level", o.MaxVolume.PerCasterLevel},
	}
	for _, n := range numbers {
		if n.value < 0 {
			return spellerr.Configurationf("component %s has negative %s %v", o.Key, n.name, n.value).
				WithComponent(o.Key.String()).
				WithConstraint(n.name)
		}
	}

	for _, d := range []Dimension{DimensionRange, DimensionDuration, DimensionVolume} {
		if !o.Governs(d) {
			continue
		}
		if err := o.checkRate(d); err != nil {
			return err
		}
	}

	return nil
}

func (o *ComponentOption) checkRate(d Dimension) error {
	rate := o.Rate(d)
	constraint := string(d) + "_rate"

	switch rate.Kind {
	case RateNotApplicable, RateUnbounded:
		return nil
	case RateApplicable:
	default:
		return spellerr.Configurationf("component %s declares unknown %s rate kind %q", o.Key, d, rate.Kind).
			WithComponent(o.Key.String()).
			WithConstraint(constraint)
	}

	if rate.Value < 0 || rate.Slope < 0 {
		return spellerr.Configurationf("component %s has a negative %s rate", o.Key, d).
			WithComponent(o.Key.String()).
			WithConstraint(constraint)
	}
	if !d.SupportsGrowth(rate.Growth) {
		return spellerr.Configurationf("component %s: %s rate cannot grow %q", o.Key, d, rate.Growth).
			WithComponent(o.Key.String()).
			WithConstraint(constraint)
	}
	return nil
}
