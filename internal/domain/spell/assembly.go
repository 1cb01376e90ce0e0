package spell

import (
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
)

// Parameters are the per-casting values a caster chooses
type Parameters struct {
	Range          float64 `json:"range"`
	DurationRounds int     `json:"duration_rounds"`
	TargetCount    int     `json:"target_count"`
	Volume         float64 `json:"volume"`
	Ritual         bool    `json:"ritual"`
	RitualStep     int     `json:"ritual_step,omitempty"`

	// CasterLevel scales per-level limits; zero is treated as level 1
	CasterLevel int `json:"caster_level,omitempty"`
}

// Selection names the chosen components by key
type Selection struct {
	DeliveryMethod ComponentKey `json:"delivery_method"`
	TargetShape    ComponentKey `json:"target_shape"`

	// Content references carried through untouched
	PowerSource string   `json:"power_source,omitempty"`
	Trigger     string   `json:"trigger,omitempty"`
	Payloads    []string `json:"payloads,omitempty"`
	Variables   []string `json:"variables,omitempty"`

	Parameters
}

// Assembly is a selection resolved against the component table, ready to be costed
type Assembly struct {
	DeliveryMethod ComponentOption
	TargetShape    ComponentOption

	PowerSource string
	Trigger     string
	Payloads    []string
	Variables   []string

	Parameters
}

// Resolve binds the selection to the options it names. Parameters are copied
// as given; bounds are checked when the assembly is costed.
func (s *Selection) Resolve(delivery, shape ComponentOption) *Assembly {
	return &Assembly{
		DeliveryMethod: delivery,
		TargetShape:    shape,
		PowerSource:    s.PowerSource,
		Trigger:        s.Trigger,
		Payloads:       append([]string(nil), s.Payloads...),
		Variables:      append([]string(nil), s.Variables...),
		Parameters:     s.Parameters,
	}
}

// Components returns the costed options in evaluation order
func (a *Assembly) Components() []ComponentOption {
	return []ComponentOption{a.DeliveryMethod, a.TargetShape}
}

// Value returns the supplied value for a dimension
func (p *Parameters) Value(d Dimension) float64 {
	switch d {
	case DimensionRange:
		return p.Range
	case DimensionDuration:
		return float64(p.DurationRounds)
	case DimensionVolume:
		return p.Volume
	default:
		return 0
	}
}

// Level returns the caster level used for limits
func (p *Parameters) Level() int {
	if p.CasterLevel < 1 {
		return 1
	}
	return p.CasterLevel
}

// Validate checks the parameters against every selected component's bounds.
// Nothing is clamped; the first violation is returned.
func (a *Assembly) Validate() error {
	if a.DeliveryMethod.Slot != SlotDeliveryMethod {
		return spellerr.Configurationf("component %s is not a delivery method", a.DeliveryMethod.Key).
			WithComponent(a.DeliveryMethod.Key.String()).
			WithConstraint("slot")
	}
	if a.TargetShape.Slot != SlotTargetShape {
		return spellerr.Configurationf("component %s is not a target shape", a.TargetShape.Key).
			WithComponent(a.TargetShape.Key.String()).
			WithConstraint("slot")
	}

	if err := a.Parameters.validate(); err != nil {
		return err
	}

	for _, opt := range a.Components() {
		for _, d := range []Dimension{DimensionRange, DimensionDuration, DimensionVolume} {
			if !opt.Governs(d) {
				continue
			}
			if err := checkDimension(&opt, d, a.Value(d), a.Level()); err != nil {
				return err
			}
		}
	}

	return nil
}

func (p *Parameters) validate() error {
	switch {
	case p.Range < 0:
		return spellerr.Validationf("range cannot be negative, got %v", p.Range).
			WithConstraint("range_non_negative")
	case p.DurationRounds < 0:
		return spellerr.Validationf("duration cannot be negative, got %d rounds", p.DurationRounds).
			WithConstraint("duration_non_negative")
	case p.Volume < 0:
		return spellerr.Validationf("volume cannot be negative, got %v", p.Volume).
			WithConstraint("volume_non_negative")
	case p.CasterLevel < 0:
		return spellerr.Validationf("caster level cannot be negative, got %d", p.CasterLevel).
			WithConstraint("caster_level")
	}

	if err := ValidateTargetCount(p.TargetCount); err != nil {
		return err
	}
	if p.Ritual {
		return ValidateRitualStep(p.RitualStep)
	}
	return nil
}

func checkDimension(opt *ComponentOption, d Dimension, value float64, level int) error {
	if !opt.Rate(d).Accepts(value) {
		return spellerr.Validationf("%s does not support %s, got %v", opt.Name, d, value).
			WithComponent(opt.Key.String()).
			WithConstraint(string(d) + "_not_applicable").
			WithMeta(spellerr.MetaValue, value)
	}

	limit := opt.Limit(d)
	if !limit.Allows(value, level) {
		max, _ := limit.For(level)
		return spellerr.Validationf("%s allows %s up to %v, got %v", opt.Name, d, max, value).
			WithComponent(opt.Key.String()).
			WithConstraint("max_" + string(d)).
			WithMeta(spellerr.MetaValue, value).
			WithMeta(spellerr.MetaLimit, max)
	}
	return nil
}

// ValidateTargetCount checks that a spell affects at least one target
func ValidateTargetCount(n int) error {
	if n < 1 {
		return spellerr.Validationf("target count must be at least 1, got %d", n).
			WithConstraint("min_targets").
			WithMeta(spellerr.MetaValue, n)
	}
	return nil
}

// ValidateRitualStep checks that a ritual step is on the timeframe ladder
func ValidateRitualStep(step int) error {
	if !Timeframe(step).Valid() {
		return spellerr.Validationf("ritual step must be between 0 and %d, got %d", int(MaxTimeframe), step).
			WithConstraint("ritual_step").
			WithMeta(spellerr.MetaValue, step)
	}
	return nil
}
