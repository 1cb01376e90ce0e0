package spell

import (
	"fmt"
	"strconv"
)

// Limit is the upper bound a component places on a dimension
type Limit struct {
	Unbounded bool    `json:"unbounded,omitempty" yaml:"unbounded,omitempty"`
	Max       float64 `json:"max,omitempty" yaml:"max,omitempty"`

	// PerCasterLevel is added to Max once per caster level
	PerCasterLevel float64 `json:"per_caster_level,omitempty" yaml:"per_caster_level,omitempty"`
}

// UpTo is a fixed limit
func UpTo(max float64) Limit {
	return Limit{Max: max}
}

// PerLevel is a limit that grows with the caster's level
func PerLevel(perLevel float64) Limit {
	return Limit{PerCasterLevel: perLevel}
}

// NoLimit places no bound on the dimension
func NoLimit() Limit {
	return Limit{Unbounded: true}
}

// For returns the effective maximum for a caster level; bounded is false when there is none
func (l Limit) For(casterLevel int) (max float64, bounded bool) {
	if l.Unbounded {
		return 0, false
	}
	if casterLevel < 1 {
		casterLevel = 1
	}
	return l.Max + l.PerCasterLevel*float64(casterLevel), true
}

// Allows reports whether value stays within the limit
func (l Limit) Allows(value float64, casterLevel int) bool {
	max, bounded := l.For(casterLevel)
	return !bounded || value <= max
}

func (l Limit) String() string {
	switch {
	case l.Unbounded:
		return "unbounded"
	case l.PerCasterLevel != 0 && l.Max != 0:
		return fmt.Sprintf("%s + %s per level", formatNumber(l.Max), formatNumber(l.PerCasterLevel))
	case l.PerCasterLevel != 0:
		return fmt.Sprintf("%s per level", formatNumber(l.PerCasterLevel))
	default:
		return formatNumber(l.Max)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
