package spell

// RateKind says whether a component supports a dimension and whether it charges for it
type RateKind string

const (
	// RateNotApplicable means the component does not support the dimension;
	// any nonzero value for it is a validation error
	RateNotApplicable RateKind = "not_applicable"

	// RateApplicable means the dimension is charged at Value under Growth
	RateApplicable RateKind = "applicable"

	// RateUnbounded means the dimension is accepted with no per-unit charge
	RateUnbounded RateKind = "unbounded"
)

// Growth is the law a rate's cost follows as the dimension grows
type Growth string

const (
	// GrowthLinear charges Value per unit
	GrowthLinear Growth = "linear"

	// GrowthExponential charges Value^n for n rounds after the first
	GrowthExponential Growth = "exponential"

	// GrowthSteppedExponential charges Value^step for the timeframe step the duration falls in
	GrowthSteppedExponential Growth = "stepped_exponential"

	// GrowthDistanceScaled charges (Value + Slope*units) per distance unit
	GrowthDistanceScaled Growth = "distance_scaled"
)

// Rate is the per-unit cost a component charges for one dimension
type Rate struct {
	Kind   RateKind `json:"kind" yaml:"kind"`
	Value  float64  `json:"value,omitempty" yaml:"value,omitempty"`
	Growth Growth   `json:"growth,omitempty" yaml:"growth,omitempty"`
	Slope  float64  `json:"slope,omitempty" yaml:"slope,omitempty"`
}

// NotApplicable declares a dimension the component does not support
func NotApplicable() Rate {
	return Rate{Kind: RateNotApplicable}
}

// Unbounded declares a dimension the component supports for free
func Unbounded() Rate {
	return Rate{Kind: RateUnbounded}
}

// Linear declares a flat per-unit rate
func Linear(value float64) Rate {
	return Rate{Kind: RateApplicable, Value: value, Growth: GrowthLinear}
}

// Exponential declares a rate compounding per round after the first
func Exponential(value float64) Rate {
	return Rate{Kind: RateApplicable, Value: value, Growth: GrowthExponential}
}

// SteppedExponential declares a rate compounding per timeframe step
func SteppedExponential(value float64) Rate {
	return Rate{Kind: RateApplicable, Value: value, Growth: GrowthSteppedExponential}
}

// DistanceScaled declares a per-unit rate that itself grows by slope per unit
func DistanceScaled(value, slope float64) Rate {
	return Rate{Kind: RateApplicable, Value: value, Growth: GrowthDistanceScaled, Slope: slope}
}

// IsApplicable reports whether the rate charges for its dimension
func (r Rate) IsApplicable() bool {
	return r.Kind == RateApplicable
}

// IsNotApplicable reports whether the dimension is unsupported
func (r Rate) IsNotApplicable() bool {
	return r.Kind == RateNotApplicable
}

// Accepts reports whether a value may be supplied for the dimension at all
func (r Rate) Accepts(value float64) bool {
	return !r.IsNotApplicable() || value == 0
}

// allowedGrowth lists the laws each dimension can follow
var allowedGrowth = map[Dimension][]Growth{
	DimensionRange:    {GrowthLinear, GrowthDistanceScaled},
	DimensionDuration: {GrowthLinear, GrowthExponential, GrowthSteppedExponential},
	DimensionVolume:   {GrowthLinear},
}

// SupportsGrowth reports whether a dimension may use the given growth law
func (d Dimension) SupportsGrowth(g Growth) bool {
	for _, allowed := range allowedGrowth[d] {
		if allowed == g {
			return true
		}
	}
	return false
}
