package spell

// Slot is one of the component positions every spell fills
type Slot string

const (
	SlotDeliveryMethod Slot = "delivery_method"
	SlotTargetShape    Slot = "target_shape"
	SlotPowerSource    Slot = "power_source"
	SlotTrigger        Slot = "trigger"
	SlotPayload        Slot = "payload"
	SlotVariable       Slot = "variable"
)

// Costed reports whether options in this slot carry numeric cost tables.
// The remaining slots are opaque content references.
func (s Slot) Costed() bool {
	return s == SlotDeliveryMethod || s == SlotTargetShape
}

// Dimension is a spell parameter a component may charge for
type Dimension string

const (
	DimensionRange    Dimension = "range"
	DimensionDuration Dimension = "duration"
	DimensionVolume   Dimension = "volume"
)

// Governs reports whether options in the slot declare a rate and limit for the dimension.
// Delivery methods own range and duration, target shapes own volume.
func (s Slot) Governs(d Dimension) bool {
	switch s {
	case SlotDeliveryMethod:
		return d == DimensionRange || d == DimensionDuration
	case SlotTargetShape:
		return d == DimensionVolume
	default:
		return false
	}
}

// ComponentKey identifies a component option, e.g. "delivery.ranged"
type ComponentKey string

func (k ComponentKey) String() string {
	return string(k)
}
