package components

import "github.com/KirkDiggler/spellcraft/internal/domain/spell"

// Delivery methods
const (
	InstantRelease spell.ComponentKey = "delivery.instant_release"
	Touch          spell.ComponentKey = "delivery.touch"
	Ranged         spell.ComponentKey = "delivery.ranged"
	Self           spell.ComponentKey = "delivery.self"
	Enchant        spell.ComponentKey = "delivery.enchant"
)

// Target shapes
const (
	Target spell.ComponentKey = "shape.target"
	Sphere spell.ComponentKey = "shape.sphere"
	Cone   spell.ComponentKey = "shape.cone"
	Line   spell.ComponentKey = "shape.line"
)
