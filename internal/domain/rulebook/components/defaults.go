package components

import "github.com/KirkDiggler/spellcraft/internal/domain/spell"

// Defaults returns the built-in component table
func Defaults() *Table {
	return &Table{
		Options: []spell.ComponentOption{
			{
				Key:                  InstantRelease,
				Slot:                 spell.SlotDeliveryMethod,
				Name:                 "Instant Release",
				Description:          "Released the moment it is cast, directly in front of the caster. Nothing needs containing.",
				PowerMultiplier:      1,
				ComplexityMultiplier: 1,
				Range:                spell.Unbounded(), // reaches MaxRange at no cost
				Duration:             spell.NotApplicable(),
				MaxRange:             spell.UpTo(5),
				MaxDuration:          spell.UpTo(0),
			},
			{
				Key:                  Touch,
				Slot:                 spell.SlotDeliveryMethod,
				Name:                 "Touch",
				Description:          "Placed on a touched target and activates after a duration.",
				BasePower:            1,
				BaseComplexity:       1,
				PowerMultiplier:      1,
				ComplexityMultiplier: 1.1,
				Range:                spell.Linear(1),
				Duration:             spell.Exponential(1.25),
				MaxRange:             spell.UpTo(5),
				MaxDuration:          spell.UpTo(10),
			},
			{
				Key:                  Ranged,
				Slot:                 spell.SlotDeliveryMethod,
				Name:                 "Ranged",
				Description:          "Launched at a target in line of sight. Containing it in flight costs power by distance.",
				BasePower:            5,
				BaseComplexity:       5,
				PowerMultiplier:      1,
				ComplexityMultiplier: 1,
				Range:                spell.DistanceScaled(1, 0.05), // 1 + 0.05 per 5ft unit, charged per 5ft unit
				Duration:             spell.Exponential(1.5),
				MaxRange:             spell.PerLevel(100),
				MaxDuration:          spell.UpTo(10),
			},
			{
				Key:                  Self,
				Slot:                 spell.SlotDeliveryMethod,
				Name:                 "Self",
				Description:          "Affects only the caster.",
				PowerMultiplier:      1,
				ComplexityMultiplier: 1,
				Range:                spell.NotApplicable(),
				Duration:             spell.Linear(1),
				MaxRange:             spell.UpTo(0),
				MaxDuration:          spell.UpTo(10),
			},
			{
				Key:                  Enchant,
				Slot:                 spell.SlotDeliveryMethod,
				Name:                 "Enchant",
				Description:          "Binds the spell to an object to activate later. Usually cast as a ritual.",
				BasePower:            2,
				BaseComplexity:       2,
				PowerMultiplier:      1,
				ComplexityMultiplier: 1,
				Range:                spell.Unbounded(), // reaches MaxRange at no cost
				Duration:             spell.SteppedExponential(1.1),
				MaxRange:             spell.UpTo(5),
				MaxDuration:          spell.NoLimit(),
			},
			{
				Key:                  Target,
				Slot:                 spell.SlotTargetShape,
				Name:                 "Target",
				Description:          "A specific creature or object.",
				PowerMultiplier:      1,
				ComplexityMultiplier: 1.5,
				Volume:               spell.NotApplicable(),
				MaxVolume:            spell.NoLimit(),
			},
			{
				Key:                  Sphere,
				Slot:                 spell.SlotTargetShape,
				Name:                 "Sphere",
				Description:          "A spherical area.",
				PowerMultiplier:      2,
				ComplexityMultiplier: 1,
				Volume:               spell.Linear(1),
				MaxVolume:            spell.NoLimit(),
			},
			{
				Key:                  Cone,
				Slot:                 spell.SlotTargetShape,
				Name:                 "Cone",
				Description:          "A cone spreading from the activation point.",
				PowerMultiplier:      1.5,
				ComplexityMultiplier: 1.25,
				Volume:               spell.Linear(1),
				MaxVolume:            spell.NoLimit(),
			},
			{
				Key:                  Line,
				Slot:                 spell.SlotTargetShape,
				Name:                 "Line",
				Description:          "A straight line from the activation point.",
				PowerMultiplier:      1.25,
				ComplexityMultiplier: 1.25,
				Volume:               spell.Linear(1),
				MaxVolume:            spell.NoLimit(),
			},
		},
	}
}
