package components_test

import (
	"testing"

	"github.com/KirkDiggler/spellcraft/internal/domain/rulebook/components"
	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, components.Defaults().Validate())

	registry := components.DefaultRegistry()
	assert.Len(t, registry.List(spell.SlotDeliveryMethod), 5)
	assert.Len(t, registry.List(spell.SlotTargetShape), 4)
	assert.Empty(t, registry.List(spell.SlotPayload))
}

func TestRegistry_Lookup(t *testing.T) {
	registry := components.DefaultRegistry()

	t.Run("known component", func(t *testing.T) {
		touch, err := registry.Lookup(components.Touch)
		require.NoError(t, err)
		assert.Equal(t, 1.0, touch.BaseComplexity)
		assert.Equal(t, 1.1, touch.ComplexityMultiplier)
		assert.Equal(t, spell.Exponential(1.25), touch.Duration)
	})

	t.Run("unknown component", func(t *testing.T) {
		_, err := registry.Lookup("delivery.teleport")
		require.Error(t, err)
		assert.True(t, spellerr.IsConfiguration(err))
		assert.Equal(t, "delivery.teleport", spellerr.GetComponent(err))
	})

	t.Run("lookups hand out copies", func(t *testing.T) {
		ranged, err := registry.Lookup(components.Ranged)
		require.NoError(t, err)
		ranged.BasePower = 1000

		again, err := registry.Lookup(components.Ranged)
		require.NoError(t, err)
		assert.Equal(t, 5.0, again.BasePower)
	})
}

func TestRegistry_Assemble(t *testing.T) {
	registry := components.DefaultRegistry()

	t.Run("resolves both slots", func(t *testing.T) {
		assembly, err := registry.Assemble(&spell.Selection{
			DeliveryMethod: components.Ranged,
			TargetShape:    components.Cone,
			Payloads:       []string{"fire.burn"},
			Trigger:        "impact",
			Parameters:     spell.Parameters{Range: 20, TargetCount: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, components.Ranged, assembly.DeliveryMethod.Key)
		assert.Equal(t, components.Cone, assembly.TargetShape.Key)
		assert.Equal(t, []string{"fire.burn"}, assembly.Payloads)
		assert.Equal(t, "impact", assembly.Trigger)
		assert.Equal(t, 20.0, assembly.Range)
	})

	t.Run("shape in the delivery slot", func(t *testing.T) {
		_, err := registry.Assemble(&spell.Selection{
			DeliveryMethod: components.Sphere,
			TargetShape:    components.Cone,
		})
		require.Error(t, err)
		assert.True(t, spellerr.IsConfiguration(err))
		assert.Equal(t, "slot", spellerr.GetConstraint(err))
	})

	t.Run("unknown shape", func(t *testing.T) {
		_, err := registry.Assemble(&spell.Selection{
			DeliveryMethod: components.Touch,
			TargetShape:    "shape.hexagon",
		})
		assert.True(t, spellerr.IsConfiguration(err))
	})

	t.Run("nil selection", func(t *testing.T) {
		_, err := registry.Assemble(nil)
		assert.True(t, spellerr.IsInvalidArgument(err))
	})
}

func TestNewRegistry_RejectsBadTables(t *testing.T) {
	t.Run("duplicate key", func(t *testing.T) {
		table := components.Defaults()
		table.Options = append(table.Options, table.Options[0])

		_, err := components.NewRegistry(table)
		assert.True(t, spellerr.IsConfiguration(err))
		assert.Equal(t, "unique_key", spellerr.GetConstraint(err))
	})

	t.Run("negative rate", func(t *testing.T) {
		table := components.Defaults()
		table.Options[1].Duration = spell.Exponential(-1.25)

		_, err := components.NewRegistry(table)
		assert.True(t, spellerr.IsConfiguration(err))
		assert.Equal(t, string(components.Touch), spellerr.GetComponent(err))
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := components.NewRegistry(&components.Table{})
		assert.True(t, spellerr.IsConfiguration(err))
	})
}
