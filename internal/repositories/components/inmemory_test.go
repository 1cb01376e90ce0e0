package components_test

import (
	"context"
	"testing"

	rulebook "github.com/KirkDiggler/spellcraft/internal/domain/rulebook/components"
	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
	"github.com/KirkDiggler/spellcraft/internal/repositories/components"
	"github.com/KirkDiggler/spellcraft/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := components.NewInMemoryRepository()

	t.Run("save and reload the built-in table", func(t *testing.T) {
		original := rulebook.DefaultRegistry().Table()
		require.NoError(t, components.SaveTable(ctx, repo, original))

		loaded, err := components.LoadTable(ctx, repo)
		require.NoError(t, err)
		assert.ElementsMatch(t, original.Options, loaded.Options)

		registry, err := components.LoadRegistry(ctx, repo)
		require.NoError(t, err)
		_, err = registry.Lookup(rulebook.Enchant)
		assert.NoError(t, err)
	})

	t.Run("stored options are copies", func(t *testing.T) {
		opt, err := repo.Get(ctx, rulebook.Sphere)
		require.NoError(t, err)
		opt.PowerMultiplier = 99

		again, err := repo.Get(ctx, rulebook.Sphere)
		require.NoError(t, err)
		assert.Equal(t, 2.0, again.PowerMultiplier)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, rulebook.Line))

		_, err := repo.Get(ctx, rulebook.Line)
		assert.True(t, spellerr.IsNotFound(err))
		assert.True(t, spellerr.IsNotFound(repo.Delete(ctx, rulebook.Line)))
	})

	t.Run("invalid tables are not saved", func(t *testing.T) {
		table := rulebook.Defaults()
		table.Options[0].PowerMultiplier = -1

		err := components.SaveTable(ctx, components.NewInMemoryRepository(), table)
		assert.True(t, spellerr.IsConfiguration(err))
	})

	t.Run("an empty store cannot back a registry", func(t *testing.T) {
		_, err := components.LoadRegistry(ctx, components.NewInMemoryRepository())
		assert.True(t, spellerr.IsConfiguration(err))
	})
}

func TestLoadRegistry_PartialTable(t *testing.T) {
	ctx := context.Background()
	repo := components.NewInMemoryRepository()
	require.NoError(t, components.SaveTable(ctx, repo, testutils.CreateTestTable(t)))

	registry, err := components.LoadRegistry(ctx, repo)
	require.NoError(t, err)

	_, err = registry.Assemble(&spell.Selection{DeliveryMethod: rulebook.Touch, TargetShape: rulebook.Target})
	assert.NoError(t, err)

	_, err = registry.Assemble(&spell.Selection{DeliveryMethod: rulebook.Ranged, TargetShape: rulebook.Target})
	assert.True(t, spellerr.IsConfiguration(err))
}
