package testutils

import (
	"testing"

	"github.com/KirkDiggler/spellcraft/internal/domain/rulebook/components"
	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	"github.com/stretchr/testify/require"
)

// CreateTestOption returns a copy of a built-in component option
func CreateTestOption(t *testing.T, key spell.ComponentKey) spell.ComponentOption {
	t.Helper()
	opt, err := components.DefaultRegistry().Lookup(key)
	require.NoError(t, err)
	return opt
}

// CreateTestSelection builds a selection for one target
func CreateTestSelection(delivery, shape spell.ComponentKey, params spell.Parameters) spell.Selection {
	if params.TargetCount == 0 {
		params.TargetCount = 1
	}
	return spell.Selection{
		DeliveryMethod: delivery,
		TargetShape:    shape,
		Parameters:     params,
	}
}

// CreateTestTable returns a small valid table with one option per costed slot
func CreateTestTable(t *testing.T) *components.Table {
	t.Helper()
	return &components.Table{
		Options: []spell.ComponentOption{
			CreateTestOption(t, components.Touch),
			CreateTestOption(t, components.Target),
		},
	}
}
