package components

//go:generate mockgen -destination=mock/mock.go -package=mockcomponents -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
)

// Repository persists the component definition table. Spells themselves are
// never stored here.
type Repository interface {
	// Put stores an option, replacing any option with the same key
	Put(ctx context.Context, option *spell.ComponentOption) error

	// Get retrieves an option by key
	Get(ctx context.Context, key spell.ComponentKey) (*spell.ComponentOption, error)

	// List retrieves every stored option, ordered by key
	List(ctx context.Context) ([]*spell.ComponentOption, error)

	// Delete removes an option
	Delete(ctx context.Context, key spell.ComponentKey) error
}
