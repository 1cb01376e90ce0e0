package components

import (
	"context"

	"github.com/KirkDiggler/spellcraft/internal/domain/rulebook/components"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
)

// SaveTable validates a table and stores every option in it
func SaveTable(ctx context.Context, repo Repository, table *components.Table) error {
	if err := table.Validate(); err != nil {
		return err
	}

	for i := range table.Options {
		if err := repo.Put(ctx, &table.Options[i]); err != nil {
			return spellerr.Wrapf(err, "failed to save component %s", table.Options[i].Key)
		}
	}

	return nil
}

// LoadTable reads every stored option into a table
func LoadTable(ctx context.Context, repo Repository) (*components.Table, error) {
	options, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	table := &components.Table{}
	for _, option := range options {
		table.Options = append(table.Options, *option)
	}

	return table, nil
}

// LoadRegistry builds the read-only registry from the stored table
func LoadRegistry(ctx context.Context, repo Repository) (*components.Registry, error) {
	table, err := LoadTable(ctx, repo)
	if err != nil {
		return nil, err
	}
	return components.NewRegistry(table)
}
