package services

import (
	"context"

	rulebook "github.com/KirkDiggler/spellcraft/internal/domain/rulebook/components"
	"github.com/KirkDiggler/spellcraft/internal/repositories/components"
	"github.com/KirkDiggler/spellcraft/internal/services/casting"
	"github.com/prometheus/client_golang/prometheus"
)

// Provider holds all service instances
type Provider struct {
	CastingService      casting.Service
	ComponentRepository components.Repository
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	ComponentRepository components.Repository
	Registerer          prometheus.Registerer
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use an in-memory repository holding the built-in table if none provided
	repo := cfg.ComponentRepository
	if repo == nil {
		repo = components.NewInMemoryRepository()
		if err := components.SaveTable(context.Background(), repo, rulebook.Defaults()); err != nil {
			panic("failed to seed built-in component table: " + err.Error())
		}
	}

	castingService := casting.NewService(&casting.ServiceConfig{
		Repository: repo,
		Registerer: cfg.Registerer,
	})

	return &Provider{
		CastingService:      castingService,
		ComponentRepository: repo,
	}
}
