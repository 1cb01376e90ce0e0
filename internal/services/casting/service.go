package casting

//go:generate mockgen -destination=mock/mock_service.go -package=mockcasting -source=service.go

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/spellcraft/internal/domain/rulebook/calculators"
	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
	"github.com/KirkDiggler/spellcraft/internal/repositories/components"
	"github.com/KirkDiggler/spellcraft/internal/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// Repository is an alias for the component repository interface
type Repository = components.Repository

// Service quotes spell costs against the stored component table
type Service interface {
	// Quote costs a selection for a caster
	Quote(ctx context.Context, input *QuoteInput) (*Quote, error)

	// ListOptions lists the stored options for a slot, ordered by key
	ListOptions(ctx context.Context, slot spell.Slot) ([]*spell.ComponentOption, error)
}

// Caster is the circumstance a spell is being cast in
type Caster struct {
	// PowerLimit caps the power of a non-ritual cast; zero means no limit
	PowerLimit float64 `json:"power_limit,omitempty"`

	InCombat    bool `json:"in_combat,omitempty"`
	UnderDuress bool `json:"under_duress,omitempty"`
}

// QuoteInput contains data for quoting a spell
type QuoteInput struct {
	Selection spell.Selection `json:"selection"`
	Caster    Caster          `json:"caster"`
}

// Quote is a costed selection
type Quote struct {
	ID        string          `json:"id"`
	Selection spell.Selection `json:"selection"`
	Cost      spell.Cost      `json:"cost"`
}

// Stages returns the cost after every pipeline stage, base first
func (q *Quote) Stages() []spell.StageCost {
	return q.Cost.Trail
}

type service struct {
	repository    Repository
	calculator    calculators.Calculator
	uuidGenerator uuid.Generator
	metrics       *Metrics
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository             // Required
	Calculator    calculators.Calculator // Optional, defaults to the standard cost rules
	UUIDGenerator uuid.Generator         // Optional, will use default if nil
	Registerer    prometheus.Registerer  // Optional, metrics are not exported if nil
}

// NewService creates a new casting service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		calculator:    cfg.Calculator,
		uuidGenerator: cfg.UUIDGenerator,
		metrics:       NewMetrics(cfg.Registerer),
	}

	if svc.calculator == nil {
		svc.calculator = calculators.NewCostCalculator()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) Quote(ctx context.Context, input *QuoteInput) (*Quote, error) {
	quote, err := s.quote(ctx, input)
	if err != nil {
		s.metrics.refused(err)
		return nil, err
	}

	s.metrics.computed()
	return quote, nil
}

func (s *service) quote(ctx context.Context, input *QuoteInput) (*Quote, error) {
	if input == nil {
		return nil, spellerr.InvalidArgument("input cannot be nil")
	}

	params := input.Selection.Parameters
	if params.Ritual && (input.Caster.InCombat || input.Caster.UnderDuress) {
		return nil, spellerr.Validation("rituals cannot be cast in combat or under duress").
			WithConstraint("ritual_conditions")
	}

	assembly, err := s.resolve(ctx, &input.Selection)
	if err != nil {
		return nil, err
	}

	cost, err := s.calculator.Evaluate(assembly)
	if err != nil {
		return nil, err
	}

	// Rituals trade time for complexity and are allowed past the limit
	if limit := input.Caster.PowerLimit; limit > 0 && !params.Ritual && cost.Power > limit {
		return nil, spellerr.Validationf("spell power %.2f exceeds caster limit %.2f", cost.Power, limit).
			WithConstraint("power_limit").
			WithMeta(spellerr.MetaValue, cost.Power).
			WithMeta(spellerr.MetaLimit, limit)
	}

	return &Quote{
		ID:        s.uuidGenerator.New(),
		Selection: input.Selection,
		Cost:      cost,
	}, nil
}

func (s *service) resolve(ctx context.Context, sel *spell.Selection) (*spell.Assembly, error) {
	delivery, err := s.lookup(ctx, spell.SlotDeliveryMethod, sel.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	shape, err := s.lookup(ctx, spell.SlotTargetShape, sel.TargetShape)
	if err != nil {
		return nil, err
	}

	return sel.Resolve(*delivery, *shape), nil
}

func (s *service) lookup(ctx context.Context, slot spell.Slot, key spell.ComponentKey) (*spell.ComponentOption, error) {
	if key == "" {
		return nil, spellerr.InvalidArgumentf("a %s must be selected", slot)
	}

	option, err := s.repository.Get(ctx, key)
	if err != nil {
		if spellerr.IsNotFound(err) {
			return nil, spellerr.WrapWithCode(err, spellerr.CodeConfiguration, fmt.Sprintf("unknown component %q", key)).
				WithComponent(key.String()).
				WithConstraint("known_component")
		}
		return nil, spellerr.Wrapf(err, "failed to load component %s", key)
	}

	// Stored records can be edited outside SaveTable
	if err := option.Check(); err != nil {
		return nil, err
	}

	if option.Slot != slot {
		return nil, spellerr.Configurationf("component %s is a %s, not a %s", key, option.Slot, slot).
			WithComponent(key.String()).
			WithConstraint("slot")
	}

	return option, nil
}

func (s *service) ListOptions(ctx context.Context, slot spell.Slot) ([]*spell.ComponentOption, error) {
	if !slot.Costed() {
		return nil, spellerr.InvalidArgumentf("slot %s has no component options", slot)
	}

	all, err := s.repository.List(ctx)
	if err != nil {
		return nil, spellerr.Wrap(err, "failed to list components")
	}

	var options []*spell.ComponentOption
	for _, option := range all {
		if option.Slot == slot {
			options = append(options, option)
		}
	}

	return options, nil
}
