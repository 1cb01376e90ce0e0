package casting_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/spellcraft/internal/domain/rulebook/components"
	"github.com/KirkDiggler/spellcraft/internal/domain/spell"
	spellerr "github.com/KirkDiggler/spellcraft/internal/errors"
	mockcomponents "github.com/KirkDiggler/spellcraft/internal/repositories/components/mock"
	"github.com/KirkDiggler/spellcraft/internal/services/casting"
	mockuuid "github.com/KirkDiggler/spellcraft/internal/uuid/mock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const delta = 1e-9

type CastingServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	repo     *mockcomponents.MockRepository
	uuidGen  *mockuuid.MockGenerator
	registry *prometheus.Registry
	metrics  *casting.Metrics
	svc      casting.Service
	ctx      context.Context
}

func (s *CastingServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = mockcomponents.NewMockRepository(s.ctrl)
	s.uuidGen = mockuuid.NewMockGenerator(s.ctrl)
	s.registry = prometheus.NewRegistry()
	s.ctx = context.Background()

	s.svc = casting.NewService(&casting.ServiceConfig{
		Repository:    s.repo,
		UUIDGenerator: s.uuidGen,
		Registerer:    s.registry,
	})
}

func (s *CastingServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCastingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CastingServiceTestSuite))
}

func (s *CastingServiceTestSuite) expectOption(key spell.ComponentKey) {
	opt, err := components.DefaultRegistry().Lookup(key)
	s.Require().NoError(err)
	s.repo.EXPECT().Get(s.ctx, key).Return(&opt, nil)
}

func (s *CastingServiceTestSuite) rangedInput(params spell.Parameters) *casting.QuoteInput {
	return &casting.QuoteInput{
		Selection: spell.Selection{
			DeliveryMethod: components.Ranged,
			TargetShape:    components.Target,
			PowerSource:    "source.ambient",
			Payloads:       []string{"payload.fire"},
			Parameters:     params,
		},
	}
}

func (s *CastingServiceTestSuite) computed() float64 {
	return s.gather("spellcraft_quotes_computed_total", "")
}

func (s *CastingServiceTestSuite) refused(code spellerr.Code) float64 {
	return s.gather("spellcraft_quotes_refused_total", string(code))
}

// gather reads a counter from the test registry, filtered by code label when set
func (s *CastingServiceTestSuite) gather(name, code string) float64 {
	families, err := s.registry.Gather()
	s.Require().NoError(err)

	var total float64
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matches := code == ""
			for _, label := range metric.GetLabel() {
				if label.GetName() == "code" && label.GetValue() == code {
					matches = true
				}
			}
			if matches {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	return total
}

func (s *CastingServiceTestSuite) TestQuote() {
	s.expectOption(components.Ranged)
	s.expectOption(components.Target)
	s.uuidGen.EXPECT().New().Return("quote-1")

	quote, err := s.svc.Quote(s.ctx, s.rangedInput(spell.Parameters{Range: 30, DurationRounds: 2, TargetCount: 3}))
	s.Require().NoError(err)

	s.Equal("quote-1", quote.ID)
	s.InDelta(82.4, quote.Cost.Power, delta)
	s.InDelta(9.0, quote.Cost.Complexity, delta)
	s.Equal(spell.ActionTime, quote.Cost.Time)
	s.Equal([]string{"payload.fire"}, quote.Selection.Payloads)

	stages := quote.Stages()
	s.Require().Len(stages, 2)
	s.Equal(spell.StageBase, stages[0].Stage)
	s.InDelta(20.6, stages[0].Power, delta)
	s.Equal(spell.StageMultiTarget, stages[1].Stage)

	s.Equal(1.0, s.computed())
}

func (s *CastingServiceTestSuite) TestQuote_Ritual() {
	s.expectOption(components.Ranged)
	s.expectOption(components.Target)
	s.uuidGen.EXPECT().New().Return("quote-2")

	input := s.rangedInput(spell.Parameters{Range: 30, DurationRounds: 2, TargetCount: 1, Ritual: true, RitualStep: 1})
	input.Caster.PowerLimit = 10

	quote, err := s.svc.Quote(s.ctx, input)
	s.Require().NoError(err)

	// Rituals are not held to the caster's power limit
	s.InDelta(20.6*1.25, quote.Cost.Power, delta)
	s.InDelta(9.0*0.75, quote.Cost.Complexity, delta)
	s.True(quote.Cost.Time.Ritual)
	s.Equal(spell.Timeframe(1), quote.Cost.Time.Timeframe)
}

func (s *CastingServiceTestSuite) TestQuote_RitualRefusedUnderPressure() {
	for _, caster := range []casting.Caster{{InCombat: true}, {UnderDuress: true}} {
		input := s.rangedInput(spell.Parameters{Range: 30, TargetCount: 1, Ritual: true, RitualStep: 1})
		input.Caster = caster

		_, err := s.svc.Quote(s.ctx, input)
		s.True(spellerr.IsValidation(err))
		s.Equal("ritual_conditions", spellerr.GetConstraint(err))
	}

	s.Equal(2.0, s.refused(spellerr.CodeValidation))
	s.Equal(0.0, s.computed())
}

func (s *CastingServiceTestSuite) TestQuote_PowerLimit() {
	s.expectOption(components.Ranged)
	s.expectOption(components.Target)

	input := s.rangedInput(spell.Parameters{Range: 30, DurationRounds: 2, TargetCount: 1})
	input.Caster.PowerLimit = 20

	_, err := s.svc.Quote(s.ctx, input)
	s.Require().Error(err)
	s.True(spellerr.IsValidation(err))
	s.Equal("power_limit", spellerr.GetConstraint(err))
	s.Equal(20.0, spellerr.GetMeta(err)[spellerr.MetaLimit])

	// Under the limit is allowed
	s.expectOption(components.Ranged)
	s.expectOption(components.Target)
	s.uuidGen.EXPECT().New().Return("quote-3")

	input.Caster.PowerLimit = 21
	_, err = s.svc.Quote(s.ctx, input)
	s.NoError(err)
}

func (s *CastingServiceTestSuite) TestQuote_UnknownComponent() {
	s.repo.EXPECT().Get(s.ctx, spell.ComponentKey("delivery.portal")).
		Return(nil, spellerr.NotFound("component delivery.portal not found"))

	input := s.rangedInput(spell.Parameters{TargetCount: 1})
	input.Selection.DeliveryMethod = "delivery.portal"

	_, err := s.svc.Quote(s.ctx, input)
	s.True(spellerr.IsConfiguration(err))
	s.Equal("delivery.portal", spellerr.GetComponent(err))
	s.Equal("known_component", spellerr.GetConstraint(err))
	s.Equal(1.0, s.refused(spellerr.CodeConfiguration))
}

func (s *CastingServiceTestSuite) TestQuote_WrongSlot() {
	s.expectOption(components.Sphere)

	input := s.rangedInput(spell.Parameters{TargetCount: 1})
	input.Selection.DeliveryMethod = components.Sphere

	_, err := s.svc.Quote(s.ctx, input)
	s.True(spellerr.IsConfiguration(err))
	s.Equal("slot", spellerr.GetConstraint(err))
}

func (s *CastingServiceTestSuite) TestQuote_CorruptStoredOption() {
	ranged, err := components.DefaultRegistry().Lookup(components.Ranged)
	s.Require().NoError(err)
	ranged.Range = spell.DistanceScaled(-1, 0.05)
	s.repo.EXPECT().Get(s.ctx, components.Ranged).Return(&ranged, nil)

	_, err = s.svc.Quote(s.ctx, s.rangedInput(spell.Parameters{Range: 30, TargetCount: 1}))
	s.True(spellerr.IsConfiguration(err))
	s.Equal(string(components.Ranged), spellerr.GetComponent(err))
	s.Equal("range_rate", spellerr.GetConstraint(err))
	s.Equal(1.0, s.refused(spellerr.CodeConfiguration))
	s.Equal(0.0, s.computed())
}

func (s *CastingServiceTestSuite) TestQuote_ValidationFromCalculator() {
	s.expectOption(components.Touch)
	s.expectOption(components.Target)

	input := s.rangedInput(spell.Parameters{Range: 30, TargetCount: 1})
	input.Selection.DeliveryMethod = components.Touch

	_, err := s.svc.Quote(s.ctx, input)
	s.True(spellerr.IsValidation(err))
	s.Equal(string(components.Touch), spellerr.GetComponent(err))
	s.Equal("max_range", spellerr.GetConstraint(err))
}

func (s *CastingServiceTestSuite) TestQuote_RepositoryError() {
	s.repo.EXPECT().Get(s.ctx, components.Ranged).Return(nil, errors.New("redis down"))

	_, err := s.svc.Quote(s.ctx, s.rangedInput(spell.Parameters{TargetCount: 1}))
	s.Require().Error(err)
	s.False(spellerr.IsConfiguration(err))
	s.Contains(err.Error(), "redis down")
	s.Equal(1.0, s.refused(spellerr.CodeUnknown))
}

func (s *CastingServiceTestSuite) TestQuote_InputValidation() {
	_, err := s.svc.Quote(s.ctx, nil)
	s.True(spellerr.IsInvalidArgument(err))

	input := s.rangedInput(spell.Parameters{TargetCount: 1})
	input.Selection.TargetShape = ""
	s.expectOption(components.Ranged)

	_, err = s.svc.Quote(s.ctx, input)
	s.True(spellerr.IsInvalidArgument(err))
}

func (s *CastingServiceTestSuite) TestListOptions() {
	touch, err := components.DefaultRegistry().Lookup(components.Touch)
	s.Require().NoError(err)
	cone, err := components.DefaultRegistry().Lookup(components.Cone)
	s.Require().NoError(err)

	s.repo.EXPECT().List(s.ctx).Return([]*spell.ComponentOption{&touch, &cone}, nil)

	options, err := s.svc.ListOptions(s.ctx, spell.SlotTargetShape)
	s.Require().NoError(err)
	s.Require().Len(options, 1)
	s.Equal(components.Cone, options[0].Key)

	_, err = s.svc.ListOptions(s.ctx, spell.SlotPayload)
	s.True(spellerr.IsInvalidArgument(err))
}
