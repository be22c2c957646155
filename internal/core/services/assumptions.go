package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

type AssumptionService struct {
	repo   ports.AssumptionRepository
	assets ports.AssetRepository
}

func NewAssumptionService(repo ports.AssumptionRepository, assets ports.AssetRepository) *AssumptionService {
	return &AssumptionService{repo: repo, assets: assets}
}

func (s *AssumptionService) GetState(ctx context.Context, state string) (*domain.StateAssumption, error) {
	return s.repo.GetState(ctx, state)
}

func (s *AssumptionService) ListStates(ctx context.Context) ([]*domain.StateAssumption, error) {
	return s.repo.ListStates(ctx)
}

func (s *AssumptionService) UpsertState(ctx context.Context, a *domain.StateAssumption) (*domain.StateAssumption, error) {
	if len(a.State) != 2 {
		return nil, domain.ErrInvalidState
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
		a.CreatedAt = time.Now()
	}
	a.UpdatedAt = time.Now()
	if err := s.repo.UpsertState(ctx, a); err != nil {
		return nil, err
	}
	return s.repo.GetState(ctx, a.State)
}

func (s *AssumptionService) GetGlobal(ctx context.Context) (*domain.GlobalAssumption, error) {
	return s.repo.GetGlobal(ctx)
}

func (s *AssumptionService) UpsertGlobal(ctx context.Context, a *domain.GlobalAssumption) (*domain.GlobalAssumption, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
		a.CreatedAt = time.Now()
	}
	a.UpdatedAt = time.Now()
	if err := s.repo.UpsertGlobal(ctx, a); err != nil {
		return nil, err
	}
	return s.repo.GetGlobal(ctx)
}

func (s *AssumptionService) GetOverride(ctx context.Context, hubID uuid.UUID) (*domain.AssetAssumptionOverride, error) {
	return s.repo.GetOverride(ctx, hubID)
}

func (s *AssumptionService) UpsertOverride(ctx context.Context, o *domain.AssetAssumptionOverride) (*domain.AssetAssumptionOverride, error) {
	if _, err := s.assets.GetHub(ctx, o.AssetHubID); err != nil {
		return nil, err
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
		o.CreatedAt = time.Now()
	}
	o.UpdatedAt = time.Now()
	if err := s.repo.UpsertOverride(ctx, o); err != nil {
		return nil, err
	}
	return s.repo.GetOverride(ctx, o.AssetHubID)
}

func (s *AssumptionService) DeleteOverride(ctx context.Context, hubID uuid.UUID) error {
	return s.repo.DeleteOverride(ctx, hubID)
}

// Resolve flattens the assumption chain for a hub. Priority per field:
// asset override, then square-footage-derived figures, then the property
// state's defaults, then the global row. A value missing at every level
// resolves to zero.
func (s *AssumptionService) Resolve(ctx context.Context, hub *domain.AssetIdHub) (*domain.ResolvedAssumptions, error) {
	global, err := s.repo.GetGlobal(ctx)
	if errors.Is(err, domain.ErrGlobalAssumptionNotFound) {
		global = &domain.GlobalAssumption{}
	} else if err != nil {
		return nil, err
	}

	var state *domain.StateAssumption
	if hub.Property != nil && hub.Property.State != "" {
		state, err = s.repo.GetState(ctx, hub.Property.State)
		if errors.Is(err, domain.ErrStateAssumptionNotFound) {
			state = nil
		} else if err != nil {
			return nil, err
		}
	}

	override, err := s.repo.GetOverride(ctx, hub.ID)
	if errors.Is(err, domain.ErrOverrideNotFound) {
		override = nil
	} else if err != nil {
		return nil, err
	}

	// Global-only knobs.
	ra := &domain.ResolvedAssumptions{
		DiscountRateAnnual:  global.DiscountRateAnnual,
		ServicingFeeMonthly: global.ServicingFeeMonthly,
		BrokerFeePct:        global.BrokerFeePct,
		BrokerFeeFlat:       global.BrokerFeeFlat,
		ClosingCostPct:      global.ClosingCostPct,
		ClosingCostFlat:     global.ClosingCostFlat,
		OtherCostPct:        global.OtherCostPct,
		OtherCostFlat:       global.OtherCostFlat,
		ShortSalePct:        global.ShortSalePct,
		DILIncentive:        global.DILIncentive,
		BorrowerIncentive:   global.BorrowerIncentive,
		NoteSalePricePct:    global.NoteSalePricePct,
		ModTermMonths:       global.ModTermMonths,
		ModNoteSaleMult:     global.ModNoteSaleMult,
	}

	// State defaults where present.
	ra.FCTimelineMonths = global.FCTimelineMonths
	ra.FCLegalCost = global.FCLegalCost
	ra.REOMarketingMonths = global.REOMarketingMonths
	ra.PropertyTaxPct = global.PropertyTaxPct
	ra.InsurancePct = global.InsurancePct
	if state != nil {
		if state.FCTimelineMonths != 0 {
			ra.FCTimelineMonths = state.FCTimelineMonths
		}
		if !state.FCLegalCost.IsZero() {
			ra.FCLegalCost = state.FCLegalCost
		}
		if state.REOMarketingMonths != 0 {
			ra.REOMarketingMonths = state.REOMarketingMonths
		}
		if !state.PropertyTaxPct.IsZero() {
			ra.PropertyTaxPct = state.PropertyTaxPct
		}
		if !state.InsurancePct.IsZero() {
			ra.InsurancePct = state.InsurancePct
		}
	}

	// Asset overrides trump everything.
	if override != nil {
		if override.FCTimelineMonths != nil {
			ra.FCTimelineMonths = *override.FCTimelineMonths
		}
		if override.FCLegalCost != nil {
			ra.FCLegalCost = *override.FCLegalCost
		}
		if override.REOMarketingMonths != nil {
			ra.REOMarketingMonths = *override.REOMarketingMonths
		}
		if override.PropertyTaxPct != nil {
			ra.PropertyTaxPct = *override.PropertyTaxPct
		}
		if override.InsurancePct != nil {
			ra.InsurancePct = *override.InsurancePct
		}
		if override.NoteSalePricePct != nil {
			ra.NoteSalePricePct = *override.NoteSalePricePct
		}
		if override.ShortSalePct != nil {
			ra.ShortSalePct = *override.ShortSalePct
		}
	}

	ra.RehabCost = resolveRehab(hub, override, state, global)

	return ra, nil
}

// resolveRehab applies the square-footage rule: an explicit override wins,
// then sqft times the $/sqft rate (state's rate before global's), then the
// flat defaults.
func resolveRehab(hub *domain.AssetIdHub, override *domain.AssetAssumptionOverride, state *domain.StateAssumption, global *domain.GlobalAssumption) decimal.Decimal {
	if override != nil && override.RehabCost != nil {
		return *override.RehabCost
	}

	if hub.Property != nil && hub.Property.SquareFeet != nil && *hub.Property.SquareFeet > 0 {
		perSqft := global.RehabCostPerSqft
		if state != nil && !state.RehabCostPerSqft.IsZero() {
			perSqft = state.RehabCostPerSqft
		}
		if !perSqft.IsZero() {
			return perSqft.Mul(decimal.NewFromInt(int64(*hub.Property.SquareFeet)))
		}
	}

	if state != nil && !state.RehabCostFlat.IsZero() {
		return state.RehabCostFlat
	}
	return global.RehabCostFlat
}
