package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"asset-management-service/internal/core/domain"
	"asset-management-service/internal/testutil"
)

func TestAssumptionService_UpsertState_InvalidCode(t *testing.T) {
	repo := new(testutil.MockAssumptionRepo)
	svc := NewAssumptionService(repo, new(testutil.MockAssetRepo))

	_, err := svc.UpsertState(context.Background(), &domain.StateAssumption{State: "Florida"})
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestAssumptionService_Resolve_GlobalOnly(t *testing.T) {
	repo := new(testutil.MockAssumptionRepo)
	svc := NewAssumptionService(repo, new(testutil.MockAssetRepo))

	hub := &domain.AssetIdHub{ID: uuid.New()}
	global := &domain.GlobalAssumption{
		DiscountRateAnnual: dec("0.12"),
		FCTimelineMonths:   9,
		FCLegalCost:        dec("2500"),
		RehabCostFlat:      dec("15000"),
	}
	repo.On("GetGlobal", mock.Anything).Return(global, nil)
	repo.On("GetOverride", mock.Anything, hub.ID).Return(nil, domain.ErrOverrideNotFound)

	ra, err := svc.Resolve(context.Background(), hub)
	require.NoError(t, err)
	assert.Equal(t, 9, ra.FCTimelineMonths)
	assert.Equal(t, "2500", ra.FCLegalCost.String())
	assert.Equal(t, "15000", ra.RehabCost.String())
	assert.Equal(t, "0.12", ra.DiscountRateAnnual.String())
}

func TestAssumptionService_Resolve_StateBeatsGlobal(t *testing.T) {
	repo := new(testutil.MockAssumptionRepo)
	svc := NewAssumptionService(repo, new(testutil.MockAssetRepo))

	hub := &domain.AssetIdHub{
		ID:       uuid.New(),
		Property: &domain.Property{State: "NY"},
	}
	global := &domain.GlobalAssumption{
		FCTimelineMonths: 6,
		FCLegalCost:      dec("2500"),
		PropertyTaxPct:   dec("0.01"),
	}
	state := &domain.StateAssumption{
		State:            "NY",
		FCTimelineMonths: 24,
		FCLegalCost:      dec("6000"),
	}
	repo.On("GetGlobal", mock.Anything).Return(global, nil)
	repo.On("GetState", mock.Anything, "NY").Return(state, nil)
	repo.On("GetOverride", mock.Anything, hub.ID).Return(nil, domain.ErrOverrideNotFound)

	ra, err := svc.Resolve(context.Background(), hub)
	require.NoError(t, err)
	assert.Equal(t, 24, ra.FCTimelineMonths)
	assert.Equal(t, "6000", ra.FCLegalCost.String())
	// Zero-valued state fields fall through to the global row.
	assert.Equal(t, "0.01", ra.PropertyTaxPct.String())
}

func TestAssumptionService_Resolve_OverrideBeatsState(t *testing.T) {
	repo := new(testutil.MockAssumptionRepo)
	svc := NewAssumptionService(repo, new(testutil.MockAssetRepo))

	hub := &domain.AssetIdHub{
		ID:       uuid.New(),
		Property: &domain.Property{State: "TX"},
	}
	legal := dec("9999")
	shortSale := dec("0.80")
	override := &domain.AssetAssumptionOverride{
		AssetHubID:   hub.ID,
		FCLegalCost:  &legal,
		ShortSalePct: &shortSale,
	}
	repo.On("GetGlobal", mock.Anything).Return(&domain.GlobalAssumption{ShortSalePct: dec("0.90")}, nil)
	repo.On("GetState", mock.Anything, "TX").Return(&domain.StateAssumption{State: "TX", FCLegalCost: dec("4000")}, nil)
	repo.On("GetOverride", mock.Anything, hub.ID).Return(override, nil)

	ra, err := svc.Resolve(context.Background(), hub)
	require.NoError(t, err)
	assert.Equal(t, "9999", ra.FCLegalCost.String())
	assert.Equal(t, "0.8", ra.ShortSalePct.String())
}

func TestAssumptionService_Resolve_RehabFromSquareFeet(t *testing.T) {
	repo := new(testutil.MockAssumptionRepo)
	svc := NewAssumptionService(repo, new(testutil.MockAssetRepo))

	sqft := 1200
	hub := &domain.AssetIdHub{
		ID:       uuid.New(),
		Property: &domain.Property{State: "FL", SquareFeet: &sqft},
	}
	repo.On("GetGlobal", mock.Anything).Return(&domain.GlobalAssumption{
		RehabCostPerSqft: dec("10"),
		RehabCostFlat:    dec("20000"),
	}, nil)
	repo.On("GetState", mock.Anything, "FL").Return(&domain.StateAssumption{
		State:            "FL",
		RehabCostPerSqft: dec("15"),
	}, nil)
	repo.On("GetOverride", mock.Anything, hub.ID).Return(nil, domain.ErrOverrideNotFound)

	ra, err := svc.Resolve(context.Background(), hub)
	require.NoError(t, err)
	// State $/sqft rate wins over global's, and over the flat defaults.
	assert.Equal(t, "18000", ra.RehabCost.String())
}

func TestAssumptionService_Resolve_RehabOverrideWins(t *testing.T) {
	repo := new(testutil.MockAssumptionRepo)
	svc := NewAssumptionService(repo, new(testutil.MockAssetRepo))

	sqft := 1200
	hub := &domain.AssetIdHub{
		ID:       uuid.New(),
		Property: &domain.Property{State: "FL", SquareFeet: &sqft},
	}
	rehab := dec("32500")
	repo.On("GetGlobal", mock.Anything).Return(&domain.GlobalAssumption{RehabCostPerSqft: dec("10")}, nil)
	repo.On("GetState", mock.Anything, "FL").Return(nil, domain.ErrStateAssumptionNotFound)
	repo.On("GetOverride", mock.Anything, hub.ID).Return(&domain.AssetAssumptionOverride{
		AssetHubID: hub.ID,
		RehabCost:  &rehab,
	}, nil)

	ra, err := svc.Resolve(context.Background(), hub)
	require.NoError(t, err)
	assert.Equal(t, "32500", ra.RehabCost.String())
}

func TestAssumptionService_Resolve_NoGlobalRow(t *testing.T) {
	repo := new(testutil.MockAssumptionRepo)
	svc := NewAssumptionService(repo, new(testutil.MockAssetRepo))

	hub := &domain.AssetIdHub{ID: uuid.New()}
	repo.On("GetGlobal", mock.Anything).Return(nil, domain.ErrGlobalAssumptionNotFound)
	repo.On("GetOverride", mock.Anything, hub.ID).Return(nil, domain.ErrOverrideNotFound)

	ra, err := svc.Resolve(context.Background(), hub)
	require.NoError(t, err)
	assert.Equal(t, 0, ra.FCTimelineMonths)
	assert.True(t, ra.FCLegalCost.IsZero())
	assert.True(t, ra.RehabCost.IsZero())
}

func TestAssumptionService_UpsertOverride_UnknownAsset(t *testing.T) {
	repo := new(testutil.MockAssumptionRepo)
	assets := new(testutil.MockAssetRepo)
	svc := NewAssumptionService(repo, assets)

	hubID := uuid.New()
	assets.On("GetHub", mock.Anything, hubID).Return(nil, domain.ErrAssetNotFound)

	_, err := svc.UpsertOverride(context.Background(), &domain.AssetAssumptionOverride{AssetHubID: hubID})
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}
