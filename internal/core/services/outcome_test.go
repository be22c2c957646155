package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"asset-management-service/internal/core/domain"
	"asset-management-service/internal/testutil"
)

func newOutcomeFixture() (*OutcomeService, *testutil.MockOutcomeRepo, *testutil.MockAssetRepo, *testutil.MockValuationRepo, *testutil.MockAssumptionRepo) {
	outcomeRepo := new(testutil.MockOutcomeRepo)
	assetRepo := new(testutil.MockAssetRepo)
	valuationRepo := new(testutil.MockValuationRepo)
	assumptionRepo := new(testutil.MockAssumptionRepo)
	assumptions := NewAssumptionService(assumptionRepo, assetRepo)
	svc := NewOutcomeService(outcomeRepo, assetRepo, valuationRepo, assumptions, -0.99, 5.0)
	return svc, outcomeRepo, assetRepo, valuationRepo, assumptionRepo
}

func TestOutcomeService_Model_FC(t *testing.T) {
	svc, outcomeRepo, assetRepo, valuationRepo, assumptionRepo := newOutcomeFixture()

	hubID := uuid.New()
	hub := &domain.AssetIdHub{ID: hubID, ServicerLoanNumber: "LN-1"}
	loan := &domain.Loan{
		AssetHubID:     hubID,
		CurrentBalance: dec("80000"),
		PurchaseBasis:  dec("60000"),
	}
	global := &domain.GlobalAssumption{
		DiscountRateAnnual:  dec("0.12"),
		FCTimelineMonths:    12,
		FCLegalCost:         dec("3000"),
		PropertyTaxPct:      dec("0.012"),
		InsurancePct:        dec("0.006"),
		ServicingFeeMonthly: dec("25"),
		ClosingCostPct:      dec("0.02"),
		ClosingCostFlat:     dec("500"),
	}
	valuations := []*domain.Valuation{
		{AssetHubID: hubID, Source: domain.ValueSourceSeller, AsOfDate: time.Now(), AsIsValue: dec("100000")},
	}

	assetRepo.On("GetHub", mock.Anything, hubID).Return(hub, nil)
	assetRepo.On("GetLoan", mock.Anything, hubID).Return(loan, nil)
	assetRepo.On("GetProperty", mock.Anything, hubID).Return(nil, domain.ErrPropertyNotFound)
	valuationRepo.On("ListByHub", mock.Anything, hubID).Return(valuations, nil)
	assumptionRepo.On("GetGlobal", mock.Anything).Return(global, nil)
	assumptionRepo.On("GetOverride", mock.Anything, hubID).Return(nil, domain.ErrOverrideNotFound)

	saved := &domain.Outcome{}
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeFC).Return(nil, domain.ErrOutcomeNotFound).Once()
	outcomeRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Outcome")).Run(func(args mock.Arguments) {
		*saved = *args.Get(1).(*domain.Outcome)
	}).Return(nil)
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeFC).Return(saved, nil)

	result, err := svc.Model(context.Background(), hubID, "FC")
	require.NoError(t, err)

	assert.Equal(t, domain.OutcomeStatusModeled, result.Status)
	assert.Equal(t, 12, result.DurationMonths)
	// Recovery is capped by total debt, below the as-is value.
	assert.Equal(t, "80000", result.GrossProceeds.String())
	assert.Equal(t, "3000", result.LegalCost.String())
	// Closing fee: pct beats flat at this size (2% of 80000 over 500).
	assert.Equal(t, "1600", result.LiquidationFee.String())
	// Carry: 100000 * 1.8% / 12 + 25 servicing = 175/mo for 12 months.
	assert.Equal(t, "2100", result.CarryCost.String())
	assert.Equal(t, "73300", result.NetProceeds.String())
	assert.True(t, result.NetPV.GreaterThan(decimal.Zero))
	assert.False(t, result.GrossIRR.IsZero())
	assert.NotNil(t, result.ModeledAt)
}

func TestOutcomeService_Model_ZeroTimelineCarriesNothing(t *testing.T) {
	svc, outcomeRepo, assetRepo, valuationRepo, assumptionRepo := newOutcomeFixture()

	hubID := uuid.New()
	loan := &domain.Loan{
		AssetHubID:     hubID,
		CurrentBalance: dec("80000"),
		PurchaseBasis:  dec("60000"),
	}
	// Timeline missing at every level resolves to zero months; servicing alone
	// must not leak a phantom month of carry into the flow grid.
	global := &domain.GlobalAssumption{ServicingFeeMonthly: dec("25")}

	assetRepo.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	assetRepo.On("GetLoan", mock.Anything, hubID).Return(loan, nil)
	assetRepo.On("GetProperty", mock.Anything, hubID).Return(nil, domain.ErrPropertyNotFound)
	valuationRepo.On("ListByHub", mock.Anything, hubID).Return([]*domain.Valuation{
		{AssetHubID: hubID, Source: domain.ValueSourceSeller, AsOfDate: time.Now(), AsIsValue: dec("100000")},
	}, nil)
	assumptionRepo.On("GetGlobal", mock.Anything).Return(global, nil)
	assumptionRepo.On("GetOverride", mock.Anything, hubID).Return(nil, domain.ErrOverrideNotFound)

	saved := &domain.Outcome{}
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeFC).Return(nil, domain.ErrOutcomeNotFound).Once()
	outcomeRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Outcome")).Run(func(args mock.Arguments) {
		*saved = *args.Get(1).(*domain.Outcome)
	}).Return(nil)
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeFC).Return(saved, nil)

	result, err := svc.Model(context.Background(), hubID, "FC")
	require.NoError(t, err)

	assert.Equal(t, 0, result.DurationMonths)
	assert.True(t, result.CarryCost.IsZero())
	assert.Equal(t, "80000", result.NetProceeds.String())
	// At a zero discount rate NetPV is exactly proceeds less basis.
	assert.True(t, result.NetPV.Equal(result.NetProceeds.Sub(loan.PurchaseBasis)),
		"NetPV %s != NetProceeds-basis %s", result.NetPV, result.NetProceeds.Sub(loan.PurchaseBasis))
}

func TestOutcomeService_Model_REO_ThreeLineFeeWaterfall(t *testing.T) {
	svc, outcomeRepo, assetRepo, valuationRepo, assumptionRepo := newOutcomeFixture()

	hubID := uuid.New()
	global := &domain.GlobalAssumption{
		FCTimelineMonths:   6,
		REOMarketingMonths: 4,
		BrokerFeeFlat:      dec("1000"),
		ClosingCostFlat:    dec("500"),
		OtherCostFlat:      dec("250"),
	}

	assetRepo.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	assetRepo.On("GetLoan", mock.Anything, hubID).Return(&domain.Loan{
		AssetHubID: hubID, CurrentBalance: dec("80000"), PurchaseBasis: dec("60000"),
	}, nil)
	assetRepo.On("GetProperty", mock.Anything, hubID).Return(nil, domain.ErrPropertyNotFound)
	valuationRepo.On("ListByHub", mock.Anything, hubID).Return([]*domain.Valuation{
		{AssetHubID: hubID, Source: domain.ValueSourceBPO, AsOfDate: time.Now(), AsIsValue: dec("100000")},
	}, nil)
	assumptionRepo.On("GetGlobal", mock.Anything).Return(global, nil)
	assumptionRepo.On("GetOverride", mock.Anything, hubID).Return(nil, domain.ErrOverrideNotFound)

	saved := &domain.Outcome{}
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeREO).Return(nil, domain.ErrOutcomeNotFound).Once()
	outcomeRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Outcome")).Run(func(args mock.Arguments) {
		*saved = *args.Get(1).(*domain.Outcome)
	}).Return(nil)
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeREO).Return(saved, nil)

	result, err := svc.Model(context.Background(), hubID, "REO")
	require.NoError(t, err)

	// Broker, closing and other lines all charge their flats.
	assert.Equal(t, "1750", result.LiquidationFee.String())
}

func TestOutcomeService_Model_InvalidType(t *testing.T) {
	svc, _, _, _, _ := newOutcomeFixture()

	_, err := svc.Model(context.Background(), uuid.New(), "WORKOUT")
	assert.ErrorIs(t, err, domain.ErrInvalidOutcomeType)
}

func TestOutcomeService_Model_PreservesActiveFlag(t *testing.T) {
	svc, outcomeRepo, assetRepo, valuationRepo, assumptionRepo := newOutcomeFixture()

	hubID := uuid.New()
	assetRepo.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	assetRepo.On("GetLoan", mock.Anything, hubID).Return(&domain.Loan{AssetHubID: hubID, CurrentBalance: dec("50000"), PurchaseBasis: dec("40000")}, nil)
	assetRepo.On("GetProperty", mock.Anything, hubID).Return(nil, domain.ErrPropertyNotFound)
	valuationRepo.On("ListByHub", mock.Anything, hubID).Return([]*domain.Valuation{
		{AssetHubID: hubID, Source: domain.ValueSourceBPO, AsOfDate: time.Now(), AsIsValue: dec("70000")},
	}, nil)
	assumptionRepo.On("GetGlobal", mock.Anything).Return(&domain.GlobalAssumption{FCTimelineMonths: 6}, nil)
	assumptionRepo.On("GetOverride", mock.Anything, hubID).Return(nil, domain.ErrOverrideNotFound)

	existing := &domain.Outcome{ID: uuid.New(), AssetHubID: hubID, Type: domain.OutcomeFC, Active: true, CreatedAt: time.Now().Add(-time.Hour)}
	saved := &domain.Outcome{}
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeFC).Return(existing, nil).Once()
	outcomeRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Outcome")).Run(func(args mock.Arguments) {
		*saved = *args.Get(1).(*domain.Outcome)
	}).Return(nil)
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeFC).Return(saved, nil)

	result, err := svc.Model(context.Background(), hubID, "FC")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, result.ID)
	assert.True(t, result.Active)
}

func TestOutcomeService_ModelAll_NoValuation(t *testing.T) {
	svc, _, assetRepo, valuationRepo, _ := newOutcomeFixture()

	hubID := uuid.New()
	assetRepo.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	assetRepo.On("GetLoan", mock.Anything, hubID).Return(&domain.Loan{AssetHubID: hubID}, nil)
	assetRepo.On("GetProperty", mock.Anything, hubID).Return(nil, domain.ErrPropertyNotFound)
	valuationRepo.On("ListByHub", mock.Anything, hubID).Return([]*domain.Valuation{}, nil)

	modeled, err := svc.ModelAll(context.Background(), hubID)
	assert.NoError(t, err)
	assert.Empty(t, modeled)
}

func TestOutcomeService_Summary_RecommendsHighestNetPV(t *testing.T) {
	svc, outcomeRepo, assetRepo, _, _ := newOutcomeFixture()

	hubID := uuid.New()
	assetRepo.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	outcomeRepo.On("ListByHub", mock.Anything, hubID).Return([]*domain.Outcome{
		{Type: domain.OutcomeFC, Status: domain.OutcomeStatusModeled, NetPV: dec("100")},
		{Type: domain.OutcomeREO, Status: domain.OutcomeStatusModeled, NetPV: dec("250")},
		{Type: domain.OutcomeShortSale, Status: domain.OutcomeStatusDraft, NetPV: dec("999")},
	}, nil)

	summary, err := svc.Summary(context.Background(), hubID)
	require.NoError(t, err)
	require.NotNil(t, summary.Recommended)
	assert.Equal(t, domain.OutcomeREO, *summary.Recommended)
}

func TestOutcomeService_Summary_NoModeledOutcomes(t *testing.T) {
	svc, outcomeRepo, assetRepo, _, _ := newOutcomeFixture()

	hubID := uuid.New()
	assetRepo.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	outcomeRepo.On("ListByHub", mock.Anything, hubID).Return([]*domain.Outcome{
		{Type: domain.OutcomeFC, Status: domain.OutcomeStatusDraft},
	}, nil)

	summary, err := svc.Summary(context.Background(), hubID)
	require.NoError(t, err)
	assert.Nil(t, summary.Recommended)
}

func TestOutcomeService_Activate_RejectsDraft(t *testing.T) {
	svc, outcomeRepo, _, _, _ := newOutcomeFixture()

	hubID := uuid.New()
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeDIL).Return(
		&domain.Outcome{Type: domain.OutcomeDIL, Status: domain.OutcomeStatusDraft}, nil)

	_, err := svc.Activate(context.Background(), hubID, "DIL")
	assert.ErrorIs(t, err, domain.ErrOutcomeNotModeled)
}

func TestOutcomeService_Activate(t *testing.T) {
	svc, outcomeRepo, _, _, _ := newOutcomeFixture()

	hubID := uuid.New()
	modeled := &domain.Outcome{Type: domain.OutcomeREO, Status: domain.OutcomeStatusModeled}
	active := &domain.Outcome{Type: domain.OutcomeREO, Status: domain.OutcomeStatusModeled, Active: true}

	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeREO).Return(modeled, nil).Once()
	outcomeRepo.On("SetActive", mock.Anything, hubID, domain.OutcomeREO).Return(nil)
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeREO).Return(active, nil)

	result, err := svc.Activate(context.Background(), hubID, "REO")
	require.NoError(t, err)
	assert.True(t, result.Active)
	outcomeRepo.AssertCalled(t, "SetActive", mock.Anything, hubID, domain.OutcomeREO)
}

func TestOutcomeService_Activate_AlreadyActive(t *testing.T) {
	svc, outcomeRepo, _, _, _ := newOutcomeFixture()

	hubID := uuid.New()
	outcomeRepo.On("GetByHubAndType", mock.Anything, hubID, domain.OutcomeREO).Return(
		&domain.Outcome{Type: domain.OutcomeREO, Status: domain.OutcomeStatusModeled, Active: true}, nil)

	_, err := svc.Activate(context.Background(), hubID, "REO")
	assert.ErrorIs(t, err, domain.ErrOutcomeAlreadyActive)
	outcomeRepo.AssertNotCalled(t, "SetActive", mock.Anything, hubID, domain.OutcomeREO)
}
