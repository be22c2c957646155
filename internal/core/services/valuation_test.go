package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"asset-management-service/internal/core/domain"
	"asset-management-service/internal/testutil"
)

func TestValuationService_Create_InvalidSource(t *testing.T) {
	svc := NewValuationService(new(testutil.MockValuationRepo), new(testutil.MockAssetRepo))

	_, err := svc.Create(context.Background(), &domain.Valuation{Source: "ZILLOW"})
	assert.ErrorIs(t, err, domain.ErrInvalidValueSource)
}

func TestValuationService_Create(t *testing.T) {
	repo := new(testutil.MockValuationRepo)
	assets := new(testutil.MockAssetRepo)
	svc := NewValuationService(repo, assets)

	hubID := uuid.New()
	v := &domain.Valuation{AssetHubID: hubID, Source: domain.ValueSourceBPO, AsIsValue: dec("150000")}

	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Valuation")).Return(nil)
	repo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(v, nil)

	result, err := svc.Create(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, domain.ValueSourceBPO, result.Source)
	assert.False(t, v.AsOfDate.IsZero())
}

func TestValuationService_Resolved_SourcePriority(t *testing.T) {
	repo := new(testutil.MockValuationRepo)
	assets := new(testutil.MockAssetRepo)
	svc := NewValuationService(repo, assets)

	hubID := uuid.New()
	old := time.Now().AddDate(0, -6, 0)
	recent := time.Now()

	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	repo.On("ListByHub", mock.Anything, hubID).Return([]*domain.Valuation{
		{Source: domain.ValueSourceSeller, AsOfDate: recent, AsIsValue: dec("90000")},
		{Source: domain.ValueSourceBPO, AsOfDate: old, AsIsValue: dec("110000")},
		{Source: domain.ValueSourceBPO, AsOfDate: recent, AsIsValue: dec("120000")},
		{Source: domain.ValueSourceAVM, AsOfDate: recent, AsIsValue: dec("100000")},
	}, nil)

	result, err := svc.Resolved(context.Background(), hubID)
	require.NoError(t, err)
	// BPO outranks AVM and SELLER; the fresher of the two BPOs wins.
	assert.Equal(t, domain.ValueSourceBPO, result.Source)
	assert.Equal(t, "120000", result.AsIsValue.String())
}

func TestValuationService_Resolved_NoValuations(t *testing.T) {
	repo := new(testutil.MockValuationRepo)
	assets := new(testutil.MockAssetRepo)
	svc := NewValuationService(repo, assets)

	hubID := uuid.New()
	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	repo.On("ListByHub", mock.Anything, hubID).Return([]*domain.Valuation{}, nil)

	_, err := svc.Resolved(context.Background(), hubID)
	assert.ErrorIs(t, err, domain.ErrNoValuation)
}
