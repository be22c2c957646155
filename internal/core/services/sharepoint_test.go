package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
	"asset-management-service/internal/testutil"
)

func TestSharePointService_ProvisionTrade_NotConfigured(t *testing.T) {
	svc := NewSharePointService(new(testutil.MockTradeRepo), new(testutil.MockAssetRepo), nil)

	_, err := svc.ProvisionTrade(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrGraphNotAvailable)
}

func TestSharePointService_ProvisionTrade(t *testing.T) {
	trades := new(testutil.MockTradeRepo)
	assets := new(testutil.MockAssetRepo)
	graph := new(testutil.MockGraphClient)
	svc := NewSharePointService(trades, assets, graph)

	tradeID := uuid.New()
	trades.On("GetByID", mock.Anything, tradeID).Return(&domain.Trade{ID: tradeID, Name: "2024-Q1 NPL"}, nil)
	assets.On("List", mock.Anything, mock.AnythingOfType("ports.AssetListFilter")).Return([]*domain.AssetIdHub{
		{ID: uuid.New(), ServicerLoanNumber: "1000001"},
	}, 1, nil)

	graph.On("EnsureFolder", mock.Anything, "Trades/2024-Q1 NPL").Return(false, nil)
	graph.On("EnsureFolder", mock.Anything, "Trades/2024-Q1 NPL/1000001").Return(true, nil)
	for _, sub := range assetSubfolders {
		graph.On("EnsureFolder", mock.Anything, "Trades/2024-Q1 NPL/1000001/"+sub).Return(true, nil)
	}

	result, err := svc.ProvisionTrade(context.Background(), tradeID)
	require.NoError(t, err)
	assert.Equal(t, 1+len(assetSubfolders), result.Created)
	assert.Equal(t, 1, result.Existing)
	assert.Equal(t, 0, result.Failed)
}

func TestSharePointService_ProvisionTrade_AssetFailureDoesNotAbort(t *testing.T) {
	trades := new(testutil.MockTradeRepo)
	assets := new(testutil.MockAssetRepo)
	graph := new(testutil.MockGraphClient)
	svc := NewSharePointService(trades, assets, graph)

	tradeID := uuid.New()
	trades.On("GetByID", mock.Anything, tradeID).Return(&domain.Trade{ID: tradeID, Name: "T"}, nil)
	assets.On("List", mock.Anything, mock.MatchedBy(func(f ports.AssetListFilter) bool {
		return f.TradeID == tradeID
	})).Return([]*domain.AssetIdHub{
		{ID: uuid.New(), ServicerLoanNumber: "BAD"},
		{ID: uuid.New(), ServicerLoanNumber: "GOOD"},
	}, 2, nil)

	graph.On("EnsureFolder", mock.Anything, "Trades/T").Return(true, nil)
	graph.On("EnsureFolder", mock.Anything, "Trades/T/BAD").Return(false, errors.New("throttled"))
	graph.On("EnsureFolder", mock.Anything, mock.MatchedBy(func(p string) bool {
		return len(p) >= len("Trades/T/GOOD") && p[:len("Trades/T/GOOD")] == "Trades/T/GOOD"
	})).Return(true, nil)

	result, err := svc.ProvisionTrade(context.Background(), tradeID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Trades/T/BAD")
	// The failing asset never blocks the next one.
	assert.Equal(t, 1+1+len(assetSubfolders), result.Created)
}

func TestSanitizeFolderName(t *testing.T) {
	assert.Equal(t, "2024-Q1", sanitizeFolderName("2024/Q1"))
	assert.Equal(t, "loan 1", sanitizeFolderName("  loan 1  "))
	assert.Equal(t, "trade", sanitizeFolderName("trade..."))
	assert.Equal(t, "unnamed", sanitizeFolderName("###"))
}
