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

func TestAssetService_Get_AttachesLoanAndProperty(t *testing.T) {
	assets := new(testutil.MockAssetRepo)
	svc := NewAssetService(assets, new(testutil.MockTradeRepo))

	hubID := uuid.New()
	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	assets.On("GetLoan", mock.Anything, hubID).Return(&domain.Loan{AssetHubID: hubID, CurrentBalance: dec("50000")}, nil)
	assets.On("GetProperty", mock.Anything, hubID).Return(&domain.Property{AssetHubID: hubID, State: "OH"}, nil)

	hub, err := svc.Get(context.Background(), hubID)
	require.NoError(t, err)
	require.NotNil(t, hub.Loan)
	require.NotNil(t, hub.Property)
	assert.Equal(t, "OH", hub.Property.State)
}

func TestAssetService_Get_DerivesMonthsDelinquent(t *testing.T) {
	assets := new(testutil.MockAssetRepo)
	svc := NewAssetService(assets, new(testutil.MockTradeRepo))

	hubID := uuid.New()
	due := time.Now().AddDate(0, -3, 0)
	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	assets.On("GetLoan", mock.Anything, hubID).Return(&domain.Loan{AssetHubID: hubID, NextDueDate: &due}, nil)
	assets.On("GetProperty", mock.Anything, hubID).Return(nil, domain.ErrPropertyNotFound)

	hub, err := svc.Get(context.Background(), hubID)
	require.NoError(t, err)
	require.NotNil(t, hub.Loan)
	assert.Equal(t, 3, hub.Loan.MonthsDlq)
}

func TestAssetService_Get_ThinHub(t *testing.T) {
	assets := new(testutil.MockAssetRepo)
	svc := NewAssetService(assets, new(testutil.MockTradeRepo))

	hubID := uuid.New()
	assets.On("GetHub", mock.Anything, hubID).Return(&domain.AssetIdHub{ID: hubID}, nil)
	assets.On("GetLoan", mock.Anything, hubID).Return(nil, domain.ErrLoanNotFound)
	assets.On("GetProperty", mock.Anything, hubID).Return(nil, domain.ErrPropertyNotFound)

	hub, err := svc.Get(context.Background(), hubID)
	require.NoError(t, err)
	assert.Nil(t, hub.Loan)
	assert.Nil(t, hub.Property)
}

func TestAssetService_ImportTape_CreatesHubLoanProperty(t *testing.T) {
	assets := new(testutil.MockAssetRepo)
	trades := new(testutil.MockTradeRepo)
	svc := NewAssetService(assets, trades)

	tradeID := uuid.New()
	trades.On("GetByID", mock.Anything, tradeID).Return(&domain.Trade{ID: tradeID}, nil)
	assets.On("GetHubByLoanNumber", mock.Anything, "1000001").Return(nil, domain.ErrAssetNotFound)
	assets.On("CreateHub", mock.Anything, mock.AnythingOfType("*domain.AssetIdHub")).Return(nil)

	var savedLoan *domain.Loan
	assets.On("UpsertLoan", mock.Anything, mock.AnythingOfType("*domain.Loan")).Run(func(args mock.Arguments) {
		savedLoan = args.Get(1).(*domain.Loan)
	}).Return(nil)
	var savedProperty *domain.Property
	assets.On("UpsertProperty", mock.Anything, mock.AnythingOfType("*domain.Property")).Run(func(args mock.Arguments) {
		savedProperty = args.Get(1).(*domain.Property)
	}).Return(nil)

	rows := [][]string{
		{"Loan Number", "Current UPB", "Note Rate", "Property Address", "State", "Sq Ft"},
		{"1000001", "$85,250.00", "7.25%", "12 Main St", "Florida", "1,450"},
	}

	result, err := svc.ImportTape(context.Background(), tradeID, rows)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Updated)

	require.NotNil(t, savedLoan)
	assert.Equal(t, "85250", savedLoan.CurrentBalance.String())
	assert.Equal(t, "0.0725", savedLoan.InterestRate.String())
	// No explicit total debt on the tape: UPB plus deferred.
	assert.Equal(t, "85250", savedLoan.TotalDebt.String())

	require.NotNil(t, savedProperty)
	assert.Equal(t, "12 Main St", savedProperty.Street)
	assert.Equal(t, "FL", savedProperty.State)
	require.NotNil(t, savedProperty.SquareFeet)
	assert.Equal(t, 1450, *savedProperty.SquareFeet)
}

func TestAssetService_ImportTape_UpdatesExistingHub(t *testing.T) {
	assets := new(testutil.MockAssetRepo)
	trades := new(testutil.MockTradeRepo)
	svc := NewAssetService(assets, trades)

	tradeID := uuid.New()
	hub := &domain.AssetIdHub{ID: uuid.New(), TradeID: tradeID, ServicerLoanNumber: "1000001"}
	trades.On("GetByID", mock.Anything, tradeID).Return(&domain.Trade{ID: tradeID}, nil)
	assets.On("GetHubByLoanNumber", mock.Anything, "1000001").Return(hub, nil)
	assets.On("UpsertLoan", mock.Anything, mock.AnythingOfType("*domain.Loan")).Return(nil)

	rows := [][]string{
		{"Loan Number", "Current UPB"},
		{"1000001", "84000"},
	}

	result, err := svc.ImportTape(context.Background(), tradeID, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)
	assets.AssertNotCalled(t, "CreateHub", mock.Anything, mock.Anything)
}

func TestAssetService_ImportTape_LoanNumberInOtherTrade(t *testing.T) {
	assets := new(testutil.MockAssetRepo)
	trades := new(testutil.MockTradeRepo)
	svc := NewAssetService(assets, trades)

	tradeID := uuid.New()
	otherHub := &domain.AssetIdHub{ID: uuid.New(), TradeID: uuid.New(), ServicerLoanNumber: "1000001"}
	trades.On("GetByID", mock.Anything, tradeID).Return(&domain.Trade{ID: tradeID}, nil)
	assets.On("GetHubByLoanNumber", mock.Anything, "1000001").Return(otherHub, nil)

	rows := [][]string{
		{"Loan Number", "Current UPB"},
		{"1000001", "84000"},
	}

	result, err := svc.ImportTape(context.Background(), tradeID, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.Stats.Skipped)
	require.Len(t, result.Stats.Errors, 1)
	assert.Contains(t, result.Stats.Errors[0], "already exists")
}

func TestAssetService_ImportTape_UnknownTrade(t *testing.T) {
	trades := new(testutil.MockTradeRepo)
	svc := NewAssetService(new(testutil.MockAssetRepo), trades)

	tradeID := uuid.New()
	trades.On("GetByID", mock.Anything, tradeID).Return(nil, domain.ErrTradeNotFound)

	_, err := svc.ImportTape(context.Background(), tradeID, nil)
	assert.ErrorIs(t, err, domain.ErrTradeNotFound)
}
