package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
	"asset-management-service/internal/etl"
)

type AssetService struct {
	assets ports.AssetRepository
	trades ports.TradeRepository
}

func NewAssetService(assets ports.AssetRepository, trades ports.TradeRepository) *AssetService {
	return &AssetService{assets: assets, trades: trades}
}

// Get returns a hub with its loan and property attached. A hub freshly created
// from a thin tape may legitimately have neither.
func (s *AssetService) Get(ctx context.Context, id uuid.UUID) (*domain.AssetIdHub, error) {
	hub, err := s.assets.GetHub(ctx, id)
	if err != nil {
		return nil, err
	}

	if loan, err := s.assets.GetLoan(ctx, id); err == nil {
		loan.MonthsDlq = loan.MonthsDelinquent(time.Now())
		hub.Loan = loan
	} else if !errors.Is(err, domain.ErrLoanNotFound) {
		return nil, err
	}

	if property, err := s.assets.GetProperty(ctx, id); err == nil {
		hub.Property = property
	} else if !errors.Is(err, domain.ErrPropertyNotFound) {
		return nil, err
	}

	return hub, nil
}

func (s *AssetService) List(ctx context.Context, filter ports.AssetListFilter) ([]*domain.AssetIdHub, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 200 {
		filter.Limit = 200
	}
	return s.assets.List(ctx, filter)
}

func (s *AssetService) UpdateHub(ctx context.Context, id uuid.UUID, status string) (*domain.AssetIdHub, error) {
	hub, err := s.assets.GetHub(ctx, id)
	if err != nil {
		return nil, err
	}
	if status != "" {
		hub.Status = domain.AssetStatus(status)
	}
	hub.UpdatedAt = time.Now()
	if err := s.assets.UpdateHub(ctx, hub); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *AssetService) UpdateLoan(ctx context.Context, hubID uuid.UUID, loan *domain.Loan) (*domain.Loan, error) {
	if _, err := s.assets.GetHub(ctx, hubID); err != nil {
		return nil, err
	}
	loan.AssetHubID = hubID
	if loan.ID == uuid.Nil {
		loan.ID = uuid.New()
		loan.CreatedAt = time.Now()
	}
	loan.UpdatedAt = time.Now()
	if err := s.assets.UpsertLoan(ctx, loan); err != nil {
		return nil, err
	}
	stored, err := s.assets.GetLoan(ctx, hubID)
	if err != nil {
		return nil, err
	}
	stored.MonthsDlq = stored.MonthsDelinquent(time.Now())
	return stored, nil
}

func (s *AssetService) UpdateProperty(ctx context.Context, hubID uuid.UUID, property *domain.Property) (*domain.Property, error) {
	if _, err := s.assets.GetHub(ctx, hubID); err != nil {
		return nil, err
	}
	property.AssetHubID = hubID
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
		property.CreatedAt = time.Now()
	}
	property.UpdatedAt = time.Now()
	if err := s.assets.UpsertProperty(ctx, property); err != nil {
		return nil, err
	}
	return s.assets.GetProperty(ctx, hubID)
}

// ImportResult reports what a tape import did.
type ImportResult struct {
	Created int       `json:"created"`
	Updated int       `json:"updated"`
	Stats   etl.Stats `json:"stats"`
}

// ImportTape loads parsed tape rows under a trade: one hub per servicer loan
// number, with loan and property rows upserted from the tape fields. Rows that
// collide with an existing hub in the same trade update it; a failing row is
// logged and counted, never fatal.
func (s *AssetService) ImportTape(ctx context.Context, tradeID uuid.UUID, rows [][]string) (*ImportResult, error) {
	trade, err := s.trades.GetByID(ctx, tradeID)
	if err != nil {
		return nil, err
	}

	parsed, stats := etl.ParseTape(rows)
	result := &ImportResult{Stats: stats}

	for _, row := range parsed {
		created, err := s.importTapeRow(ctx, trade.ID, row)
		if err != nil {
			log.WithError(err).WithField("line", row.Line).Warn("tape row failed")
			result.Stats.Skipped++
			result.Stats.Errors = append(result.Stats.Errors, err.Error())
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

func (s *AssetService) importTapeRow(ctx context.Context, tradeID uuid.UUID, row etl.TapeRow) (created bool, err error) {
	now := time.Now()

	hub, err := s.assets.GetHubByLoanNumber(ctx, row.ServicerLoanNumber)
	switch {
	case errors.Is(err, domain.ErrAssetNotFound):
		hub = &domain.AssetIdHub{
			ID:                 uuid.New(),
			CreatedAt:          now,
			UpdatedAt:          now,
			TradeID:            tradeID,
			ServicerLoanNumber: row.ServicerLoanNumber,
			SellerAssetID:      row.SellerAssetID,
			Status:             domain.AssetStatusActive,
		}
		if err := s.assets.CreateHub(ctx, hub); err != nil {
			return false, err
		}
		created = true
	case err != nil:
		return false, err
	case hub.TradeID != tradeID:
		return false, domain.ErrAssetAlreadyExists
	}

	loan := &domain.Loan{
		ID:              uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
		AssetHubID:      hub.ID,
		CurrentBalance:  derefDecimal(row.CurrentBalance),
		DeferredBalance: derefDecimal(row.DeferredBalance),
		TotalDebt:       derefDecimal(row.TotalDebt),
		InterestRate:    derefDecimal(row.InterestRate),
		MonthlyPayment:  derefDecimal(row.MonthlyPayment),
		PurchaseBasis:   derefDecimal(row.PurchaseBasis),
		EscrowBalance:   row.EscrowBalance,
		OriginationDate: row.OriginationDate,
		MaturityDate:    row.MaturityDate,
		NextDueDate:     row.NextDueDate,
		LastPaidDate:    row.LastPaidDate,
	}
	if loan.TotalDebt.IsZero() {
		loan.TotalDebt = loan.CurrentBalance.Add(loan.DeferredBalance)
	}
	if err := s.assets.UpsertLoan(ctx, loan); err != nil {
		return created, err
	}

	if row.Street != "" || row.State != "" {
		property := &domain.Property{
			ID:           uuid.New(),
			CreatedAt:    now,
			UpdatedAt:    now,
			AssetHubID:   hub.ID,
			Street:       row.Street,
			City:         row.City,
			State:        row.State,
			Zip:          row.Zip,
			PropertyType: row.PropertyType,
			SquareFeet:   row.SquareFeet,
			Beds:         row.Beds,
			Baths:        row.Baths,
			YearBuilt:    row.YearBuilt,
			Occupancy:    domain.OccupancyStatus(row.Occupancy),
		}
		if err := s.assets.UpsertProperty(ctx, property); err != nil {
			return created, err
		}
	}

	return created, nil
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
