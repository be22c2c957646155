package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
	"asset-management-service/internal/etl"
)

// ServicingService owns the servicer-feed snapshots and their ETL upsert path.
type ServicingService struct {
	records ports.ServicerRecordRepository
	assets  ports.AssetRepository
}

func NewServicingService(records ports.ServicerRecordRepository, assets ports.AssetRepository) *ServicingService {
	return &ServicingService{records: records, assets: assets}
}

func (s *ServicingService) Latest(ctx context.Context, hubID uuid.UUID) (*domain.ServicerRecord, error) {
	if _, err := s.assets.GetHub(ctx, hubID); err != nil {
		return nil, err
	}
	return s.records.GetLatest(ctx, hubID)
}

func (s *ServicingService) History(ctx context.Context, hubID uuid.UUID, from, to time.Time) ([]*domain.ServicerRecord, error) {
	if _, err := s.assets.GetHub(ctx, hubID); err != nil {
		return nil, err
	}
	if to.IsZero() {
		to = time.Now()
	}
	return s.records.ListByHub(ctx, hubID, from, to)
}

// FeedResult reports a servicer feed run.
type FeedResult struct {
	Upserted  int       `json:"upserted"`
	Unmatched int       `json:"unmatched"`
	Stats     etl.Stats `json:"stats"`
}

// ImportFeed upserts servicing snapshots from raw feed rows and refreshes each
// matched loan's live delinquency fields. Rows for loan numbers the platform
// does not hold are counted, not fatal.
func (s *ServicingService) ImportFeed(ctx context.Context, rows [][]string) (*FeedResult, error) {
	parsed, stats := etl.ParseServicerFeed(rows)
	result := &FeedResult{Stats: stats}

	for _, row := range parsed {
		hub, err := s.assets.GetHubByLoanNumber(ctx, row.ServicerLoanNumber)
		if errors.Is(err, domain.ErrAssetNotFound) {
			result.Unmatched++
			continue
		}
		if err != nil {
			return nil, err
		}

		now := time.Now()
		record := &domain.ServicerRecord{
			ID:            uuid.New(),
			CreatedAt:     now,
			UpdatedAt:     now,
			AssetHubID:    hub.ID,
			AsOfDate:      row.AsOfDate,
			EscrowBalance: row.EscrowBalance,
			NextDueDate:   row.NextDueDate,
			LastPaidDate:  row.LastPaidDate,
			StatusCode:    row.StatusCode,
		}
		if row.UPB != nil {
			record.UPB = *row.UPB
		}

		if err := s.records.Upsert(ctx, record); err != nil {
			log.WithError(err).WithField("line", row.Line).Warn("servicer row failed")
			result.Stats.Skipped++
			result.Stats.Errors = append(result.Stats.Errors, err.Error())
			continue
		}
		result.Upserted++

		s.refreshLoan(ctx, hub.ID, row)
	}

	return result, nil
}

// refreshLoan mirrors the snapshot onto the live loan row. Best effort: a loan
// the tape never created is skipped.
func (s *ServicingService) refreshLoan(ctx context.Context, hubID uuid.UUID, row etl.ServicerRow) {
	loan, err := s.assets.GetLoan(ctx, hubID)
	if err != nil {
		return
	}
	if row.UPB != nil {
		loan.CurrentBalance = *row.UPB
	}
	if row.EscrowBalance != nil {
		loan.EscrowBalance = row.EscrowBalance
	}
	if row.NextDueDate != nil {
		loan.NextDueDate = row.NextDueDate
	}
	if row.LastPaidDate != nil {
		loan.LastPaidDate = row.LastPaidDate
	}
	loan.UpdatedAt = time.Now()
	if err := s.assets.UpsertLoan(ctx, loan); err != nil {
		log.WithError(err).WithField("hub_id", hubID).Warn("loan refresh failed")
	}
}
