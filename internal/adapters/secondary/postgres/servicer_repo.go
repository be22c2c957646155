package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

type servicerRecordRepo struct {
	pool *pgxpool.Pool
}

func NewServicerRecordRepository(pool *pgxpool.Pool) ports.ServicerRecordRepository {
	return &servicerRecordRepo{pool: pool}
}

const servicerRecordColumns = `
	id, created_at, updated_at, asset_hub_id, as_of_date,
	upb, escrow_balance, next_due_date, last_paid_date, status_code`

// Upsert keys on (asset_hub_id, as_of_date): re-running a feed for a day
// overwrites that day's snapshot.
func (r *servicerRecordRepo) Upsert(ctx context.Context, record *domain.ServicerRecord) error {
	query := `
		INSERT INTO servicer_record
			(id, created_at, updated_at, asset_hub_id, as_of_date,
			 upb, escrow_balance, next_due_date, last_paid_date, status_code)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (asset_hub_id, as_of_date) DO UPDATE SET
			upb=EXCLUDED.upb,
			escrow_balance=EXCLUDED.escrow_balance,
			next_due_date=EXCLUDED.next_due_date,
			last_paid_date=EXCLUDED.last_paid_date,
			status_code=EXCLUDED.status_code,
			updated_at=NOW()
	`
	_, err := r.pool.Exec(ctx, query,
		record.ID, record.CreatedAt, record.UpdatedAt,
		record.AssetHubID, record.AsOfDate, record.UPB,
		record.EscrowBalance, record.NextDueDate, record.LastPaidDate,
		record.StatusCode,
	)
	if err != nil {
		return fmt.Errorf("upsert servicer record: %w", err)
	}
	return nil
}

func (r *servicerRecordRepo) GetLatest(ctx context.Context, hubID uuid.UUID) (*domain.ServicerRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM servicer_record
		WHERE asset_hub_id = $1
		ORDER BY as_of_date DESC
		LIMIT 1
	`, servicerRecordColumns)
	record, err := scanServicerRecord(r.pool.QueryRow(ctx, query, hubID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrServicerRecordNotFound
		}
		return nil, fmt.Errorf("get latest servicer record: %w", err)
	}
	return record, nil
}

func (r *servicerRecordRepo) ListByHub(ctx context.Context, hubID uuid.UUID, from, to time.Time) ([]*domain.ServicerRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM servicer_record
		WHERE asset_hub_id = $1 AND as_of_date >= $2 AND as_of_date <= $3
		ORDER BY as_of_date
	`, servicerRecordColumns)
	rows, err := r.pool.Query(ctx, query, hubID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list servicer records: %w", err)
	}
	defer rows.Close()

	var records []*domain.ServicerRecord
	for rows.Next() {
		record, err := scanServicerRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan servicer record row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate servicer record rows: %w", err)
	}

	return records, nil
}

func scanServicerRecord(row pgx.Row) (*domain.ServicerRecord, error) {
	s := &domain.ServicerRecord{}
	err := row.Scan(
		&s.ID, &s.CreatedAt, &s.UpdatedAt, &s.AssetHubID, &s.AsOfDate,
		&s.UPB, &s.EscrowBalance, &s.NextDueDate, &s.LastPaidDate, &s.StatusCode,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
