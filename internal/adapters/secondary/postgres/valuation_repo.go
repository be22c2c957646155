package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

type valuationRepo struct {
	pool *pgxpool.Pool
}

func NewValuationRepository(pool *pgxpool.Pool) ports.ValuationRepository {
	return &valuationRepo{pool: pool}
}

func (r *valuationRepo) Create(ctx context.Context, valuation *domain.Valuation) error {
	query := `
		INSERT INTO valuation
			(id, created_at, updated_at, asset_hub_id,
			 source, as_of_date, as_is_value, arv_value, rehab_estimate)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.pool.Exec(ctx, query,
		valuation.ID, valuation.CreatedAt, valuation.UpdatedAt,
		valuation.AssetHubID, string(valuation.Source), valuation.AsOfDate,
		valuation.AsIsValue, valuation.ARVValue, valuation.RehabEstimate,
	)
	if err != nil {
		return fmt.Errorf("create valuation: %w", err)
	}
	return nil
}

func (r *valuationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Valuation, error) {
	query := `
		SELECT id, created_at, updated_at, asset_hub_id,
			   source, as_of_date, as_is_value, arv_value, rehab_estimate
		FROM valuation
		WHERE id = $1
	`
	v, err := scanValuation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrValuationNotFound
		}
		return nil, fmt.Errorf("get valuation by id: %w", err)
	}
	return v, nil
}

func (r *valuationRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.Valuation, error) {
	query := `
		SELECT id, created_at, updated_at, asset_hub_id,
			   source, as_of_date, as_is_value, arv_value, rehab_estimate
		FROM valuation
		WHERE asset_hub_id = $1
		ORDER BY as_of_date DESC
	`
	rows, err := r.pool.Query(ctx, query, hubID)
	if err != nil {
		return nil, fmt.Errorf("list valuations: %w", err)
	}
	defer rows.Close()

	var valuations []*domain.Valuation
	for rows.Next() {
		v, err := scanValuation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan valuation row: %w", err)
		}
		valuations = append(valuations, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate valuation rows: %w", err)
	}

	return valuations, nil
}

func (r *valuationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM valuation WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete valuation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrValuationNotFound
	}
	return nil
}

func scanValuation(row pgx.Row) (*domain.Valuation, error) {
	v := &domain.Valuation{}
	err := row.Scan(
		&v.ID, &v.CreatedAt, &v.UpdatedAt, &v.AssetHubID,
		&v.Source, &v.AsOfDate, &v.AsIsValue, &v.ARVValue, &v.RehabEstimate,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}
