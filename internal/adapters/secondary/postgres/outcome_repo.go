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

type outcomeRepo struct {
	pool *pgxpool.Pool
}

func NewOutcomeRepository(pool *pgxpool.Pool) ports.OutcomeRepository {
	return &outcomeRepo{pool: pool}
}

const outcomeColumns = `
	id, created_at, updated_at, asset_hub_id, type, status, active,
	duration_months, gross_proceeds, legal_cost, rehab_cost, carry_cost,
	incentive_cost, liquidation_fee, net_proceeds, net_pv,
	gross_irr, net_irr, modeled_at`

func (r *outcomeRepo) Upsert(ctx context.Context, outcome *domain.Outcome) error {
	query := `
		INSERT INTO outcome
			(id, created_at, updated_at, asset_hub_id, type, status, active,
			 duration_months, gross_proceeds, legal_cost, rehab_cost, carry_cost,
			 incentive_cost, liquidation_fee, net_proceeds, net_pv,
			 gross_irr, net_irr, modeled_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		ON CONFLICT (asset_hub_id, type) DO UPDATE SET
			status=EXCLUDED.status,
			active=EXCLUDED.active,
			duration_months=EXCLUDED.duration_months,
			gross_proceeds=EXCLUDED.gross_proceeds,
			legal_cost=EXCLUDED.legal_cost,
			rehab_cost=EXCLUDED.rehab_cost,
			carry_cost=EXCLUDED.carry_cost,
			incentive_cost=EXCLUDED.incentive_cost,
			liquidation_fee=EXCLUDED.liquidation_fee,
			net_proceeds=EXCLUDED.net_proceeds,
			net_pv=EXCLUDED.net_pv,
			gross_irr=EXCLUDED.gross_irr,
			net_irr=EXCLUDED.net_irr,
			modeled_at=EXCLUDED.modeled_at,
			updated_at=NOW()
	`
	_, err := r.pool.Exec(ctx, query,
		outcome.ID, outcome.CreatedAt, outcome.UpdatedAt,
		outcome.AssetHubID, string(outcome.Type), string(outcome.Status),
		outcome.Active, outcome.DurationMonths, outcome.GrossProceeds,
		outcome.LegalCost, outcome.RehabCost, outcome.CarryCost,
		outcome.IncentiveCost, outcome.LiquidationFee, outcome.NetProceeds,
		outcome.NetPV, outcome.GrossIRR, outcome.NetIRR, outcome.ModeledAt,
	)
	if err != nil {
		return fmt.Errorf("upsert outcome: %w", err)
	}
	return nil
}

func (r *outcomeRepo) GetByHubAndType(ctx context.Context, hubID uuid.UUID, outcomeType domain.OutcomeType) (*domain.Outcome, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM outcome WHERE asset_hub_id = $1 AND type = $2`, outcomeColumns)
	o, err := scanOutcome(r.pool.QueryRow(ctx, query, hubID, string(outcomeType)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOutcomeNotFound
		}
		return nil, fmt.Errorf("get outcome by hub and type: %w", err)
	}
	return o, nil
}

func (r *outcomeRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.Outcome, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM outcome WHERE asset_hub_id = $1 ORDER BY type`, outcomeColumns)
	rows, err := r.pool.Query(ctx, query, hubID)
	if err != nil {
		return nil, fmt.Errorf("list outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []*domain.Outcome
	for rows.Next() {
		o, err := scanOutcome(rows)
		if err != nil {
			return nil, fmt.Errorf("scan outcome row: %w", err)
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcome rows: %w", err)
	}

	return outcomes, nil
}

// SetActive flips the chosen outcome on and every sibling off in one
// transaction.
func (r *outcomeRepo) SetActive(ctx context.Context, hubID uuid.UUID, outcomeType domain.OutcomeType) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin set active: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE outcome SET active = false, updated_at = NOW()
		 WHERE asset_hub_id = $1 AND active`, hubID); err != nil {
		return fmt.Errorf("deactivate outcomes: %w", err)
	}

	result, err := tx.Exec(ctx,
		`UPDATE outcome SET active = true, updated_at = NOW()
		 WHERE asset_hub_id = $1 AND type = $2`, hubID, string(outcomeType))
	if err != nil {
		return fmt.Errorf("activate outcome: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrOutcomeNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit set active: %w", err)
	}
	return nil
}

func (r *outcomeRepo) ClearActive(ctx context.Context, hubID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE outcome SET active = false, updated_at = NOW()
		 WHERE asset_hub_id = $1 AND active`, hubID)
	if err != nil {
		return fmt.Errorf("clear active outcome: %w", err)
	}
	return nil
}

func scanOutcome(row pgx.Row) (*domain.Outcome, error) {
	o := &domain.Outcome{}
	err := row.Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.AssetHubID,
		&o.Type, &o.Status, &o.Active, &o.DurationMonths,
		&o.GrossProceeds, &o.LegalCost, &o.RehabCost, &o.CarryCost,
		&o.IncentiveCost, &o.LiquidationFee, &o.NetProceeds, &o.NetPV,
		&o.GrossIRR, &o.NetIRR, &o.ModeledAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}
