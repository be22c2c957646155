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

type assumptionRepo struct {
	pool *pgxpool.Pool
}

func NewAssumptionRepository(pool *pgxpool.Pool) ports.AssumptionRepository {
	return &assumptionRepo{pool: pool}
}

const stateAssumptionColumns = `
	id, created_at, updated_at, state,
	fc_timeline_months, fc_legal_cost, reo_marketing_months,
	rehab_cost_per_sqft, rehab_cost_flat, property_tax_pct, insurance_pct`

func (r *assumptionRepo) GetState(ctx context.Context, state string) (*domain.StateAssumption, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM state_assumption WHERE state = $1`, stateAssumptionColumns)
	a, err := scanStateAssumption(r.pool.QueryRow(ctx, query, state))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStateAssumptionNotFound
		}
		return nil, fmt.Errorf("get state assumption: %w", err)
	}
	return a, nil
}

func (r *assumptionRepo) UpsertState(ctx context.Context, assumption *domain.StateAssumption) error {
	query := `
		INSERT INTO state_assumption
			(id, created_at, updated_at, state,
			 fc_timeline_months, fc_legal_cost, reo_marketing_months,
			 rehab_cost_per_sqft, rehab_cost_flat, property_tax_pct, insurance_pct)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (state) DO UPDATE SET
			fc_timeline_months=EXCLUDED.fc_timeline_months,
			fc_legal_cost=EXCLUDED.fc_legal_cost,
			reo_marketing_months=EXCLUDED.reo_marketing_months,
			rehab_cost_per_sqft=EXCLUDED.rehab_cost_per_sqft,
			rehab_cost_flat=EXCLUDED.rehab_cost_flat,
			property_tax_pct=EXCLUDED.property_tax_pct,
			insurance_pct=EXCLUDED.insurance_pct,
			updated_at=NOW()
	`
	_, err := r.pool.Exec(ctx, query,
		assumption.ID, assumption.CreatedAt, assumption.UpdatedAt, assumption.State,
		assumption.FCTimelineMonths, assumption.FCLegalCost,
		assumption.REOMarketingMonths, assumption.RehabCostPerSqft,
		assumption.RehabCostFlat, assumption.PropertyTaxPct, assumption.InsurancePct,
	)
	if err != nil {
		return fmt.Errorf("upsert state assumption: %w", err)
	}
	return nil
}

func (r *assumptionRepo) ListStates(ctx context.Context) ([]*domain.StateAssumption, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM state_assumption ORDER BY state`, stateAssumptionColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list state assumptions: %w", err)
	}
	defer rows.Close()

	var assumptions []*domain.StateAssumption
	for rows.Next() {
		a, err := scanStateAssumption(rows)
		if err != nil {
			return nil, fmt.Errorf("scan state assumption row: %w", err)
		}
		assumptions = append(assumptions, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate state assumption rows: %w", err)
	}

	return assumptions, nil
}

func (r *assumptionRepo) GetGlobal(ctx context.Context) (*domain.GlobalAssumption, error) {
	// One row per deployment; take the newest if an operator ever inserts more.
	query := `
		SELECT id, created_at, updated_at, discount_rate_annual,
			   fc_timeline_months, fc_legal_cost, reo_marketing_months,
			   rehab_cost_per_sqft, rehab_cost_flat, property_tax_pct, insurance_pct,
			   servicing_fee_monthly, broker_fee_pct, broker_fee_flat,
			   closing_cost_pct, closing_cost_flat, other_cost_pct, other_cost_flat,
			   short_sale_pct, dil_incentive, borrower_incentive, note_sale_price_pct,
			   mod_term_months, mod_note_sale_mult
		FROM global_assumption
		ORDER BY updated_at DESC
		LIMIT 1
	`
	a := &domain.GlobalAssumption{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.DiscountRateAnnual,
		&a.FCTimelineMonths, &a.FCLegalCost, &a.REOMarketingMonths,
		&a.RehabCostPerSqft, &a.RehabCostFlat, &a.PropertyTaxPct, &a.InsurancePct,
		&a.ServicingFeeMonthly, &a.BrokerFeePct, &a.BrokerFeeFlat,
		&a.ClosingCostPct, &a.ClosingCostFlat, &a.OtherCostPct, &a.OtherCostFlat,
		&a.ShortSalePct, &a.DILIncentive, &a.BorrowerIncentive, &a.NoteSalePricePct,
		&a.ModTermMonths, &a.ModNoteSaleMult,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGlobalAssumptionNotFound
		}
		return nil, fmt.Errorf("get global assumption: %w", err)
	}
	return a, nil
}

func (r *assumptionRepo) UpsertGlobal(ctx context.Context, assumption *domain.GlobalAssumption) error {
	query := `
		INSERT INTO global_assumption
			(id, created_at, updated_at, discount_rate_annual,
			 fc_timeline_months, fc_legal_cost, reo_marketing_months,
			 rehab_cost_per_sqft, rehab_cost_flat, property_tax_pct, insurance_pct,
			 servicing_fee_monthly, broker_fee_pct, broker_fee_flat,
			 closing_cost_pct, closing_cost_flat, other_cost_pct, other_cost_flat,
			 short_sale_pct, dil_incentive, borrower_incentive, note_sale_price_pct,
			 mod_term_months, mod_note_sale_mult)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)
		ON CONFLICT (id) DO UPDATE SET
			discount_rate_annual=EXCLUDED.discount_rate_annual,
			fc_timeline_months=EXCLUDED.fc_timeline_months,
			fc_legal_cost=EXCLUDED.fc_legal_cost,
			reo_marketing_months=EXCLUDED.reo_marketing_months,
			rehab_cost_per_sqft=EXCLUDED.rehab_cost_per_sqft,
			rehab_cost_flat=EXCLUDED.rehab_cost_flat,
			property_tax_pct=EXCLUDED.property_tax_pct,
			insurance_pct=EXCLUDED.insurance_pct,
			servicing_fee_monthly=EXCLUDED.servicing_fee_monthly,
			broker_fee_pct=EXCLUDED.broker_fee_pct,
			broker_fee_flat=EXCLUDED.broker_fee_flat,
			closing_cost_pct=EXCLUDED.closing_cost_pct,
			closing_cost_flat=EXCLUDED.closing_cost_flat,
			other_cost_pct=EXCLUDED.other_cost_pct,
			other_cost_flat=EXCLUDED.other_cost_flat,
			short_sale_pct=EXCLUDED.short_sale_pct,
			dil_incentive=EXCLUDED.dil_incentive,
			borrower_incentive=EXCLUDED.borrower_incentive,
			note_sale_price_pct=EXCLUDED.note_sale_price_pct,
			mod_term_months=EXCLUDED.mod_term_months,
			mod_note_sale_mult=EXCLUDED.mod_note_sale_mult,
			updated_at=NOW()
	`
	_, err := r.pool.Exec(ctx, query,
		assumption.ID, assumption.CreatedAt, assumption.UpdatedAt,
		assumption.DiscountRateAnnual, assumption.FCTimelineMonths,
		assumption.FCLegalCost, assumption.REOMarketingMonths,
		assumption.RehabCostPerSqft, assumption.RehabCostFlat,
		assumption.PropertyTaxPct, assumption.InsurancePct,
		assumption.ServicingFeeMonthly, assumption.BrokerFeePct,
		assumption.BrokerFeeFlat, assumption.ClosingCostPct,
		assumption.ClosingCostFlat, assumption.OtherCostPct,
		assumption.OtherCostFlat, assumption.ShortSalePct,
		assumption.DILIncentive, assumption.BorrowerIncentive,
		assumption.NoteSalePricePct, assumption.ModTermMonths,
		assumption.ModNoteSaleMult,
	)
	if err != nil {
		return fmt.Errorf("upsert global assumption: %w", err)
	}
	return nil
}

func (r *assumptionRepo) GetOverride(ctx context.Context, hubID uuid.UUID) (*domain.AssetAssumptionOverride, error) {
	query := `
		SELECT id, created_at, updated_at, asset_hub_id,
			   fc_timeline_months, fc_legal_cost, reo_marketing_months,
			   rehab_cost, property_tax_pct, insurance_pct,
			   note_sale_price_pct, short_sale_pct
		FROM asset_assumption_override
		WHERE asset_hub_id = $1
	`
	o := &domain.AssetAssumptionOverride{}
	err := r.pool.QueryRow(ctx, query, hubID).Scan(
		&o.ID, &o.CreatedAt, &o.UpdatedAt, &o.AssetHubID,
		&o.FCTimelineMonths, &o.FCLegalCost, &o.REOMarketingMonths,
		&o.RehabCost, &o.PropertyTaxPct, &o.InsurancePct,
		&o.NoteSalePricePct, &o.ShortSalePct,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOverrideNotFound
		}
		return nil, fmt.Errorf("get assumption override: %w", err)
	}
	return o, nil
}

func (r *assumptionRepo) UpsertOverride(ctx context.Context, override *domain.AssetAssumptionOverride) error {
	query := `
		INSERT INTO asset_assumption_override
			(id, created_at, updated_at, asset_hub_id,
			 fc_timeline_months, fc_legal_cost, reo_marketing_months,
			 rehab_cost, property_tax_pct, insurance_pct,
			 note_sale_price_pct, short_sale_pct)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (asset_hub_id) DO UPDATE SET
			fc_timeline_months=EXCLUDED.fc_timeline_months,
			fc_legal_cost=EXCLUDED.fc_legal_cost,
			reo_marketing_months=EXCLUDED.reo_marketing_months,
			rehab_cost=EXCLUDED.rehab_cost,
			property_tax_pct=EXCLUDED.property_tax_pct,
			insurance_pct=EXCLUDED.insurance_pct,
			note_sale_price_pct=EXCLUDED.note_sale_price_pct,
			short_sale_pct=EXCLUDED.short_sale_pct,
			updated_at=NOW()
	`
	_, err := r.pool.Exec(ctx, query,
		override.ID, override.CreatedAt, override.UpdatedAt, override.AssetHubID,
		override.FCTimelineMonths, override.FCLegalCost,
		override.REOMarketingMonths, override.RehabCost,
		override.PropertyTaxPct, override.InsurancePct,
		override.NoteSalePricePct, override.ShortSalePct,
	)
	if err != nil {
		return fmt.Errorf("upsert assumption override: %w", err)
	}
	return nil
}

func (r *assumptionRepo) DeleteOverride(ctx context.Context, hubID uuid.UUID) error {
	result, err := r.pool.Exec(ctx,
		`DELETE FROM asset_assumption_override WHERE asset_hub_id = $1`, hubID)
	if err != nil {
		return fmt.Errorf("delete assumption override: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrOverrideNotFound
	}
	return nil
}

func scanStateAssumption(row pgx.Row) (*domain.StateAssumption, error) {
	a := &domain.StateAssumption{}
	err := row.Scan(
		&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.State,
		&a.FCTimelineMonths, &a.FCLegalCost, &a.REOMarketingMonths,
		&a.RehabCostPerSqft, &a.RehabCostFlat, &a.PropertyTaxPct, &a.InsurancePct,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
