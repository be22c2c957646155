package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

type assetRepo struct {
	pool *pgxpool.Pool
}

func NewAssetRepository(pool *pgxpool.Pool) ports.AssetRepository {
	return &assetRepo{pool: pool}
}

const hubColumns = `
	h.id, h.created_at, h.updated_at, h.trade_id,
	h.servicer_loan_number, h.seller_asset_id, h.status`

func (r *assetRepo) CreateHub(ctx context.Context, hub *domain.AssetIdHub) error {
	query := `
		INSERT INTO asset_id_hub
			(id, created_at, updated_at, trade_id,
			 servicer_loan_number, seller_asset_id, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	_, err := r.pool.Exec(ctx, query,
		hub.ID, hub.CreatedAt, hub.UpdatedAt, hub.TradeID,
		hub.ServicerLoanNumber, hub.SellerAssetID, string(hub.Status),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAssetAlreadyExists
		}
		return fmt.Errorf("create asset hub: %w", err)
	}
	return nil
}

func (r *assetRepo) GetHub(ctx context.Context, id uuid.UUID) (*domain.AssetIdHub, error) {
	query := fmt.Sprintf(`SELECT %s FROM asset_id_hub h WHERE h.id = $1`, hubColumns)
	hub, err := scanHub(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("get asset hub by id: %w", err)
	}
	return hub, nil
}

func (r *assetRepo) GetHubByLoanNumber(ctx context.Context, servicerLoanNumber string) (*domain.AssetIdHub, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM asset_id_hub h WHERE h.servicer_loan_number = $1`, hubColumns)
	hub, err := scanHub(r.pool.QueryRow(ctx, query, servicerLoanNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("get asset hub by loan number: %w", err)
	}
	return hub, nil
}

func (r *assetRepo) UpdateHub(ctx context.Context, hub *domain.AssetIdHub) error {
	query := `
		UPDATE asset_id_hub
		SET trade_id=$1, seller_asset_id=$2, status=$3, updated_at=NOW()
		WHERE id=$4
	`
	result, err := r.pool.Exec(ctx, query,
		hub.TradeID, hub.SellerAssetID, string(hub.Status), hub.ID,
	)
	if err != nil {
		return fmt.Errorf("update asset hub: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

func (r *assetRepo) List(ctx context.Context, filter ports.AssetListFilter) ([]*domain.AssetIdHub, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	// State filtering joins the property table.
	needPropertyJoin := filter.State != ""

	if filter.TradeID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("h.trade_id = $%d", argPos))
		args = append(args, filter.TradeID)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("h.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.State != "" {
		conditions = append(conditions, fmt.Sprintf("p.state = $%d", argPos))
		args = append(args, filter.State)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(h.servicer_loan_number ILIKE $%d OR h.seller_asset_id ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	joinClause := ""
	if needPropertyJoin {
		joinClause = "JOIN property p ON p.asset_hub_id = h.id"
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM asset_id_hub h %s WHERE %s", joinClause, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count asset hubs: %w", err)
	}

	orderBy := "h.created_at DESC"
	if filter.SortBy != "" {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("h.%s %s", filter.SortBy, dir)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM asset_id_hub h
		%s
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, hubColumns, joinClause, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list asset hubs: %w", err)
	}
	defer rows.Close()

	var hubs []*domain.AssetIdHub
	for rows.Next() {
		hub, err := scanHub(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan asset hub row: %w", err)
		}
		hubs = append(hubs, hub)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate asset hub rows: %w", err)
	}

	return hubs, total, nil
}

func (r *assetRepo) UpsertLoan(ctx context.Context, loan *domain.Loan) error {
	query := `
		INSERT INTO loan
			(id, created_at, updated_at, asset_hub_id,
			 current_balance, deferred_balance, total_debt, interest_rate,
			 monthly_payment, purchase_basis, escrow_balance,
			 origination_date, maturity_date, next_due_date, last_paid_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (asset_hub_id) DO UPDATE SET
			current_balance=EXCLUDED.current_balance,
			deferred_balance=EXCLUDED.deferred_balance,
			total_debt=EXCLUDED.total_debt,
			interest_rate=EXCLUDED.interest_rate,
			monthly_payment=EXCLUDED.monthly_payment,
			purchase_basis=EXCLUDED.purchase_basis,
			escrow_balance=EXCLUDED.escrow_balance,
			origination_date=EXCLUDED.origination_date,
			maturity_date=EXCLUDED.maturity_date,
			next_due_date=EXCLUDED.next_due_date,
			last_paid_date=EXCLUDED.last_paid_date,
			updated_at=NOW()
	`
	_, err := r.pool.Exec(ctx, query,
		loan.ID, loan.CreatedAt, loan.UpdatedAt, loan.AssetHubID,
		loan.CurrentBalance, loan.DeferredBalance, loan.TotalDebt,
		loan.InterestRate, loan.MonthlyPayment, loan.PurchaseBasis,
		loan.EscrowBalance, loan.OriginationDate, loan.MaturityDate,
		loan.NextDueDate, loan.LastPaidDate,
	)
	if err != nil {
		return fmt.Errorf("upsert loan: %w", err)
	}
	return nil
}

func (r *assetRepo) GetLoan(ctx context.Context, hubID uuid.UUID) (*domain.Loan, error) {
	query := `
		SELECT id, created_at, updated_at, asset_hub_id,
			   current_balance, deferred_balance, total_debt, interest_rate,
			   monthly_payment, purchase_basis, escrow_balance,
			   origination_date, maturity_date, next_due_date, last_paid_date
		FROM loan
		WHERE asset_hub_id = $1
	`
	l := &domain.Loan{}
	err := r.pool.QueryRow(ctx, query, hubID).Scan(
		&l.ID, &l.CreatedAt, &l.UpdatedAt, &l.AssetHubID,
		&l.CurrentBalance, &l.DeferredBalance, &l.TotalDebt, &l.InterestRate,
		&l.MonthlyPayment, &l.PurchaseBasis, &l.EscrowBalance,
		&l.OriginationDate, &l.MaturityDate, &l.NextDueDate, &l.LastPaidDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, fmt.Errorf("get loan: %w", err)
	}
	return l, nil
}

func (r *assetRepo) UpsertProperty(ctx context.Context, property *domain.Property) error {
	query := `
		INSERT INTO property
			(id, created_at, updated_at, asset_hub_id,
			 street, city, state, zip, property_type,
			 square_feet, beds, baths, year_built, occupancy)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (asset_hub_id) DO UPDATE SET
			street=EXCLUDED.street,
			city=EXCLUDED.city,
			state=EXCLUDED.state,
			zip=EXCLUDED.zip,
			property_type=EXCLUDED.property_type,
			square_feet=EXCLUDED.square_feet,
			beds=EXCLUDED.beds,
			baths=EXCLUDED.baths,
			year_built=EXCLUDED.year_built,
			occupancy=EXCLUDED.occupancy,
			updated_at=NOW()
	`
	_, err := r.pool.Exec(ctx, query,
		property.ID, property.CreatedAt, property.UpdatedAt, property.AssetHubID,
		property.Street, property.City, property.State, property.Zip,
		property.PropertyType, property.SquareFeet, property.Beds,
		property.Baths, property.YearBuilt, string(property.Occupancy),
	)
	if err != nil {
		return fmt.Errorf("upsert property: %w", err)
	}
	return nil
}

func (r *assetRepo) GetProperty(ctx context.Context, hubID uuid.UUID) (*domain.Property, error) {
	query := `
		SELECT id, created_at, updated_at, asset_hub_id,
			   street, city, state, zip, property_type,
			   square_feet, beds, baths, year_built, occupancy
		FROM property
		WHERE asset_hub_id = $1
	`
	p := &domain.Property{}
	err := r.pool.QueryRow(ctx, query, hubID).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt, &p.AssetHubID,
		&p.Street, &p.City, &p.State, &p.Zip, &p.PropertyType,
		&p.SquareFeet, &p.Beds, &p.Baths, &p.YearBuilt, &p.Occupancy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

func scanHub(row pgx.Row) (*domain.AssetIdHub, error) {
	h := &domain.AssetIdHub{}
	err := row.Scan(
		&h.ID, &h.CreatedAt, &h.UpdatedAt, &h.TradeID,
		&h.ServicerLoanNumber, &h.SellerAssetID, &h.Status,
	)
	if err != nil {
		return nil, err
	}
	return h, nil
}
