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

type tradeRepo struct {
	pool *pgxpool.Pool
}

func NewTradeRepository(pool *pgxpool.Pool) ports.TradeRepository {
	return &tradeRepo{pool: pool}
}

const tradeColumns = `
	t.id, t.created_at, t.updated_at, t.name, t.seller, t.status,
	t.bid_date, t.settlement_date, t.purchase_price, t.total_upb,
	(SELECT COUNT(*) FROM asset_id_hub h WHERE h.trade_id = t.id) AS asset_count`

func (r *tradeRepo) Create(ctx context.Context, trade *domain.Trade) error {
	query := `
		INSERT INTO trade
			(id, created_at, updated_at, name, seller, status,
			 bid_date, settlement_date, purchase_price, total_upb)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	_, err := r.pool.Exec(ctx, query,
		trade.ID, trade.CreatedAt, trade.UpdatedAt,
		trade.Name, trade.Seller, string(trade.Status),
		trade.BidDate, trade.SettlementDate,
		trade.PurchasePrice, trade.TotalUPB,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrTradeNameConflict
		}
		return fmt.Errorf("create trade: %w", err)
	}
	return nil
}

func (r *tradeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	query := fmt.Sprintf(`SELECT %s FROM trade t WHERE t.id = $1`, tradeColumns)
	trade, err := scanTrade(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTradeNotFound
		}
		return nil, fmt.Errorf("get trade by id: %w", err)
	}
	return trade, nil
}

func (r *tradeRepo) GetByName(ctx context.Context, name string) (*domain.Trade, error) {
	query := fmt.Sprintf(`SELECT %s FROM trade t WHERE t.name = $1`, tradeColumns)
	trade, err := scanTrade(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTradeNotFound
		}
		return nil, fmt.Errorf("get trade by name: %w", err)
	}
	return trade, nil
}

func (r *tradeRepo) Update(ctx context.Context, trade *domain.Trade) error {
	query := `
		UPDATE trade
		SET name=$1, seller=$2, status=$3, bid_date=$4, settlement_date=$5,
			purchase_price=$6, total_upb=$7, updated_at=NOW()
		WHERE id=$8
	`
	result, err := r.pool.Exec(ctx, query,
		trade.Name, trade.Seller, string(trade.Status),
		trade.BidDate, trade.SettlementDate,
		trade.PurchasePrice, trade.TotalUPB, trade.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrTradeNameConflict
		}
		return fmt.Errorf("update trade: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTradeNotFound
	}
	return nil
}

func (r *tradeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM trade WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTradeNotFound
	}
	return nil
}

func (r *tradeRepo) List(ctx context.Context, filter ports.TradeListFilter) ([]*domain.Trade, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Seller != "" {
		conditions = append(conditions, fmt.Sprintf("t.seller = $%d", argPos))
		args = append(args, filter.Seller)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("t.name ILIKE $%d", argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM trade t WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count trades: %w", err)
	}

	orderBy := "t.created_at DESC"
	if filter.SortBy != "" {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("t.%s %s", filter.SortBy, dir)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM trade t
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, tradeColumns, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()

	var trades []*domain.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan trade row: %w", err)
		}
		trades = append(trades, trade)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate trade rows: %w", err)
	}

	return trades, total, nil
}

func (r *tradeRepo) CountAssets(ctx context.Context, tradeID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM asset_id_hub WHERE trade_id = $1`, tradeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count trade assets: %w", err)
	}
	return count, nil
}

func scanTrade(row pgx.Row) (*domain.Trade, error) {
	t := &domain.Trade{}
	err := row.Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.Name, &t.Seller, &t.Status,
		&t.BidDate, &t.SettlementDate, &t.PurchasePrice, &t.TotalUPB,
		&t.AssetCount,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}
