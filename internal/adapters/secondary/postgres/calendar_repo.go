package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

type calendarEventRepo struct {
	pool *pgxpool.Pool
}

func NewCalendarEventRepository(pool *pgxpool.Pool) ports.CalendarEventRepository {
	return &calendarEventRepo{pool: pool}
}

const eventColumns = `
	id, created_at, updated_at, asset_hub_id,
	type, title, notes, start_at, end_at`

func (r *calendarEventRepo) Create(ctx context.Context, event *domain.CalendarEvent) error {
	query := `
		INSERT INTO calendar_event
			(id, created_at, updated_at, asset_hub_id,
			 type, title, notes, start_at, end_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.CreatedAt, event.UpdatedAt, event.AssetHubID,
		string(event.Type), event.Title, event.Notes, event.StartAt, event.EndAt,
	)
	if err != nil {
		return fmt.Errorf("create calendar event: %w", err)
	}
	return nil
}

func (r *calendarEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.CalendarEvent, error) {
	query := fmt.Sprintf(`SELECT %s FROM calendar_event WHERE id = $1`, eventColumns)
	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get calendar event by id: %w", err)
	}
	return event, nil
}

func (r *calendarEventRepo) Update(ctx context.Context, event *domain.CalendarEvent) error {
	query := `
		UPDATE calendar_event
		SET type=$1, title=$2, notes=$3, start_at=$4, end_at=$5, updated_at=NOW()
		WHERE id=$6
	`
	result, err := r.pool.Exec(ctx, query,
		string(event.Type), event.Title, event.Notes,
		event.StartAt, event.EndAt, event.ID,
	)
	if err != nil {
		return fmt.Errorf("update calendar event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *calendarEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM calendar_event WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete calendar event: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *calendarEventRepo) List(ctx context.Context, filter ports.EventListFilter) ([]*domain.CalendarEvent, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.AssetHubID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("asset_hub_id = $%d", argPos))
		args = append(args, filter.AssetHubID)
		argPos++
	}
	if filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argPos))
		args = append(args, filter.Type)
		argPos++
	}
	if !filter.From.IsZero() {
		conditions = append(conditions, fmt.Sprintf("start_at >= $%d", argPos))
		args = append(args, filter.From)
		argPos++
	}
	if !filter.To.IsZero() {
		conditions = append(conditions, fmt.Sprintf("start_at <= $%d", argPos))
		args = append(args, filter.To)
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM calendar_event
		WHERE %s
		ORDER BY start_at
	`, eventColumns, whereClause)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}
	defer rows.Close()

	var events []*domain.CalendarEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan calendar event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar event rows: %w", err)
	}

	return events, nil
}

func scanEvent(row pgx.Row) (*domain.CalendarEvent, error) {
	e := &domain.CalendarEvent{}
	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.UpdatedAt, &e.AssetHubID,
		&e.Type, &e.Title, &e.Notes, &e.StartAt, &e.EndAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}
