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

type taskRepo struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) ports.TaskRepository {
	return &taskRepo{pool: pool}
}

const taskColumns = `
	id, created_at, updated_at, asset_hub_id,
	task_type, status, due_date, notes`

func (r *taskRepo) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO task
			(id, created_at, updated_at, asset_hub_id,
			 task_type, status, due_date, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		task.ID, task.CreatedAt, task.UpdatedAt, task.AssetHubID,
		task.TaskType, string(task.Status), task.DueDate, task.Notes,
	)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *taskRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM task WHERE id = $1`, taskColumns)
	task, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	return task, nil
}

func (r *taskRepo) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE task
		SET task_type=$1, status=$2, due_date=$3, notes=$4, updated_at=NOW()
		WHERE id=$5
	`
	result, err := r.pool.Exec(ctx, query,
		task.TaskType, string(task.Status), task.DueDate, task.Notes, task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM task WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepo) List(ctx context.Context, filter ports.TaskListFilter) ([]*domain.Task, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.AssetHubID != uuid.Nil {
		conditions = append(conditions, fmt.Sprintf("asset_hub_id = $%d", argPos))
		args = append(args, filter.AssetHubID)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.TaskType != "" {
		conditions = append(conditions, fmt.Sprintf("task_type = $%d", argPos))
		args = append(args, filter.TaskType)
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM task WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM task
		WHERE %s
		ORDER BY due_date NULLS LAST, created_at DESC
		LIMIT $%d OFFSET $%d
	`, taskColumns, whereClause, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate task rows: %w", err)
	}

	return tasks, total, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	t := &domain.Task{}
	err := row.Scan(
		&t.ID, &t.CreatedAt, &t.UpdatedAt, &t.AssetHubID,
		&t.TaskType, &t.Status, &t.DueDate, &t.Notes,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}
