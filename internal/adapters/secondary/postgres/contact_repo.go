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

type contactRepo struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) ports.ContactRepository {
	return &contactRepo{pool: pool}
}

const contactColumns = `
	id, created_at, updated_at, name, firm, tag, email, phone, state, notes`

func (r *contactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	query := `
		INSERT INTO contact
			(id, created_at, updated_at, name, firm, tag, email, phone, state, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	_, err := r.pool.Exec(ctx, query,
		contact.ID, contact.CreatedAt, contact.UpdatedAt,
		contact.Name, contact.Firm, string(contact.Tag),
		contact.Email, contact.Phone, contact.State, contact.Notes,
	)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

func (r *contactRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact WHERE id = $1`, contactColumns)
	contact, err := scanContact(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact by id: %w", err)
	}
	return contact, nil
}

func (r *contactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	query := `
		UPDATE contact
		SET name=$1, firm=$2, tag=$3, email=$4, phone=$5, state=$6, notes=$7,
			updated_at=NOW()
		WHERE id=$8
	`
	result, err := r.pool.Exec(ctx, query,
		contact.Name, contact.Firm, string(contact.Tag),
		contact.Email, contact.Phone, contact.State, contact.Notes, contact.ID,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *contactRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM contact WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrContactNotFound
	}
	return nil
}

func (r *contactRepo) List(ctx context.Context, filter ports.ContactListFilter) ([]*domain.Contact, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Tag != "" {
		conditions = append(conditions, fmt.Sprintf("tag = $%d", argPos))
		args = append(args, filter.Tag)
		argPos++
	}
	if filter.State != "" {
		conditions = append(conditions, fmt.Sprintf("state = $%d", argPos))
		args = append(args, filter.State)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(name ILIKE $%d OR firm ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM contact WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM contact
		WHERE %s
		ORDER BY name
		LIMIT $%d OFFSET $%d
	`, contactColumns, whereClause, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate contact rows: %w", err)
	}

	return contacts, total, nil
}

func scanContact(row pgx.Row) (*domain.Contact, error) {
	c := &domain.Contact{}
	err := row.Scan(
		&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Name, &c.Firm,
		&c.Tag, &c.Email, &c.Phone, &c.State, &c.Notes,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}
