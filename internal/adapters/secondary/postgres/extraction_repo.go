package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"asset-management-service/internal/core/domain"
	ports "asset-management-service/internal/core/ports/output"
)

type extractionJobRepo struct {
	pool *pgxpool.Pool
}

func NewExtractionJobRepository(pool *pgxpool.Pool) ports.ExtractionJobRepository {
	return &extractionJobRepo{pool: pool}
}

func (r *extractionJobRepo) Create(ctx context.Context, job *domain.ExtractionJob) error {
	fieldsJSON, err := json.Marshal(job.Fields)
	if err != nil {
		return fmt.Errorf("marshal extraction fields: %w", err)
	}

	query := `
		INSERT INTO extraction_job
			(id, created_at, updated_at, asset_hub_id,
			 document_name, status, fields, error)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err = r.pool.Exec(ctx, query,
		job.ID, job.CreatedAt, job.UpdatedAt, job.AssetHubID,
		job.DocumentName, string(job.Status), fieldsJSON, job.Error,
	)
	if err != nil {
		return fmt.Errorf("create extraction job: %w", err)
	}
	return nil
}

func (r *extractionJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionJob, error) {
	query := `
		SELECT id, created_at, updated_at, asset_hub_id,
			   document_name, status, fields, error
		FROM extraction_job
		WHERE id = $1
	`
	job, err := scanExtractionJob(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrExtractionJobNotFound
		}
		return nil, fmt.Errorf("get extraction job by id: %w", err)
	}
	return job, nil
}

func (r *extractionJobRepo) Update(ctx context.Context, job *domain.ExtractionJob) error {
	fieldsJSON, err := json.Marshal(job.Fields)
	if err != nil {
		return fmt.Errorf("marshal extraction fields: %w", err)
	}

	query := `
		UPDATE extraction_job
		SET status=$1, fields=$2, error=$3, updated_at=NOW()
		WHERE id=$4
	`
	result, err := r.pool.Exec(ctx, query,
		string(job.Status), fieldsJSON, job.Error, job.ID,
	)
	if err != nil {
		return fmt.Errorf("update extraction job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrExtractionJobNotFound
	}
	return nil
}

func (r *extractionJobRepo) ListByHub(ctx context.Context, hubID uuid.UUID) ([]*domain.ExtractionJob, error) {
	query := `
		SELECT id, created_at, updated_at, asset_hub_id,
			   document_name, status, fields, error
		FROM extraction_job
		WHERE asset_hub_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, hubID)
	if err != nil {
		return nil, fmt.Errorf("list extraction jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.ExtractionJob
	for rows.Next() {
		job, err := scanExtractionJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan extraction job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate extraction job rows: %w", err)
	}

	return jobs, nil
}

func scanExtractionJob(row pgx.Row) (*domain.ExtractionJob, error) {
	job := &domain.ExtractionJob{}
	var fieldsJSON []byte

	err := row.Scan(
		&job.ID, &job.CreatedAt, &job.UpdatedAt, &job.AssetHubID,
		&job.DocumentName, &job.Status, &fieldsJSON, &job.Error,
	)
	if err != nil {
		return nil, err
	}

	if len(fieldsJSON) > 0 {
		if err := json.Unmarshal(fieldsJSON, &job.Fields); err != nil {
			return nil, fmt.Errorf("unmarshal extraction fields: %w", err)
		}
	}
	if job.Fields == nil {
		job.Fields = map[string]string{}
	}
	return job, nil
}
