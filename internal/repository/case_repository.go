package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/case-service/internal/domain"
)

// CaseRepository encapsulates case persistence. Listing returns the full
// ordered snapshot (descending creation time) that the triage engine works
// over; filtering is in-memory by design, mirroring the live-subscription
// model the dashboard consumes.
type CaseRepository interface {
	Create(ctx context.Context, record *domain.CaseRecord) error
	Update(ctx context.Context, record *domain.CaseRecord) error
	GetByID(ctx context.Context, id string) (*domain.CaseRecord, error)
	List(ctx context.Context) ([]domain.CaseRecord, error)
	Delete(ctx context.Context, id string) error
}

type caseRepository struct {
	pool *pgxpool.Pool
}

// NewCaseRepository instantiates repository.
func NewCaseRepository(pool *pgxpool.Pool) CaseRepository {
	return &caseRepository{pool: pool}
}

func (r *caseRepository) Create(ctx context.Context, record *domain.CaseRecord) error {
	const query = `
        INSERT INTO cases (case_number, title, description, origin, assignee, status, deadline)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		record.CaseNumber,
		record.Title,
		record.Description,
		record.Origin,
		record.Assignee,
		record.Status,
		record.Deadline,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *caseRepository) Update(ctx context.Context, record *domain.CaseRecord) error {
	const query = `
        UPDATE cases SET case_number=$1, title=$2, description=$3, origin=$4, assignee=$5,
            status=$6, deadline=$7, closed_at=$8
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		record.CaseNumber,
		record.Title,
		record.Description,
		record.Origin,
		record.Assignee,
		record.Status,
		record.Deadline,
		record.ClosedAt,
		record.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *caseRepository) GetByID(ctx context.Context, id string) (*domain.CaseRecord, error) {
	const query = `
        SELECT id, case_number, title, description, origin, assignee, status, deadline, created_at, closed_at
        FROM cases WHERE id=$1`
	var record domain.CaseRecord
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&record.ID,
		&record.CaseNumber,
		&record.Title,
		&record.Description,
		&record.Origin,
		&record.Assignee,
		&record.Status,
		&record.Deadline,
		&record.CreatedAt,
		&record.ClosedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *caseRepository) List(ctx context.Context) ([]domain.CaseRecord, error) {
	const query = `
        SELECT id, case_number, title, description, origin, assignee, status, deadline, created_at, closed_at
        FROM cases ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCases(rows)
}

func (r *caseRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cases WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanCases(rows pgx.Rows) ([]domain.CaseRecord, error) {
	var result []domain.CaseRecord
	for rows.Next() {
		var record domain.CaseRecord
		if err := rows.Scan(
			&record.ID,
			&record.CaseNumber,
			&record.Title,
			&record.Description,
			&record.Origin,
			&record.Assignee,
			&record.Status,
			&record.Deadline,
			&record.CreatedAt,
			&record.ClosedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
