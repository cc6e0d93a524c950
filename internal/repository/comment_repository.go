package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/case-service/internal/domain"
)

// CommentRepository persists case comments. Comments are append-only and
// listed newest-first for display.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByCase(ctx context.Context, caseID string) ([]domain.Comment, error)
}

type commentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository instantiates repository.
func NewCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	const query = `
        INSERT INTO case_comments (case_id, body, author)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		comment.CaseID,
		comment.Body,
		comment.Author,
	).Scan(&comment.ID, &comment.CreatedAt)
}

func (r *commentRepository) ListByCase(ctx context.Context, caseID string) ([]domain.Comment, error) {
	const query = `
        SELECT id, case_id, body, author, created_at
        FROM case_comments WHERE case_id=$1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Comment
	for rows.Next() {
		var comment domain.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.CaseID,
			&comment.Body,
			&comment.Author,
			&comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, comment)
	}
	return result, rows.Err()
}
