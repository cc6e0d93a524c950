package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/case-service/internal/domain"
)

// UserRepository defines persistence access for system users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.SystemUser) error
	UpdateRole(ctx context.Context, id string, role domain.UserRole) error
	GetByID(ctx context.Context, id string) (*domain.SystemUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.SystemUser, error)
	List(ctx context.Context) ([]domain.SystemUser, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.SystemUser) error {
	const query = `
        INSERT INTO system_users (email, name, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role domain.UserRole) error {
	const query = `UPDATE system_users SET role=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, role, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.SystemUser, error) {
	const query = `
        SELECT id, email, name, password_hash, role, created_at, updated_at
        FROM system_users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.SystemUser, error) {
	const query = `
        SELECT id, email, name, password_hash, role, created_at, updated_at
        FROM system_users WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *userRepository) List(ctx context.Context) ([]domain.SystemUser, error) {
	const query = `
        SELECT id, email, name, password_hash, role, created_at, updated_at
        FROM system_users ORDER BY email ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SystemUser
	for rows.Next() {
		var user domain.SystemUser
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.Name,
			&user.PasswordHash,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.SystemUser, error) {
	var user domain.SystemUser
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
