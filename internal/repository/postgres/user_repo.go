package postgres

import (
	"context"
	"errors"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE id = $1`
	return r.scanUser(ctx, query, id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, password_hash, created_at, updated_at FROM users WHERE email = $1`
	return r.scanUser(ctx, query, email)
}

func (r *UserRepo) ListWithStats(ctx context.Context) ([]domain.UserWithStats, error) {
	query := `
		SELECT
			u.id, u.name, u.email, u.created_at,
			COALESCE((SELECT COUNT(*)::int FROM questions q WHERE q.author_id = u.id), 0) AS questions_count,
			COALESCE((SELECT COUNT(*)::int FROM answers a WHERE a.author_id = u.id), 0) AS answers_count,
			COALESCE((SELECT COUNT(*)::int FROM answers a WHERE a.author_id = u.id AND a.is_accepted = true), 0) AS accepted_count
		FROM users u
		ORDER BY u.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.UserWithStats
	for rows.Next() {
		var u domain.UserWithStats
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CreatedAt, &u.QuestionsCount, &u.AnswersCount, &u.AcceptedCount); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
