package postgres

import (
	"context"
	"errors"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnswerRequestRepo struct {
	pool *pgxpool.Pool
}

func NewAnswerRequestRepo(pool *pgxpool.Pool) *AnswerRequestRepo {
	return &AnswerRequestRepo{pool: pool}
}

func (r *AnswerRequestRepo) Create(ctx context.Context, req *domain.AnswerRequest) error {
	query := `
		INSERT INTO answer_requests (id, question_id, user_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query, req.ID, req.QuestionID, req.UserID, req.Status, req.CreatedAt)
	return err
}

func (r *AnswerRequestRepo) Get(ctx context.Context, questionID, userID uuid.UUID) (*domain.AnswerRequest, error) {
	query := `SELECT id, question_id, user_id, status, created_at FROM answer_requests WHERE question_id = $1 AND user_id = $2`

	var req domain.AnswerRequest
	err := r.pool.QueryRow(ctx, query, questionID, userID).Scan(
		&req.ID, &req.QuestionID, &req.UserID, &req.Status, &req.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *AnswerRequestRepo) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.AnswerRequest, error) {
	query := `
		SELECT ar.id, ar.question_id, ar.user_id, ar.status, ar.created_at, u.name AS user_name
		FROM answer_requests ar
		LEFT JOIN users u ON ar.user_id = u.id
		WHERE ar.question_id = $1
		ORDER BY ar.created_at ASC`

	rows, err := r.pool.Query(ctx, query, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.AnswerRequest
	for rows.Next() {
		var req domain.AnswerRequest
		if err := rows.Scan(&req.ID, &req.QuestionID, &req.UserID, &req.Status, &req.CreatedAt, &req.UserName); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *AnswerRequestRepo) UpdateStatus(ctx context.Context, questionID, userID uuid.UUID, status string) error {
	query := `UPDATE answer_requests SET status = $1 WHERE question_id = $2 AND user_id = $3`
	_, err := r.pool.Exec(ctx, query, status, questionID, userID)
	return err
}
