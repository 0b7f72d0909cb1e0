package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/dkovac/askhub/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const questionColumns = `
	q.id, q.author_id, q.title, q.body, q.bounty_amount, q.category, q.status,
	q.created_at, q.updated_at,
	u.name AS author_name,
	COALESCE((SELECT COUNT(*)::int FROM answers a WHERE a.question_id = q.id), 0) AS answer_count`

type QuestionRepo struct {
	pool *pgxpool.Pool
}

func NewQuestionRepo(pool *pgxpool.Pool) *QuestionRepo {
	return &QuestionRepo{pool: pool}
}

func (r *QuestionRepo) Create(ctx context.Context, q *domain.Question) error {
	query := `
		INSERT INTO questions (id, author_id, title, body, bounty_amount, category, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		q.ID, q.AuthorID, q.Title, q.Body, q.BountyAmount, q.Category, q.Status, q.CreatedAt, q.UpdatedAt,
	)
	return err
}

func (r *QuestionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		LEFT JOIN users u ON q.author_id = u.id
		WHERE q.id = $1`

	var q domain.Question
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.AuthorID, &q.Title, &q.Body, &q.BountyAmount, &q.Category, &q.Status,
		&q.CreatedAt, &q.UpdatedAt, &q.AuthorName, &q.AnswerCount,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepo) List(ctx context.Context, filter repository.QuestionFilter) ([]domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		LEFT JOIN users u ON q.author_id = u.id
		WHERE 1=1`

	var args []any
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND q.category = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND q.status = $%d", len(args))
	}
	query += " ORDER BY q.created_at DESC"

	return r.queryQuestions(ctx, query, args...)
}

func (r *QuestionRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions q
		LEFT JOIN users u ON q.author_id = u.id
		WHERE q.author_id = $1
		ORDER BY q.created_at DESC`

	return r.queryQuestions(ctx, query, authorID)
}

func (r *QuestionRepo) queryQuestions(ctx context.Context, query string, args ...any) ([]domain.Question, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(
			&q.ID, &q.AuthorID, &q.Title, &q.Body, &q.BountyAmount, &q.Category, &q.Status,
			&q.CreatedAt, &q.UpdatedAt, &q.AuthorName, &q.AnswerCount,
		); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
