package postgres

import (
	"context"
	"fmt"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AnswerRepo struct {
	pool *pgxpool.Pool
}

func NewAnswerRepo(pool *pgxpool.Pool) *AnswerRepo {
	return &AnswerRepo{pool: pool}
}

func (r *AnswerRepo) Create(ctx context.Context, a *domain.Answer) error {
	query := `
		INSERT INTO answers (id, question_id, author_id, body, images, is_accepted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.QuestionID, a.AuthorID, a.Body, a.Images, a.IsAccepted, a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *AnswerRepo) ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.Answer, error) {
	query := `
		SELECT a.id, a.question_id, a.author_id, a.body, a.images, a.is_accepted, a.created_at, a.updated_at, u.name AS author_name
		FROM answers a
		LEFT JOIN users u ON a.author_id = u.id
		WHERE a.question_id = $1
		ORDER BY a.is_accepted DESC, a.created_at ASC`

	rows, err := r.pool.Query(ctx, query, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.AuthorID, &a.Body, &a.Images, &a.IsAccepted, &a.CreatedAt, &a.UpdatedAt, &a.AuthorName); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// Accept clears any previously accepted answer for the question, marks
// answerID accepted, and moves the question to "answered". The answer update
// is filtered by question_id and silently no-ops when answerID belongs to a
// different question; the status change applies regardless.
func (r *AnswerRepo) Accept(ctx context.Context, questionID, answerID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning accept transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE answers SET is_accepted = FALSE WHERE question_id = $1`, questionID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE answers SET is_accepted = TRUE, updated_at = NOW() WHERE id = $1 AND question_id = $2`, answerID, questionID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE questions SET status = 'answered', updated_at = NOW() WHERE id = $1`, questionID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *AnswerRepo) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*)::int FROM answers WHERE author_id = $1`, authorID).Scan(&count)
	return count, err
}

func (r *AnswerRepo) CountAcceptedByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*)::int FROM answers WHERE author_id = $1 AND is_accepted = true`, authorID).Scan(&count)
	return count, err
}
