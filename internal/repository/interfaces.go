package repository

import (
	"context"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListWithStats(ctx context.Context) ([]domain.UserWithStats, error)
}

// QuestionFilter narrows List results. Empty fields mean no filter.
type QuestionFilter struct {
	Category string
	Status   string
}

type QuestionRepository interface {
	Create(ctx context.Context, q *domain.Question) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	List(ctx context.Context, filter QuestionFilter) ([]domain.Question, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Question, error)
}

type AnswerRepository interface {
	Create(ctx context.Context, a *domain.Answer) error
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.Answer, error)
	// Accept marks answerID as the accepted answer for questionID and moves
	// the question to "answered", all within one transaction.
	Accept(ctx context.Context, questionID, answerID uuid.UUID) error
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
	CountAcceptedByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
}

type AnswerRequestRepository interface {
	Create(ctx context.Context, req *domain.AnswerRequest) error
	Get(ctx context.Context, questionID, userID uuid.UUID) (*domain.AnswerRequest, error)
	ListByQuestion(ctx context.Context, questionID uuid.UUID) ([]domain.AnswerRequest, error)
	UpdateStatus(ctx context.Context, questionID, userID uuid.UUID, status string) error
}

type ResearcherProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ResearcherProfile, error)
	Upsert(ctx context.Context, p *domain.ResearcherProfile) error
}
