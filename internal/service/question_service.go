package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/dkovac/askhub/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrQuestionNotFound   = errors.New("question not found")
	ErrQuestionClosed     = errors.New("question is closed")
	ErrOwnQuestion        = errors.New("cannot volunteer for own question")
	ErrAlreadyVolunteered = errors.New("already volunteered for this question")
	ErrNotQuestionAuthor  = errors.New("only the question author can perform this action")
	ErrRequestNotFound    = errors.New("volunteer request not found")
	ErrNotSelected        = errors.New("user has not been selected to answer")
)

// Notifier pushes question lifecycle events to connected clients.
type Notifier interface {
	NotifyQuestionCreated(q *domain.Question)
	NotifyVolunteer(req *domain.AnswerRequest)
	NotifyVolunteerUpdated(req *domain.AnswerRequest)
	NotifyAnswer(a *domain.Answer)
	NotifyAnswerAccepted(questionID, answerID uuid.UUID)
}

type QuestionService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	requestRepo  repository.AnswerRequestRepository
	notifier     Notifier
}

func NewQuestionService(
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	requestRepo repository.AnswerRequestRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		requestRepo:  requestRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *QuestionService) SetNotifier(n Notifier) {
	s.notifier = n
}

type CreateQuestionInput struct {
	Title        string      `json:"title"`
	Body         string      `json:"body"`
	BountyAmount json.Number `json:"bountyAmount"`
	Category     string      `json:"category"`
}

func (s *QuestionService) Create(ctx context.Context, authorID uuid.UUID, input CreateQuestionInput) (*domain.Question, error) {
	// Absent or non-numeric bounty falls back to 0.
	bounty, err := input.BountyAmount.Int64()
	if err != nil || bounty < 0 {
		bounty = 0
	}

	category := input.Category
	if category == "" {
		category = "all"
	}

	now := time.Now()
	q := &domain.Question{
		ID:           uuid.New(),
		AuthorID:     authorID,
		Title:        input.Title,
		Body:         input.Body,
		BountyAmount: int(bounty),
		Category:     category,
		Status:       domain.QuestionStatusOpen,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.questionRepo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("creating question: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyQuestionCreated(q)
	}

	return q, nil
}

// List returns questions newest first. Category "all" (or empty) means no
// category filter.
func (s *QuestionService) List(ctx context.Context, category, status string) ([]domain.Question, error) {
	if category == "all" {
		category = ""
	}
	return s.questionRepo.List(ctx, repository.QuestionFilter{Category: category, Status: status})
}

func (s *QuestionService) GetDetail(ctx context.Context, questionID uuid.UUID) (*domain.QuestionDetail, error) {
	q, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	answers, err := s.answerRepo.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.ListByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if answers == nil {
		answers = []domain.Answer{}
	}
	if requests == nil {
		requests = []domain.AnswerRequest{}
	}

	return &domain.QuestionDetail{
		Question:       *q,
		Answers:        answers,
		AnswerRequests: requests,
	}, nil
}

func (s *QuestionService) Volunteer(ctx context.Context, questionID, userID uuid.UUID) (*domain.AnswerRequest, error) {
	q, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	if q.Status == domain.QuestionStatusClosed {
		return nil, ErrQuestionClosed
	}
	if q.AuthorID == userID {
		return nil, ErrOwnQuestion
	}

	existing, err := s.requestRepo.Get(ctx, questionID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyVolunteered
	}

	req := &domain.AnswerRequest{
		ID:         uuid.New(),
		QuestionID: questionID,
		UserID:     userID,
		Status:     domain.RequestStatusPending,
		CreatedAt:  time.Now(),
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("creating answer request: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyVolunteer(req)
	}

	return req, nil
}

// SelectVolunteer toggles a volunteer between "selected" and "pending" and
// returns the new status. Only the question author may call it.
func (s *QuestionService) SelectVolunteer(ctx context.Context, questionID, targetUserID, requesterID uuid.UUID) (string, error) {
	q, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return "", err
	}
	if q == nil {
		return "", ErrQuestionNotFound
	}
	if q.AuthorID != requesterID {
		return "", ErrNotQuestionAuthor
	}

	req, err := s.requestRepo.Get(ctx, questionID, targetUserID)
	if err != nil {
		return "", err
	}
	if req == nil {
		return "", ErrRequestNotFound
	}

	newStatus := domain.RequestStatusSelected
	if req.Status == domain.RequestStatusSelected {
		newStatus = domain.RequestStatusPending
	}

	if err := s.requestRepo.UpdateStatus(ctx, questionID, targetUserID, newStatus); err != nil {
		return "", fmt.Errorf("updating request status: %w", err)
	}

	if s.notifier != nil {
		req.Status = newStatus
		s.notifier.NotifyVolunteerUpdated(req)
	}

	return newStatus, nil
}

func (s *QuestionService) SubmitAnswer(ctx context.Context, questionID, authorID uuid.UUID, body string) (*domain.Answer, error) {
	q, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	if q.Status == domain.QuestionStatusClosed {
		return nil, ErrQuestionClosed
	}

	req, err := s.requestRepo.Get(ctx, questionID, authorID)
	if err != nil {
		return nil, err
	}
	if req == nil || req.Status != domain.RequestStatusSelected {
		return nil, ErrNotSelected
	}

	now := time.Now()
	a := &domain.Answer{
		ID:         uuid.New(),
		QuestionID: questionID,
		AuthorID:   authorID,
		Body:       body,
		Images:     []string{},
		IsAccepted: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.answerRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("creating answer: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyAnswer(a)
	}

	return a, nil
}

// AcceptAnswer marks answerID as the accepted answer. No check is made that
// answerID belongs to questionID; on a mismatch the answer update no-ops but
// the question still moves to "answered".
func (s *QuestionService) AcceptAnswer(ctx context.Context, questionID, answerID, requesterID uuid.UUID) error {
	q, err := s.questionRepo.GetByID(ctx, questionID)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrQuestionNotFound
	}
	if q.AuthorID != requesterID {
		return ErrNotQuestionAuthor
	}

	if err := s.answerRepo.Accept(ctx, questionID, answerID); err != nil {
		return fmt.Errorf("accepting answer: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyAnswerAccepted(questionID, answerID)
	}

	return nil
}
