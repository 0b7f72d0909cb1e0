package service

import (
	"context"
	"time"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/dkovac/askhub/internal/repository"
	"github.com/google/uuid"
)

// In-memory repository stubs mirroring the SQL semantics the postgres
// implementations rely on.

type stubUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) ListWithStats(_ context.Context) ([]domain.UserWithStats, error) {
	var out []domain.UserWithStats
	for _, u := range r.users {
		out = append(out, domain.UserWithStats{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt})
	}
	return out, nil
}

type stubQuestionRepo struct {
	questions map[uuid.UUID]*domain.Question
}

func newStubQuestionRepo() *stubQuestionRepo {
	return &stubQuestionRepo{questions: make(map[uuid.UUID]*domain.Question)}
}

func (r *stubQuestionRepo) Create(_ context.Context, q *domain.Question) error {
	cp := *q
	r.questions[q.ID] = &cp
	return nil
}

func (r *stubQuestionRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *stubQuestionRepo) List(_ context.Context, filter repository.QuestionFilter) ([]domain.Question, error) {
	var out []domain.Question
	for _, q := range r.questions {
		if filter.Category != "" && q.Category != filter.Category {
			continue
		}
		if filter.Status != "" && q.Status != filter.Status {
			continue
		}
		out = append(out, *q)
	}
	return out, nil
}

func (r *stubQuestionRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]domain.Question, error) {
	var out []domain.Question
	for _, q := range r.questions {
		if q.AuthorID == authorID {
			out = append(out, *q)
		}
	}
	return out, nil
}

type stubAnswerRepo struct {
	answers   map[uuid.UUID]*domain.Answer
	questions *stubQuestionRepo
}

func newStubAnswerRepo(questions *stubQuestionRepo) *stubAnswerRepo {
	return &stubAnswerRepo{answers: make(map[uuid.UUID]*domain.Answer), questions: questions}
}

func (r *stubAnswerRepo) Create(_ context.Context, a *domain.Answer) error {
	cp := *a
	r.answers[a.ID] = &cp
	return nil
}

func (r *stubAnswerRepo) ListByQuestion(_ context.Context, questionID uuid.UUID) ([]domain.Answer, error) {
	var out []domain.Answer
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			out = append(out, *a)
		}
	}
	// Accepted first, then oldest first.
	for i := range out {
		for j := i + 1; j < len(out); j++ {
			swap := false
			if out[j].IsAccepted != out[i].IsAccepted {
				swap = out[j].IsAccepted
			} else {
				swap = out[j].CreatedAt.Before(out[i].CreatedAt)
			}
			if swap {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (r *stubAnswerRepo) Accept(_ context.Context, questionID, answerID uuid.UUID) error {
	for _, a := range r.answers {
		if a.QuestionID == questionID {
			a.IsAccepted = false
		}
	}
	if a, ok := r.answers[answerID]; ok && a.QuestionID == questionID {
		a.IsAccepted = true
		a.UpdatedAt = time.Now()
	}
	if q, ok := r.questions.questions[questionID]; ok {
		q.Status = domain.QuestionStatusAnswered
		q.UpdatedAt = time.Now()
	}
	return nil
}

func (r *stubAnswerRepo) CountByAuthor(_ context.Context, authorID uuid.UUID) (int, error) {
	count := 0
	for _, a := range r.answers {
		if a.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

func (r *stubAnswerRepo) CountAcceptedByAuthor(_ context.Context, authorID uuid.UUID) (int, error) {
	count := 0
	for _, a := range r.answers {
		if a.AuthorID == authorID && a.IsAccepted {
			count++
		}
	}
	return count, nil
}

type stubRequestRepo struct {
	requests []*domain.AnswerRequest
}

func newStubRequestRepo() *stubRequestRepo {
	return &stubRequestRepo{}
}

func (r *stubRequestRepo) Create(_ context.Context, req *domain.AnswerRequest) error {
	cp := *req
	r.requests = append(r.requests, &cp)
	return nil
}

func (r *stubRequestRepo) Get(_ context.Context, questionID, userID uuid.UUID) (*domain.AnswerRequest, error) {
	for _, req := range r.requests {
		if req.QuestionID == questionID && req.UserID == userID {
			cp := *req
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubRequestRepo) ListByQuestion(_ context.Context, questionID uuid.UUID) ([]domain.AnswerRequest, error) {
	var out []domain.AnswerRequest
	for _, req := range r.requests {
		if req.QuestionID == questionID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *stubRequestRepo) UpdateStatus(_ context.Context, questionID, userID uuid.UUID, status string) error {
	for _, req := range r.requests {
		if req.QuestionID == questionID && req.UserID == userID {
			req.Status = status
		}
	}
	return nil
}

type stubProfileRepo struct {
	profiles map[uuid.UUID]*domain.ResearcherProfile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[uuid.UUID]*domain.ResearcherProfile)}
}

func (r *stubProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.ResearcherProfile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *stubProfileRepo) Upsert(_ context.Context, p *domain.ResearcherProfile) error {
	now := time.Now()
	existing, ok := r.profiles[p.UserID]
	cp := *p
	if ok {
		cp.ID = existing.ID
		cp.CreatedAt = existing.CreatedAt
	} else {
		cp.ID = uuid.New()
		cp.CreatedAt = now
	}
	cp.UpdatedAt = now
	r.profiles[p.UserID] = &cp
	return nil
}
