package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/dkovac/askhub/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileReadback = errors.New("failed to read back researcher profile")
)

type ProfileService struct {
	userRepo     repository.UserRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	profileRepo  repository.ResearcherProfileRepository
}

func NewProfileService(
	userRepo repository.UserRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	profileRepo repository.ResearcherProfileRepository,
) *ProfileService {
	return &ProfileService{
		userRepo:     userRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		profileRepo:  profileRepo,
	}
}

// ProfileView is the user page payload: the user, their questions and
// read-time aggregate stats.
type ProfileView struct {
	User      *domain.User        `json:"user"`
	Questions []domain.Question   `json:"questions"`
	Stats     domain.ProfileStats `json:"stats"`
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	questions, err := s.questionRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []domain.Question{}
	}

	answersCount, err := s.answerRepo.CountByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	acceptedCount, err := s.answerRepo.CountAcceptedByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ProfileView{
		User:      user,
		Questions: questions,
		Stats: domain.ProfileStats{
			QuestionsCount:       len(questions),
			AnswersCount:         answersCount,
			AcceptedAnswersCount: acceptedCount,
		},
	}, nil
}

func (s *ProfileService) ListUsers(ctx context.Context) ([]domain.UserWithStats, error) {
	return s.userRepo.ListWithStats(ctx)
}

// GetResearcherProfile returns nil without error when no profile exists yet.
func (s *ProfileService) GetResearcherProfile(ctx context.Context, userID uuid.UUID) (*domain.ResearcherProfile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// ResearcherProfileInput carries a partial update: nil fields keep the stored
// value, provided fields replace it.
type ResearcherProfileInput struct {
	Affiliation          *string   `json:"affiliation"`
	EmailForVerification *string   `json:"emailForVerification"`
	AreasOfInterest      *[]string `json:"areasOfInterest"`
	Homepage             *string   `json:"homepage"`
	AlternativeNames     *[]string `json:"alternativeNames"`
}

// UpsertResearcherProfile merges the input over the stored profile and writes
// it back in a single conflict-resolving statement. String fields are trimmed;
// list fields drop empty entries.
func (s *ProfileService) UpsertResearcherProfile(ctx context.Context, userID uuid.UUID, input ResearcherProfileInput) (*domain.ResearcherProfile, error) {
	current, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = &domain.ResearcherProfile{UserID: userID}
	}

	merged := &domain.ResearcherProfile{
		UserID:               userID,
		Affiliation:          mergeString(input.Affiliation, current.Affiliation),
		EmailForVerification: mergeString(input.EmailForVerification, current.EmailForVerification),
		AreasOfInterest:      mergeList(input.AreasOfInterest, current.AreasOfInterest),
		Homepage:             mergeString(input.Homepage, current.Homepage),
		AlternativeNames:     mergeList(input.AlternativeNames, current.AlternativeNames),
	}

	if err := s.profileRepo.Upsert(ctx, merged); err != nil {
		return nil, fmt.Errorf("upserting researcher profile: %w", err)
	}

	stored, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, ErrProfileReadback
	}
	return stored, nil
}

func mergeString(input *string, current string) string {
	if input == nil {
		return current
	}
	return strings.TrimSpace(*input)
}

func mergeList(input *[]string, current []string) []string {
	if input == nil {
		if current == nil {
			return []string{}
		}
		return current
	}
	out := []string{}
	for _, v := range *input {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
