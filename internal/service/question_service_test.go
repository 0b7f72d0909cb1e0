package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newQuestionService() (*QuestionService, *stubQuestionRepo, *stubAnswerRepo, *stubRequestRepo) {
	questionRepo := newStubQuestionRepo()
	answerRepo := newStubAnswerRepo(questionRepo)
	requestRepo := newStubRequestRepo()
	return NewQuestionService(questionRepo, answerRepo, requestRepo), questionRepo, answerRepo, requestRepo
}

func createQuestion(t *testing.T, svc *QuestionService, authorID uuid.UUID, input CreateQuestionInput) *domain.Question {
	t.Helper()
	q, err := svc.Create(context.Background(), authorID, input)
	require.NoError(t, err)
	return q
}

func TestCreateQuestionDefaults(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	authorID := uuid.New()

	q := createQuestion(t, svc, authorID, CreateQuestionInput{Title: "Why is the sky blue?", Body: "Really, why?"})

	require.Equal(t, 0, q.BountyAmount)
	require.Equal(t, "all", q.Category)
	require.Equal(t, domain.QuestionStatusOpen, q.Status)
	require.Equal(t, authorID, q.AuthorID)
}

func TestCreateQuestionBountyParsing(t *testing.T) {
	svc, _, _, _ := newQuestionService()

	q := createQuestion(t, svc, uuid.New(), CreateQuestionInput{
		Title:        "t",
		Body:         "b",
		BountyAmount: json.Number("25"),
		Category:     "physics",
	})
	require.Equal(t, 25, q.BountyAmount)
	require.Equal(t, "physics", q.Category)

	q = createQuestion(t, svc, uuid.New(), CreateQuestionInput{
		Title:        "t",
		Body:         "b",
		BountyAmount: json.Number("not-a-number"),
	})
	require.Equal(t, 0, q.BountyAmount)

	q = createQuestion(t, svc, uuid.New(), CreateQuestionInput{
		Title:        "t",
		Body:         "b",
		BountyAmount: json.Number("-5"),
	})
	require.Equal(t, 0, q.BountyAmount)
}

func TestListCategoryAllMeansNoFilter(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	ctx := context.Background()

	createQuestion(t, svc, uuid.New(), CreateQuestionInput{Title: "a", Body: "b", Category: "physics"})
	createQuestion(t, svc, uuid.New(), CreateQuestionInput{Title: "c", Body: "d", Category: "biology"})

	all, err := svc.List(ctx, "all", "")
	require.NoError(t, err)
	unfiltered, err := svc.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Len(t, unfiltered, 2)

	physics, err := svc.List(ctx, "physics", "")
	require.NoError(t, err)
	require.Len(t, physics, 1)
	require.Equal(t, "physics", physics[0].Category)
}

func TestListStatusFilter(t *testing.T) {
	svc, questionRepo, _, _ := newQuestionService()
	ctx := context.Background()

	q1 := createQuestion(t, svc, uuid.New(), CreateQuestionInput{Title: "a", Body: "b"})
	createQuestion(t, svc, uuid.New(), CreateQuestionInput{Title: "c", Body: "d"})
	questionRepo.questions[q1.ID].Status = domain.QuestionStatusAnswered

	open, err := svc.List(ctx, "", domain.QuestionStatusOpen)
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, domain.QuestionStatusOpen, open[0].Status)
}

func TestGetDetailNotFound(t *testing.T) {
	svc, _, _, _ := newQuestionService()

	_, err := svc.GetDetail(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestVolunteerOwnQuestion(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	authorID := uuid.New()
	q := createQuestion(t, svc, authorID, CreateQuestionInput{Title: "t", Body: "b"})

	_, err := svc.Volunteer(context.Background(), q.ID, authorID)
	require.ErrorIs(t, err, ErrOwnQuestion)
}

func TestVolunteerTwice(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	ctx := context.Background()
	q := createQuestion(t, svc, uuid.New(), CreateQuestionInput{Title: "t", Body: "b"})
	userID := uuid.New()

	req, err := svc.Volunteer(ctx, q.ID, userID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusPending, req.Status)

	_, err = svc.Volunteer(ctx, q.ID, userID)
	require.ErrorIs(t, err, ErrAlreadyVolunteered)
}

func TestVolunteerClosedQuestion(t *testing.T) {
	svc, questionRepo, _, _ := newQuestionService()
	q := createQuestion(t, svc, uuid.New(), CreateQuestionInput{Title: "t", Body: "b"})
	questionRepo.questions[q.ID].Status = domain.QuestionStatusClosed

	_, err := svc.Volunteer(context.Background(), q.ID, uuid.New())
	require.ErrorIs(t, err, ErrQuestionClosed)
}

func TestVolunteerQuestionNotFound(t *testing.T) {
	svc, _, _, _ := newQuestionService()

	_, err := svc.Volunteer(context.Background(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestSelectVolunteerToggles(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	ctx := context.Background()
	authorID := uuid.New()
	q := createQuestion(t, svc, authorID, CreateQuestionInput{Title: "t", Body: "b"})
	userID := uuid.New()

	_, err := svc.Volunteer(ctx, q.ID, userID)
	require.NoError(t, err)

	status, err := svc.SelectVolunteer(ctx, q.ID, userID, authorID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusSelected, status)

	status, err = svc.SelectVolunteer(ctx, q.ID, userID, authorID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusPending, status)

	status, err = svc.SelectVolunteer(ctx, q.ID, userID, authorID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusSelected, status)
}

func TestSelectVolunteerNotAuthor(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	ctx := context.Background()
	q := createQuestion(t, svc, uuid.New(), CreateQuestionInput{Title: "t", Body: "b"})
	userID := uuid.New()

	_, err := svc.Volunteer(ctx, q.ID, userID)
	require.NoError(t, err)

	_, err = svc.SelectVolunteer(ctx, q.ID, userID, uuid.New())
	require.ErrorIs(t, err, ErrNotQuestionAuthor)
}

func TestSelectVolunteerRequestNotFound(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	authorID := uuid.New()
	q := createQuestion(t, svc, authorID, CreateQuestionInput{Title: "t", Body: "b"})

	_, err := svc.SelectVolunteer(context.Background(), q.ID, uuid.New(), authorID)
	require.ErrorIs(t, err, ErrRequestNotFound)
}

func TestSubmitAnswerRequiresSelection(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	ctx := context.Background()
	q := createQuestion(t, svc, uuid.New(), CreateQuestionInput{Title: "t", Body: "b"})
	userID := uuid.New()

	// Never volunteered.
	_, err := svc.SubmitAnswer(ctx, q.ID, userID, "an answer")
	require.ErrorIs(t, err, ErrNotSelected)

	// Volunteered but still pending.
	_, err = svc.Volunteer(ctx, q.ID, userID)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, q.ID, userID, "an answer")
	require.ErrorIs(t, err, ErrNotSelected)
}

func TestSubmitAnswerClosedQuestion(t *testing.T) {
	svc, questionRepo, _, _ := newQuestionService()
	ctx := context.Background()
	authorID := uuid.New()
	q := createQuestion(t, svc, authorID, CreateQuestionInput{Title: "t", Body: "b"})
	userID := uuid.New()

	_, err := svc.Volunteer(ctx, q.ID, userID)
	require.NoError(t, err)
	_, err = svc.SelectVolunteer(ctx, q.ID, userID, authorID)
	require.NoError(t, err)

	questionRepo.questions[q.ID].Status = domain.QuestionStatusClosed

	_, err = svc.SubmitAnswer(ctx, q.ID, userID, "too late")
	require.ErrorIs(t, err, ErrQuestionClosed)
}

func TestAcceptAnswerNotAuthor(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	q := createQuestion(t, svc, uuid.New(), CreateQuestionInput{Title: "t", Body: "b"})

	err := svc.AcceptAnswer(context.Background(), q.ID, uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrNotQuestionAuthor)
}

func TestAcceptAnswerQuestionNotFound(t *testing.T) {
	svc, _, _, _ := newQuestionService()

	err := svc.AcceptAnswer(context.Background(), uuid.New(), uuid.New(), uuid.New())
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

// Accepting A then B must leave only B accepted, with the question still
// "answered".
func TestAcceptAnswerMovesAcceptance(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	ctx := context.Background()
	authorID := uuid.New()
	q := createQuestion(t, svc, authorID, CreateQuestionInput{Title: "t", Body: "b"})

	userA := uuid.New()
	userB := uuid.New()
	for _, userID := range []uuid.UUID{userA, userB} {
		_, err := svc.Volunteer(ctx, q.ID, userID)
		require.NoError(t, err)
		_, err = svc.SelectVolunteer(ctx, q.ID, userID, authorID)
		require.NoError(t, err)
	}

	answerA, err := svc.SubmitAnswer(ctx, q.ID, userA, "first")
	require.NoError(t, err)
	answerB, err := svc.SubmitAnswer(ctx, q.ID, userB, "second")
	require.NoError(t, err)

	require.NoError(t, svc.AcceptAnswer(ctx, q.ID, answerA.ID, authorID))
	requireSingleAccepted(t, svc, q.ID, answerA.ID)

	require.NoError(t, svc.AcceptAnswer(ctx, q.ID, answerB.ID, authorID))
	requireSingleAccepted(t, svc, q.ID, answerB.ID)

	detail, err := svc.GetDetail(ctx, q.ID)
	require.NoError(t, err)
	require.Equal(t, domain.QuestionStatusAnswered, detail.Status)

	// Re-accepting the same answer leaves state unchanged.
	require.NoError(t, svc.AcceptAnswer(ctx, q.ID, answerB.ID, authorID))
	requireSingleAccepted(t, svc, q.ID, answerB.ID)
}

func requireSingleAccepted(t *testing.T, svc *QuestionService, questionID, wantAnswerID uuid.UUID) {
	t.Helper()
	detail, err := svc.GetDetail(context.Background(), questionID)
	require.NoError(t, err)

	accepted := 0
	for _, a := range detail.Answers {
		if a.IsAccepted {
			accepted++
			require.Equal(t, wantAnswerID, a.ID)
		}
	}
	require.Equal(t, 1, accepted)
}

// A full run of the lifecycle: ask → volunteer → select → answer → accept.
func TestQuestionLifecycle(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	ctx := context.Background()

	userA := uuid.New()
	userB := uuid.New()

	q := createQuestion(t, svc, userA, CreateQuestionInput{
		Title:        "Why is sky blue?",
		Body:         "Looking for a physical explanation.",
		BountyAmount: json.Number("10"),
	})

	_, err := svc.Volunteer(ctx, q.ID, userB)
	require.NoError(t, err)

	status, err := svc.SelectVolunteer(ctx, q.ID, userB, userA)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusSelected, status)

	answer, err := svc.SubmitAnswer(ctx, q.ID, userB, "Rayleigh scattering")
	require.NoError(t, err)
	require.False(t, answer.IsAccepted)

	require.NoError(t, svc.AcceptAnswer(ctx, q.ID, answer.ID, userA))

	detail, err := svc.GetDetail(ctx, q.ID)
	require.NoError(t, err)
	require.Equal(t, domain.QuestionStatusAnswered, detail.Status)
	require.Equal(t, 10, detail.BountyAmount)
	require.Len(t, detail.Answers, 1)
	require.True(t, detail.Answers[0].IsAccepted)
	require.Len(t, detail.AnswerRequests, 1)
	require.Equal(t, domain.RequestStatusSelected, detail.AnswerRequests[0].Status)
}

// The answer update is filtered by question id, so accepting an answer from
// another question no-ops on answers but still flips the question status.
func TestAcceptForeignAnswerStillFlipsStatus(t *testing.T) {
	svc, _, _, _ := newQuestionService()
	ctx := context.Background()
	authorID := uuid.New()
	q1 := createQuestion(t, svc, authorID, CreateQuestionInput{Title: "q1", Body: "b"})
	q2 := createQuestion(t, svc, authorID, CreateQuestionInput{Title: "q2", Body: "b"})

	userID := uuid.New()
	_, err := svc.Volunteer(ctx, q2.ID, userID)
	require.NoError(t, err)
	_, err = svc.SelectVolunteer(ctx, q2.ID, userID, authorID)
	require.NoError(t, err)
	foreign, err := svc.SubmitAnswer(ctx, q2.ID, userID, "belongs to q2")
	require.NoError(t, err)

	require.NoError(t, svc.AcceptAnswer(ctx, q1.ID, foreign.ID, authorID))

	d1, err := svc.GetDetail(ctx, q1.ID)
	require.NoError(t, err)
	require.Equal(t, domain.QuestionStatusAnswered, d1.Status)
	require.Empty(t, d1.Answers)

	d2, err := svc.GetDetail(ctx, q2.ID)
	require.NoError(t, err)
	require.Equal(t, domain.QuestionStatusOpen, d2.Status)
	require.False(t, d2.Answers[0].IsAccepted)
}
