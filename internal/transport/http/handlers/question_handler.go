package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/dkovac/askhub/internal/service"
	"github.com/dkovac/askhub/internal/transport/http/middleware"
	"github.com/dkovac/askhub/pkg/validator"
	"github.com/google/uuid"
)

type QuestionHandler struct {
	questionService *service.QuestionService
}

func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	status := r.URL.Query().Get("status")

	questions, err := h.questionService.List(r.Context(), category, status)
	if err != nil {
		log.Printf("ERROR list questions: %v", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	if questions == nil {
		questions = []domain.Question{}
	}

	writeJSON(w, http.StatusOK, questions)
}

func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.CreateQuestionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateQuestion(input.Title, input.Body); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "Title and body are required")
		return
	}

	q, err := h.questionService.Create(r.Context(), userID, input)
	if err != nil {
		log.Printf("ERROR create question: %v", err)
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, q)
}

func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	questionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Question not found")
		return
	}

	detail, err := h.questionService.GetDetail(r.Context(), questionID)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			writeError(w, http.StatusNotFound, "Question not found")
		} else {
			log.Printf("ERROR get question: %v", err)
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

func (h *QuestionHandler) Volunteer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	questionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Question not found")
		return
	}

	req, err := h.questionService.Volunteer(r.Context(), questionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			writeError(w, http.StatusNotFound, "Question not found")
		case errors.Is(err, service.ErrQuestionClosed):
			writeError(w, http.StatusBadRequest, "Question is closed")
		case errors.Is(err, service.ErrOwnQuestion):
			writeError(w, http.StatusBadRequest, "You cannot volunteer for your own question")
		case errors.Is(err, service.ErrAlreadyVolunteered):
			writeError(w, http.StatusBadRequest, "You have already volunteered")
		default:
			log.Printf("ERROR volunteer: %v", err)
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, req)
}

func (h *QuestionHandler) Select(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.GetUserID(r.Context())
	questionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Question not found")
		return
	}

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.UserID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	targetUserID, err := uuid.Parse(body.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	status, err := h.questionService.SelectVolunteer(r.Context(), questionID, targetUserID, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			writeError(w, http.StatusNotFound, "Question not found")
		case errors.Is(err, service.ErrNotQuestionAuthor):
			writeError(w, http.StatusForbidden, "Only the question author can select volunteers")
		case errors.Is(err, service.ErrRequestNotFound):
			writeError(w, http.StatusNotFound, "Volunteer request not found")
		default:
			log.Printf("ERROR select volunteer: %v", err)
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "status": status})
}

func (h *QuestionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	questionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Question not found")
		return
	}

	var body struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validator.ValidateAnswer(body.Body); errs.HasErrors() {
		writeError(w, http.StatusBadRequest, "Answer body is required")
		return
	}

	answer, err := h.questionService.SubmitAnswer(r.Context(), questionID, userID, body.Body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			writeError(w, http.StatusNotFound, "Question not found")
		case errors.Is(err, service.ErrQuestionClosed):
			writeError(w, http.StatusBadRequest, "Question is closed")
		case errors.Is(err, service.ErrNotSelected):
			writeError(w, http.StatusForbidden, "You must be selected by the question author to answer")
		default:
			log.Printf("ERROR submit answer: %v", err)
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, answer)
}

func (h *QuestionHandler) Accept(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.GetUserID(r.Context())
	questionID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Question not found")
		return
	}

	var body struct {
		AnswerID string `json:"answerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.AnswerID == "" {
		writeError(w, http.StatusBadRequest, "Answer ID is required")
		return
	}

	answerID, err := uuid.Parse(body.AnswerID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Answer ID is required")
		return
	}

	if err := h.questionService.AcceptAnswer(r.Context(), questionID, answerID, requesterID); err != nil {
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			writeError(w, http.StatusNotFound, "Question not found")
		case errors.Is(err, service.ErrNotQuestionAuthor):
			writeError(w, http.StatusForbidden, "Only the question author can accept answers")
		default:
			log.Printf("ERROR accept answer: %v", err)
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
