package ws

import (
	"encoding/json"
	"time"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/google/uuid"
)

// Event types - Client → Server
const (
	EventTypeQuestionSubscribe   = "question.subscribe"
	EventTypeQuestionUnsubscribe = "question.unsubscribe"
	EventTypePing                = "ping"
)

// Event types - Server → Client
const (
	EventTypeQuestionCreated  = "question.created"
	EventTypeVolunteerNew     = "volunteer.new"
	EventTypeVolunteerUpdated = "volunteer.updated"
	EventTypeAnswerNew        = "answer.new"
	EventTypeAnswerAccepted   = "answer.accepted"
	EventTypePong             = "pong"
	EventTypeError            = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type       string          `json:"type"`
	QuestionID *uuid.UUID      `json:"question_id,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Timestamp  int64           `json:"ts,omitempty"`
}

// --- Client → Server payloads ---

type QuestionPayload struct {
	QuestionID uuid.UUID `json:"question_id"`
}

// --- Server → Client payloads ---

type QuestionCreatedPayload struct {
	domain.Question
}

type VolunteerPayload struct {
	domain.AnswerRequest
}

type AnswerPayload struct {
	domain.Answer
}

type AnswerAcceptedPayload struct {
	QuestionID uuid.UUID `json:"question_id"`
	AnswerID   uuid.UUID `json:"answer_id"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, questionID *uuid.UUID, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:       eventType,
		QuestionID: questionID,
		Payload:    data,
		Timestamp:  time.Now().Unix(),
	}, nil
}
