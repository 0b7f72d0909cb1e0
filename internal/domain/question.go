package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionStatusOpen     = "open"
	QuestionStatusAnswered = "answered"
	QuestionStatusClosed   = "closed"
)

type Question struct {
	ID           uuid.UUID `json:"id"`
	AuthorID     uuid.UUID `json:"author_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	BountyAmount int       `json:"bounty_amount"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	// Joined fields
	AuthorName  string `json:"author_name,omitempty"`
	AnswerCount int    `json:"answer_count"`
}

type Answer struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	Body       string    `json:"body"`
	Images     []string  `json:"images"`
	IsAccepted bool      `json:"is_accepted"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	// Joined field
	AuthorName string `json:"author_name,omitempty"`
}

const (
	RequestStatusPending  = "pending"
	RequestStatusSelected = "selected"
	RequestStatusRejected = "rejected"
)

// AnswerRequest records a user volunteering to answer a question. At most one
// exists per (question, user) pair.
type AnswerRequest struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	UserID     uuid.UUID `json:"user_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	// Joined field
	UserName string `json:"user_name,omitempty"`
}

// QuestionDetail is the full question page payload.
type QuestionDetail struct {
	Question
	Answers        []Answer        `json:"answers"`
	AnswerRequests []AnswerRequest `json:"answer_requests"`
}
