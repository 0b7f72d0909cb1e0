package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}

// UserWithStats is the public member directory row.
type UserWithStats struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"createdAt"`
	QuestionsCount int       `json:"questions_count"`
	AnswersCount   int       `json:"answers_count"`
	AcceptedCount  int       `json:"accepted_count"`
}

// ProfileStats aggregates a user's activity, computed at read time.
type ProfileStats struct {
	QuestionsCount       int `json:"questionsCount"`
	AnswersCount         int `json:"answersCount"`
	AcceptedAnswersCount int `json:"acceptedAnswersCount"`
}
