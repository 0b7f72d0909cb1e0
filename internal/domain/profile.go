package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResearcherProfile holds optional identity/affiliation metadata, one-to-one
// with a user. Empty strings and empty lists stand in for unset columns on the
// wire.
type ResearcherProfile struct {
	ID                   uuid.UUID `json:"id"`
	UserID               uuid.UUID `json:"userId"`
	Affiliation          string    `json:"affiliation"`
	EmailForVerification string    `json:"emailForVerification"`
	AreasOfInterest      []string  `json:"areasOfInterest"`
	Homepage             string    `json:"homepage"`
	AlternativeNames     []string  `json:"alternativeNames"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
