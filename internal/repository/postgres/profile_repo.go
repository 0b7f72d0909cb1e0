package postgres

import (
	"context"
	"errors"

	"github.com/dkovac/askhub/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResearcherProfileRepo struct {
	pool *pgxpool.Pool
}

func NewResearcherProfileRepo(pool *pgxpool.Pool) *ResearcherProfileRepo {
	return &ResearcherProfileRepo{pool: pool}
}

func (r *ResearcherProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.ResearcherProfile, error) {
	query := `
		SELECT id, user_id,
			COALESCE(affiliation, ''),
			COALESCE(email_for_verification, ''),
			COALESCE(areas_of_interest, '{}'),
			COALESCE(homepage, ''),
			COALESCE(alternative_names, '{}'),
			created_at, updated_at
		FROM researcher_profiles
		WHERE user_id = $1`

	var p domain.ResearcherProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Affiliation, &p.EmailForVerification, &p.AreasOfInterest,
		&p.Homepage, &p.AlternativeNames, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert inserts or replaces the profile keyed on user_id. Empty strings are
// stored as NULL.
func (r *ResearcherProfileRepo) Upsert(ctx context.Context, p *domain.ResearcherProfile) error {
	query := `
		INSERT INTO researcher_profiles (id, user_id, affiliation, email_for_verification, areas_of_interest, homepage, alternative_names, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''), $7, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			affiliation = EXCLUDED.affiliation,
			email_for_verification = EXCLUDED.email_for_verification,
			areas_of_interest = EXCLUDED.areas_of_interest,
			homepage = EXCLUDED.homepage,
			alternative_names = EXCLUDED.alternative_names,
			updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query,
		uuid.New(), p.UserID, p.Affiliation, p.EmailForVerification, p.AreasOfInterest,
		p.Homepage, p.AlternativeNames,
	)
	return err
}
