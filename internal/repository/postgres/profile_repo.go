package postgres

import (
	"context"
	"errors"
	"fmt"

	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, email, first_name, last_name, headline, summary, role, created_at, updated_at`

// GetByID returns nil, nil when the profile does not exist yet.
func (r *profileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.Headline, &p.Summary,
		&p.Role, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile %s: %w", id, err)
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (id, email, first_name, last_name, headline, summary, role, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Email, p.FirstName, p.LastName, p.Headline, p.Summary,
		p.Role, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Profile already exists")
		}
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}

func (r *profileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `UPDATE profiles
              SET first_name = $2, last_name = $3, headline = $4, summary = $5, updated_at = $6
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, p.ID, p.FirstName, p.LastName, p.Headline, p.Summary, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Profile not found")
	}
	return nil
}
