package postgres

import (
	"context"
	"errors"
	"fmt"

	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

const skillColumns = `
	id, profile_id, name, category, proficiency, years_experience,
	verified, endorsements, description, video_demo_url, video_verified,
	ai_rating, ai_feedback, video_uploaded_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSkill(row rowScanner, s *domain.Skill) error {
	return row.Scan(
		&s.ID, &s.ProfileID, &s.Name, &s.Category, &s.Proficiency, &s.YearsExperience,
		&s.Verified, &s.Endorsements, &s.Description, &s.VideoDemoURL, &s.VideoVerified,
		&s.AIRating, &s.AIFeedback, &s.VideoUploadedAt, &s.CreatedAt, &s.UpdatedAt,
	)
}

func (r *skillRepo) ListByProfile(ctx context.Context, profileID string) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE profile_id = $1 ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]domain.Skill, 0)
	for rows.Next() {
		var s domain.Skill
		if err := scanSkill(rows, &s); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}
	return skills, nil
}

// GetByID returns nil, nil when no skill has the id.
func (r *skillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`

	var s domain.Skill
	if err := scanSkill(r.db.QueryRow(ctx, query, id), &s); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get skill %s: %w", id, err)
	}
	return &s, nil
}

func (r *skillRepo) Create(ctx context.Context, s *domain.Skill) error {
	query := `INSERT INTO skills (
		id, profile_id, name, category, proficiency, years_experience,
		verified, endorsements, description, video_demo_url, video_verified,
		ai_rating, ai_feedback, video_uploaded_at, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.ProfileID, s.Name, s.Category, s.Proficiency, s.YearsExperience,
		s.Verified, s.Endorsements, s.Description, s.VideoDemoURL, s.VideoVerified,
		s.AIRating, s.AIFeedback, s.VideoUploadedAt, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create skill: %w", err)
	}
	return nil
}

func (r *skillRepo) Update(ctx context.Context, s *domain.Skill) error {
	tag, err := r.db.Exec(ctx, updateSkillQuery, updateSkillArgs(s)...)
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Skill not found")
	}
	return nil
}

func (r *skillRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM skill_video_verifications WHERE skill_id = $1`, id); err != nil {
		return fmt.Errorf("delete verifications: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Skill not found")
	}
	return tx.Commit(ctx)
}

// ApplyVideoAnalysis stores the analysis outcome on the skill and appends the
// verification record atomically.
func (r *skillRepo) ApplyVideoAnalysis(ctx context.Context, s *domain.Skill, rec *domain.SkillVideoVerification) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, updateSkillQuery, updateSkillArgs(s)...)
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Skill not found")
	}

	insertQuery := `INSERT INTO skill_video_verifications (
		id, skill_id, video_url, ai_prompt, ai_rating, ai_feedback,
		strengths, improvements, confidence, verification_status, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.Exec(ctx, insertQuery,
		rec.ID, rec.SkillID, rec.VideoURL, rec.AIPrompt, rec.AIRating, rec.AIFeedback,
		pq.Array(rec.Strengths), pq.Array(rec.Improvements), rec.Confidence,
		rec.VerificationStatus, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert verification: %w", err)
	}

	return tx.Commit(ctx)
}

const updateSkillQuery = `UPDATE skills SET
	proficiency = $2, years_experience = $3, description = $4,
	video_demo_url = $5, video_verified = $6, ai_rating = $7, ai_feedback = $8,
	video_uploaded_at = $9, updated_at = $10
	WHERE id = $1`

func updateSkillArgs(s *domain.Skill) []any {
	return []any{
		s.ID, s.Proficiency, s.YearsExperience, s.Description,
		s.VideoDemoURL, s.VideoVerified, s.AIRating, s.AIFeedback,
		s.VideoUploadedAt, s.UpdatedAt,
	}
}
