package domain

import (
	"context"
	"time"
)

const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

type Profile struct {
	ID        string    `json:"id"` // Supabase auth UUID
	Email     string    `json:"email"`
	FirstName *string   `json:"first_name,omitempty"`
	LastName  *string   `json:"last_name,omitempty"`
	Headline  *string   `json:"headline,omitempty"`
	Summary   *string   `json:"summary,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateProfileInput struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=100,valid_name"`
	LastName  *string `json:"last_name" validate:"omitempty,max=100,valid_name"`
	Headline  *string `json:"headline" validate:"omitempty,max=150,no_emoji"`
	Summary   *string `json:"summary" validate:"omitempty,max=2000"`
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
	Create(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
}

type ProfileUsecase interface {
	EnsureProfile(ctx context.Context, userID, email string) (*Profile, error)
	GetProfile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*Profile, error)
}
