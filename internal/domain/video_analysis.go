package domain

import (
	"context"
	"fmt"
	"io"
	"time"
)

// VideoAnalysisResult is the validated form of an AI analysis. It is the only
// shape in which analyzer output is allowed past the normalizer.
type VideoAnalysisResult struct {
	Rating       int      `json:"rating"`
	Feedback     string   `json:"feedback"`
	Verified     bool     `json:"verified"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Confidence   int      `json:"confidence"`
}

// VideoAnalysisRequest is the payload sent to the analysis endpoint.
type VideoAnalysisRequest struct {
	SkillID          string      `json:"skillId"`
	VideoURL         string      `json:"videoUrl"`
	SkillName        string      `json:"skillName"`
	ProficiencyLevel Proficiency `json:"proficiencyLevel"`
}

// Prompt is the instruction recorded on the verification row.
func (r VideoAnalysisRequest) Prompt() string {
	return fmt.Sprintf("Analyze %s skill demonstration at %s level", r.SkillName, r.ProficiencyLevel)
}

const (
	VerificationStatusVerified = "verified"
	VerificationStatusPending  = "pending"
)

type SkillVideoVerification struct {
	ID                 string    `json:"id"`
	SkillID            string    `json:"skill_id"`
	VideoURL           string    `json:"video_url"`
	AIPrompt           string    `json:"ai_prompt"`
	AIRating           int       `json:"ai_rating"`
	AIFeedback         string    `json:"ai_feedback"`
	Strengths          []string  `json:"strengths"`
	Improvements       []string  `json:"improvements"`
	Confidence         int       `json:"confidence"`
	VerificationStatus string    `json:"verification_status"`
	CreatedAt          time.Time `json:"created_at"`
}

// VideoAnalyzer calls the external generative-AI service. The returned value
// is untrusted and must go through the normalizer.
type VideoAnalyzer interface {
	Analyze(ctx context.Context, req VideoAnalysisRequest) (raw any, err error)
}

// VideoStore persists uploaded videos and returns a durable public URL.
type VideoStore interface {
	Upload(ctx context.Context, key string, contentType string, body io.Reader, size int64) (string, error)
}

type VideoUpload struct {
	Filename string
	Data     []byte
}

type VideoAnalysisOutcome struct {
	Skill        *Skill              `json:"skill"`
	Analysis     VideoAnalysisResult `json:"analysis"`
	Improvements []Improvement       `json:"improvements"`
}

type VideoUsecase interface {
	AnalyzeVideo(ctx context.Context, skillID, videoURL string) (*VideoAnalysisOutcome, error)
	UploadAndAnalyze(ctx context.Context, skillID string, upload VideoUpload) (*VideoAnalysisOutcome, error)
}
