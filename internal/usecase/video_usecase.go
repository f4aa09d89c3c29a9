package usecase

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"reelskills-backend/internal/domain"
	"reelskills-backend/internal/engine"
	"reelskills-backend/pkg/apperror"
	"reelskills-backend/pkg/logger"
	"reelskills-backend/pkg/security"
	"reelskills-backend/pkg/security/antivirus"

	"github.com/google/uuid"
)

type videoUsecase struct {
	skillRepo domain.SkillRepository
	cache     domain.InsightCache
	analyzer  domain.VideoAnalyzer
	store     domain.VideoStore
	scanner   antivirus.Scanner
	maxBytes  int64
	now       func() time.Time
}

// NewVideoUsecase wires the video pipeline. analyzer and store may be nil when
// the service runs without them; the operations then answer 503. A nil
// scanner skips malware scanning.
func NewVideoUsecase(
	skillRepo domain.SkillRepository,
	cache domain.InsightCache,
	analyzer domain.VideoAnalyzer,
	store domain.VideoStore,
	scanner antivirus.Scanner,
	maxBytes int64,
) domain.VideoUsecase {
	return &videoUsecase{
		skillRepo: skillRepo,
		cache:     cache,
		analyzer:  analyzer,
		store:     store,
		scanner:   scanner,
		maxBytes:  maxBytes,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *videoUsecase) UploadAndAnalyze(ctx context.Context, skillID string, upload domain.VideoUpload) (*domain.VideoAnalysisOutcome, error) {
	if u.store == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "Video storage is not configured", nil)
	}
	if len(upload.Data) == 0 {
		return nil, apperror.BadRequest("No video uploaded")
	}
	if u.maxBytes > 0 && int64(len(upload.Data)) > u.maxBytes {
		return nil, apperror.PayloadTooLarge(fmt.Sprintf("Video exceeds the %d MB limit", u.maxBytes>>20))
	}

	check := security.ValidateVideo(upload.Filename, upload.Data, http.DetectContentType(upload.Data))
	if !check.Valid {
		return nil, apperror.BadRequest("Invalid video file: " + check.Error)
	}

	skill, session, err := loadOwnedSkill(ctx, u.skillRepo, skillID)
	if err != nil {
		return nil, err
	}

	if u.scanner != nil {
		scan := u.scanner.Scan(ctx, upload.Filename, bytes.NewReader(upload.Data))
		if scan.Error != nil {
			logger.Log.Error("Malware scan failed", "skill_id", skill.ID, "scanner", scan.ScannerName, "error", scan.Error)
			return nil, apperror.New(http.StatusServiceUnavailable, "Malware scan unavailable, please try again later", scan.Error)
		}
		if scan.Infected {
			logger.Log.Warn("Infected video rejected", "skill_id", skill.ID, "profile_id", session.ProfileID, "threat", scan.ThreatName)
			return nil, apperror.BadRequest("Video was rejected by the malware scan")
		}
	}

	key := fmt.Sprintf("%s/%s/%d%s", session.ProfileID, skill.ID, u.now().UnixNano(), check.Extension)
	videoURL, err := u.store.Upload(ctx, key, check.ContentType, bytes.NewReader(upload.Data), int64(len(upload.Data)))
	if err != nil {
		logger.Log.Error("Video upload failed", "skill_id", skill.ID, "error", err)
		return nil, apperror.BadGateway("Video upload failed", err)
	}
	logger.Log.Info("Video uploaded", "skill_id", skill.ID, "size", len(upload.Data), "content_type", check.ContentType)

	return u.analyze(ctx, skill, session, videoURL)
}

// AnalyzeVideo runs the analyzer on videoURL, or on the skill's current video
// when videoURL is empty.
func (u *videoUsecase) AnalyzeVideo(ctx context.Context, skillID, videoURL string) (*domain.VideoAnalysisOutcome, error) {
	skill, session, err := loadOwnedSkill(ctx, u.skillRepo, skillID)
	if err != nil {
		return nil, err
	}

	videoURL = strings.TrimSpace(videoURL)
	if videoURL == "" {
		if !skill.HasVideo() {
			return nil, apperror.BadRequest("Skill has no video to analyze")
		}
		videoURL = *skill.VideoDemoURL
	}
	if !validVideoURL(videoURL) {
		return nil, apperror.BadRequest("Video URL must be an absolute http(s) URL")
	}

	return u.analyze(ctx, skill, session, videoURL)
}

// analyze calls the analyzer and persists the normalized outcome. Nothing is
// written when the analyzer call fails.
func (u *videoUsecase) analyze(ctx context.Context, skill *domain.Skill, session *domain.Session, videoURL string) (*domain.VideoAnalysisOutcome, error) {
	if u.analyzer == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "Video analysis is not configured", nil)
	}

	req := domain.VideoAnalysisRequest{
		SkillID:          skill.ID,
		VideoURL:         videoURL,
		SkillName:        skill.Name,
		ProficiencyLevel: skill.Proficiency,
	}
	raw, err := u.analyzer.Analyze(ctx, req)
	if err != nil {
		logger.Log.Error("Video analysis failed", "skill_id", skill.ID, "error", err)
		return nil, apperror.BadGateway("Video analysis service unavailable", err)
	}

	result := engine.NormalizeVideoAnalysis(raw, skill.Name, skill.Proficiency)

	now := u.now()
	rating := result.Rating
	feedback := result.Feedback
	skill.VideoDemoURL = &videoURL
	skill.VideoVerified = result.Verified
	skill.AIRating = &rating
	skill.AIFeedback = &feedback
	skill.VideoUploadedAt = &now
	skill.UpdatedAt = now

	status := domain.VerificationStatusPending
	if result.Verified {
		status = domain.VerificationStatusVerified
	}
	record := &domain.SkillVideoVerification{
		ID:                 uuid.NewString(),
		SkillID:            skill.ID,
		VideoURL:           videoURL,
		AIPrompt:           req.Prompt(),
		AIRating:           result.Rating,
		AIFeedback:         result.Feedback,
		Strengths:          result.Strengths,
		Improvements:       result.Improvements,
		Confidence:         result.Confidence,
		VerificationStatus: status,
		CreatedAt:          now,
	}

	if err := u.skillRepo.ApplyVideoAnalysis(ctx, skill, record); err != nil {
		return nil, storeError(err)
	}
	invalidateInsights(ctx, u.cache, session.ProfileID)

	logger.Log.Info("Video analyzed",
		"skill_id", skill.ID,
		"rating", result.Rating,
		"verified", result.Verified,
		"confidence", result.Confidence,
	)

	return &domain.VideoAnalysisOutcome{
		Skill:        skill,
		Analysis:     result,
		Improvements: engine.SkillImprovements(*skill),
	}, nil
}

func validVideoURL(raw string) bool {
	parsed, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
