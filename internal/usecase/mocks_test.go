package usecase_test

import (
	"context"
	"io"
	"time"

	"reelskills-backend/internal/domain"
	"reelskills-backend/pkg/security/antivirus"
	"reelskills-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) ListByProfile(ctx context.Context, profileID string) ([]domain.Skill, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockSkillRepo) ApplyVideoAnalysis(ctx context.Context, skill *domain.Skill, record *domain.SkillVideoVerification) error {
	return m.Called(ctx, skill, record).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockInsightCache struct {
	mock.Mock
}

func (m *MockInsightCache) Generation(ctx context.Context, profileID string) (int64, error) {
	args := m.Called(ctx, profileID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInsightCache) Get(ctx context.Context, profileID string, gen int64) ([]domain.Insight, bool, error) {
	args := m.Called(ctx, profileID, gen)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Insight), args.Bool(1), args.Error(2)
}

func (m *MockInsightCache) Set(ctx context.Context, profileID string, gen int64, insights []domain.Insight) error {
	return m.Called(ctx, profileID, gen, insights).Error(0)
}

func (m *MockInsightCache) Invalidate(ctx context.Context, profileID string) error {
	return m.Called(ctx, profileID).Error(0)
}

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, req domain.VideoAnalysisRequest) (any, error) {
	args := m.Called(ctx, req)
	return args.Get(0), args.Error(1)
}

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Upload(ctx context.Context, key string, contentType string, body io.Reader, size int64) (string, error) {
	args := m.Called(ctx, key, contentType, body, size)
	return args.String(0), args.Error(1)
}

type MockScanner struct {
	mock.Mock
}

func (m *MockScanner) Scan(ctx context.Context, filename string, data io.Reader) antivirus.ScanResult {
	return m.Called(ctx, filename, data).Get(0).(antivirus.ScanResult)
}

func (m *MockScanner) Name() string {
	return "mock"
}

const (
	testProfileID = "7d7f3e4a-1111-4a0e-9c1e-000000000001"
	otherProfile  = "7d7f3e4a-2222-4a0e-9c1e-000000000002"
	testSkillID   = "5b0c9a52-3333-4f3e-8f5e-000000000003"
)

func sessionCtx() context.Context {
	return domain.WithSession(context.Background(), &domain.Session{
		State:     domain.SessionReady,
		UserID:    testProfileID,
		ProfileID: testProfileID,
		Email:     "candidate@example.com",
		Role:      domain.RoleCandidate,
	})
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func ownedSkill() *domain.Skill {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Skill{
		ID:              testSkillID,
		ProfileID:       testProfileID,
		Name:            "Python",
		Category:        domain.CategoryTechnical,
		Proficiency:     domain.ProficiencyAdvanced,
		YearsExperience: 4,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}
