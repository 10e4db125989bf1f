package usecase_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/internal/usecase"
	"go-jobtracker-backend/pkg/apperror"
	"go-jobtracker-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.JobProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) ListByUser(ctx context.Context, userID string) ([]domain.JobProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobProfile), args.Error(1)
}

func (m *MockProfileRepo) Rename(ctx context.Context, userID, profileID, name string) (*domain.JobProfile, error) {
	args := m.Called(ctx, userID, profileID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobProfile), args.Error(1)
}

func (m *MockProfileRepo) Delete(ctx context.Context, userID, profileID string) error {
	return m.Called(ctx, userID, profileID).Error(0)
}

func (m *MockProfileRepo) ExistsForUser(ctx context.Context, userID, profileID string) (bool, error) {
	args := m.Called(ctx, userID, profileID)
	return args.Bool(0), args.Error(1)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	return m.Called(ctx, app).Error(0)
}

func (m *MockApplicationRepo) ListByProfile(ctx context.Context, userID, profileID string) ([]domain.JobApplication, error) {
	args := m.Called(ctx, userID, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobApplication), args.Error(1)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, userID, id string, status domain.ApplicationStatus) error {
	return m.Called(ctx, userID, id, status).Error(0)
}

func (m *MockApplicationRepo) UpdateIndustry(ctx context.Context, userID, id, industry string) error {
	return m.Called(ctx, userID, id, industry).Error(0)
}

func (m *MockApplicationRepo) UpdateSalary(ctx context.Context, userID, id string, salary domain.Salary) error {
	return m.Called(ctx, userID, id, salary).Error(0)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, text string) (*domain.JobAnalysis, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobAnalysis), args.Error(1)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Get(ctx context.Context, userID string) (*domain.AnalysisSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisSession), args.Error(1)
}

func (m *MockSessionRepo) Save(ctx context.Context, userID string, session *domain.AnalysisSession) error {
	return m.Called(ctx, userID, session).Error(0)
}

func appErrCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *apperror.AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

// Profile Manager

func TestCreateProfileNameValidation(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo)
	ctx := context.Background()

	t.Run("empty name is rejected without insert", func(t *testing.T) {
		_, err := uc.CreateProfile(ctx, "user1", "")
		assert.Equal(t, 400, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("whitespace-only name is rejected without insert", func(t *testing.T) {
		_, err := uc.CreateProfile(ctx, "user1", "   ")
		assert.Equal(t, 400, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("name over 50 characters is rejected without insert", func(t *testing.T) {
		_, err := uc.CreateProfile(ctx, "user1", strings.Repeat("a", 51))
		assert.Equal(t, 400, appErrCode(t, err))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("valid name is inserted trimmed with caller as owner", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.JobProfile)
			assert.Equal(t, "user1", p.UserID)
			assert.Equal(t, "Backend roles", p.Name)
		}).Once()

		profile, err := uc.CreateProfile(ctx, "user1", "  Backend roles  ")
		assert.NoError(t, err)
		assert.Equal(t, "user1", profile.UserID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("exactly 50 characters is accepted", func(t *testing.T) {
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.JobProfile")).Return(nil).Once()

		_, err := uc.CreateProfile(ctx, "user1", strings.Repeat("a", 50))
		assert.NoError(t, err)
	})
}

func TestProfileOwnershipIsGeneric(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(mockRepo)
	ctx := context.Background()

	// The repo cannot tell "missing" from "owned by someone else": both are
	// a zero-row match. The usecase must surface one identical failure.
	mockRepo.On("Rename", ctx, "user1", "foreign-id", "New name").Return(nil, domain.ErrNotFound)
	mockRepo.On("Delete", ctx, "user1", "foreign-id").Return(domain.ErrNotFound)

	_, renameErr := uc.RenameProfile(ctx, "user1", "foreign-id", "New name")
	deleteErr := uc.DeleteProfile(ctx, "user1", "foreign-id")

	assert.EqualError(t, renameErr, "Profile not found")
	assert.EqualError(t, deleteErr, "Profile not found")
	assert.Equal(t, appErrCode(t, renameErr), appErrCode(t, deleteErr))
}

func TestProfileUnauthenticated(t *testing.T) {
	uc := usecase.NewProfileUsecase(new(MockProfileRepo))
	ctx := context.Background()

	_, err := uc.CreateProfile(ctx, "", "Name")
	assert.Equal(t, 401, appErrCode(t, err))

	_, err = uc.ListProfiles(ctx, "")
	assert.Equal(t, 401, appErrCode(t, err))
}

// Application Manager

func validInput() domain.CreateApplicationInput {
	return domain.CreateApplicationInput{
		ProfileID:   "11111111-1111-1111-1111-111111111111",
		CompanyName: "Acme",
		JobURL:      "https://acme.example/jobs/42",
		Description: "Go backend role",
		WorkType:    domain.WorkTypeRemote,
	}
}

func TestCreateApplicationProfileOwnership(t *testing.T) {
	mockApps := new(MockApplicationRepo)
	mockProfiles := new(MockProfileRepo)
	uc := usecase.NewApplicationUsecase(mockApps, mockProfiles)
	ctx := context.Background()

	t.Run("profile owned by another user yields InvalidProfile and no insert", func(t *testing.T) {
		mockProfiles.On("ExistsForUser", ctx, "user1", mock.Anything).Return(false, nil).Once()

		_, err := uc.CreateApplication(ctx, "user1", validInput())
		assert.EqualError(t, err, "Invalid Profile ID")
		assert.Equal(t, 400, appErrCode(t, err))
		mockApps.AssertNotCalled(t, "Create")
	})

	t.Run("owned profile passes the check", func(t *testing.T) {
		mockProfiles.On("ExistsForUser", ctx, "user1", mock.Anything).Return(true, nil).Once()
		mockApps.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).Return(nil).Once()

		app, err := uc.CreateApplication(ctx, "user1", validInput())
		assert.NoError(t, err)
		assert.Equal(t, "user1", app.UserID)
	})
}

func TestCreateApplicationWorkTypeValidation(t *testing.T) {
	mockApps := new(MockApplicationRepo)
	mockProfiles := new(MockProfileRepo)
	uc := usecase.NewApplicationUsecase(mockApps, mockProfiles)
	ctx := context.Background()

	input := validInput()
	input.WorkType = domain.WorkType("freelance")

	_, err := uc.CreateApplication(ctx, "user1", input)
	assert.Equal(t, 400, appErrCode(t, err))
	mockProfiles.AssertNotCalled(t, "ExistsForUser")
	mockApps.AssertNotCalled(t, "Create")
}

func TestCreateApplicationDefaults(t *testing.T) {
	mockApps := new(MockApplicationRepo)
	mockProfiles := new(MockProfileRepo)
	uc := usecase.NewApplicationUsecase(mockApps, mockProfiles)
	ctx := context.Background()

	mockProfiles.On("ExistsForUser", ctx, "user1", mock.Anything).Return(true, nil)
	mockApps.On("Create", ctx, mock.AnythingOfType("*domain.JobApplication")).Return(nil)

	app, err := uc.CreateApplication(ctx, "user1", validInput())
	assert.NoError(t, err)
	assert.Equal(t, domain.StatusHRScreening, app.Status)
	assert.False(t, app.AppliedAt.IsZero())
	assert.Nil(t, app.SalaryMin)
	assert.Nil(t, app.SalaryMax)
	assert.Equal(t, "Empty", app.SalaryDisplay)
}

func TestUpdateStatus(t *testing.T) {
	mockApps := new(MockApplicationRepo)
	uc := usecase.NewApplicationUsecase(mockApps, new(MockProfileRepo))
	ctx := context.Background()

	t.Run("value outside the enumeration is rejected", func(t *testing.T) {
		err := uc.UpdateStatus(ctx, "user1", "app1", domain.ApplicationStatus("ghosted"))
		assert.Equal(t, 400, appErrCode(t, err))
		mockApps.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("repeating the same status is a no-op success", func(t *testing.T) {
		mockApps.On("UpdateStatus", ctx, "user1", "app1", domain.StatusOffer).Return(nil).Twice()

		assert.NoError(t, uc.UpdateStatus(ctx, "user1", "app1", domain.StatusOffer))
		assert.NoError(t, uc.UpdateStatus(ctx, "user1", "app1", domain.StatusOffer))
		mockApps.AssertExpectations(t)
	})

	t.Run("application of another user is a generic not found", func(t *testing.T) {
		mockApps.On("UpdateStatus", ctx, "user1", "foreign", domain.StatusOffer).Return(domain.ErrNotFound)

		err := uc.UpdateStatus(ctx, "user1", "foreign", domain.StatusOffer)
		assert.EqualError(t, err, "Application not found")
	})
}

func TestUpdateSalaryAcceptsInvertedRange(t *testing.T) {
	mockApps := new(MockApplicationRepo)
	uc := usecase.NewApplicationUsecase(mockApps, new(MockProfileRepo))
	ctx := context.Background()

	// min > max is deliberately not rejected
	minVal, maxVal := 90000.0, 70000.0
	salary := domain.Salary{Min: &minVal, Max: &maxVal}
	mockApps.On("UpdateSalary", ctx, "user1", "app1", salary).Return(nil)

	assert.NoError(t, uc.UpdateSalary(ctx, "user1", "app1", salary))
}

// Job analysis

func TestAnalyzeJob(t *testing.T) {
	ctx := context.Background()

	t.Run("empty text is a validation error, adapter never called", func(t *testing.T) {
		mockAnalyzer := new(MockAnalyzer)
		uc := usecase.NewAnalyzeUsecase(mockAnalyzer, nil)

		_, err := uc.AnalyzeJob(ctx, "   ")
		assert.Equal(t, 400, appErrCode(t, err))
		mockAnalyzer.AssertNotCalled(t, "Analyze")
	})

	t.Run("adapter failure surfaces as a generic analysis failure", func(t *testing.T) {
		mockAnalyzer := new(MockAnalyzer)
		uc := usecase.NewAnalyzeUsecase(mockAnalyzer, nil)
		mockAnalyzer.On("Analyze", ctx, "some posting").Return(nil, errors.New("model output missing field"))

		_, err := uc.AnalyzeJob(ctx, "some posting")
		assert.EqualError(t, err, "Failed to analyze job")
		assert.Equal(t, 500, appErrCode(t, err))
	})

	t.Run("valid extraction passes through", func(t *testing.T) {
		mockAnalyzer := new(MockAnalyzer)
		uc := usecase.NewAnalyzeUsecase(mockAnalyzer, nil)
		want := &domain.JobAnalysis{Company: "Acme", Format: "remote"}
		mockAnalyzer.On("Analyze", ctx, "posting").Return(want, nil)

		got, err := uc.AnalyzeJob(ctx, "posting")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestAnalysisSession(t *testing.T) {
	ctx := context.Background()

	t.Run("status outside the lifecycle set is rejected", func(t *testing.T) {
		mockSessions := new(MockSessionRepo)
		uc := usecase.NewAnalyzeUsecase(new(MockAnalyzer), mockSessions)

		err := uc.SaveSession(ctx, "user1", &domain.AnalysisSession{Status: "paused"})
		assert.Equal(t, 400, appErrCode(t, err))
		mockSessions.AssertNotCalled(t, "Save")
	})

	t.Run("save stamps the update time", func(t *testing.T) {
		mockSessions := new(MockSessionRepo)
		uc := usecase.NewAnalyzeUsecase(new(MockAnalyzer), mockSessions)
		mockSessions.On("Save", ctx, "user1", mock.AnythingOfType("*domain.AnalysisSession")).Return(nil).Run(func(args mock.Arguments) {
			s := args.Get(2).(*domain.AnalysisSession)
			assert.False(t, s.UpdatedAt.IsZero())
		})

		err := uc.SaveSession(ctx, "user1", &domain.AnalysisSession{Status: domain.SessionReview})
		assert.NoError(t, err)
	})

	t.Run("session operations without storage fail gracefully", func(t *testing.T) {
		uc := usecase.NewAnalyzeUsecase(new(MockAnalyzer), nil)

		_, err := uc.GetSession(ctx, "user1")
		assert.Equal(t, 400, appErrCode(t, err))
	})
}
