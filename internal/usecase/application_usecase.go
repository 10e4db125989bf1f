package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"
	"go-jobtracker-backend/pkg/salary"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	profileRepo     domain.ProfileRepository
}

// NewApplicationUsecase creates a new job application usecase
func NewApplicationUsecase(
	appRepo domain.ApplicationRepository,
	profileRepo domain.ProfileRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: appRepo,
		profileRepo:     profileRepo,
	}
}

// CreateApplication inserts an application after verifying the referenced
// profile is owned by the caller. The ownership check happens once, here;
// later reads rely on the application's own owner column.
func (uc *applicationUsecase) CreateApplication(ctx context.Context, userID string, input domain.CreateApplicationInput) (*domain.JobApplication, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	if !input.WorkType.IsValid() {
		return nil, apperror.Validation([]apperror.FieldError{
			{Field: "workType", Message: "workType must be one of: remote office hybrid"},
		})
	}

	owned, err := uc.profileRepo.ExistsForUser(ctx, userID, input.ProfileID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	if !owned {
		return nil, apperror.InvalidProfile()
	}

	app := &domain.JobApplication{
		UserID:      userID,
		ProfileID:   input.ProfileID,
		CompanyName: input.CompanyName,
		JobURL:      input.JobURL,
		Description: input.Description,
		Location:    input.Location,
		Industry:    input.Industry,
		WorkType:    input.WorkType,
		Status:      domain.DefaultStatus,
		AppliedAt:   time.Now().UTC(),
	}
	if err := uc.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Store(err)
	}
	renderSalary(app)
	return app, nil
}

// ListApplications returns the caller's applications for one profile,
// most recently applied first. The owner filter alone is sufficient:
// profile ownership was verified at creation time.
func (uc *applicationUsecase) ListApplications(ctx context.Context, userID, profileID string) ([]domain.JobApplication, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	apps, err := uc.applicationRepo.ListByProfile(ctx, userID, profileID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	for i := range apps {
		renderSalary(&apps[i])
	}
	return apps, nil
}

// UpdateStatus sets the pipeline stage of one owned application. The value
// is checked against the fixed enumeration; repeating the same status is a
// no-op success.
func (uc *applicationUsecase) UpdateStatus(ctx context.Context, userID, id string, status domain.ApplicationStatus) error {
	if userID == "" {
		return apperror.Unauthorized("Unauthorized")
	}

	if !status.IsValid() {
		return apperror.Validation([]apperror.FieldError{
			{Field: "status", Message: "status must be one of: hr_screening interview_1 interview_2 offer rejected not_responded"},
		})
	}

	return uc.mapUpdateErr(uc.applicationRepo.UpdateStatus(ctx, userID, id, status))
}

// UpdateIndustry sets the industry label of one owned application.
func (uc *applicationUsecase) UpdateIndustry(ctx context.Context, userID, id, industry string) error {
	if userID == "" {
		return apperror.Unauthorized("Unauthorized")
	}

	return uc.mapUpdateErr(uc.applicationRepo.UpdateIndustry(ctx, userID, id, industry))
}

// UpdateSalary replaces the full salary sub-record. min > max is accepted
// as unusual-but-valid input.
func (uc *applicationUsecase) UpdateSalary(ctx context.Context, userID, id string, salary domain.Salary) error {
	if userID == "" {
		return apperror.Unauthorized("Unauthorized")
	}

	return uc.mapUpdateErr(uc.applicationRepo.UpdateSalary(ctx, userID, id, salary))
}

// DeleteApplication removes one owned application. Irreversible.
func (uc *applicationUsecase) DeleteApplication(ctx context.Context, userID, id string) error {
	if userID == "" {
		return apperror.Unauthorized("Unauthorized")
	}

	return uc.mapUpdateErr(uc.applicationRepo.Delete(ctx, userID, id))
}

func renderSalary(app *domain.JobApplication) {
	app.SalaryDisplay = salary.Format(
		app.SalaryMin, app.SalaryMax,
		app.SalaryCurrency, app.SalaryType, app.SalaryPeriod,
	)
}

func (uc *applicationUsecase) mapUpdateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound("Application not found")
	}
	return apperror.Store(err)
}
