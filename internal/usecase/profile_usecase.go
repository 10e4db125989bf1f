package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go-jobtracker-backend/internal/domain"
	"go-jobtracker-backend/pkg/apperror"
)

const maxProfileNameLen = 50

type profileUsecase struct {
	profileRepo domain.ProfileRepository
}

// NewProfileUsecase creates a new job profile usecase
func NewProfileUsecase(profileRepo domain.ProfileRepository) domain.ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

// CreateProfile inserts a profile owned by the caller after validating the
// display name (1-50 characters post-trim).
func (uc *profileUsecase) CreateProfile(ctx context.Context, userID, name string) (*domain.JobProfile, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	name, err := validateProfileName(name)
	if err != nil {
		return nil, err
	}

	profile := &domain.JobProfile{
		UserID: userID,
		Name:   name,
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, apperror.Store(err)
	}
	return profile, nil
}

// ListProfiles returns all profiles owned by the caller, newest first.
// An empty list is a valid result.
func (uc *profileUsecase) ListProfiles(ctx context.Context, userID string) ([]domain.JobProfile, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	profiles, err := uc.profileRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Store(err)
	}
	return profiles, nil
}

// RenameProfile updates an owned profile's name. A profile that is missing
// and a profile owned by another user produce the same generic failure.
func (uc *profileUsecase) RenameProfile(ctx context.Context, userID, profileID, name string) (*domain.JobProfile, error) {
	if userID == "" {
		return nil, apperror.Unauthorized("Unauthorized")
	}

	name, err := validateProfileName(name)
	if err != nil {
		return nil, err
	}

	profile, err := uc.profileRepo.Rename(ctx, userID, profileID, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Store(err)
	}
	return profile, nil
}

// DeleteProfile removes an owned profile. The store cascades the delete to
// the profile's applications.
func (uc *profileUsecase) DeleteProfile(ctx context.Context, userID, profileID string) error {
	if userID == "" {
		return apperror.Unauthorized("Unauthorized")
	}

	if err := uc.profileRepo.Delete(ctx, userID, profileID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Store(err)
	}
	return nil
}

func validateProfileName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.Validation([]apperror.FieldError{
			{Field: "name", Message: "name must contain at least 1 character"},
		})
	}
	if utf8.RuneCountInString(name) > maxProfileNameLen {
		return "", apperror.Validation([]apperror.FieldError{
			{Field: "name", Message: "name must be at most 50 characters"},
		})
	}
	return name, nil
}
