package domain

import (
	"context"
	"time"
)

// JobProfile groups a user's applications, e.g. "Backend roles" or "Berlin".
// Deleting a profile cascades to its applications via the store's FK policy.
type JobProfile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileRepository defines storage operations. Every mutation is scoped by
// owner id and profile id simultaneously.
type ProfileRepository interface {
	Create(ctx context.Context, profile *JobProfile) error
	ListByUser(ctx context.Context, userID string) ([]JobProfile, error)
	Rename(ctx context.Context, userID, profileID, name string) (*JobProfile, error)
	Delete(ctx context.Context, userID, profileID string) error
	// ExistsForUser reports whether the profile exists and is owned by userID.
	ExistsForUser(ctx context.Context, userID, profileID string) (bool, error)
}

// ProfileUsecase defines business logic operations
type ProfileUsecase interface {
	CreateProfile(ctx context.Context, userID, name string) (*JobProfile, error)
	ListProfiles(ctx context.Context, userID string) ([]JobProfile, error)
	RenameProfile(ctx context.Context, userID, profileID, name string) (*JobProfile, error)
	DeleteProfile(ctx context.Context, userID, profileID string) error
}
