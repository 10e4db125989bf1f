package domain

import (
	"context"
	"time"
)

// ApplicationStatus labels an application's pipeline stage. The set is flat:
// any value may transition to any other, there is no terminal state.
type ApplicationStatus string

const (
	StatusHRScreening  ApplicationStatus = "hr_screening" // initial/default
	StatusInterview1   ApplicationStatus = "interview_1"
	StatusInterview2   ApplicationStatus = "interview_2"
	StatusOffer        ApplicationStatus = "offer"
	StatusRejected     ApplicationStatus = "rejected"
	StatusNotResponded ApplicationStatus = "not_responded"
)

// DefaultStatus is assigned to every newly created application.
const DefaultStatus = StatusHRScreening

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusHRScreening, StatusInterview1, StatusInterview2,
		StatusOffer, StatusRejected, StatusNotResponded:
		return true
	}
	return false
}

// WorkType is the work arrangement of a posting
type WorkType string

const (
	WorkTypeRemote WorkType = "remote"
	WorkTypeOffice WorkType = "office"
	WorkTypeHybrid WorkType = "hybrid"
)

func (w WorkType) IsValid() bool {
	switch w {
	case WorkTypeRemote, WorkTypeOffice, WorkTypeHybrid:
		return true
	}
	return false
}

// JobApplication is one tracked job application. UserID and ProfileID are
// immutable after creation, as is AppliedAt. A missing salary is the absence
// of all five salary fields, never zero.
type JobApplication struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	ProfileID      string            `json:"profile_id"`
	CompanyName    string            `json:"company_name"`
	JobURL         string            `json:"job_url"`
	Description    string            `json:"description"`
	Location       *string           `json:"location,omitempty"`
	Industry       *string           `json:"industry,omitempty"`
	WorkType       WorkType          `json:"work_type"`
	Status         ApplicationStatus `json:"status"`
	SalaryMin      *float64          `json:"salary_min,omitempty"`
	SalaryMax      *float64          `json:"salary_max,omitempty"`
	SalaryCurrency *string           `json:"salary_currency,omitempty"`
	SalaryType     *string           `json:"salary_type,omitempty"` // gross | net
	SalaryPeriod   *string           `json:"salary_period,omitempty"`
	// SalaryDisplay is the rendered salary string ("Empty" when absent).
	// Computed on the way out, never stored.
	SalaryDisplay string    `json:"salary_display"`
	AppliedAt     time.Time `json:"applied_at"`
}

// Salary is the full salary sub-record. Updates replace all five fields in
// one statement so partial salary states never persist.
type Salary struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency *string  `json:"currency"`
	Type     *string  `json:"type"`
	Period   *string  `json:"period"`
}

// ApplicationRepository defines storage operations. Every mutation is scoped
// by owner id and application id simultaneously.
type ApplicationRepository interface {
	Create(ctx context.Context, app *JobApplication) error
	ListByProfile(ctx context.Context, userID, profileID string) ([]JobApplication, error)
	UpdateStatus(ctx context.Context, userID, id string, status ApplicationStatus) error
	UpdateIndustry(ctx context.Context, userID, id, industry string) error
	UpdateSalary(ctx context.Context, userID, id string, salary Salary) error
	Delete(ctx context.Context, userID, id string) error
}

// CreateApplicationInput is the validated create payload
type CreateApplicationInput struct {
	ProfileID   string
	CompanyName string
	JobURL      string
	Description string
	WorkType    WorkType
	Industry    *string
	Location    *string
}

// ApplicationUsecase defines business logic operations
type ApplicationUsecase interface {
	CreateApplication(ctx context.Context, userID string, input CreateApplicationInput) (*JobApplication, error)
	ListApplications(ctx context.Context, userID, profileID string) ([]JobApplication, error)
	UpdateStatus(ctx context.Context, userID, id string, status ApplicationStatus) error
	UpdateIndustry(ctx context.Context, userID, id, industry string) error
	UpdateSalary(ctx context.Context, userID, id string, salary Salary) error
	DeleteApplication(ctx context.Context, userID, id string) error
}
