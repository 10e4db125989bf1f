package postgres

import (
	"context"

	"go-jobtracker-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new job application repository
func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

const applicationColumns = `
	id, user_id, profile_id, company_name, job_url, description,
	location, industry, work_type, status,
	salary_min, salary_max, salary_currency, salary_type, salary_period,
	applied_at`

// Create inserts an application. Status and applied_at come from the caller
// (defaulted by the usecase); the generated id is filled on return.
func (r *applicationRepo) Create(ctx context.Context, app *domain.JobApplication) error {
	query := `
		INSERT INTO job_applications (
			user_id, profile_id, company_name, job_url, description,
			location, industry, work_type, status, applied_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		app.UserID, app.ProfileID, app.CompanyName, app.JobURL, app.Description,
		app.Location, app.Industry, app.WorkType, app.Status, app.AppliedAt,
	).Scan(&app.ID)
}

// ListByProfile returns applications where owner = userID and profile =
// profileID, most recently applied first.
func (r *applicationRepo) ListByProfile(ctx context.Context, userID, profileID string) ([]domain.JobApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE user_id = $1 AND profile_id = $2
		ORDER BY applied_at DESC`

	rows, err := r.db.Query(ctx, query, userID, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []domain.JobApplication{}
	for rows.Next() {
		var a domain.JobApplication
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.ProfileID, &a.CompanyName, &a.JobURL, &a.Description,
			&a.Location, &a.Industry, &a.WorkType, &a.Status,
			&a.SalaryMin, &a.SalaryMax, &a.SalaryCurrency, &a.SalaryType, &a.SalaryPeriod,
			&a.AppliedAt,
		); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// UpdateStatus sets the status of one owned application. Repeating the same
// value is a no-op success (the row still matches).
func (r *applicationRepo) UpdateStatus(ctx context.Context, userID, id string, status domain.ApplicationStatus) error {
	return r.updateOne(ctx,
		`UPDATE job_applications SET status = $1 WHERE id = $2 AND user_id = $3`,
		status, id, userID)
}

// UpdateIndustry sets the industry of one owned application.
func (r *applicationRepo) UpdateIndustry(ctx context.Context, userID, id, industry string) error {
	return r.updateOne(ctx,
		`UPDATE job_applications SET industry = $1 WHERE id = $2 AND user_id = $3`,
		industry, id, userID)
}

// UpdateSalary replaces the full salary sub-record atomically so a partial
// salary state never persists.
func (r *applicationRepo) UpdateSalary(ctx context.Context, userID, id string, salary domain.Salary) error {
	query := `
		UPDATE job_applications
		SET salary_min = $1, salary_max = $2, salary_currency = $3,
		    salary_type = $4, salary_period = $5
		WHERE id = $6 AND user_id = $7`

	tag, err := r.db.Exec(ctx, query,
		salary.Min, salary.Max, salary.Currency, salary.Type, salary.Period,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes one owned application.
func (r *applicationRepo) Delete(ctx context.Context, userID, id string) error {
	return r.updateOne(ctx,
		`DELETE FROM job_applications WHERE id = $1 AND user_id = $2`,
		id, userID)
}

func (r *applicationRepo) updateOne(ctx context.Context, query string, args ...any) error {
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
