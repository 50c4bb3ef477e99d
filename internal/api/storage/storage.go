package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/model"
	"github.com/anirudhxmishra/swipe-hire-app/internal/auth"
	"github.com/anirudhxmishra/swipe-hire-app/shared/postgresql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}

// UpsertJob inserts a job or overwrites the existing row with the same id.
// created_at is preserved on overwrite.
func (s *Storage) UpsertJob(ctx context.Context, job *model.Job) error {
	query := `
		INSERT INTO jobs (
			id, title, company, company_logo, rating, location, job_type,
			salary_amount, salary_currency, salary_unit, posted_ago,
			benefits, qualifications, full_description, apply_url,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17
		)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			company_logo = EXCLUDED.company_logo,
			rating = EXCLUDED.rating,
			location = EXCLUDED.location,
			job_type = EXCLUDED.job_type,
			salary_amount = EXCLUDED.salary_amount,
			salary_currency = EXCLUDED.salary_currency,
			salary_unit = EXCLUDED.salary_unit,
			posted_ago = EXCLUDED.posted_ago,
			benefits = EXCLUDED.benefits,
			qualifications = EXCLUDED.qualifications,
			full_description = EXCLUDED.full_description,
			apply_url = EXCLUDED.apply_url,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		job.ID,
		job.Title,
		job.Company,
		job.CompanyLogo,
		job.Rating,
		job.Location,
		job.JobType,
		job.SalaryAmount,
		job.SalaryCurrency,
		job.SalaryUnit,
		job.PostedAgo,
		job.Benefits,
		job.Qualifications,
		job.FullDescription,
		job.ApplyURL,
		job.CreatedAt,
		job.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert job: %w", err)
	}

	return nil
}

// ListJobs returns every job row. The listing is deliberately unfiltered
// and unpaginated.
func (s *Storage) ListJobs(ctx context.Context) ([]model.Job, error) {
	query := `
		SELECT
			id, title, company, company_logo, rating, location, job_type,
			salary_amount, salary_currency, salary_unit, posted_ago,
			benefits, qualifications, full_description, apply_url,
			created_at, updated_at
		FROM jobs
		ORDER BY created_at DESC, id DESC
	`

	var jobs []model.Job
	err := s.db.SelectContext(ctx, &jobs, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return jobs, nil
}

// CountJobs returns the number of stored jobs
func (s *Storage) CountJobs(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM jobs`)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	return count, nil
}

// CreateUser inserts the account and fills in its id. A concurrent insert of
// the same email loses the unique constraint race and gets auth.ErrEmailTaken.
func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (email, full_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := s.db.GetContext(ctx, &user.ID, query, user.Email, user.FullName, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return auth.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail returns nil without error when the email is unknown
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `
		SELECT id, email, full_name, password_hash, created_at
		FROM users
		WHERE email = $1
	`

	err := s.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) CreateSession(ctx context.Context, session *model.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`

	_, err := s.db.ExecContext(ctx, query, session.Token, session.UserID, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetUserBySession resolves an unexpired session token to its user, or nil
// when the token is unknown or expired.
func (s *Storage) GetUserBySession(ctx context.Context, token string, now time.Time) (*model.User, error) {
	var user model.User
	query := `
		SELECT u.id, u.email, u.full_name, u.password_hash, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > $2
	`

	err := s.db.GetContext(ctx, &user, query, token, now)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session user: %w", err)
	}

	return &user, nil
}

// GetProfile returns nil without error when the user has no profile yet
func (s *Storage) GetProfile(ctx context.Context, userID int64) (*model.UserProfile, error) {
	var profile model.UserProfile
	query := `
		SELECT
			user_id, bio, target_role, experience_years, remote_only,
			preferred_location, min_salary, social_links, skills, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	err := s.db.GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &profile, nil
}

// UpsertProfile inserts or overwrites the user's career profile
func (s *Storage) UpsertProfile(ctx context.Context, profile *model.UserProfile) error {
	query := `
		INSERT INTO user_profiles (
			user_id, bio, target_role, experience_years, remote_only,
			preferred_location, min_salary, social_links, skills, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10
		)
		ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			target_role = EXCLUDED.target_role,
			experience_years = EXCLUDED.experience_years,
			remote_only = EXCLUDED.remote_only,
			preferred_location = EXCLUDED.preferred_location,
			min_salary = EXCLUDED.min_salary,
			social_links = EXCLUDED.social_links,
			skills = EXCLUDED.skills,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		profile.UserID,
		profile.Bio,
		profile.TargetRole,
		profile.ExperienceYears,
		profile.RemoteOnly,
		profile.PreferredLocation,
		profile.MinSalary,
		profile.SocialLinks,
		profile.Skills,
		profile.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
