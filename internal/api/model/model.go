package model

import "time"

// Job is a job posting synced from the external automation source.
// Columns the sync flow never populates stay NULL, hence the pointers.
type Job struct {
	ID              string    `db:"id"`
	Title           *string   `db:"title"`
	Company         *string   `db:"company"`
	CompanyLogo     *string   `db:"company_logo"`
	Rating          *float64  `db:"rating"`
	Location        *string   `db:"location"`
	JobType         *string   `db:"job_type"`
	SalaryAmount    *int      `db:"salary_amount"`
	SalaryCurrency  *string   `db:"salary_currency"`
	SalaryUnit      *string   `db:"salary_unit"`
	PostedAgo       *string   `db:"posted_ago"`
	Benefits        string    `db:"benefits"`
	Qualifications  string    `db:"qualifications"`
	FullDescription string    `db:"full_description"`
	ApplyURL        *string   `db:"apply_url"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// User is a registered account used for password login.
type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserProfile holds the career profile attached one-to-one to a user.
// SocialLinks and Skills are stored as JSON array blobs.
type UserProfile struct {
	UserID            int64     `db:"user_id"`
	Bio               string    `db:"bio"`
	TargetRole        string    `db:"target_role"`
	ExperienceYears   int       `db:"experience_years"`
	RemoteOnly        bool      `db:"remote_only"`
	PreferredLocation string    `db:"preferred_location"`
	MinSalary         int       `db:"min_salary"`
	SocialLinks       string    `db:"social_links"`
	Skills            string    `db:"skills"`
	UpdatedAt         time.Time `db:"updated_at"`
}

// Session is an opaque login token with an expiry.
type Session struct {
	Token     string    `db:"token"`
	UserID    int64     `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
}
