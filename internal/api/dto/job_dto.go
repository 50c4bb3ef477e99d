package dto

// JobSyncRecord is a single job record pulled from the external automation
// webhook. Every field is optional; unknown keys in the payload are ignored.
type JobSyncRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Link     string `json:"link"`
}

// JobDTO is the JSON shape of a job posting returned by the listing endpoint.
type JobDTO struct {
	ID              string   `json:"id"`
	Title           *string  `json:"title"`
	Company         *string  `json:"company"`
	CompanyLogo     *string  `json:"companyLogo"`
	Rating          *float64 `json:"rating"`
	Location        *string  `json:"location"`
	JobType         *string  `json:"jobType"`
	SalaryAmount    *int     `json:"salaryAmount"`
	SalaryCurrency  *string  `json:"salaryCurrency"`
	SalaryUnit      *string  `json:"salaryUnit"`
	PostedAgo       *string  `json:"postedAgo"`
	Benefits        string   `json:"benefits"`
	Qualifications  string   `json:"qualifications"`
	FullDescription string   `json:"fullDescription"`
	ApplyURL        *string  `json:"applyUrl"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// SyncResponse reports how many records a fetch-external run wrote.
type SyncResponse struct {
	Message string `json:"message"`
	Synced  int    `json:"synced"`
}
