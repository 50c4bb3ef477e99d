package dto

// RegisterRequest creates a password-login account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
}

// LoginRequest authenticates with email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the JSON status payload for a successful login.
type LoginResponse struct {
	Status string  `json:"status"`
	Token  string  `json:"token"`
	User   UserDTO `json:"user"`
}

// UserDTO is the public view of an account.
type UserDTO struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// ProfileSetupRequest mutates the caller's career profile.
type ProfileSetupRequest struct {
	Bio               string   `json:"bio"`
	TargetRole        string   `json:"targetRole"`
	ExperienceYears   int      `json:"experienceYears"`
	RemoteOnly        bool     `json:"remoteOnly"`
	PreferredLocation string   `json:"preferredLocation"`
	MinSalary         int      `json:"minSalary"`
	SocialLinks       []string `json:"socialLinks"`
	Skills            []string `json:"skills"`
}

// ProfileResponse mirrors ProfileSetupRequest with the owning user attached.
type ProfileResponse struct {
	UserID            int64    `json:"userId"`
	Bio               string   `json:"bio"`
	TargetRole        string   `json:"targetRole"`
	ExperienceYears   int      `json:"experienceYears"`
	RemoteOnly        bool     `json:"remoteOnly"`
	PreferredLocation string   `json:"preferredLocation"`
	MinSalary         int      `json:"minSalary"`
	SocialLinks       []string `json:"socialLinks"`
	Skills            []string `json:"skills"`
}
