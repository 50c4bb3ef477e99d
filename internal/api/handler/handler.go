package handler

import (
	"context"
	"log/slog"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/dto"
	"github.com/anirudhxmishra/swipe-hire-app/internal/api/model"
	"github.com/anirudhxmishra/swipe-hire-app/internal/auth"
)

// JobStore reads job rows for the listing and sync endpoints
type JobStore interface {
	ListJobs(ctx context.Context) ([]model.Job, error)
	CountJobs(ctx context.Context) (int, error)
}

// JobFetcher pulls job records from the external automation source
type JobFetcher interface {
	FetchJobs(ctx context.Context) ([]dto.JobSyncRecord, error)
}

// JobSyncer upserts externally-sourced job records
type JobSyncer interface {
	Sync(ctx context.Context, records []dto.JobSyncRecord) (int, error)
}

// OAuthExchanger performs the authorization-code grant against the provider
type OAuthExchanger interface {
	AuthorizationURL() string
	ExchangeCode(ctx context.Context, code string) (*auth.Identity, error)
}

// PasswordAuthenticator handles registration and email/password login
type PasswordAuthenticator interface {
	Register(ctx context.Context, email, password, fullName string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

// ProfileStore reads and writes career profiles
type ProfileStore interface {
	GetProfile(ctx context.Context, userID int64) (*model.UserProfile, error)
	UpsertProfile(ctx context.Context, profile *model.UserProfile) error
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger           *slog.Logger
	Jobs             JobStore
	Fetcher          JobFetcher
	Syncer           JobSyncer
	Google           OAuthExchanger
	Password         PasswordAuthenticator
	Profiles         ProfileStore
	FrontendRedirect string
}

// JobHandler handles job listing and external sync requests
type JobHandler struct {
	logger  *slog.Logger
	jobs    JobStore
	fetcher JobFetcher
	syncer  JobSyncer
}

// NewJobHandler creates a new JobHandler instance
func NewJobHandler(deps *Dependencies) *JobHandler {
	return &JobHandler{
		logger:  deps.Logger,
		jobs:    deps.Jobs,
		fetcher: deps.Fetcher,
		syncer:  deps.Syncer,
	}
}

// AuthHandler handles the Google OAuth flow and password login
type AuthHandler struct {
	logger           *slog.Logger
	google           OAuthExchanger
	password         PasswordAuthenticator
	frontendRedirect string
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(deps *Dependencies) *AuthHandler {
	return &AuthHandler{
		logger:           deps.Logger,
		google:           deps.Google,
		password:         deps.Password,
		frontendRedirect: deps.FrontendRedirect,
	}
}

// ProfileHandler handles career-profile requests
type ProfileHandler struct {
	logger   *slog.Logger
	profiles ProfileStore
}

// NewProfileHandler creates a new ProfileHandler instance
func NewProfileHandler(deps *Dependencies) *ProfileHandler {
	return &ProfileHandler{
		logger:   deps.Logger,
		profiles: deps.Profiles,
	}
}
