package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const (
	defaultAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultTokenURL    = "https://oauth2.googleapis.com/token"
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

	defaultTimeout = 15 * time.Second
)

// Identity is the provider-supplied identity forwarded to the frontend.
// It is never persisted by this flow.
type Identity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// GoogleConfig holds the OAuth2 client settings. Endpoint URLs default to
// Google's when empty, which lets tests point the service at local stubs.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthURL      string
	TokenURL     string
	UserInfoURL  string
	Timeout      time.Duration
}

// GoogleService performs the OAuth2 authorization-code grant against Google
// and retrieves the authenticated user's profile.
type GoogleService struct {
	oauth       oauth2.Config
	userInfoURL string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewGoogleService creates a new GoogleService instance
func NewGoogleService(cfg *GoogleConfig, logger *slog.Logger) *GoogleService {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = defaultAuthURL
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}
	userInfoURL := cfg.UserInfoURL
	if userInfoURL == "" {
		userInfoURL = defaultUserInfoURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &GoogleService{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		userInfoURL: userInfoURL,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// AuthorizationURL builds the provider authorization endpoint URL with
// response_type=code and scope "profile email". Inputs are not validated;
// a malformed client id simply produces a URL the provider will reject.
func (s *GoogleService) AuthorizationURL() string {
	return s.oauth.AuthCodeURL("")
}

// ExchangeCode exchanges an authorization code for an access token, then
// fetches the user's profile with it. The token is single-use and discarded.
func (s *GoogleService) ExchangeCode(ctx context.Context, code string) (*Identity, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("Token exchange failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("%w: response missing access_token", ErrTokenExchange)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileFetch, err)
	}
	token.SetAuthHeader(req)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("User-info fetch failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", ErrProfileFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: user-info endpoint returned %d", ErrProfileFetch, resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileFetch, err)
	}

	s.logger.Info("Google identity resolved",
		slog.String("provider_id", identity.ID),
		slog.String("email", identity.Email),
	)

	return &identity, nil
}
