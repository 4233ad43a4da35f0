package auth

import (
	"crypto/subtle"

	"menu-eva/internal/config"
	"menu-eva/internal/model"

	"github.com/rs/zerolog"
)

// User is the authenticated identity returned to the dashboard.
type User struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Service authenticates the single configured admin credential pair and
// issues bearer tokens for the dashboard.
type Service struct {
	username string
	password string
	tokens   *TokenManager
	logger   zerolog.Logger
}

// NewService creates an auth service from the configured credentials.
func NewService(cfg config.AuthConfig, logger zerolog.Logger) *Service {
	return &Service{
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		tokens:   NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// Login exchanges a credential pair for a signed bearer token.
func (s *Service) Login(username, password string) (string, *User, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		s.logger.Warn().Str("username", username).Msg("failed login attempt")
		return "", nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(username)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sign token")
		return "", nil, err
	}

	s.logger.Info().Str("username", username).Msg("admin logged in")
	return token, &User{Username: username, Role: "admin"}, nil
}

// Verify validates a bearer token and returns the identity it carries.
func (s *Service) Verify(token string) (*User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	return &User{Username: claims.Username, Role: claims.Role}, nil
}
