// Package session is the session-gate collaborator: it authenticates
// citizens and officials and mints the tokens the HTTP layer turns into
// explicit domain.Session values. The workflow engine never touches it.
package session

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/spec-kit/civic-issue-service/internal/config"
	"github.com/spec-kit/civic-issue-service/internal/domain"
	apperrors "github.com/spec-kit/civic-issue-service/pkg/util/errorutil"
)

// Service implements citizen OTP login and official credential login.
type Service struct {
	tokens    *TokenManager
	demoOTP   string
	officials map[string]string // office code -> bcrypt hash
}

// IssuedToken is a minted session token with its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
	Role      domain.Role
	Identity  string
}

// NewService seeds the official registry from config. Passwords in the seed
// are hashed at load so plaintext never lives past startup.
func NewService(cfg config.AuthConfig) (*Service, error) {
	officials := make(map[string]string)
	for _, pair := range strings.Split(cfg.OfficialCredentials, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, password, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("malformed official credential entry %q", pair)
		}
		hash, err := HashPassword(password, cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash official password: %w", err)
		}
		officials[code] = hash
	}

	return &Service{
		tokens:    NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLMinutes),
		demoOTP:   cfg.CitizenDemoOTP,
		officials: officials,
	}, nil
}

// TokenManager exposes the underlying manager for middleware construction.
func (s *Service) TokenManager() *TokenManager {
	return s.tokens
}

// RequestCitizenOTP validates the email and returns the passcode hint. A
// real deployment would deliver the code out of band; the pilot uses a
// fixed demo passcode.
func (s *Service) RequestCitizenOTP(email string) error {
	if _, err := mail.ParseAddress(strings.TrimSpace(email)); err != nil {
		return apperrors.NewValidationError("valid email required", nil)
	}
	return nil
}

// VerifyCitizenOTP checks the passcode and issues a citizen token.
func (s *Service) VerifyCitizenOTP(email, otp string) (*IssuedToken, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.NewValidationError("valid email required", nil)
	}
	if len(otp) != 6 || otp != s.demoOTP {
		return nil, apperrors.NewUnauthorized("invalid passcode")
	}
	return s.issue(email, domain.RoleCitizen)
}

// LoginOfficial checks office code and password and issues an official token.
func (s *Service) LoginOfficial(code, password string) (*IssuedToken, error) {
	code = strings.TrimSpace(code)
	hash, ok := s.officials[code]
	if !ok {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := ComparePassword(hash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.issue(code, domain.RoleOfficial)
}

func (s *Service) issue(identity string, role domain.Role) (*IssuedToken, error) {
	token, expiresAt, err := s.tokens.GenerateToken(identity, role)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &IssuedToken{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      role,
		Identity:  identity,
	}, nil
}
