package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Schmandi/HIRED-server/internal/auth"
	"github.com/Schmandi/HIRED-server/internal/config"
	"github.com/Schmandi/HIRED-server/internal/domain"
	"github.com/Schmandi/HIRED-server/internal/events"
	"github.com/Schmandi/HIRED-server/internal/limiter"
	"github.com/Schmandi/HIRED-server/internal/repository"
	apperrors "github.com/Schmandi/HIRED-server/pkg/util"
)

// AuthService coordinates the token lifecycle: login issues a token pair,
// refresh exchanges an unexpired refresh token for a fresh access token,
// logout is client-side only. Every invocation is stateless; nothing is
// shared across requests beyond the immutable signing secrets.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	attempts   limiter.LoginLimiter
	dispatcher events.Dispatcher
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo     repository.UserRepository
	LoginLimiter limiter.LoginLimiter
	Dispatcher   events.Dispatcher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	attempts := deps.LoginLimiter
	if attempts == nil {
		attempts = limiter.NewNoopLimiter()
	}
	return &AuthService{
		users:      deps.UserRepo,
		tokens:     auth.NewTokenManager(cfg.Auth),
		attempts:   attempts,
		dispatcher: deps.Dispatcher,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Login verifies credentials against the directory and issues a token
// pair. Not-found, inactive, and wrong-password all collapse to the same
// unauthorized error so the response does not reveal which check failed.
func (s *AuthService) Login(ctx context.Context, username, password, remoteAddr string) (*domain.TokenPair, error) {
	allowed, err := s.attempts.Allow(ctx, username, remoteAddr)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.NewTooManyRequests("too many login attempts")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.publish(ctx, events.EventLoginFailed, username, map[string]string{"reason": "unknown_user"})
			return nil, apperrors.NewUnauthorized("unauthorized")
		}
		return nil, err
	}
	if !user.Active {
		s.publish(ctx, events.EventLoginFailed, username, map[string]string{"reason": "inactive"})
		return nil, apperrors.NewUnauthorized("unauthorized")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.publish(ctx, events.EventLoginFailed, username, map[string]string{"reason": "password_mismatch"})
		return nil, apperrors.NewUnauthorized("unauthorized")
	}

	pair, err := s.tokens.IssuePair(user)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventLoginSucceeded, user.Username, nil)
	return pair, nil
}

// Refresh exchanges a previously issued refresh token for a new access
// token. The refresh token itself is never rotated: it stays valid until
// its own expiry. A token that fails verification is forbidden; a token
// whose subject no longer resolves to an active account is unauthorized,
// since the account may have been deleted or suspended after issuance.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", apperrors.NewForbidden("forbidden")
	}

	user, err := s.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewUnauthorized("unauthorized")
		}
		return "", err
	}
	if !user.Active {
		return "", apperrors.NewUnauthorized("unauthorized")
	}

	// Reissue from the freshly resolved record so the new access token
	// carries current roles, not the snapshot frozen at login.
	accessToken, err := s.tokens.IssueAccess(user)
	if err != nil {
		return "", err
	}

	s.publish(ctx, events.EventTokenRefreshed, user.Username, nil)
	return accessToken, nil
}

// Logout records the client-side session termination. No verification
// happens and no token is invalidated server-side; already-issued tokens
// remain valid until their natural expiry.
func (s *AuthService) Logout(ctx context.Context) {
	s.publish(ctx, events.EventLoggedOut, "", nil)
}

// Register creates a new directory account with a hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string, roles []string) (*domain.User, error) {
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, apperrors.NewValidationError("username already taken", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		roles = []string{domain.RoleEmployee}
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Roles:        roles,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, username string, metadata map[string]string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.NewEvent(eventType, username, metadata))
}
