package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"civicportal/internal/auth"
	apperrors "civicportal/internal/errors"
	"civicportal/internal/model"
	"civicportal/internal/repository"
)

// RegisterParams carry the profile fields for a new account. Role is
// optional and defaults to the regular user role.
type RegisterParams struct {
	Username    string
	Password    string
	Email       string
	FullName    string
	PhoneNumber string
	Role        string
}

// AuthService verifies credentials and establishes and validates sessions.
type AuthService interface {
	Register(ctx context.Context, params RegisterParams) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
	ResolveSession(ctx context.Context, sessionID string) (*model.User, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	users      repository.UserRepository
	tokens     *auth.TokenService
	sessions   auth.SessionStore
	sessionTTL time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService, sessions auth.SessionStore, sessionTTL time.Duration) AuthService {
	return &authService{
		users:      users,
		tokens:     tokens,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user with a hashed password. Username uniqueness is
// case-insensitive: "Admin" conflicts with an existing "admin".
func (s *authService) Register(ctx context.Context, params RegisterParams) (*model.User, error) {
	existing, err := s.users.FindByUsername(ctx, params.Username)
	if err == nil && existing != nil {
		return nil, apperrors.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	hash, err := auth.HashPassword(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := params.Role
	if role == "" {
		role = model.DefaultRole
	}

	user := &model.User{
		Username:     params.Username,
		PasswordHash: hash,
		Email:        params.Email,
		Role:         role,
		FullName:     params.FullName,
		PhoneNumber:  params.PhoneNumber,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Login verifies credentials and issues a session bound to the user.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	session := auth.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	token, err := s.tokens.Generate(session)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}
	return token, user, nil
}

// ResolveSession resolves a session ID to its bound user. Missing or expired
// sessions yield ErrUnauthenticated/ErrSessionExpired, never ErrNotFound, so
// the API layer reports 401 rather than 404.
func (s *authService) ResolveSession(ctx context.Context, sessionID string) (*model.User, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionExpired) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}
	return user, nil
}

// Logout deletes the session; the matching token is revoked immediately.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
