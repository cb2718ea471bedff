package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	authpkg "civicportal/internal/auth"
	apperrors "civicportal/internal/errors"
	"civicportal/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newTestAuthService(repo *MockUserRepository) (AuthService, authpkg.SessionStore) {
	tokens := authpkg.NewTokenService("test-secret")
	sessions := authpkg.NewMemorySessionStore()
	return NewAuthService(repo, tokens, sessions, time.Hour), sessions
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		params        RegisterParams
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  string
	}{
		{
			name:   "successful registration",
			params: RegisterParams{Username: "wanjiku", Password: "secret123", FullName: "Wanjiku Kamau"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "wanjiku").Return(nil, apperrors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(&model.User{
					ID:       1,
					Username: "wanjiku",
					FullName: "Wanjiku Kamau",
					Role:     model.DefaultRole,
				}, nil)
			},
			expectedRole: model.DefaultRole,
		},
		{
			name:   "explicit admin role is kept",
			params: RegisterParams{Username: "admin", Password: "secret123", Role: "admin"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(nil, apperrors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(&model.User{
					ID:       1,
					Username: "admin",
					Role:     "admin",
				}, nil)
			},
			expectedRole: "admin",
		},
		{
			name:   "username already taken",
			params: RegisterParams{Username: "wanjiku", Password: "secret123"},
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "wanjiku").Return(&model.User{ID: 1, Username: "wanjiku"}, nil)
			},
			expectedError: apperrors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc, _ := newTestAuthService(mockRepo)
			user, err := svc.Register(context.Background(), tt.params)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.params.Username, user.Username)
				assert.Equal(t, tt.expectedRole, user.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "wanjiku").Return(nil, apperrors.ErrNotFound)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// The stored hash must verify against the plaintext and never equal it.
		if u.PasswordHash == "secret123" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
	})).Return(&model.User{ID: 1, Username: "wanjiku"}, nil)

	svc, _ := newTestAuthService(mockRepo)
	_, err := svc.Register(context.Background(), RegisterParams{Username: "wanjiku", Password: "secret123"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), 10)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "wanjiku",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "wanjiku").Return(&model.User{
					ID:           1,
					Username:     "wanjiku",
					PasswordHash: string(hashed),
				}, nil)
			},
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "nobody").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "wanjiku",
			password: "not-the-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByUsername", mock.Anything, "wanjiku").Return(&model.User{
					ID:           1,
					Username:     "wanjiku",
					PasswordHash: string(hashed),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc, _ := newTestAuthService(mockRepo)
			token, user, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.username, user.Username)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_LoginTokenResolvesSession(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), 10)
	user := &model.User{ID: 7, Username: "wanjiku", PasswordHash: string(hashed)}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByUsername", mock.Anything, "wanjiku").Return(user, nil)
	mockRepo.On("FindByID", mock.Anything, 7).Return(user, nil)

	tokens := authpkg.NewTokenService("test-secret")
	sessions := authpkg.NewMemorySessionStore()
	svc := NewAuthService(mockRepo, tokens, sessions, time.Hour)

	token, _, err := svc.Login(context.Background(), "wanjiku", "secret123")
	assert.NoError(t, err)

	claims, err := tokens.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)

	resolved, err := svc.ResolveSession(context.Background(), claims.ID)
	assert.NoError(t, err)
	assert.Equal(t, "wanjiku", resolved.Username)
}

func TestAuthService_ResolveSession(t *testing.T) {
	user := &model.User{ID: 3, Username: "wanjiku"}

	t.Run("unknown session", func(t *testing.T) {
		svc, _ := newTestAuthService(new(MockUserRepository))

		_, err := svc.ResolveSession(context.Background(), "no-such-session")
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("expired session", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		svc, sessions := newTestAuthService(mockRepo)

		now := time.Now()
		_ = sessions.Put(context.Background(), authpkg.Session{
			ID:        "stale",
			UserID:    3,
			IssuedAt:  now.Add(-2 * time.Hour),
			ExpiresAt: now.Add(-time.Hour),
		})

		_, err := svc.ResolveSession(context.Background(), "stale")
		assert.ErrorIs(t, err, apperrors.ErrSessionExpired)
	})

	t.Run("session whose user vanished", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, 3).Return(nil, apperrors.ErrNotFound)
		svc, sessions := newTestAuthService(mockRepo)

		now := time.Now()
		_ = sessions.Put(context.Background(), authpkg.Session{
			ID:        "orphan",
			UserID:    3,
			IssuedAt:  now,
			ExpiresAt: now.Add(time.Hour),
		})

		_, err := svc.ResolveSession(context.Background(), "orphan")
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
	})

	t.Run("live session", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, 3).Return(user, nil)
		svc, sessions := newTestAuthService(mockRepo)

		now := time.Now()
		_ = sessions.Put(context.Background(), authpkg.Session{
			ID:        "live",
			UserID:    3,
			IssuedAt:  now,
			ExpiresAt: now.Add(time.Hour),
		})

		resolved, err := svc.ResolveSession(context.Background(), "live")
		assert.NoError(t, err)
		assert.Equal(t, user.Username, resolved.Username)
	})
}

func TestAuthService_Logout(t *testing.T) {
	mockRepo := new(MockUserRepository)
	svc, sessions := newTestAuthService(mockRepo)

	now := time.Now()
	_ = sessions.Put(context.Background(), authpkg.Session{
		ID:        "to-revoke",
		UserID:    1,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	})

	assert.NoError(t, svc.Logout(context.Background(), "to-revoke"))

	// The session is gone immediately; the token cannot be used again.
	_, err := svc.ResolveSession(context.Background(), "to-revoke")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	// Logout of an already removed session is a no-op.
	assert.NoError(t, svc.Logout(context.Background(), "to-revoke"))
}
