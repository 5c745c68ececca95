package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Mohammed-hani69/adsvairl/internal/data/entity"
	"github.com/Mohammed-hani69/adsvairl/internal/data/repository"
	"github.com/Mohammed-hani69/adsvairl/internal/dto/request"
	"github.com/Mohammed-hani69/adsvairl/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	service  *authService
	now      time.Time
}

func newAuthFixture(t *testing.T, users ...*entity.User) *authFixture {
	t.Helper()

	f := &authFixture{
		users:    newFakeUserRepo(users...),
		sessions: &fakeSessionRepo{},
		now:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	repo := &repository.Repository{User: f.users, Session: f.sessions}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 48}}

	f.service = NewAuthService(repo, config, zap.NewNop()).(*authService)
	f.service.now = func() time.Time { return f.now }
	return f
}

func existingUser(t *testing.T, username, email, password string, active bool) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsActive:     active,
	}
}

func TestAuthService_Register(t *testing.T) {
	taken := existingUser(t, "ahmed", "ahmed@example.com", "secret1", true)

	tests := []struct {
		name    string
		req     request.RegisterRequest
		wantErr error
	}{
		{
			name: "new user",
			req:  request.RegisterRequest{Username: "sara", Email: "Sara@Example.com ", Password: "secret1"},
		},
		{
			name:    "duplicate email",
			req:     request.RegisterRequest{Username: "other", Email: "ahmed@example.com", Password: "secret1"},
			wantErr: ErrConflict,
		},
		{
			name:    "duplicate username",
			req:     request.RegisterRequest{Username: "ahmed", Email: "new@example.com", Password: "secret1"},
			wantErr: ErrConflict,
		},
		{
			name:    "short password",
			req:     request.RegisterRequest{Username: "sara", Email: "sara@example.com", Password: "123"},
			wantErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, taken)

			user, err := f.service.Register(context.Background(), &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "sara@example.com", user.Email)
			assert.True(t, user.IsActive)
			assert.False(t, user.IsAdmin)

			stored, _ := f.users.FindByEmail(context.Background(), "sara@example.com")
			require.NotNil(t, stored)
			assert.NotEqual(t, "secret1", stored.PasswordHash)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	active := existingUser(t, "ahmed", "ahmed@example.com", "secret1", true)
	blocked := existingUser(t, "blocked", "blocked@example.com", "secret1", false)

	tests := []struct {
		name       string
		identifier string
		password   string
		wantErr    error
	}{
		{name: "by username", identifier: "ahmed", password: "secret1"},
		{name: "by email", identifier: "ahmed@example.com", password: "secret1"},
		{name: "wrong password", identifier: "ahmed", password: "wrong!!", wantErr: ErrInvalidCredentials},
		{name: "unknown user", identifier: "ghost", password: "secret1", wantErr: ErrInvalidCredentials},
		{name: "inactive user", identifier: "blocked", password: "secret1", wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t, active, blocked)

			auth, err := f.service.Login(context.Background(),
				&request.LoginRequest{Identifier: tt.identifier, Password: tt.password},
				ClientInfo{UserAgent: "test", IPAddress: "127.0.0.1"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, f.sessions.created)
				return
			}

			require.NoError(t, err)
			require.Len(t, f.sessions.created, 1)
			session := f.sessions.created[0]
			assert.Equal(t, session.Token.String(), auth.Token)
			assert.Equal(t, f.now.Add(48*time.Hour), session.ExpiresAt)
			assert.Equal(t, "127.0.0.1", *session.IPAddress)
			assert.Equal(t, []uuid.UUID{active.ID}, f.users.touched)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture(t)
	token := uuid.New()

	require.NoError(t, f.service.Logout(context.Background(), token.String()))
	assert.Equal(t, []uuid.UUID{token}, f.sessions.revoked)

	err := f.service.Logout(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	f := newAuthFixture(t)
	f.users.createErr = fmt.Errorf("create user: %w", repository.ErrDuplicate)

	_, err := f.service.Register(context.Background(), &request.RegisterRequest{
		Username: "mona",
		Email:    "mona@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrConflict)
}
