package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravenlog/ravenlog/internal/app/models"
	"github.com/ravenlog/ravenlog/internal/app/models/dto"
	"github.com/ravenlog/ravenlog/internal/app/repositories"
	"github.com/ravenlog/ravenlog/internal/pkg/apperrors"
	"github.com/ravenlog/ravenlog/internal/pkg/auth"
)

type fakeUserAccountStore struct {
	users  map[int64]*models.User
	nextID int64
}

func (f *fakeUserAccountStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserAccountStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserAccountStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserAccountStore) UpdateLastLogin(_ context.Context, userID int64) error {
	user, ok := f.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	user.LastLoginAt = &now
	return nil
}

type fakeTokenStore struct {
	tokens map[string]*repositories.RefreshToken
}

func (f *fakeTokenStore) Save(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	f.tokens[token] = &repositories.RefreshToken{
		ID:        int64(len(f.tokens) + 1),
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

func (f *fakeTokenStore) Get(_ context.Context, token string) (*repositories.RefreshToken, error) {
	stored, ok := f.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	return stored, nil
}

func (f *fakeTokenStore) Revoke(_ context.Context, token string) error {
	stored, ok := f.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.Revoked = true
	return nil
}

type authFixture struct {
	service *AuthService
	users   *fakeUserAccountStore
	tokens  *fakeTokenStore
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := &fakeUserAccountStore{users: make(map[int64]*models.User)}
	tokens := &fakeTokenStore{tokens: make(map[string]*repositories.RefreshToken)}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "ravenlog-test",
	})

	return &authFixture{
		service: NewAuthService(users, tokens, jwtService),
		users:   users,
		tokens:  tokens,
	}
}

func (f *authFixture) register(t *testing.T) *models.User {
	t.Helper()
	user, err := f.service.Register(context.Background(), &dto.RegisterRequest{
		Email:     "pilot@ravenlog.local",
		Password:  "Hunter22!",
		FirstName: "Maya",
		LastName:  "Reyes",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterCreatesCandidate(t *testing.T) {
	f := newAuthFixture(t)

	user := f.register(t)

	assert.Equal(t, models.RoleCandidate, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "Hunter22!", user.Password, "password must be stored hashed")
	assert.True(t, auth.CheckPassword(user.Password, "Hunter22!"))
	assert.False(t, auth.CheckPassword(user.Password, "not-the-password"))
}

func TestLoginIssuesTokenPair(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t)

	resp, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "pilot@ravenlog.local",
		Password: "Hunter22!",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int(time.Hour.Seconds()), resp.ExpiresIn)

	// The refresh token is persisted for later exchange
	_, err = f.tokens.Get(context.Background(), resp.RefreshToken)
	assert.NoError(t, err)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t)

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "pilot@ravenlog.local",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown accounts yield the same error as a wrong password
	_, err = f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@ravenlog.local",
		Password: "Hunter22!",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	f := newAuthFixture(t)
	user := f.register(t)
	f.users.users[user.ID].IsActive = false

	_, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "pilot@ravenlog.local",
		Password: "Hunter22!",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshRotatesToken(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t)

	login, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "pilot@ravenlog.local",
		Password: "Hunter22!",
	})
	require.NoError(t, err)

	refreshed, err := f.service.Refresh(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// A refresh token is single use
	_, err = f.service.Refresh(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: login.RefreshToken,
	})
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	user := f.register(t)

	require.NoError(t, f.tokens.Save(context.Background(), user.ID, "stale", time.Now().Add(-time.Minute)))

	_, err := f.service.Refresh(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "stale"})
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)

	_, err = f.service.Refresh(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "never-issued"})
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newAuthFixture(t)
	f.register(t)

	login, err := f.service.Login(context.Background(), &dto.LoginRequest{
		Email:    "pilot@ravenlog.local",
		Password: "Hunter22!",
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Logout(context.Background(), login.RefreshToken))

	_, err = f.service.Refresh(context.Background(), &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}
