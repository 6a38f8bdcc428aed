package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/identity"
	"usespace-backend/internal/security"
)

func newTestTokens() security.TokenManager {
	return security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour, 24*time.Hour)
}

func TestRegisterLocal_Success(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound)
	users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "new@example.com" && u.Role == domain.RoleLandlord && u.PasswordHash != "" && u.PasswordHash != "secret123"
	})).Return(nil)

	svc := NewAuthService(users, newTestTokens(), nil, domain.RoleTenant)
	user, pair, err := svc.RegisterLocal(context.Background(), "New User", "New@Example.com ", "secret123", domain.RoleLandlord)
	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	users.AssertExpectations(t)
}

func TestRegisterLocal_MasterBlocked(t *testing.T) {
	svc := NewAuthService(new(MockUserRepo), newTestTokens(), nil, domain.RoleTenant)
	_, _, err := svc.RegisterLocal(context.Background(), "X", "x@example.com", "secret123", domain.RoleMaster)
	assert.True(t, domain.IsValidation(err))
}

func TestRegisterLocal_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "taken@example.com").Return(&domain.User{ID: "u1"}, nil)

	svc := NewAuthService(users, newTestTokens(), nil, domain.RoleTenant)
	_, _, err := svc.RegisterLocal(context.Background(), "X", "taken@example.com", "secret123", domain.RoleTenant)
	assert.True(t, domain.IsValidation(err))
}

func TestLoginLocal_WrongPassword(t *testing.T) {
	users := new(MockUserRepo)
	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound).Once()
	users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created := args.Get(1).(*domain.User)
		users.On("GetByEmail", mock.Anything, "new@example.com").Return(created, nil)
	}).Return(nil)

	svc := NewAuthService(users, newTestTokens(), nil, domain.RoleTenant)
	_, _, err := svc.RegisterLocal(context.Background(), "X", "new@example.com", "secret123", domain.RoleTenant)
	assert.NoError(t, err)

	_, _, err = svc.LoginLocal(context.Background(), "new@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, pair, err := svc.LoginLocal(context.Background(), "new@example.com", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestLoginWithIDToken_DefaultRoleFallback(t *testing.T) {
	verifier := new(MockVerifier)
	verifier.On("VerifyIDToken", mock.Anything, "good-token").
		Return(&identity.Identity{SubjectID: "fb-uid-1", Email: "ghost@example.com"}, nil)

	users := new(MockUserRepo)
	users.On("GetByID", mock.Anything, "fb-uid-1").Return(nil, domain.ErrNotFound)

	svc := NewAuthService(users, newTestTokens(), verifier, domain.RoleTenant)
	user, pair, err := svc.LoginWithIDToken(context.Background(), "good-token")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleTenant, user.Role, "missing profile must fall back to the default role")
	assert.NotEmpty(t, pair.AccessToken)
}

func TestLoginWithIDToken_BadToken(t *testing.T) {
	verifier := new(MockVerifier)
	verifier.On("VerifyIDToken", mock.Anything, "bad-token").Return(nil, errors.New("expired"))

	svc := NewAuthService(new(MockUserRepo), newTestTokens(), verifier, domain.RoleTenant)
	_, _, err := svc.LoginWithIDToken(context.Background(), "bad-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWithIDToken_StoredRoleWins(t *testing.T) {
	verifier := new(MockVerifier)
	verifier.On("VerifyIDToken", mock.Anything, "good-token").
		Return(&identity.Identity{SubjectID: "fb-uid-2", Email: "owner@example.com"}, nil)

	users := new(MockUserRepo)
	users.On("GetByID", mock.Anything, "fb-uid-2").
		Return(&domain.User{ID: "fb-uid-2", Email: "owner@example.com", Role: domain.RoleLandlord}, nil)

	svc := NewAuthService(users, newTestTokens(), verifier, domain.RoleTenant)
	user, _, err := svc.LoginWithIDToken(context.Background(), "good-token")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleLandlord, user.Role)
}

func TestResolvePrincipal_RoundTrip(t *testing.T) {
	tokens := newTestTokens()
	users := new(MockUserRepo)
	svc := NewAuthService(users, tokens, nil, domain.RoleTenant)

	access, err := tokens.GenerateAccessToken("u-1", "a@example.com", domain.RoleLandlord)
	assert.NoError(t, err)

	principal, err := svc.ResolvePrincipal(context.Background(), access)
	assert.NoError(t, err)
	assert.Equal(t, "u-1", principal.ID)
	assert.Equal(t, domain.RoleLandlord, principal.Role)
}

func TestResolvePrincipal_RejectsRefreshToken(t *testing.T) {
	tokens := newTestTokens()
	svc := NewAuthService(new(MockUserRepo), tokens, nil, domain.RoleTenant)

	refresh, err := tokens.GenerateRefreshToken("u-1", "a@example.com")
	assert.NoError(t, err)

	_, err = svc.ResolvePrincipal(context.Background(), refresh)
	assert.ErrorIs(t, err, security.ErrWrongTokenType)
}

func TestRefresh_ReloadsRole(t *testing.T) {
	tokens := newTestTokens()
	users := new(MockUserRepo)
	users.On("GetByID", mock.Anything, "u-1").
		Return(&domain.User{ID: "u-1", Email: "a@example.com", Role: domain.RoleLandlord}, nil)

	svc := NewAuthService(users, tokens, nil, domain.RoleTenant)
	refresh, err := tokens.GenerateRefreshToken("u-1", "a@example.com")
	assert.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), refresh)
	assert.NoError(t, err)

	claims, err := tokens.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleLandlord, claims.Role)
}
