package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"usespace-backend/internal/domain"
	"usespace-backend/internal/identity"
	"usespace-backend/internal/logger"
	"usespace-backend/internal/repository"
	"usespace-backend/internal/security"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// TokenPair is the first-party token set handed to a client after
// authentication.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type authService struct {
	userRepo    repository.UserRepository
	tokens      security.TokenManager
	verifier    identity.Verifier
	defaultRole domain.Role
}

// NewAuthService wires authentication. verifier may be nil when the
// deployment runs in local email+password mode.
func NewAuthService(
	userRepo repository.UserRepository,
	tokens security.TokenManager,
	verifier identity.Verifier,
	defaultRole domain.Role,
) AuthService {
	if !defaultRole.Valid() || defaultRole == domain.RoleMaster {
		defaultRole = domain.RoleTenant
	}
	return &authService{
		userRepo:    userRepo,
		tokens:      tokens,
		verifier:    verifier,
		defaultRole: defaultRole,
	}
}

func (s *authService) RegisterLocal(ctx context.Context, fullName, email, password string, role domain.Role) (*domain.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, nil, domain.NewValidationError("email", "must not be empty")
	}
	if len(password) < 6 {
		return nil, nil, domain.NewValidationError("password", "must be at least 6 characters")
	}
	if role != domain.RoleTenant && role != domain.RoleLandlord {
		return nil, nil, domain.NewValidationError("role", "must be tenant or landlord")
	}
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, nil, domain.NewValidationError("email", "already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(fullName),
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) LoginLocal(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) RegisterWithIDToken(ctx context.Context, idToken, fullName string, role domain.Role) (*domain.User, *TokenPair, error) {
	if s.verifier == nil {
		return nil, nil, errors.New("identity provider auth is not configured")
	}
	if role != domain.RoleTenant && role != domain.RoleLandlord {
		return nil, nil, domain.NewValidationError("role", "must be tenant or landlord")
	}
	ident, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, ident.SubjectID)
	if err == nil {
		// Registration is idempotent for an existing subject; the stored
		// role wins over the requested one.
		pair, err := s.issueTokens(user)
		if err != nil {
			return nil, nil, err
		}
		return user, pair, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, nil, err
	}

	user = &domain.User{
		ID:       ident.SubjectID,
		Email:    ident.Email,
		FullName: strings.TrimSpace(fullName),
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}
	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) LoginWithIDToken(ctx context.Context, idToken string) (*domain.User, *TokenPair, error) {
	if s.verifier == nil {
		return nil, nil, errors.New("identity provider auth is not configured")
	}
	ident, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByID(ctx, ident.SubjectID)
	if errors.Is(err, domain.ErrNotFound) {
		// The provider vouched for the identity but no profile exists,
		// typically a half-finished signup. Let the user in with the
		// least-privileged configured role instead of locking them out.
		logger.WarnContext(ctx, "no profile for authenticated subject, using default role",
			"subject", ident.SubjectID, "default_role", s.defaultRole)
		user = &domain.User{
			ID:    ident.SubjectID,
			Email: ident.Email,
			Role:  s.defaultRole,
		}
	} else if err != nil {
		return nil, nil, err
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != security.TokenTypeRefresh {
		return nil, security.ErrWrongTokenType
	}

	// Re-read the profile so a role change takes effect at refresh time.
	role := s.defaultRole
	email := claims.Email
	if user, err := s.userRepo.GetByID(ctx, claims.UserID); err == nil {
		role = user.Role
		email = user.Email
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	access, err := s.tokens.GenerateAccessToken(claims.UserID, email, role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(claims.UserID, email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *authService) ResolvePrincipal(ctx context.Context, accessToken string) (*domain.Principal, error) {
	claims, err := s.tokens.ValidateToken(accessToken)
	if err != nil {
		return nil, err
	}
	if claims.Type != security.TokenTypeAccess {
		return nil, security.ErrWrongTokenType
	}
	role := claims.Role
	if !role.Valid() {
		role = s.defaultRole
	}
	return &domain.Principal{ID: claims.UserID, Email: claims.Email, Role: role}, nil
}

func (s *authService) issueTokens(user *domain.User) (*TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
