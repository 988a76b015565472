package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lucky-money/pkg/jwt"
	"lucky-money/pkg/logger"
	"lucky-money/pkg/models"
	"lucky-money/pkg/oidc"
	"lucky-money/services/auth/internal/entity"
	"lucky-money/services/auth/internal/repo/persistent"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidIDToken     = errors.New("invalid google id token")
	ErrGoogleDisabled     = errors.New("google sign-in is not configured")
)

// IdentityVerifier checks a Google ID token and returns the identity it asserts.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, rawToken string) (*oidc.Identity, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, email, name, password string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*entity.User, string, error)
	GetUser(ctx context.Context, userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	verifier   IdentityVerifier
	logger     *logger.Logger
}

// NewAuthUseCase wires the auth flows. verifier may be nil, which disables Google sign-in.
func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	verifier IdentityVerifier,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		verifier:   verifier,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(ctx context.Context, email, name, password string) (*entity.User, string, error) {
	user, err := uc.createWithPassword(ctx, email, name, password, entity.RoleUser)
	if err != nil {
		return nil, "", err
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, persistent.ErrNotFound) {
			uc.logger.Error("Failed to load user by email: %v", err)
		}
		return nil, "", ErrInvalidCredentials
	}

	// Google-only accounts carry no password and cannot sign in with credentials.
	if !user.HasPassword() {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *authUseCase) LoginWithGoogle(ctx context.Context, idToken string) (*entity.User, string, error) {
	if uc.verifier == nil {
		return nil, "", ErrGoogleDisabled
	}

	identity, err := uc.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		uc.logger.Warn("Rejected google id token: %v", err)
		return nil, "", ErrInvalidIDToken
	}

	user, err := uc.upsertGoogleUser(ctx, identity)
	if err != nil {
		return nil, "", err
	}

	token, err := uc.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (uc *authUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Error("Failed to get user: %v", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (uc *authUseCase) createWithPassword(ctx context.Context, email, name, password string, role entity.UserRole) (*entity.User, error) {
	email = normalizeEmail(email)

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, persistent.ErrNotFound) {
		uc.logger.Error("Failed to check existing user: %v", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), models.PasswordHashCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("failed to process registration: %w", err)
	}
	hash := string(hashedPassword)

	user := &entity.User{
		Email:    email,
		Name:     strings.TrimSpace(name),
		Password: &hash,
		Role:     role,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Info("Created %s account %s", role, user.ID)
	return user, nil
}

// upsertGoogleUser finds the account bound to the Google subject, links an
// existing account with the same verified email, or creates a new USER.
func (uc *authUseCase) upsertGoogleUser(ctx context.Context, identity *oidc.Identity) (*entity.User, error) {
	user, err := uc.userRepo.GetByGoogleSubject(ctx, identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, persistent.ErrNotFound) {
		uc.logger.Error("Failed to load user by google subject: %v", err)
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	email := normalizeEmail(identity.Email)
	subject := identity.Subject

	if identity.EmailVerified && email != "" {
		existing, err := uc.userRepo.GetByEmail(ctx, email)
		switch {
		case err == nil:
			existing.GoogleSubject = &subject
			if existing.Image == "" {
				existing.Image = identity.Picture
			}
			if err := uc.userRepo.Update(ctx, existing); err != nil {
				uc.logger.Error("Failed to link google account: %v", err)
				return nil, fmt.Errorf("failed to link google account: %w", err)
			}
			return existing, nil
		case !errors.Is(err, persistent.ErrNotFound):
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
	} else if email != "" {
		if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
			return nil, ErrEmailTaken
		}
	}

	user = &entity.User{
		Email:         email,
		Name:          identity.Name,
		Image:         identity.Picture,
		GoogleSubject: &subject,
		Role:          entity.RoleUser,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		uc.logger.Error("Failed to create google user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (uc *authUseCase) issueToken(user *entity.User) (string, error) {
	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
