package usecase

import (
	"context"
	"errors"
	"testing"

	"lucky-money/pkg/jwt"
	"lucky-money/pkg/logger"
	"lucky-money/pkg/models"
	"lucky-money/pkg/oidc"
	"lucky-money/services/auth/internal/entity"
	"lucky-money/services/auth/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	if user.ID == "" {
		user.ID = "generated-id"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByGoogleSubject(ctx context.Context, subject string) (*entity.User, error) {
	args := m.Called(ctx, subject)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) VerifyIDToken(ctx context.Context, rawToken string) (*oidc.Identity, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oidc.Identity), args.Error(1)
}

func hashed(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func newTestUseCase(repo *MockUserRepository, verifier IdentityVerifier) (AuthUseCase, *jwt.Service) {
	jwtService := jwt.NewService("test-secret")
	return NewAuthUseCase(repo, jwtService, verifier, logger.New()), jwtService
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	uc, jwtService := newTestUseCase(repo, nil)
	ctx := context.Background()

	user := &entity.User{ID: "admin-1", Email: "admin@example.com", Password: hashed(t, "secret"), Role: entity.RoleAdmin}
	repo.On("GetByEmail", ctx, "admin@example.com").Return(user, nil)

	got, token, err := uc.Login(ctx, " Admin@Example.com ", "secret")

	require.NoError(t, err)
	assert.Equal(t, "admin-1", got.ID)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	uc, _ := newTestUseCase(repo, nil)
	ctx := context.Background()

	user := &entity.User{ID: "u1", Email: "a@example.com", Password: hashed(t, "secret"), Role: entity.RoleUser}
	repo.On("GetByEmail", ctx, "a@example.com").Return(user, nil)

	_, _, err := uc.Login(ctx, "a@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmailAndGoogleOnlyAccount(t *testing.T) {
	repo := new(MockUserRepository)
	uc, _ := newTestUseCase(repo, nil)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "missing@example.com").Return(nil, persistent.ErrNotFound)
	repo.On("GetByEmail", ctx, "google@example.com").Return(&entity.User{ID: "g1", Email: "google@example.com"}, nil)

	_, _, err := uc.Login(ctx, "missing@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = uc.Login(ctx, "google@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := new(MockUserRepository)
	uc, _ := newTestUseCase(repo, nil)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "a@example.com").Return(&entity.User{ID: "u1"}, nil)

	_, _, err := uc.Register(ctx, "a@example.com", "A", "secret123")
	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_HashesPasswordWithCost(t *testing.T) {
	repo := new(MockUserRepository)
	uc, _ := newTestUseCase(repo, nil)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "new@example.com").Return(nil, persistent.ErrNotFound)
	repo.On("Create", ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new@example.com" && u.Role == entity.RoleUser && u.HasPassword()
	})).Return(nil)

	user, token, err := uc.Register(ctx, "new@example.com", " New ", "secret123")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "New", user.Name)
	cost, err := bcrypt.Cost([]byte(*user.Password))
	require.NoError(t, err)
	assert.Equal(t, models.PasswordHashCost, cost)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte("secret123")))
}

func TestGetUser_NotFound(t *testing.T) {
	repo := new(MockUserRepository)
	uc, _ := newTestUseCase(repo, nil)
	ctx := context.Background()

	repo.On("GetByID", ctx, "missing").Return(nil, persistent.ErrNotFound)

	_, err := uc.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWithGoogle_Disabled(t *testing.T) {
	uc, _ := newTestUseCase(new(MockUserRepository), nil)

	_, _, err := uc.LoginWithGoogle(context.Background(), "token")
	assert.ErrorIs(t, err, ErrGoogleDisabled)
}

func TestLoginWithGoogle_InvalidToken(t *testing.T) {
	verifier := new(MockVerifier)
	uc, _ := newTestUseCase(new(MockUserRepository), verifier)
	ctx := context.Background()

	verifier.On("VerifyIDToken", ctx, "bad").Return(nil, errors.New("signature mismatch"))

	_, _, err := uc.LoginWithGoogle(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidIDToken)
}

func TestLoginWithGoogle_ExistingSubject(t *testing.T) {
	repo := new(MockUserRepository)
	verifier := new(MockVerifier)
	uc, _ := newTestUseCase(repo, verifier)
	ctx := context.Background()

	verifier.On("VerifyIDToken", ctx, "tok").Return(&oidc.Identity{Subject: "sub-1", Email: "g@example.com", EmailVerified: true}, nil)
	repo.On("GetByGoogleSubject", ctx, "sub-1").Return(&entity.User{ID: "u1", Role: entity.RoleAdmin}, nil)

	user, token, err := uc.LoginWithGoogle(ctx, "tok")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NotEmpty(t, token)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginWithGoogle_LinksVerifiedEmail(t *testing.T) {
	repo := new(MockUserRepository)
	verifier := new(MockVerifier)
	uc, _ := newTestUseCase(repo, verifier)
	ctx := context.Background()

	existing := &entity.User{ID: "u1", Email: "g@example.com", Role: entity.RoleUser}
	verifier.On("VerifyIDToken", ctx, "tok").Return(&oidc.Identity{Subject: "sub-1", Email: "G@example.com", EmailVerified: true, Picture: "https://img"}, nil)
	repo.On("GetByGoogleSubject", ctx, "sub-1").Return(nil, persistent.ErrNotFound)
	repo.On("GetByEmail", ctx, "g@example.com").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	user, _, err := uc.LoginWithGoogle(ctx, "tok")

	require.NoError(t, err)
	require.NotNil(t, user.GoogleSubject)
	assert.Equal(t, "sub-1", *user.GoogleSubject)
	assert.Equal(t, "https://img", user.Image)
}

func TestLoginWithGoogle_CreatesUser(t *testing.T) {
	repo := new(MockUserRepository)
	verifier := new(MockVerifier)
	uc, _ := newTestUseCase(repo, verifier)
	ctx := context.Background()

	verifier.On("VerifyIDToken", ctx, "tok").Return(&oidc.Identity{Subject: "sub-2", Email: "new@example.com", EmailVerified: true, Name: "New"}, nil)
	repo.On("GetByGoogleSubject", ctx, "sub-2").Return(nil, persistent.ErrNotFound)
	repo.On("GetByEmail", ctx, "new@example.com").Return(nil, persistent.ErrNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, _, err := uc.LoginWithGoogle(ctx, "tok")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.False(t, user.HasPassword())
	assert.Equal(t, "New", user.Name)
}
