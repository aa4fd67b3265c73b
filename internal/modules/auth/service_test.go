package auth

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = "user-1"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateToken(userID, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	service := NewService(users, jwt)

	users.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwt.On("GenerateToken", "user-1", "guest").Return("token-abc", nil)

	res, err := service.Register(context.Background(), RegisterRequest{
		Email:    "  New@Example.com ",
		Password: "secret123",
		Name:     "New Guest",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-abc", res.Token)
	assert.Equal(t, domain.RoleGuest, res.User.Role)
	assert.Equal(t, "new@example.com", res.User.Email)
	assert.True(t, res.User.IsActive)
	// password never stored in the clear
	assert.NotEqual(t, "secret123", res.User.PasswordHash)
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	users.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

	_, err := service.Register(context.Background(), RegisterRequest{
		Email: "taken@example.com", Password: "x",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	jwt := new(MockJWTService)
	service := NewService(users, jwt)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "guest@example.com").Return(&domain.User{
		ID: "u1", Email: "guest@example.com", PasswordHash: string(hash),
		Role: domain.RoleGuest, IsActive: true,
	}, nil)
	jwt.On("GenerateToken", "u1", "guest").Return("token-xyz", nil)

	res, err := service.Login(context.Background(), LoginRequest{
		Email: "guest@example.com", Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-xyz", res.Token)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "guest@example.com").Return(&domain.User{
		ID: "u1", PasswordHash: string(hash), IsActive: true,
	}, nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email: "guest@example.com", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	users.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Login(context.Background(), LoginRequest{
		Email: "nobody@example.com", Password: "x",
	})
	// indistinguishable from a wrong password
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_DisabledUser(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockJWTService))

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "banned@example.com").Return(&domain.User{
		ID: "u1", PasswordHash: string(hash), IsActive: false,
	}, nil)

	_, err := service.Login(context.Background(), LoginRequest{
		Email: "banned@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrUserDisabled)
}
