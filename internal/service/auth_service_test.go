package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"policydesk/internal/auth"
	"policydesk/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockUserRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, email, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenStore) BlacklistAccessToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) IsAccessTokenBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret123"), 10)
	admin := &model.AdminUser{
		ID:           1,
		Username:     "admin",
		Email:        "agent@example.com",
		PasswordHash: string(hashedPassword),
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "agent@example.com",
			password: "secret123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "agent@example.com").Return(admin, nil)
				mToken.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "agent@example.com", mock.Anything).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret123",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "agent@example.com",
			password: "not-the-password",
			setupMock: func(mRepo *MockUserRepository, mToken *MockTokenStore) {
				mRepo.On("FindByEmail", mock.Anything, "agent@example.com").Return(admin, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockTokenStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockTokenStore)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService, mockTokenStore)

			accessToken, refreshToken, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Empty(t, refreshToken)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockRepo.AssertExpectations(t)
			mockTokenStore.AssertExpectations(t)
		})
	}
}

// Both failure modes must be indistinguishable so login errors never leak
// whether an email exists.
func TestAuthService_Login_NoEnumeration(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret123"), 10)

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByEmail", mock.Anything, "agent@example.com").Return(&model.AdminUser{
		ID:           1,
		Email:        "agent@example.com",
		PasswordHash: string(hashedPassword),
	}, nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))

	_, _, _, errUnknown := service.Login(context.Background(), "nobody@example.com", "whatever")
	_, _, _, errWrongPass := service.Login(context.Background(), "agent@example.com", "whatever")

	assert.Equal(t, errUnknown, errWrongPass)
	assert.Equal(t, ErrInvalidCredentials, errUnknown)
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	t.Run("valid refresh token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "agent@example.com")
		assert.NoError(t, err)

		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(1), "agent@example.com", nil)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
		accessToken, err := service.RefreshToken(context.Background(), refreshToken)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		mockTokenStore.AssertExpectations(t)
	})

	t.Run("revoked refresh token", func(t *testing.T) {
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "agent@example.com")
		assert.NoError(t, err)

		mockTokenStore := new(MockTokenStore)
		mockTokenStore.On("GetRefreshToken", mock.Anything, tokenID).Return(uint(0), "", assert.AnError)

		service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
		_, err = service.RefreshToken(context.Background(), refreshToken)

		assert.Equal(t, ErrInvalidRefreshToken, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		service := NewAuthService(new(MockUserRepository), jwtService, new(MockTokenStore))
		_, err := service.RefreshToken(context.Background(), "not-a-jwt")
		assert.Equal(t, ErrInvalidRefreshToken, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "agent@example.com")
	assert.NoError(t, err)
	accessToken, err := jwtService.GenerateAccessToken(1, "agent@example.com")
	assert.NoError(t, err)

	mockTokenStore := new(MockTokenStore)
	mockTokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)
	mockTokenStore.On("BlacklistAccessToken", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(nil)

	service := NewAuthService(new(MockUserRepository), jwtService, mockTokenStore)
	err = service.Logout(context.Background(), refreshToken, accessToken)

	assert.NoError(t, err)
	mockTokenStore.AssertExpectations(t)
}

func TestAuthService_Seed(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("DeleteAll", mock.Anything).Return(nil)
	mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.AdminUser) bool {
		if u.Email != "agent@example.com" || u.Username != "admin" {
			return false
		}
		// Password must be stored hashed, never plaintext.
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")) == nil
	})).Return(nil)

	service := NewAuthService(mockRepo, auth.NewJWTService("test-secret"), new(MockTokenStore))
	user, err := service.Seed(context.Background(), "admin", "agent@example.com", "secret123")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	mockRepo.AssertExpectations(t)
}
