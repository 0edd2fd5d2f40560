package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"oficinas/internal/auth"
	apperrors "oficinas/internal/errors"
	"oficinas/internal/model"
)

func newAuthService(repo *MockUserRepository, store *MockTokenStore) AuthService {
	return NewAuthService(repo, auth.NewJWTService("test-secret"), store)
}

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockUserRepository)
		wantErr   error
	}{
		{
			name: "creates user with hashed password and default role",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "ana@x.com").
					Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					if u.Role != model.RoleStudent {
						return false
					}
					return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw123456")) == nil
				})).Return(nil)
			},
		},
		{
			name: "rejects an already registered email",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "ana@x.com").
					Return(&model.User{ID: 1, Email: "ana@x.com"}, nil)
			},
			wantErr: apperrors.ErrEmailTaken,
		},
		{
			name: "maps a lost insert race to the duplicate error",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "ana@x.com").
					Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.Anything).
					Return(gorm.ErrDuplicatedKey)
			},
			wantErr: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)

			svc := newAuthService(repo, new(MockTokenStore))
			user, err := svc.Register(context.Background(), "Ana", "ana@x.com", "pw123456")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "ana@x.com", user.Email)
				assert.Equal(t, model.RoleStudent, user.Role)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash := hashFor(t, "pw123456")

	t.Run("returns user without password hash plus tokens", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ana@x.com").
			Return(&model.User{ID: 1, Name: "Ana", Email: "ana@x.com", PasswordHash: hash, Role: model.RoleStudent}, nil)

		store := new(MockTokenStore)
		store.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "ana@x.com", auth.RefreshTokenExpiry).
			Return(nil)

		svc := newAuthService(repo, store)
		user, accessToken, refreshToken, err := svc.Login(context.Background(), "ana@x.com", "pw123456")

		assert.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		store.AssertExpectations(t)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "ghost@x.com").
			Return(nil, gorm.ErrRecordNotFound)
		repo.On("FindByEmail", mock.Anything, "ana@x.com").
			Return(&model.User{ID: 1, Email: "ana@x.com", PasswordHash: hash}, nil)

		svc := newAuthService(repo, new(MockTokenStore))

		_, _, _, unknownErr := svc.Login(context.Background(), "ghost@x.com", "pw123456")
		_, _, _, wrongPwErr := svc.Login(context.Background(), "ana@x.com", "wrongpw")

		assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongPwErr, apperrors.ErrInvalidCredentials)
		assert.Equal(t, unknownErr, wrongPwErr)
	})
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	hash := hashFor(t, "pw123456")

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "ana@x.com").
		Return(&model.User{ID: 1, Email: "ana@x.com", PasswordHash: hash, Role: model.RoleStudent}, nil)
	repo.On("FindByID", mock.Anything, uint(1)).
		Return(&model.User{ID: 1, Email: "ana@x.com", Role: model.RoleInstructor}, nil)

	store := new(MockTokenStore)
	var storedTokenID string
	store.On("StoreRefreshToken", mock.Anything, mock.Anything, uint(1), "ana@x.com", auth.RefreshTokenExpiry).
		Run(func(args mock.Arguments) { storedTokenID = args.String(1) }).
		Return(nil)

	svc := newAuthService(repo, store)
	_, _, refreshToken, err := svc.Login(context.Background(), "ana@x.com", "pw123456")
	assert.NoError(t, err)

	store.On("GetRefreshToken", mock.Anything, mock.MatchedBy(func(id string) bool { return id == storedTokenID })).
		Return(uint(1), "ana@x.com", nil)

	accessToken, err := svc.RefreshToken(context.Background(), refreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	store.On("DeleteRefreshToken", mock.Anything, storedTokenID).Return(nil)
	assert.NoError(t, svc.Logout(context.Background(), refreshToken))

	t.Run("garbage refresh token is rejected", func(t *testing.T) {
		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
