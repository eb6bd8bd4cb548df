package services

import (
	"context"
	"testing"
	"time"

	"store-service/internal/auth"
	"store-service/internal/domain"
	"store-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestUserService(users *mocks.MockUserRepository) (*UserService, *auth.TokenMaker) {
	tokens := auth.NewTokenMaker("test-secret", time.Hour)
	return NewUserService(users, tokens), tokens
}

func TestUserService_Register(t *testing.T) {
	t.Run("creates user with hashed password and user role", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", mock.Anything, TestEmail).Return(nil, nil)

		var saved *domain.User
		users.On("Save", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*domain.User)
		})

		service, _ := newTestUserService(users)

		user, err := service.Register(context.Background(), TestEmail, TestPassword)

		assert.NoError(t, err)
		assert.Equal(t, TestEmail, user.Email)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.NotEqual(t, TestPassword, saved.PasswordHash)
		assert.True(t, auth.CheckPassword(saved.PasswordHash, TestPassword))
		assert.WithinDuration(t, time.Now(), user.RegisterAt, time.Second)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByEmail", mock.Anything, TestEmail).
			Return(CreateTestUser(1, TestEmail, TestPassword, domain.RoleUser), nil)

		service, _ := newTestUserService(users)

		_, err := service.Register(context.Background(), TestEmail, TestPassword)

		assert.ErrorIs(t, err, ErrEmailTaken)
		users.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestUserService_SignIn(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:     "valid credentials",
			email:    TestEmail,
			password: TestPassword,
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, TestEmail).
					Return(CreateTestUser(7, TestEmail, TestPassword, domain.RoleUser), nil)
			},
		},
		{
			name:     "wrong password",
			email:    TestEmail,
			password: "wrong",
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, TestEmail).
					Return(CreateTestUser(7, TestEmail, TestPassword, domain.RoleUser), nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: TestPassword,
			setupMocks: func(users *mocks.MockUserRepository) {
				users.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(mocks.MockUserRepository)
			tt.setupMocks(users)

			service, tokens := newTestUserService(users)

			user, token, err := service.SignIn(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)

				claims, err := tokens.Verify(token)
				assert.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID())
				assert.Equal(t, user.Role, claims.Role)
			}
		})
	}
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Run("rehashes and stamps changePassAt", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		existing := CreateTestUser(7, TestEmail, TestPassword, domain.RoleUser)
		users.On("FindByID", mock.Anything, uint(7)).Return(existing, nil)

		var updated *domain.User
		users.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			updated = args.Get(1).(*domain.User)
		})

		service, _ := newTestUserService(users)

		err := service.ChangePassword(context.Background(), 7, TestPassword, "newsecret")

		assert.NoError(t, err)
		assert.True(t, auth.CheckPassword(updated.PasswordHash, "newsecret"))
		assert.NotNil(t, updated.ChangePassAt)
	})

	t.Run("wrong old password", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", mock.Anything, uint(7)).
			Return(CreateTestUser(7, TestEmail, TestPassword, domain.RoleUser), nil)

		service, _ := newTestUserService(users)

		err := service.ChangePassword(context.Background(), 7, "wrong", "newsecret")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestUserService_UpdateRole(t *testing.T) {
	t.Run("unknown role rejected", func(t *testing.T) {
		service, _ := newTestUserService(new(mocks.MockUserRepository))

		_, err := service.UpdateRole(context.Background(), 7, domain.Role("owner"))
		assert.Error(t, err)
	})

	t.Run("promotes to admin", func(t *testing.T) {
		users := new(mocks.MockUserRepository)
		users.On("FindByID", mock.Anything, uint(7)).
			Return(CreateTestUser(7, TestEmail, TestPassword, domain.RoleUser), nil)
		users.On("Update", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

		service, _ := newTestUserService(users)

		user, err := service.UpdateRole(context.Background(), 7, domain.RoleAdmin)

		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, user.Role)
	})
}
