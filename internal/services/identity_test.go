package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/denmor86/bet-bankroll/internal/config"
	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/denmor86/bet-bankroll/internal/storage"
	"github.com/denmor86/bet-bankroll/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func TestNewIdentityService(t *testing.T) {
	t.Run("Identity_CreatesService", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockUsers := mocks.NewMockUsersStorage(ctrl)

		config := config.DefaultConfig()
		identity := NewIdentity(config, mockUsers)
		baseService, ok := identity.(*Identity)
		if !ok {
			t.Fatalf("Expected *Identity, got: '%T'", identity)
		}
		if baseService == nil || baseService.JWTAuth == nil {
			t.Errorf("Expected Identity to be initialized with JWTAuth")
		}
		if baseService.Users != mockUsers {
			t.Errorf("Expected Identity to be initialized with provided storage")
		}
	})
}

func TestRegisterUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name          string
		setupMocks    func()
		expectedError error
		request       models.RegisterRequest
	}{
		{
			name: "Register User: Success #1",
			setupMocks: func() {
				mockUsers.EXPECT().AddUser(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user models.UserData, bankroll models.BankrollData) error {
						if user.Role != models.RoleUser {
							t.Errorf("Expected role USER, got: '%s'", user.Role)
						}
						if user.Status != models.UserStatusActive {
							t.Errorf("Expected status ACTIVE, got: '%s'", user.Status)
						}
						if user.PasswordHash == "test_pass" {
							t.Errorf("Expected password to be hashed")
						}
						if !bankroll.CurrentAmount.IsZero() || !bankroll.InitialAmount.IsZero() {
							t.Errorf("Expected new bankroll to start from zero")
						}
						if bankroll.UserID != user.UserID {
							t.Errorf("Expected bankroll to belong to the new user")
						}
						return nil
					})
			},
			expectedError: nil,
			request:       models.RegisterRequest{Username: "mda", Email: "mda@mail.ru", Password: "test_pass"},
		},
		{
			name: "Register User: ErrUserAlreadyExists #2",
			setupMocks: func() {
				mockUsers.EXPECT().AddUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
			},
			expectedError: ErrUserAlreadyExists,
			request:       models.RegisterRequest{Username: "mda", Email: "mda@mail.ru", Password: "test_pass"},
		},
		{
			name: "Register User: Undefined error #3",
			setupMocks: func() {
				mockUsers.EXPECT().AddUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("failed to add user"))
			},
			expectedError: errors.New("failed to add user"),
			request:       models.RegisterRequest{Username: "mda", Email: "mda@mail.ru", Password: "test_pass"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			identity := NewIdentity(config, mockUsers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			user, token, err := identity.RegisterUser(ctx, tc.request)

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
			if tc.expectedError == nil {
				if user == nil || user.Username != tc.request.Username {
					t.Errorf("Expected registered user data")
				}
				if token == "" {
					t.Errorf("Expected non-empty JWT token")
				}
			}
		})
	}
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	expectAddUser := func(role string) {
		mockUsers.EXPECT().AddUser(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, user models.UserData, bankroll models.BankrollData) error {
				if user.Role != role {
					t.Errorf("Expected role '%s', got: '%s'", role, user.Role)
				}
				if user.Status != models.UserStatusActive {
					t.Errorf("Expected status ACTIVE, got: '%s'", user.Status)
				}
				if !bankroll.CurrentAmount.IsZero() || !bankroll.InitialAmount.IsZero() {
					t.Errorf("Expected new bankroll to start from zero")
				}
				return nil
			})
	}

	testCases := []struct {
		name          string
		setupMocks    func()
		expectedError error
		request       models.CreateUserRequest
	}{
		{
			name:          "Create User: Default role #1",
			setupMocks:    func() { expectAddUser(models.RoleUser) },
			expectedError: nil,
			request:       models.CreateUserRequest{Username: "mda", Email: "mda@mail.ru", Password: "test_pass"},
		},
		{
			name:          "Create User: Admin role #2",
			setupMocks:    func() { expectAddUser(models.RoleAdmin) },
			expectedError: nil,
			request:       models.CreateUserRequest{Username: "mda", Email: "mda@mail.ru", Password: "test_pass", Role: models.RoleAdmin},
		},
		{
			name:          "Create User: Unknown role #3",
			setupMocks:    func() {},
			expectedError: ErrUnknownUserRole,
			request:       models.CreateUserRequest{Username: "mda", Email: "mda@mail.ru", Password: "test_pass", Role: "SUPERVISOR"},
		},
		{
			name: "Create User: ErrUserAlreadyExists #4",
			setupMocks: func() {
				mockUsers.EXPECT().AddUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
			},
			expectedError: ErrUserAlreadyExists,
			request:       models.CreateUserRequest{Username: "mda", Email: "mda@mail.ru", Password: "test_pass"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			identity := NewIdentity(config, mockUsers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			user, err := identity.CreateUser(ctx, tc.request)

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
			if tc.expectedError == nil {
				if user == nil || user.Username != tc.request.Username {
					t.Errorf("Expected created user data")
				}
			}
		})
	}
}

func TestAuthenticateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}
	passwordHash, _ := bcrypt.GenerateFromPassword([]byte("test_pass"), bcrypt.DefaultCost)

	testCases := []struct {
		name          string
		setupMocks    func()
		expectedError error
		request       models.LoginRequest
	}{
		{
			name: "Authenticate User: User not found #1",
			setupMocks: func() {
				mockUsers.EXPECT().GetUserByUsername(gomock.Any(), "mda").Return(nil, storage.ErrUserNotFound)
			},
			expectedError: ErrInvalidCredentials,
			request:       models.LoginRequest{Username: "mda", Password: "test_pass"},
		},
		{
			name: "Authenticate User: Invalid password #2",
			setupMocks: func() {
				mockUsers.EXPECT().GetUserByUsername(gomock.Any(), "mda").Return(&models.UserData{
					UserID: "1", Username: "mda", PasswordHash: string(passwordHash), Status: models.UserStatusActive,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
			request:       models.LoginRequest{Username: "mda", Password: "wrong_pass"},
		},
		{
			name: "Authenticate User: Inactive user #3",
			setupMocks: func() {
				mockUsers.EXPECT().GetUserByUsername(gomock.Any(), "mda").Return(&models.UserData{
					UserID: "1", Username: "mda", PasswordHash: string(passwordHash), Status: models.UserStatusInactive,
				}, nil)
			},
			expectedError: ErrUserInactive,
			request:       models.LoginRequest{Username: "mda", Password: "test_pass"},
		},
		{
			name: "Authenticate User: Success #4",
			setupMocks: func() {
				mockUsers.EXPECT().GetUserByUsername(gomock.Any(), "mda").Return(&models.UserData{
					UserID: "1", Username: "mda", Role: models.RoleUser,
					PasswordHash: string(passwordHash), Status: models.UserStatusActive,
				}, nil)
			},
			expectedError: nil,
			request:       models.LoginRequest{Username: "mda", Password: "test_pass"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			identity := NewIdentity(config, mockUsers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			user, token, err := identity.AuthenticateUser(ctx, tc.request)

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
			if tc.expectedError == nil {
				if user == nil || user.Username != tc.request.Username {
					t.Errorf("Expected authenticated user data")
				}
				if token == "" {
					t.Errorf("Expected non-empty JWT token")
				}
			}
		})
	}
}

func TestSetUserStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name          string
		userID        string
		status        string
		setupMocks    func()
		expectedError error
	}{
		{
			name:          "Set status: Unknown status #1",
			userID:        "1",
			status:        "BANNED",
			setupMocks:    func() {},
			expectedError: ErrUnknownUserStatus,
		},
		{
			name:   "Set status: User not found #2",
			userID: "1",
			status: models.UserStatusInactive,
			setupMocks: func() {
				mockUsers.EXPECT().UpdateUserStatus(gomock.Any(), "1", models.UserStatusInactive).Return(storage.ErrUserNotFound)
			},
			expectedError: storage.ErrUserNotFound,
		},
		{
			name:   "Set status: Success #3",
			userID: "1",
			status: models.UserStatusActive,
			setupMocks: func() {
				mockUsers.EXPECT().UpdateUserStatus(gomock.Any(), "1", models.UserStatusActive).Return(nil)
			},
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			identity := NewIdentity(config, mockUsers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := identity.SetUserStatus(ctx, tc.userID, tc.status)

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
		})
	}
}

func TestEnsureAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUsersStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name          string
		password      string
		setupMocks    func()
		expectedError error
	}{
		{
			name:          "Ensure admin: Disabled by empty password #1",
			password:      "",
			setupMocks:    func() {},
			expectedError: nil,
		},
		{
			name:     "Ensure admin: Already exists #2",
			password: "admin123",
			setupMocks: func() {
				mockUsers.EXPECT().HasAdmin(gomock.Any()).Return(true, nil)
			},
			expectedError: nil,
		},
		{
			name:     "Ensure admin: Created with seed bankroll #3",
			password: "admin123",
			setupMocks: func() {
				mockUsers.EXPECT().HasAdmin(gomock.Any()).Return(false, nil)
				mockUsers.EXPECT().AddUser(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user models.UserData, bankroll models.BankrollData) error {
						if user.Role != models.RoleAdmin {
							t.Errorf("Expected role ADMIN, got: '%s'", user.Role)
						}
						if !bankroll.InitialAmount.Equal(bankroll.CurrentAmount) {
							t.Errorf("Expected seed bankroll amounts to be equal")
						}
						return nil
					})
			},
			expectedError: nil,
		},
		{
			name:     "Ensure admin: Concurrent creation #4",
			password: "admin123",
			setupMocks: func() {
				mockUsers.EXPECT().HasAdmin(gomock.Any()).Return(false, nil)
				mockUsers.EXPECT().AddUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
			},
			expectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			identity := NewIdentity(config, mockUsers)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := identity.EnsureAdmin(ctx, tc.password)

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			}
		})
	}
}
