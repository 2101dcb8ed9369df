package services

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/denmor86/bet-bankroll/internal/config"
	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/metrics"
	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/denmor86/bet-bankroll/internal/storage"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrUnknownUserStatus  = errors.New("unknown user status")
	ErrUnknownUserRole    = errors.New("unknown user role")
)

const (
	TokenSigningAlgo    = "HS256"
	TokenExpirationTime = 24 * time.Hour

	// Настройки нового банка при регистрации
	DefaultDailyRiskPercent = 1
	DefaultReturnMultiplier = 2

	// Учётная запись администратора при начальной инициализации
	AdminUsername   = "admin"
	AdminEmail      = "admin@example.com"
	AdminSeedAmount = 1000
)

type IdentityService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (*models.UserData, string, error)
	AuthenticateUser(ctx context.Context, request models.LoginRequest) (*models.UserData, string, error)
	CreateUser(ctx context.Context, request models.CreateUserRequest) (*models.UserData, error)
	ListUsers(ctx context.Context) ([]models.UserData, error)
	SetUserStatus(ctx context.Context, userID string, status string) error
	EnsureAdmin(ctx context.Context, password string) error
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth *jwtauth.JWTAuth
	Users   storage.UsersStorage
}

// Создание сервиса
func NewIdentity(cfg config.Config, users storage.UsersStorage) IdentityService {
	tokenAuth := jwtauth.New(TokenSigningAlgo, []byte(cfg.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Users: users}
}

// addUser - атомарное создание пользователя и его нулевого банка
func (i *Identity) addUser(ctx context.Context, username, email, password, role string) (*models.UserData, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("Error generating password hash", err)
		return nil, err
	}

	user := models.UserData{
		UserID:       uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		Status:       models.UserStatusActive,
		CreatedAt:    time.Now(),
	}
	bankroll := models.BankrollData{
		UserID:           user.UserID,
		InitialAmount:    decimal.Zero,
		CurrentAmount:    decimal.Zero,
		DailyRiskPercent: decimal.NewFromInt(DefaultDailyRiskPercent),
		ReturnMultiplier: decimal.NewFromInt(DefaultReturnMultiplier),
	}

	if err := i.Users.AddUser(ctx, user, bankroll); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			logger.Warn("User already exist", username)
			return nil, ErrUserAlreadyExists
		}
		logger.Error("Error adding user", username, err)
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	return &user, nil
}

// RegisterUser - регистрация нового пользователя.
// Пользователь и его банк создаются атомарно, банк начинается с нуля
func (i *Identity) RegisterUser(ctx context.Context, request models.RegisterRequest) (*models.UserData, string, error) {
	logger.Info("Register user:", request.Username)

	user, err := i.addUser(ctx, request.Username, request.Email, request.Password, models.RoleUser)
	if err != nil {
		return nil, "", err
	}

	token, err := i.GenerateJWT(*user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// CreateUser - создание учётной записи администратором.
// Роль по умолчанию - USER, токен не выдаётся: пользователь входит сам
func (i *Identity) CreateUser(ctx context.Context, request models.CreateUserRequest) (*models.UserData, error) {
	role := request.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, ErrUnknownUserRole
	}

	logger.Info("Create user:", request.Username, role)
	return i.addUser(ctx, request.Username, request.Email, request.Password, role)
}

// AuthenticateUser - аутентификация пользователя.
// Неактивные учётные записи не допускаются к входу
func (i *Identity) AuthenticateUser(ctx context.Context, request models.LoginRequest) (*models.UserData, string, error) {
	logger.Info("Authenticate user", request.Username)

	user, err := i.Users.GetUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("User not found", request.Username)
			return nil, "", ErrInvalidCredentials
		}
		logger.Error("Error getting user", err)
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		logger.Warn("Invalid password", request.Username)
		return nil, "", ErrInvalidCredentials
	}

	if user.Status == models.UserStatusInactive {
		logger.Warn("Inactive user login attempt", request.Username)
		return nil, "", ErrUserInactive
	}

	token, err := i.GenerateJWT(*user)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return nil, "", err
	}

	logger.Info("User authenticated", request.Username)
	return user, token, nil
}

// ListUsers - список всех пользователей (для администратора)
func (i *Identity) ListUsers(ctx context.Context) ([]models.UserData, error) {
	users, err := i.Users.GetUsers(ctx)
	if err != nil {
		logger.Error("Failed to get users", err)
		return nil, err
	}
	return users, nil
}

// SetUserStatus - активация/деактивация учётной записи пользователя
func (i *Identity) SetUserStatus(ctx context.Context, userID string, status string) error {
	if status != models.UserStatusActive && status != models.UserStatusInactive {
		return ErrUnknownUserStatus
	}
	if err := i.Users.UpdateUserStatus(ctx, userID, status); err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			logger.Warn("User not found", userID)
			return storage.ErrUserNotFound
		}
		logger.Error("Failed to update user status", err)
		return err
	}
	logger.Info("User status updated", userID, status)
	return nil
}

// EnsureAdmin - создание администратора при первом запуске.
// Пустой пароль отключает инициализацию
func (i *Identity) EnsureAdmin(ctx context.Context, password string) error {
	if password == "" {
		return nil
	}
	exist, err := i.Users.HasAdmin(ctx)
	if err != nil {
		return err
	}
	if exist {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.UserData{
		UserID:       uuid.New().String(),
		Username:     AdminUsername,
		Email:        AdminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
		Status:       models.UserStatusActive,
		CreatedAt:    time.Now(),
	}
	seed := decimal.NewFromInt(AdminSeedAmount)
	bankroll := models.BankrollData{
		UserID:           admin.UserID,
		InitialAmount:    seed,
		CurrentAmount:    seed,
		DailyRiskPercent: decimal.NewFromInt(DefaultDailyRiskPercent),
		ReturnMultiplier: decimal.NewFromInt(DefaultReturnMultiplier),
	}
	if err := i.Users.AddUser(ctx, admin, bankroll); err != nil {
		// конкурентный запуск двух экземпляров - администратор уже создан
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil
		}
		return err
	}
	logger.Info("Admin user created")
	return nil
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(user models.UserData) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"sub":      user.UserID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
