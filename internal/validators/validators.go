package validators

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/denmor86/bet-bankroll/internal/models"
)

// Ограничения учётных данных (как в исходной форме регистрации)
const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 6
	MaxPasswordLength = 50
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")

	ErrEmptyTeam          = errors.New("team is required")
	ErrEmptyBetType       = errors.New("bet type is required")
	ErrInvalidBetAmount   = errors.New("bet amount must be positive")
	ErrInvalidOdds        = errors.New("odds must be greater or equal 1")
	ErrInvalidResult      = errors.New("undefined bet result")
	ErrInvalidRiskPercent = errors.New("risk percent must be in range [0, 100]")
	ErrInvalidMultiplier  = errors.New("return multiplier must be positive")
	ErrNegativeInitial    = errors.New("initial amount must not be negative")
)

// CheckUsername - проверка имени пользователя по длине
func CheckUsername(username string) error {
	length := len(strings.TrimSpace(username))
	if length < MinUsernameLength || length > MaxUsernameLength {
		return ErrInvalidUsername
	}
	return nil
}

// CheckEmail - проверка адреса электронной почты
func CheckEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// CheckPassword - проверка пароля по длине
func CheckPassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > MaxPasswordLength {
		return ErrInvalidPassword
	}
	return nil
}

// CheckRegisterRequest - проверка данных регистрации
func CheckRegisterRequest(request models.RegisterRequest) error {
	if err := CheckUsername(request.Username); err != nil {
		return err
	}
	if err := CheckEmail(request.Email); err != nil {
		return err
	}
	return CheckPassword(request.Password)
}

// CheckCreateUserRequest - проверка данных создания пользователя администратором.
// Роль проверяется в сервисе, пустая роль допустима
func CheckCreateUserRequest(request models.CreateUserRequest) error {
	if err := CheckUsername(request.Username); err != nil {
		return err
	}
	if err := CheckEmail(request.Email); err != nil {
		return err
	}
	return CheckPassword(request.Password)
}

// CheckBetRequest - проверка данных новой ставки
func CheckBetRequest(request models.BetRequest) error {
	if strings.TrimSpace(request.Team1) == "" || strings.TrimSpace(request.Team2) == "" {
		return ErrEmptyTeam
	}
	if strings.TrimSpace(request.BetType) == "" {
		return ErrEmptyBetType
	}
	if request.Amount <= 0 {
		return ErrInvalidBetAmount
	}
	if request.Odds < 1 {
		return ErrInvalidOdds
	}
	return nil
}

// CheckBetResult - проверка результата расчёта ставки
func CheckBetResult(result string) error {
	if result != models.BetResultWin && result != models.BetResultLoss {
		return ErrInvalidResult
	}
	return nil
}

// CheckBankSettings - проверка настроек банка
func CheckBankSettings(request models.BankSettingsRequest) error {
	if request.InitialAmount < 0 {
		return ErrNegativeInitial
	}
	if request.DailyRiskPercent < 0 || request.DailyRiskPercent > 100 {
		return ErrInvalidRiskPercent
	}
	if request.ReturnMultiplier <= 0 {
		return ErrInvalidMultiplier
	}
	return nil
}
