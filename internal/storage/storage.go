package storage

import (
	"context"
	"errors"

	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/shopspring/decimal"
)

type UsersStorage interface {
	AddUser(ctx context.Context, user models.UserData, bankroll models.BankrollData) error
	GetUserByUsername(ctx context.Context, username string) (*models.UserData, error)
	GetUsers(ctx context.Context) ([]models.UserData, error)
	UpdateUserStatus(ctx context.Context, userID string, status string) error
	HasAdmin(ctx context.Context) (bool, error)
}

type BankrollsStorage interface {
	GetBankroll(ctx context.Context, userID string) (*models.BankrollData, error)
	UpdateSettings(ctx context.Context, userID string, initial, risk, multiplier decimal.Decimal) (*models.BankrollData, error)
}

type BetsStorage interface {
	AddBet(ctx context.Context, bet models.BetData) (*models.BetData, error)
	GetBet(ctx context.Context, userID string, betID string) (*models.BetData, error)
	GetUserBets(ctx context.Context, userID string) ([]models.BetData, error)
	GetAllBets(ctx context.Context) ([]models.BetData, error)
	SettleBet(ctx context.Context, settlement models.BetSettlement) (*models.BetData, *models.BankrollData, error)
}

type Storage struct {
	Users     UsersStorage
	Bankrolls BankrollsStorage
	Bets      BetsStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{Users: NewUsersStorage(db), Bankrolls: NewBankrollsStorage(db), Bets: NewBetsStorage(db)}
}

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrBankrollNotFound = errors.New("bankroll not found")
	ErrBetNotFound      = errors.New("bet not found")

	ErrAlreadyExists     = errors.New("already exists")
	ErrBetAlreadySettled = errors.New("bet already settled")
)
