package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/denmor86/bet-bankroll/internal/models"
)

const (
	GetBankroll = `SELECT user_id, initial_amount, current_amount, daily_risk_percent, return_multiplier, updated_at
					FROM BANKROLLS WHERE user_id=$1;`
	UpdateBankrollSettings = `UPDATE BANKROLLS
					SET initial_amount = $1,
					    daily_risk_percent = $2,
					    return_multiplier = $3,
					    updated_at = NOW()
					WHERE user_id = $4
					RETURNING user_id, initial_amount, current_amount, daily_risk_percent, return_multiplier, updated_at;`
)

type BankrollDatabase struct {
	DB *Database
}

// Создание хранилища
func NewBankrollsStorage(db *Database) BankrollsStorage {
	return &BankrollDatabase{DB: db}
}

func (s *BankrollDatabase) GetBankroll(ctx context.Context, userID string) (*models.BankrollData, error) {
	var bankroll models.BankrollData
	err := s.DB.Pool.QueryRow(ctx, GetBankroll, userID).Scan(
		&bankroll.UserID,
		&bankroll.InitialAmount,
		&bankroll.CurrentAmount,
		&bankroll.DailyRiskPercent,
		&bankroll.ReturnMultiplier,
		&bankroll.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBankrollNotFound
		}
		return nil, fmt.Errorf("failed to get bankroll: %w", err)
	}
	return &bankroll, nil
}

// UpdateSettings - обновление настроек риска банка.
// Текущая сумма банка настройками не изменяется, ею управляет только расчёт ставок
func (s *BankrollDatabase) UpdateSettings(ctx context.Context, userID string, initial, risk, multiplier decimal.Decimal) (*models.BankrollData, error) {
	var bankroll models.BankrollData
	err := s.DB.Pool.QueryRow(ctx, UpdateBankrollSettings, initial, risk, multiplier, userID).Scan(
		&bankroll.UserID,
		&bankroll.InitialAmount,
		&bankroll.CurrentAmount,
		&bankroll.DailyRiskPercent,
		&bankroll.ReturnMultiplier,
		&bankroll.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBankrollNotFound
		}
		return nil, fmt.Errorf("failed to update bankroll settings: %w", err)
	}
	return &bankroll, nil
}
