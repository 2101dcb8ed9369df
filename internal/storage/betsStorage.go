package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/models"
)

const (
	// FOR UPDATE - точка сериализации по банку: два конкурентных изменения
	// одного банка выполняются строго по очереди
	LockBankroll = `SELECT current_amount FROM BANKROLLS WHERE user_id=$1 FOR UPDATE;`
	LockBet      = `SELECT status FROM BETS WHERE id=$1 AND user_id=$2 FOR UPDATE;`

	InsertBet = `INSERT INTO BETS (id, user_id, team1, team2, bet_type, amount, odds, status, profit, bank_before_bet, created_at)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	ChangeBankrollAmount = `UPDATE BANKROLLS
					SET current_amount = current_amount + $1,
					    updated_at = NOW()
					WHERE user_id = $2
					RETURNING user_id, initial_amount, current_amount, daily_risk_percent, return_multiplier, updated_at;`
	UpdateBetResult = `UPDATE BETS
					SET status = $1,
					    result = $2,
					    profit = $3,
					    bank_after_bet = $4
					WHERE id = $5 AND status = $6;`

	GetBet = `SELECT id, user_id, team1, team2, bet_type, amount, odds, status, COALESCE(result, ''), profit,
					bank_before_bet, COALESCE(bank_after_bet, 0), created_at
					FROM BETS WHERE id=$1 AND user_id=$2;`
	GetUserBets = `SELECT id, user_id, team1, team2, bet_type, amount, odds, status, COALESCE(result, ''), profit,
					bank_before_bet, COALESCE(bank_after_bet, 0), created_at
					FROM BETS WHERE user_id=$1 ORDER BY created_at;`
	GetAllBets = `SELECT id, user_id, team1, team2, bet_type, amount, odds, status, COALESCE(result, ''), profit,
					bank_before_bet, COALESCE(bank_after_bet, 0), created_at
					FROM BETS ORDER BY created_at;`
)

type BetDatabase struct {
	DB *Database
}

// Создание хранилища
func NewBetsStorage(db *Database) BetsStorage {
	return &BetDatabase{DB: db}
}

// AddBet - добавление ставки и резервирование её суммы из банка в одной транзакции.
// Снимок банка до ставки берётся под блокировкой строки банка
func (s *BetDatabase) AddBet(ctx context.Context, bet models.BetData) (*models.BetData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AddBet. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Блокируем банк и берём снимок текущей суммы
	var current decimal.Decimal
	err = tx.QueryRow(ctx, LockBankroll, bet.UserID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrBankrollNotFound
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock bankroll: %w", err)
	}
	bet.BankBeforeBet = current

	// 2. Добавляем ставку со снимком банка
	_, err = tx.Exec(ctx, InsertBet,
		bet.ID, bet.UserID, bet.Team1, bet.Team2, bet.BetType,
		bet.Amount, bet.Odds, bet.Status, bet.Profit, bet.BankBeforeBet, bet.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add bet: %w", err)
	}

	// 3. Резервируем сумму ставки (банк отражает деньги в игре)
	_, err = tx.Exec(ctx, ChangeBankrollAmount, bet.Amount.Neg(), bet.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve stake: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("AddBet. Commit failed: %w", err)
	}

	return &bet, nil
}

// SettleBet - расчёт ставки: обновление ставки и банка в одной транзакции.
// Повторный расчёт исключён проверкой статуса под блокировкой строки ставки
func (s *BetDatabase) SettleBet(ctx context.Context, settlement models.BetSettlement) (*models.BetData, *models.BankrollData, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("SettleBet. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Блокируем банк (общая точка сериализации с AddBet)
	var current decimal.Decimal
	err = tx.QueryRow(ctx, LockBankroll, settlement.UserID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrBankrollNotFound
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to lock bankroll: %w", err)
	}

	// 2. Блокируем ставку и проверяем, что она ещё не рассчитана
	var status string
	err = tx.QueryRow(ctx, LockBet, settlement.BetID, settlement.UserID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrBetNotFound
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("failed to lock bet: %w", err)
	}
	if status != models.BetStatusPending {
		err = ErrBetAlreadySettled
		return nil, nil, err
	}

	// 3. Обновляем ставку: результат, прибыль и снимок банка после расчёта
	bankAfter := current.Add(settlement.Delta)
	_, err = tx.Exec(ctx, UpdateBetResult,
		models.BetStatusSettled, settlement.Result, settlement.Profit, bankAfter,
		settlement.BetID, models.BetStatusPending)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update bet result: %w", err)
	}

	// 4. Применяем изменение банка
	var bankroll models.BankrollData
	err = tx.QueryRow(ctx, ChangeBankrollAmount, settlement.Delta, settlement.UserID).Scan(
		&bankroll.UserID,
		&bankroll.InitialAmount,
		&bankroll.CurrentAmount,
		&bankroll.DailyRiskPercent,
		&bankroll.ReturnMultiplier,
		&bankroll.UpdatedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update bankroll: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("SettleBet. Commit failed: %w", err)
	}

	bet, err := s.GetBet(ctx, settlement.UserID, settlement.BetID)
	if err != nil {
		return nil, nil, err
	}
	return bet, &bankroll, nil
}

func (s *BetDatabase) GetBet(ctx context.Context, userID string, betID string) (*models.BetData, error) {
	var bet models.BetData
	err := s.DB.Pool.QueryRow(ctx, GetBet, betID, userID).Scan(
		&bet.ID,
		&bet.UserID,
		&bet.Team1,
		&bet.Team2,
		&bet.BetType,
		&bet.Amount,
		&bet.Odds,
		&bet.Status,
		&bet.Result,
		&bet.Profit,
		&bet.BankBeforeBet,
		&bet.BankAfterBet,
		&bet.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBetNotFound
		}
		return nil, fmt.Errorf("failed to get bet: %w", err)
	}
	return &bet, nil
}

func (s *BetDatabase) GetUserBets(ctx context.Context, userID string) ([]models.BetData, error) {
	return s.queryBets(ctx, GetUserBets, userID)
}

func (s *BetDatabase) GetAllBets(ctx context.Context) ([]models.BetData, error) {
	return s.queryBets(ctx, GetAllBets)
}

func (s *BetDatabase) queryBets(ctx context.Context, query string, args ...any) ([]models.BetData, error) {
	var bets []models.BetData
	rows, err := s.DB.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets: %w", err)
	}
	for rows.Next() {
		var bet models.BetData
		err := rows.Scan(
			&bet.ID,
			&bet.UserID,
			&bet.Team1,
			&bet.Team2,
			&bet.BetType,
			&bet.Amount,
			&bet.Odds,
			&bet.Status,
			&bet.Result,
			&bet.Profit,
			&bet.BankBeforeBet,
			&bet.BankAfterBet,
			&bet.CreatedAt,
		)
		if err != nil {
			return bets, fmt.Errorf("failed scan bet data: %w", err)
		}
		bets = append(bets, bet)
	}
	return bets, err
}
