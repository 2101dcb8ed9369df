package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/metrics"
	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/denmor86/bet-bankroll/internal/storage"
)

var (
	ErrNoBankroll        = errors.New("no bankroll configured")
	ErrBetNotFound       = errors.New("bet not found")
	ErrBetAlreadySettled = errors.New("bet already settled")
)

type BettingService interface {
	PlaceBet(ctx context.Context, userID string, request models.BetRequest) (*models.BetData, error)
	SettleBet(ctx context.Context, userID string, betID string, request models.BetResultRequest) (*models.BetData, *models.BankrollData, error)
	GetUserBets(ctx context.Context, userID string) ([]models.BetData, error)
	GetBetStats(ctx context.Context, userID string) (*models.BetStatsResponse, error)
}

type Betting struct {
	Bets storage.BetsStorage
}

// Создание сервиса
func NewBetting(bets storage.BetsStorage) BettingService {
	return &Betting{Bets: bets}
}

// DeriveWinProfit - прибыль выигрыша от коэффициента: amount * (odds - 1).
// Применяется, когда при расчёте WIN прибыль не передана явно
func DeriveWinProfit(amount, odds decimal.Decimal) decimal.Decimal {
	return amount.Mul(odds.Sub(decimal.NewFromInt(1)))
}

// PlaceBet - создание ставки.
// Сумма ставки резервируется из банка сразу при создании:
// банк отражает деньги в игре, а не только рассчитанные результаты.
// Повтор запроса недопустим - сумма будет удержана дважды
func (s *Betting) PlaceBet(ctx context.Context, userID string, request models.BetRequest) (*models.BetData, error) {
	bet := models.BetData{
		ID:        uuid.New().String(),
		UserID:    userID,
		Team1:     request.Team1,
		Team2:     request.Team2,
		BetType:   request.BetType,
		Amount:    decimal.NewFromFloat(request.Amount),
		Odds:      decimal.NewFromFloat(request.Odds),
		Status:    models.BetStatusPending,
		Profit:    decimal.Zero,
		CreatedAt: time.Now(),
	}

	created, err := s.Bets.AddBet(ctx, bet)
	if err != nil {
		if errors.Is(err, storage.ErrBankrollNotFound) {
			logger.Warn("User has no bankroll configured", userID)
			return nil, ErrNoBankroll
		}
		logger.Error("Failed to place bet", err)
		return nil, err
	}

	metrics.BetsPlacedTotal.Inc()
	logger.Info("Bet placed", created.ID, userID)
	return created, nil
}

// SettleBet - расчёт ставки (единственный переход PENDING -> SETTLED).
// LOSS: прибыль -amount, банк не меняется - ставка удержана при создании.
// WIN: прибыль из запроса или от коэффициента, в банк возвращается
// ставка вместе с выигрышем
func (s *Betting) SettleBet(ctx context.Context, userID string, betID string, request models.BetResultRequest) (*models.BetData, *models.BankrollData, error) {
	bet, err := s.Bets.GetBet(ctx, userID, betID)
	if err != nil {
		if errors.Is(err, storage.ErrBetNotFound) {
			logger.Warn("Bet not found", betID, userID)
			return nil, nil, ErrBetNotFound
		}
		logger.Error("Failed to get bet", err)
		return nil, nil, err
	}
	if bet.Status != models.BetStatusPending {
		logger.Warn("Bet already settled", betID)
		return nil, nil, ErrBetAlreadySettled
	}

	var profit, delta decimal.Decimal
	switch request.Result {
	case models.BetResultLoss:
		profit = bet.Amount.Neg()
		delta = decimal.Zero
	case models.BetResultWin:
		if request.Profit != nil {
			profit = decimal.NewFromFloat(*request.Profit)
		} else {
			profit = DeriveWinProfit(bet.Amount, bet.Odds)
		}
		delta = bet.Amount.Add(profit)
	}

	settlement := models.BetSettlement{
		BetID:  betID,
		UserID: userID,
		Result: request.Result,
		Profit: profit,
		Delta:  delta,
	}

	settled, bankroll, err := s.Bets.SettleBet(ctx, settlement)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBetNotFound):
			return nil, nil, ErrBetNotFound
		// статус перепроверяется под блокировкой - конкурентный расчёт
		case errors.Is(err, storage.ErrBetAlreadySettled):
			logger.Warn("Concurrent bet settlement", betID)
			return nil, nil, ErrBetAlreadySettled
		}
		logger.Error("Failed to settle bet", err)
		return nil, nil, err
	}

	metrics.BetsSettledTotal.WithLabelValues(request.Result).Inc()
	logger.Info("Bet settled", betID, request.Result)
	return settled, bankroll, nil
}

// GetUserBets - список ставок пользователя в хронологическом порядке
func (s *Betting) GetUserBets(ctx context.Context, userID string) ([]models.BetData, error) {
	bets, err := s.Bets.GetUserBets(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user bets", err)
		return nil, err
	}
	return bets, nil
}

// GetBetStats - статистика рассчитанных ставок пользователя.
// Win rate считается только по рассчитанным ставкам (деление на ноль исключено)
func (s *Betting) GetBetStats(ctx context.Context, userID string) (*models.BetStatsResponse, error) {
	bets, err := s.Bets.GetUserBets(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user bets", err)
		return nil, err
	}

	var wins, losses int
	profit := decimal.Zero
	for _, bet := range bets {
		if bet.Status != models.BetStatusSettled {
			continue
		}
		if bet.Result == models.BetResultWin {
			wins++
		} else {
			losses++
		}
		profit = profit.Add(bet.Profit)
	}

	settled := wins + losses
	var winRate float64
	if settled > 0 {
		winRate = float64(wins) / float64(settled) * 100
	}
	totalProfit, _ := profit.Float64()

	return &models.BetStatsResponse{
		TotalBets: settled,
		Wins:      wins,
		Losses:    losses,
		WinRate:   winRate,
		Profit:    totalProfit,
	}, nil
}
