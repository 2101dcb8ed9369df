package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/denmor86/bet-bankroll/internal/config"
	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/denmor86/bet-bankroll/internal/storage"
	"github.com/denmor86/bet-bankroll/internal/storage/mocks"
)

func TestDeriveWinProfit(t *testing.T) {
	testCases := []struct {
		name     string
		amount   decimal.Decimal
		odds     decimal.Decimal
		expected decimal.Decimal
	}{
		{
			name:     "Derive profit: odds 2.5 #1",
			amount:   decimal.NewFromInt(20),
			odds:     decimal.NewFromFloat(2.5),
			expected: decimal.NewFromInt(30),
		},
		{
			name:     "Derive profit: odds 1.0 #2",
			amount:   decimal.NewFromInt(100),
			odds:     decimal.NewFromInt(1),
			expected: decimal.Zero,
		},
		{
			name:     "Derive profit: odds 1.85 #3",
			amount:   decimal.NewFromInt(50),
			odds:     decimal.NewFromFloat(1.85),
			expected: decimal.NewFromFloat(42.5),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			profit := DeriveWinProfit(tc.amount, tc.odds)
			if !profit.Equal(tc.expected) {
				t.Errorf("Expected profit: '%s', got: '%s'", tc.expected, profit)
			}
		})
	}
}

func TestPlaceBet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBets := mocks.NewMockBetsStorage(ctrl)

	if err := logger.Initialize(config.DefaultConfig().LogLevel); err != nil {
		logger.Panic(err)
	}

	request := models.BetRequest{
		Team1:   "Spartak",
		Team2:   "Zenit",
		BetType: "П1",
		Amount:  50,
		Odds:    1.85,
	}

	testCases := []struct {
		name          string
		setupMocks    func()
		expectedError error
	}{
		{
			name: "Place bet: Success #1",
			setupMocks: func() {
				mockBets.EXPECT().AddBet(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, bet models.BetData) (*models.BetData, error) {
						if bet.Status != models.BetStatusPending {
							t.Errorf("Expected status PENDING, got: '%s'", bet.Status)
						}
						if !bet.Amount.Equal(decimal.NewFromInt(50)) {
							t.Errorf("Expected amount 50, got: '%s'", bet.Amount)
						}
						if !bet.Profit.IsZero() {
							t.Errorf("Expected zero profit before settlement")
						}
						if bet.ID == "" || bet.UserID != "1" {
							t.Errorf("Expected identifiers to be filled")
						}
						return &bet, nil
					})
			},
			expectedError: nil,
		},
		{
			name: "Place bet: No bankroll #2",
			setupMocks: func() {
				mockBets.EXPECT().AddBet(gomock.Any(), gomock.Any()).Return(nil, storage.ErrBankrollNotFound)
			},
			expectedError: ErrNoBankroll,
		},
		{
			name: "Place bet: Undefined error #3",
			setupMocks: func() {
				mockBets.EXPECT().AddBet(gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to add bet"))
			},
			expectedError: errors.New("failed to add bet"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			betting := NewBetting(mockBets)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			bet, err := betting.PlaceBet(ctx, "1", request)

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
			if tc.expectedError == nil && bet == nil {
				t.Errorf("Expected created bet")
			}
		})
	}
}

func TestSettleBet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBets := mocks.NewMockBetsStorage(ctrl)

	if err := logger.Initialize(config.DefaultConfig().LogLevel); err != nil {
		logger.Panic(err)
	}

	pendingBet := func(amount, odds decimal.Decimal) *models.BetData {
		return &models.BetData{
			ID:     "10",
			UserID: "1",
			Team1:  "CSKA",
			Team2:  "Dynamo",
			Amount: amount,
			Odds:   odds,
			Status: models.BetStatusPending,
		}
	}
	profit := func(v float64) *float64 { return &v }

	testCases := []struct {
		name          string
		request       models.BetResultRequest
		setupMocks    func()
		expectedError error
	}{
		{
			name:    "Settle bet: Not found #1",
			request: models.BetResultRequest{Result: models.BetResultWin},
			setupMocks: func() {
				mockBets.EXPECT().GetBet(gomock.Any(), "1", "10").Return(nil, storage.ErrBetNotFound)
			},
			expectedError: ErrBetNotFound,
		},
		{
			name:    "Settle bet: Already settled #2",
			request: models.BetResultRequest{Result: models.BetResultWin},
			setupMocks: func() {
				bet := pendingBet(decimal.NewFromInt(50), decimal.NewFromFloat(1.85))
				bet.Status = models.BetStatusSettled
				bet.Result = models.BetResultLoss
				mockBets.EXPECT().GetBet(gomock.Any(), "1", "10").Return(bet, nil)
			},
			expectedError: ErrBetAlreadySettled,
		},
		{
			name:    "Settle bet: Loss keeps bank unchanged #3",
			request: models.BetResultRequest{Result: models.BetResultLoss},
			setupMocks: func() {
				mockBets.EXPECT().GetBet(gomock.Any(), "1", "10").
					Return(pendingBet(decimal.NewFromInt(50), decimal.NewFromFloat(1.85)), nil)
				mockBets.EXPECT().SettleBet(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s models.BetSettlement) (*models.BetData, *models.BankrollData, error) {
						if !s.Profit.Equal(decimal.NewFromInt(-50)) {
							t.Errorf("Expected profit -50, got: '%s'", s.Profit)
						}
						if !s.Delta.IsZero() {
							t.Errorf("Expected zero bank delta on loss, got: '%s'", s.Delta)
						}
						return &models.BetData{ID: s.BetID, Status: models.BetStatusSettled, Result: s.Result},
							&models.BankrollData{UserID: s.UserID, CurrentAmount: decimal.NewFromInt(950)}, nil
					})
			},
			expectedError: nil,
		},
		{
			name:    "Settle bet: Win with explicit profit #4",
			request: models.BetResultRequest{Result: models.BetResultWin, Profit: profit(30)},
			setupMocks: func() {
				mockBets.EXPECT().GetBet(gomock.Any(), "1", "10").
					Return(pendingBet(decimal.NewFromInt(20), decimal.NewFromFloat(2.5)), nil)
				mockBets.EXPECT().SettleBet(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s models.BetSettlement) (*models.BetData, *models.BankrollData, error) {
						if !s.Profit.Equal(decimal.NewFromInt(30)) {
							t.Errorf("Expected profit 30, got: '%s'", s.Profit)
						}
						if !s.Delta.Equal(decimal.NewFromInt(50)) {
							t.Errorf("Expected delta 50 (stake returned with winnings), got: '%s'", s.Delta)
						}
						return &models.BetData{ID: s.BetID, Status: models.BetStatusSettled, Result: s.Result},
							&models.BankrollData{UserID: s.UserID, CurrentAmount: decimal.NewFromInt(1030)}, nil
					})
			},
			expectedError: nil,
		},
		{
			name:    "Settle bet: Win with derived profit #5",
			request: models.BetResultRequest{Result: models.BetResultWin},
			setupMocks: func() {
				mockBets.EXPECT().GetBet(gomock.Any(), "1", "10").
					Return(pendingBet(decimal.NewFromInt(20), decimal.NewFromFloat(2.5)), nil)
				mockBets.EXPECT().SettleBet(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, s models.BetSettlement) (*models.BetData, *models.BankrollData, error) {
						if !s.Profit.Equal(decimal.NewFromInt(30)) {
							t.Errorf("Expected derived profit 30, got: '%s'", s.Profit)
						}
						if !s.Delta.Equal(decimal.NewFromInt(50)) {
							t.Errorf("Expected delta 50, got: '%s'", s.Delta)
						}
						return &models.BetData{ID: s.BetID, Status: models.BetStatusSettled, Result: s.Result},
							&models.BankrollData{UserID: s.UserID}, nil
					})
			},
			expectedError: nil,
		},
		{
			name:    "Settle bet: Concurrent settlement #6",
			request: models.BetResultRequest{Result: models.BetResultLoss},
			setupMocks: func() {
				mockBets.EXPECT().GetBet(gomock.Any(), "1", "10").
					Return(pendingBet(decimal.NewFromInt(50), decimal.NewFromFloat(1.85)), nil)
				mockBets.EXPECT().SettleBet(gomock.Any(), gomock.Any()).
					Return(nil, nil, storage.ErrBetAlreadySettled)
			},
			expectedError: ErrBetAlreadySettled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			betting := NewBetting(mockBets)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			bet, bankroll, err := betting.SettleBet(ctx, "1", "10", tc.request)

			if err != nil && tc.expectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.expectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.expectedError.Error() {
				t.Errorf("Expected error: '%v', got: '%v'", tc.expectedError, err)
			}
			if tc.expectedError == nil {
				if bet == nil || bet.Status != models.BetStatusSettled {
					t.Errorf("Expected settled bet")
				}
				if bankroll == nil {
					t.Errorf("Expected updated bankroll")
				}
			}
		})
	}
}

func TestGetBetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockBets := mocks.NewMockBetsStorage(ctrl)

	if err := logger.Initialize(config.DefaultConfig().LogLevel); err != nil {
		logger.Panic(err)
	}

	testCases := []struct {
		name       string
		setupMocks func()
		expected   models.BetStatsResponse
	}{
		{
			name: "Bet stats: No settled bets #1",
			setupMocks: func() {
				mockBets.EXPECT().GetUserBets(gomock.Any(), "1").Return([]models.BetData{
					{Status: models.BetStatusPending, Amount: decimal.NewFromInt(50)},
				}, nil)
			},
			expected: models.BetStatsResponse{},
		},
		{
			name: "Bet stats: Mixed history #2",
			setupMocks: func() {
				mockBets.EXPECT().GetUserBets(gomock.Any(), "1").Return([]models.BetData{
					{Status: models.BetStatusSettled, Result: models.BetResultWin, Profit: decimal.NewFromInt(30)},
					{Status: models.BetStatusSettled, Result: models.BetResultWin, Profit: decimal.NewFromInt(42)},
					{Status: models.BetStatusSettled, Result: models.BetResultLoss, Profit: decimal.NewFromInt(-50)},
					{Status: models.BetStatusSettled, Result: models.BetResultLoss, Profit: decimal.NewFromInt(-20)},
					{Status: models.BetStatusPending, Amount: decimal.NewFromInt(10)},
				}, nil)
			},
			expected: models.BetStatsResponse{
				TotalBets: 4,
				Wins:      2,
				Losses:    2,
				WinRate:   50,
				Profit:    2,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			betting := NewBetting(mockBets)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			stats, err := betting.GetBetStats(ctx, "1")
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if *stats != tc.expected {
				t.Errorf("Expected stats: '%+v', got: '%+v'", tc.expected, *stats)
			}
		})
	}
}
