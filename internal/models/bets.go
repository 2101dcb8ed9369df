package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы ставок
const (
	BetStatusPending = "PENDING"
	BetStatusSettled = "SETTLED"
)

// Результаты ставок
const (
	BetResultWin  = "WIN"
	BetResultLoss = "LOSS"
)

// BetRequest - модель создания ставки, приходит извне
type BetRequest struct {
	Team1   string  `json:"team1"`
	Team2   string  `json:"team2"`
	BetType string  `json:"betType"`
	Amount  float64 `json:"amount"`
	Odds    float64 `json:"odds"`
}

// BetResultRequest - модель запроса расчёта ставки.
// Profit - опциональный, для WIN без явного значения прибыль считается от коэффициента
type BetResultRequest struct {
	Result string   `json:"result"`
	Profit *float64 `json:"profit,omitempty"`
}

// BetData - модель ставки из хранилища
type BetData struct {
	ID            string
	UserID        string
	Team1         string
	Team2         string
	BetType       string
	Amount        decimal.Decimal
	Odds          decimal.Decimal
	Status        string
	Result        string
	Profit        decimal.Decimal
	BankBeforeBet decimal.Decimal
	BankAfterBet  decimal.Decimal
	CreatedAt     time.Time
}

// BetResponse - модель ставки для выдачи
type BetResponse struct {
	ID            string  `json:"id"`
	Team1         string  `json:"team1"`
	Team2         string  `json:"team2"`
	BetType       string  `json:"betType"`
	Amount        float64 `json:"amount"`
	Odds          float64 `json:"odds"`
	Status        string  `json:"status"`
	Result        string  `json:"result,omitempty"`
	Profit        float64 `json:"profit"`
	BankBeforeBet float64 `json:"bankBeforeBet"`
	BankAfterBet  float64 `json:"bankAfterBet,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// NewBetResponse - преобразование модели хранилища в модель выдачи
func NewBetResponse(bet BetData) BetResponse {
	amount, _ := bet.Amount.Float64()
	odds, _ := bet.Odds.Float64()
	profit, _ := bet.Profit.Float64()
	before, _ := bet.BankBeforeBet.Float64()
	after, _ := bet.BankAfterBet.Float64()
	return BetResponse{
		ID:            bet.ID,
		Team1:         bet.Team1,
		Team2:         bet.Team2,
		BetType:       bet.BetType,
		Amount:        amount,
		Odds:          odds,
		Status:        bet.Status,
		Result:        bet.Result,
		Profit:        profit,
		BankBeforeBet: before,
		BankAfterBet:  after,
		CreatedAt:     bet.CreatedAt.Format(time.RFC3339),
	}
}

// BetSettlement - данные расчёта ставки для хранилища.
// Profit - прибыль ставки (отрицательная при LOSS).
// Delta - изменение банка: 0 при LOSS (ставка удержана при создании),
// ставка+прибыль при WIN (возврат ставки и выигрыш)
type BetSettlement struct {
	BetID  string
	UserID string
	Result string
	Profit decimal.Decimal
	Delta  decimal.Decimal
}

// BetStatsResponse - статистика рассчитанных ставок пользователя
type BetStatsResponse struct {
	TotalBets int     `json:"totalBets"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	WinRate   float64 `json:"winRate"`
	Profit    float64 `json:"profit"`
}
