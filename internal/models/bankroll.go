package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankrollData - модель банка пользователя из хранилища
type BankrollData struct {
	UserID           string
	InitialAmount    decimal.Decimal
	CurrentAmount    decimal.Decimal
	DailyRiskPercent decimal.Decimal
	ReturnMultiplier decimal.Decimal
	UpdatedAt        time.Time
}

// BankSettings - настройки банка, входные данные калькулятора
type BankSettings struct {
	InitialValue             decimal.Decimal
	DailyPercentageRisk      decimal.Decimal
	ExpectedReturnMultiplier decimal.Decimal
}

// Settings - настройки банка из данных хранилища
func (b BankrollData) Settings() BankSettings {
	return BankSettings{
		InitialValue:             b.InitialAmount,
		DailyPercentageRisk:      b.DailyRiskPercent,
		ExpectedReturnMultiplier: b.ReturnMultiplier,
	}
}

// BankSettingsRequest - модель запроса обновления настроек банка
type BankSettingsRequest struct {
	InitialAmount    float64 `json:"initialAmount"`
	DailyRiskPercent float64 `json:"dailyRiskPercent"`
	ReturnMultiplier float64 `json:"returnMultiplier"`
}

// BankState - производные метрики банка, результат чистого расчёта
type BankState struct {
	CurrentBank        decimal.Decimal
	SuggestedBetAmount decimal.Decimal
	ExpectedProfit     decimal.Decimal
	TotalProfit        decimal.Decimal
	TotalBets          int
	WinRate            float64
	BankGrowthRate     float64
}

// BankStateResponse - модель состояния банка для выдачи
type BankStateResponse struct {
	CurrentBank        float64 `json:"currentBank"`
	SuggestedBetAmount float64 `json:"suggestedBetAmount"`
	ExpectedProfit     float64 `json:"expectedProfit"`
	TotalProfit        float64 `json:"totalProfit"`
	TotalBets          int     `json:"totalBets"`
	WinRate            float64 `json:"winRate"`
	BankGrowthRate     float64 `json:"bankGrowthRate"`
	DailyRiskPercent   float64 `json:"dailyRiskPercent"`
	ReturnMultiplier   float64 `json:"returnMultiplier"`
}

// NewBankStateResponse - преобразование расчёта и настроек в модель выдачи
func NewBankStateResponse(state BankState, bankroll BankrollData) BankStateResponse {
	current, _ := state.CurrentBank.Float64()
	suggested, _ := state.SuggestedBetAmount.Float64()
	expected, _ := state.ExpectedProfit.Float64()
	total, _ := state.TotalProfit.Float64()
	risk, _ := bankroll.DailyRiskPercent.Float64()
	multiplier, _ := bankroll.ReturnMultiplier.Float64()
	return BankStateResponse{
		CurrentBank:        current,
		SuggestedBetAmount: suggested,
		ExpectedProfit:     expected,
		TotalProfit:        total,
		TotalBets:          state.TotalBets,
		WinRate:            state.WinRate,
		BankGrowthRate:     state.BankGrowthRate,
		DailyRiskPercent:   risk,
		ReturnMultiplier:   multiplier,
	}
}
