package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/denmor86/bet-bankroll/internal/helpers"
	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/denmor86/bet-bankroll/internal/services"
	"github.com/denmor86/bet-bankroll/internal/storage"
	"github.com/denmor86/bet-bankroll/internal/validators"
)

// GetBankStateHandler - расчётное состояние банка пользователя
func GetBankStateHandler(s services.StatsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		state, bankroll, err := s.GetBankState(r.Context(), userID)
		if err != nil {
			if errors.Is(err, storage.ErrBankrollNotFound) {
				http.Error(w, "No bankroll configured", http.StatusNotFound)
				return
			}
			logger.Error("Failed to get bank state:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, models.NewBankStateResponse(*state, *bankroll))
	})
}

// UpdateBankSettingsHandler - обновление настроек риска банка
func UpdateBankSettingsHandler(s services.StatsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		var request models.BankSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validators.CheckBankSettings(request); err != nil {
			logger.Warn("Invalid bank settings:", err.Error())
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		bankroll, err := s.UpdateBankSettings(r.Context(), userID, request)
		if err != nil {
			if errors.Is(err, storage.ErrBankrollNotFound) {
				http.Error(w, "No bankroll configured", http.StatusNotFound)
				return
			}
			logger.Error("Failed to update bank settings:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		initial, _ := bankroll.InitialAmount.Float64()
		current, _ := bankroll.CurrentAmount.Float64()
		risk, _ := bankroll.DailyRiskPercent.Float64()
		multiplier, _ := bankroll.ReturnMultiplier.Float64()
		writeJSON(w, http.StatusOK, struct {
			InitialAmount    float64 `json:"initialAmount"`
			CurrentAmount    float64 `json:"currentAmount"`
			DailyRiskPercent float64 `json:"dailyRiskPercent"`
			ReturnMultiplier float64 `json:"returnMultiplier"`
		}{
			InitialAmount:    initial,
			CurrentAmount:    current,
			DailyRiskPercent: risk,
			ReturnMultiplier: multiplier,
		})
	})
}
