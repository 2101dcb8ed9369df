package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/denmor86/bet-bankroll/internal/helpers"
	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/denmor86/bet-bankroll/internal/services"
	"github.com/denmor86/bet-bankroll/internal/validators"
)

// PlaceBetHandler - создание ставки с резервированием суммы из банка
func PlaceBetHandler(b services.BettingService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		var request models.BetRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validators.CheckBetRequest(request); err != nil {
			logger.Warn("Invalid bet request:", err.Error())
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		bet, err := b.PlaceBet(r.Context(), userID, request)
		if err != nil {
			if errors.Is(err, services.ErrNoBankroll) {
				http.Error(w, "No bankroll configured", http.StatusNotFound)
				return
			}
			logger.Error("Failed to place bet:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewBetResponse(*bet))
	})
}

// SettleBetHandler - расчёт ставки (запись результата и обновление банка)
func SettleBetHandler(b services.BettingService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		betID := chi.URLParam(r, "id")

		var request models.BetResultRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if err := validators.CheckBetResult(request.Result); err != nil {
			logger.Warn("Invalid bet result:", request.Result)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		bet, bankroll, err := b.SettleBet(r.Context(), userID, betID, request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBetNotFound):
				http.Error(w, "Bet not found", http.StatusNotFound)
			case errors.Is(err, services.ErrBetAlreadySettled):
				http.Error(w, "Bet already settled", http.StatusConflict)
			default:
				logger.Error("Failed to settle bet:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		current, _ := bankroll.CurrentAmount.Float64()
		writeJSON(w, http.StatusOK, struct {
			Bet         models.BetResponse `json:"bet"`
			CurrentBank float64            `json:"currentBank"`
		}{
			Bet:         models.NewBetResponse(*bet),
			CurrentBank: current,
		})
	})
}

// GetUserBetsHandler - список ставок пользователя в хронологическом порядке
func GetUserBetsHandler(b services.BettingService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		bets, err := b.GetUserBets(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get user bets:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		if len(bets) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		response := make([]models.BetResponse, 0, len(bets))
		for _, bet := range bets {
			response = append(response, models.NewBetResponse(bet))
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// GetBetStatsHandler - статистика рассчитанных ставок пользователя
func GetBetStatsHandler(b services.BettingService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		userID, err := helpers.GetUserID(r.Context())
		if err != nil {
			logger.Warn("Failed to get user id:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		stats, err := b.GetBetStats(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to get bet stats:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	})
}
