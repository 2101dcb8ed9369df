package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/denmor86/bet-bankroll/internal/services"
	"github.com/denmor86/bet-bankroll/internal/storage"
	"github.com/denmor86/bet-bankroll/internal/validators"
)

// CreateUserHandler - создание учётной записи администратором
func CreateUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := validators.CheckCreateUserRequest(request); err != nil {
			logger.Warn("Invalid create user request:", err.Error())
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		user, err := i.CreateUser(r.Context(), request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				http.Error(w, "Username or email already exists", http.StatusConflict)
			case errors.Is(err, services.ErrUnknownUserRole):
				http.Error(w, "Unknown user role", http.StatusUnprocessableEntity)
			default:
				logger.Error("Failed to create user:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, models.NewUserResponse(*user))
	})
}

// GetUsersHandler - список всех пользователей (администратор)
func GetUsersHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		users, err := i.ListUsers(r.Context())
		if err != nil {
			logger.Error("Failed to get users:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		response := make([]models.UserResponse, 0, len(users))
		for _, user := range users {
			response = append(response, models.NewUserResponse(user))
		}
		writeJSON(w, http.StatusOK, response)
	})
}

// SetUserStatusHandler - активация/деактивация учётной записи (администратор)
func SetUserStatusHandler(i services.IdentityService, status string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "id")

		if err := i.SetUserStatus(r.Context(), userID, status); err != nil {
			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				http.Error(w, "User not found", http.StatusNotFound)
			case errors.Is(err, services.ErrUnknownUserStatus):
				http.Error(w, "Unknown user status", http.StatusUnprocessableEntity)
			default:
				logger.Error("Failed to update user status:", zap.Error(err))
				http.Error(w, "Server Error", http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

// GetAdminStatsHandler - агрегированная статистика по всем пользователям
func GetAdminStatsHandler(s services.StatsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.GetAdminStats(r.Context())
		if err != nil {
			logger.Error("Failed to get admin stats:", zap.Error(err))
			http.Error(w, "Server Error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	})
}
