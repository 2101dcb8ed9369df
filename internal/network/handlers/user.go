package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/denmor86/bet-bankroll/internal/services"
	"github.com/denmor86/bet-bankroll/internal/validators"
)

// RegisterUserHandler - регистрация нового пользователя
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var request models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		if err := validators.CheckRegisterRequest(request); err != nil {
			logger.Warn("Invalid register request:", err.Error())
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}

		// регистрация в Identity
		user, token, err := i.RegisterUser(r.Context(), request)
		if err != nil {
			// пользователь уже существует
			if errors.Is(err, services.ErrUserAlreadyExists) {
				logger.Warn("Error register user", request.Username)
				http.Error(w, "Username or email already exists", http.StatusConflict)
			} else {
				// ошибка регистрации
				logger.Error("Error register user", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		// Пользователь зарегистрирован и авторизован
		logger.Info("User registered and authenticated", request.Username)
		w.Header().Set("Authorization", "Bearer "+token)
		writeJSON(w, http.StatusOK, models.LoginResponse{
			AccessToken: token,
			User:        models.NewUserResponse(*user),
		})
	})
}

// AuthenticateUserHandler - аутентификация пользователя
func AuthenticateUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		var request models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		// аутентификация в Identity
		user, token, err := i.AuthenticateUser(r.Context(), request)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				logger.Warn("Authentication failed", request.Username)
				http.Error(w, "Invalid login/password", http.StatusUnauthorized)
			case errors.Is(err, services.ErrUserInactive):
				logger.Warn("Inactive user", request.Username)
				http.Error(w, "User is deactivated", http.StatusUnauthorized)
			default:
				logger.Error("Error authenticate user", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		// пользователь прошел авторизацию
		logger.Info("User authenticated", request.Username)
		w.Header().Set("Authorization", "Bearer "+token)
		writeJSON(w, http.StatusOK, models.LoginResponse{
			AccessToken: token,
			User:        models.NewUserResponse(*user),
		})
	})
}

// writeJSON - выдача JSON ответа с кодом статуса
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		logger.Error("Failed to encode JSON response:", err)
	}
}
