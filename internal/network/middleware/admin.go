package middleware

import (
	"net/http"

	"github.com/denmor86/bet-bankroll/internal/helpers"
	"github.com/denmor86/bet-bankroll/internal/logger"
	"github.com/denmor86/bet-bankroll/internal/models"
)

// AdminOnly - middleware проверки роли администратора.
// Подлинность токена проверяется раньше, здесь только авторизация по роли
func AdminOnly(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, err := helpers.GetRole(r.Context())
		if err != nil {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		if role != models.RoleAdmin {
			username, _ := helpers.GetUsername(r.Context())
			logger.Warn("Admin access denied", username, role)
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.ServeHTTP(w, r)
	})
}
