package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/denmor86/bet-bankroll/internal/logger"
)

// Ограничение частоты запросов к /register и /login (защита от перебора паролей)
const (
	LoginRatePerSecond = 5
	LoginRateBurst     = 10
)

// RateLimit - middleware ограничения частоты запросов общим лимитером
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				logger.Warn("Rate limit exceeded", r.RequestURI)
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			h.ServeHTTP(w, r)
		})
	}
}

// NewLoginLimiter - лимитер для эндпоинтов аутентификации
func NewLoginLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(LoginRatePerSecond), LoginRateBurst)
}
