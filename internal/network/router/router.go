package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/denmor86/bet-bankroll/internal/config"
	"github.com/denmor86/bet-bankroll/internal/models"
	"github.com/denmor86/bet-bankroll/internal/network/handlers"
	"github.com/denmor86/bet-bankroll/internal/network/middleware"
	"github.com/denmor86/bet-bankroll/internal/services"
	"github.com/denmor86/bet-bankroll/internal/storage"
)

type Router struct {
	Config   config.Config
	Identity services.IdentityService
	Betting  services.BettingService
	Stats    services.StatsService
}

func NewRouter(config config.Config, storage storage.Storage) *Router {
	return &Router{
		Config:   config,
		Identity: services.NewIdentity(config, storage.Users),
		Betting:  services.NewBetting(storage.Bets),
		Stats:    services.NewStats(storage.Users, storage.Bankrolls, storage.Bets),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	loginLimiter := middleware.NewLoginLimiter()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(middleware.RateLimit(loginLimiter))
				r.Post("/register", handlers.RegisterUserHandler(router.Identity))
				r.Post("/login", handlers.AuthenticateUserHandler(router.Identity))
			})
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Post("/bets", handlers.PlaceBetHandler(router.Betting))
				r.Get("/bets", handlers.GetUserBetsHandler(router.Betting))
				r.Put("/bets/{id}/result", handlers.SettleBetHandler(router.Betting))
				r.Get("/bets/stats", handlers.GetBetStatsHandler(router.Betting))
				r.Get("/bankroll", handlers.GetBankStateHandler(router.Stats))
				r.Put("/bankroll", handlers.UpdateBankSettingsHandler(router.Stats))
			})
		})
		r.Route("/admin", func(r chi.Router) {
			r.Use(jwtauth.Verifier(ja))
			r.Use(jwtauth.Authenticator(ja))
			r.Use(middleware.AdminOnly)
			r.Get("/users", handlers.GetUsersHandler(router.Identity))
			r.Post("/users", handlers.CreateUserHandler(router.Identity))
			r.Patch("/users/{id}/activate", handlers.SetUserStatusHandler(router.Identity, models.UserStatusActive))
			r.Patch("/users/{id}/deactivate", handlers.SetUserStatusHandler(router.Identity, models.UserStatusInactive))
			r.Get("/stats", handlers.GetAdminStatsHandler(router.Stats))
		})
	})
	return r
}
