package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"

	"github.com/tercas-fc/league-system/handlers"
	"github.com/tercas-fc/league-system/middleware"
	"github.com/tercas-fc/league-system/models"
)

// SetupRoutes настраивает маршруты и матрицу прав:
// admin — всё; treasurer — только казна; manager — состав и матчи;
// чтение и RSVP открыты всем.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	playerHandler *handlers.PlayerHandler,
	matchHandler *handlers.MatchHandler,
	tableHandler *handlers.TableHandler,
	championHandler *handlers.ChampionHandler,
	seasonHandler *handlers.SeasonHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	authenticate := middleware.Authenticate(jwtSecret)

	router.Post("/login", authHandler.Login)

	router.Get("/table/", tableHandler.GetTable)

	router.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.ListActivePlayers)

		// Казна: балансы видят и ведут только admin и treasurer.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.Authorize(models.RoleAdmin, models.RoleTreasurer))

			r.Get("/all", playerHandler.ListAllPlayers)
			r.Post("/pay", playerHandler.RegisterPayment)
			r.Post("/charge_monthly", playerHandler.ChargeMonthlyFees)
		})

		// Состав: admin и manager.
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.Authorize(models.RoleAdmin, models.RoleManager))

			r.Post("/", playerHandler.CreatePlayer)
			r.Put("/{id}/status", playerHandler.UpdatePlayerStatus)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/next", matchHandler.GetNextMatch)
		r.Post("/attend", matchHandler.UpdateAttendance)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.Authorize(models.RoleAdmin, models.RoleManager))

			r.Post("/", matchHandler.RecordMatch)
		})
	})

	router.Route("/champions", func(r chi.Router) {
		r.Get("/", championHandler.ListChampions)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.Authorize(models.RoleAdmin))

			r.Post("/remove", championHandler.RemoveTitle)
		})
	})

	router.Route("/history", func(r chi.Router) {
		r.Get("/", seasonHandler.GetHistory)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.Authorize(models.RoleAdmin))

			r.Delete("/{id}", seasonHandler.DeleteHistoryEntry)
		})
	})

	// Разрушительные операции — только admin.
	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.Authorize(models.RoleAdmin))

		r.Post("/season/close", seasonHandler.CloseSeason)
		r.Delete("/reset/", seasonHandler.ManualReset)
	})
}
