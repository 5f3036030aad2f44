package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/footylab/league-system/handlers"
	"github.com/footylab/league-system/middleware"
	"github.com/footylab/league-system/models"
)

func SetupRoutes(
	router *chi.Mux,
	authMw *middleware.AuthMiddleware,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	teamHandler *handlers.TeamHandler,
	playerHandler *handlers.PlayerHandler,
	stadiumHandler *handlers.StadiumHandler,
	matchHandler *handlers.MatchHandler,
	leagueHandler *handlers.LeagueHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Post("/auth/register", authHandler.Register)
	router.Post("/auth/login", authHandler.Login)

	router.Route("/users", func(r chi.Router) {
		r.Use(authMw.Authenticate)
		r.Get("/profile", userHandler.GetProfile)
		r.Put("/profile", userHandler.UpdateProfile)

		r.Group(func(r chi.Router) {
			r.Use(authMw.Authorize(models.RoleLeagueAdmin))
			r.Get("/managers", userHandler.ListManagers)
			r.Get("/players", userHandler.ListPlayers)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.List)
		r.Get("/{id}", teamHandler.GetByID)
		r.Get("/{id}/players", teamHandler.ListPlayers)

		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(authMw.Authorize(models.RoleLeagueAdmin))
			r.Post("/", teamHandler.Create)
			r.Delete("/{id}", teamHandler.Delete)
		})

		// Ownership of the team is enforced in the service layer.
		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(authMw.Authorize(models.RoleTeamManager, models.RoleLeagueAdmin))
			r.Put("/{id}", teamHandler.Update)
			r.Put("/{id}/crest", teamHandler.UploadCrest)
			r.Post("/{id}/players", teamHandler.AddPlayer)
			r.Delete("/{id}/players/{playerID}", teamHandler.RemovePlayer)
			r.Get("/{id}/statistics", teamHandler.Statistics)
		})
	})

	router.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.List)
		r.Get("/{id}", playerHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(authMw.Authorize(models.RoleLeagueAdmin))
			r.Post("/", playerHandler.Create)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(authMw.Authorize(models.RolePlayer))
			r.Get("/profile/me", playerHandler.MyProfile)
		})

		// Profile edits and statistics: the player themself or the admin.
		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(authMw.Authorize(models.RolePlayer, models.RoleLeagueAdmin))
			r.Put("/{id}", playerHandler.Update)
			r.Get("/{id}/statistics", playerHandler.Statistics)
		})
	})

	router.Route("/stadiums", func(r chi.Router) {
		r.Get("/", stadiumHandler.List)
		r.Get("/{id}", stadiumHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(authMw.Authorize(models.RoleLeagueAdmin))
			r.Post("/", stadiumHandler.Create)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(authMw.Authorize(models.RoleStadiumManager, models.RoleLeagueAdmin))
			r.Put("/{id}", stadiumHandler.Update)
			r.Put("/{id}/photo", stadiumHandler.UploadPhoto)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(authMw.Authorize(models.RoleStadiumManager))
			r.Get("/managed/me", stadiumHandler.MyStadiums)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", matchHandler.List)
		r.Get("/upcoming", matchHandler.ListUpcoming)
		r.Get("/past", matchHandler.ListPast)
		r.Get("/{id}", matchHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(authMw.Authorize(models.RoleLeagueAdmin))
			r.Post("/", matchHandler.Create)
			r.Put("/{id}/score", matchHandler.UpdateScore)
			r.Delete("/{id}", matchHandler.Delete)
		})

		r.Group(func(r chi.Router) {
			r.Use(authMw.Authenticate)
			r.Use(authMw.Authorize(models.RoleReferee))
			r.Get("/referee/me", matchHandler.MySchedule)
			r.Get("/referee/me/upcoming", matchHandler.MyUpcomingSchedule)
			r.Get("/referee/me/past", matchHandler.MyPastSchedule)
		})
	})

	router.Get("/league/points-table", leagueHandler.PointsTable)
}
