package routes

import (
	"net/http"

	"github.com/Dosada05/card-league/docs"
	"github.com/Dosada05/card-league/handlers"
	"github.com/Dosada05/card-league/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	JWTSecret      []byte
	AllowedOrigins []string
}

type Handlers struct {
	Auth       *handlers.AuthHandler
	Player     *handlers.PlayerHandler
	Tournament *handlers.TournamentHandler
	Game       *handlers.GameHandler
	Statistics *handlers.StatisticsHandler
	WebSocket  *handlers.WebSocketHandler
}

func SetupRoutes(router chi.Router, h Handlers, opts Options) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	router.Handle("/swagger/doc.json", docs.Handler())
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Get("/ws/tournaments/{tournamentID}", h.WebSocket.ServeWs)

	requireAdmin := []func(http.Handler) http.Handler{
		middleware.Authenticate(opts.JWTSecret),
		middleware.Authorize(middleware.RoleAdmin),
	}
	adminOnly := func(r chi.Router) {
		r.Use(requireAdmin...)
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.Player.ListHandler)
			r.Get("/{playerID}", h.Player.GetByIDHandler)

			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Post("/", h.Player.CreateHandler)
				r.Delete("/{playerID}", h.Player.DeleteHandler)
			})
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", h.Tournament.ListHandler)
			r.Get("/{tournamentID}", h.Tournament.GetByIDHandler)
			r.Get("/{tournamentID}/games", h.Tournament.ListGamesHandler)
			r.Get("/{tournamentID}/scores", h.Tournament.ScoresHandler)

			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Post("/", h.Tournament.CreateHandler)
				r.Delete("/{tournamentID}", h.Tournament.DeleteHandler)
				r.Post("/{tournamentID}/export", h.Tournament.ExportHandler)
			})
		})

		r.With(requireAdmin...).Patch("/games/{gameID}", h.Game.UpdateResultHandler)

		r.Get("/rotation", h.Tournament.RotationPreviewHandler)

		r.Route("/statistics", func(r chi.Router) {
			r.Get("/yearly/{year}", h.Statistics.YearlyHandler)
			r.Get("/player/{playerID}/yearly/{year}", h.Statistics.PlayerYearHandler)
		})
	})
}
