// internal/routes/routes.go
package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"francofolies/internal/config"
	"francofolies/internal/handlers"
	"francofolies/internal/middleware"
)

func SetupRoutes(db *sql.DB, cfg *config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/", handlers.Root)
	r.Get("/health", handlers.NewHealthHandler(db).Check)

	RegisterSwaggerRoutes(r)

	base := handlers.NewBaseHandler(cfg)
	r.Route("/api", func(r chi.Router) {
		RegisterConcertRoutes(r, db, base)
		RegisterSceneRoutes(r, db, base)
		RegisterArtistRoutes(r, db, base)
	})

	return r
}
