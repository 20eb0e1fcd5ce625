package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"francofolies/internal/handlers"
	"francofolies/internal/repository"
)

func RegisterConcertRoutes(r chi.Router, db *sql.DB, base *handlers.BaseHandler) {
	repo := repository.NewConcertRepository(db)
	handler := handlers.NewConcertHandler(repo, base)

	r.Route("/concerts", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/scene/{sceneId}", handler.ListByScene)
		r.Get("/date/{date}", handler.ListByDate)
		r.Get("/artist/{artistId}", handler.ListByArtist)
	})
}
