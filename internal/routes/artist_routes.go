package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"francofolies/internal/handlers"
	"francofolies/internal/repository"
)

func RegisterArtistRoutes(r chi.Router, db *sql.DB, base *handlers.BaseHandler) {
	repo := repository.NewArtistRepository(db)
	handler := handlers.NewArtistHandler(repo, base)

	r.Get("/artists", handler.List)
}
