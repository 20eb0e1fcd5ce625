package routes

import (
	"database/sql"

	"github.com/go-chi/chi/v5"

	"francofolies/internal/handlers"
	"francofolies/internal/repository"
)

func RegisterSceneRoutes(r chi.Router, db *sql.DB, base *handlers.BaseHandler) {
	repo := repository.NewSceneRepository(db)
	handler := handlers.NewSceneHandler(repo, base)

	r.Get("/scenes", handler.List)
}
