package handlers

import (
	"net/http"

	"francofolies/internal/interfaces"
)

type ArtistHandler struct {
	*BaseHandler
	repo interfaces.ArtistRepository
}

func NewArtistHandler(repo interfaces.ArtistRepository, base *BaseHandler) *ArtistHandler {
	return &ArtistHandler{BaseHandler: base, repo: repo}
}

// List returns all artists
// @Tags Artists
// @Summary List artists
// @Produce json
// @Success 200 {array} models.Artist
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /api/artists [get]
func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.queryContext(r)
	defer cancel()

	artists, err := h.repo.List(ctx)
	if err != nil {
		h.writeQueryError(ctx, w, r, err, "list artists")
		return
	}

	writeJSON(w, http.StatusOK, artists)
}
