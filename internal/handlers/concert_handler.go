package handlers

import (
	"net/http"

	"francofolies/internal/interfaces"
)

type ConcertHandler struct {
	*BaseHandler
	repo interfaces.ConcertRepository
}

func NewConcertHandler(repo interfaces.ConcertRepository, base *BaseHandler) *ConcertHandler {
	return &ConcertHandler{BaseHandler: base, repo: repo}
}

// List returns every concert with its scene, artists and tariffs
// @Tags Concerts
// @Summary List concerts
// @Produce json
// @Success 200 {array} models.Concert
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /api/concerts [get]
func (h *ConcertHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.queryContext(r)
	defer cancel()

	concerts, err := h.repo.List(ctx)
	if err != nil {
		h.writeQueryError(ctx, w, r, err, "list concerts")
		return
	}

	writeJSON(w, http.StatusOK, concerts)
}

// ListByScene returns the concerts played on one scene
// @Tags Concerts
// @Summary List concerts by scene
// @Produce json
// @Param sceneId path int true "Scene ID"
// @Success 200 {array} models.Concert
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /api/concerts/scene/{sceneId} [get]
func (h *ConcertHandler) ListByScene(w http.ResponseWriter, r *http.Request) {
	sceneID, err := h.parseIDParam(r, "sceneId")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid scene ID")
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	concerts, err := h.repo.ListByScene(ctx, sceneID)
	if err != nil {
		h.writeQueryError(ctx, w, r, err, "list concerts by scene")
		return
	}

	writeJSON(w, http.StatusOK, concerts)
}

// ListByDate returns the concerts of one calendar day, whatever their time
// @Tags Concerts
// @Summary List concerts by date
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} models.Concert
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /api/concerts/date/{date} [get]
func (h *ConcertHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	day, err := h.parseDateParam(r, "date")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid date, expected YYYY-MM-DD")
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	concerts, err := h.repo.ListByDate(ctx, day)
	if err != nil {
		h.writeQueryError(ctx, w, r, err, "list concerts by date")
		return
	}

	writeJSON(w, http.StatusOK, concerts)
}

// ListByArtist returns the concerts an artist performs in
// @Tags Concerts
// @Summary List concerts by artist
// @Produce json
// @Param artistId path int true "Artist ID"
// @Success 200 {array} models.Concert
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /api/concerts/artist/{artistId} [get]
func (h *ConcertHandler) ListByArtist(w http.ResponseWriter, r *http.Request) {
	artistID, err := h.parseIDParam(r, "artistId")
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid artist ID")
		return
	}

	ctx, cancel := h.queryContext(r)
	defer cancel()

	concerts, err := h.repo.ListByArtist(ctx, artistID)
	if err != nil {
		h.writeQueryError(ctx, w, r, err, "list concerts by artist")
		return
	}

	writeJSON(w, http.StatusOK, concerts)
}
