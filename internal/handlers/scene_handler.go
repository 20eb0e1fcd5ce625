package handlers

import (
	"net/http"

	"francofolies/internal/interfaces"
)

type SceneHandler struct {
	*BaseHandler
	repo interfaces.SceneRepository
}

func NewSceneHandler(repo interfaces.SceneRepository, base *BaseHandler) *SceneHandler {
	return &SceneHandler{BaseHandler: base, repo: repo}
}

// List returns all scenes
// @Tags Scenes
// @Summary List scenes
// @Produce json
// @Success 200 {array} models.Scene
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Router /api/scenes [get]
func (h *SceneHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.queryContext(r)
	defer cancel()

	scenes, err := h.repo.List(ctx)
	if err != nil {
		h.writeQueryError(ctx, w, r, err, "list scenes")
		return
	}

	writeJSON(w, http.StatusOK, scenes)
}
