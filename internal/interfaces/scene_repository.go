package interfaces

import (
	"context"

	"francofolies/internal/models"
)

type SceneRepository interface {
	List(ctx context.Context) ([]*models.Scene, error)
}
