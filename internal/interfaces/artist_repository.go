package interfaces

import (
	"context"

	"francofolies/internal/models"
)

type ArtistRepository interface {
	List(ctx context.Context) ([]*models.Artist, error)
}
