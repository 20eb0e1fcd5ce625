package interfaces

import (
	"context"
	"time"

	"francofolies/internal/models"
)

// ConcertRepository defines the read operations over concerts
type ConcertRepository interface {
	List(ctx context.Context) ([]*models.Concert, error)
	ListByScene(ctx context.Context, sceneID int) ([]*models.Concert, error)
	ListByDate(ctx context.Context, day time.Time) ([]*models.Concert, error)
	ListByArtist(ctx context.Context, artistID int) ([]*models.Concert, error)
}
