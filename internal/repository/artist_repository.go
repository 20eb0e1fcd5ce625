package repository

import (
	"context"
	"database/sql"
	"fmt"

	"francofolies/internal/interfaces"
	"francofolies/internal/models"
)

type artistRepository struct {
	db *sql.DB
}

func NewArtistRepository(db *sql.DB) interfaces.ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) List(ctx context.Context) ([]*models.Artist, error) {
	query := `SELECT id_artistes, nom_artistes
			  FROM ARTISTES ORDER BY id_artistes`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	artists := []*models.Artist{}
	for rows.Next() {
		var artist models.Artist
		if err := rows.Scan(&artist.ID, &artist.Name); err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, &artist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}

	return artists, nil
}
