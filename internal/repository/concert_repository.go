package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"francofolies/internal/interfaces"
	"francofolies/internal/models"
)

// concertSelect joins every concert with its scene. The whole CONCERTS row
// is carried as JSON so columns the API does not model still reach the
// client. Artists and tariffs are aggregated per concert in sub-selects, so
// every TARIF row is kept even when two share a type and price.
const concertSelect = `
	SELECT
		c.id_concert,
		c.id_scenes,
		c.date_concert,
		to_jsonb(c) AS concert,
		s.nom_scene,
		s.lieu,
		s.capacité,
		COALESCE((
			SELECT jsonb_agg(DISTINCT jsonb_build_object('id_artistes', a.id_artistes, 'nom_artistes', a.nom_artistes))
			FROM CONCERT_ARTISTE ca
			JOIN ARTISTES a ON ca.id_artistes = a.id_artistes
			WHERE ca.id_concert = c.id_concert
		), '[]'::jsonb) AS artistes,
		COALESCE((
			SELECT jsonb_agg(jsonb_build_object('type_tarif', t.type_tarif, 'prix', t.prix))
			FROM TARIF t
			WHERE t.id_concert = c.id_concert
		), '[]'::jsonb) AS tarifs
	FROM CONCERTS c
	LEFT JOIN SCENES s ON c.id_scenes = s.id_scenes
`

const concertOrderBy = `
	ORDER BY c.date_concert, c.id_concert
`

const (
	listConcertsQuery = concertSelect + concertOrderBy

	listConcertsBySceneQuery = concertSelect + `
	WHERE c.id_scenes = $1` + concertOrderBy

	listConcertsByDateQuery = concertSelect + `
	WHERE DATE(c.date_concert) = $1` + concertOrderBy

	// The artist filter goes through a sub-select so the aggregated artist
	// list keeps the other performers of the concert.
	listConcertsByArtistQuery = concertSelect + `
	WHERE EXISTS (
		SELECT 1 FROM CONCERT_ARTISTE f
		WHERE f.id_concert = c.id_concert AND f.id_artistes = $1
	)` + concertOrderBy
)

// modelledColumns are the CONCERTS columns scanned into typed fields.
var modelledColumns = []string{"id_concert", "id_scenes", "date_concert"}

type concertRepository struct {
	db *sql.DB
}

func NewConcertRepository(db *sql.DB) interfaces.ConcertRepository {
	return &concertRepository{db: db}
}

func (r *concertRepository) List(ctx context.Context) ([]*models.Concert, error) {
	concerts, err := r.query(ctx, listConcertsQuery)
	if err != nil {
		return nil, fmt.Errorf("list concerts: %w", err)
	}
	return concerts, nil
}

func (r *concertRepository) ListByScene(ctx context.Context, sceneID int) ([]*models.Concert, error) {
	concerts, err := r.query(ctx, listConcertsBySceneQuery, sceneID)
	if err != nil {
		return nil, fmt.Errorf("list concerts by scene: %w", err)
	}
	return concerts, nil
}

func (r *concertRepository) ListByDate(ctx context.Context, day time.Time) ([]*models.Concert, error) {
	concerts, err := r.query(ctx, listConcertsByDateQuery, day.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("list concerts by date: %w", err)
	}
	return concerts, nil
}

func (r *concertRepository) ListByArtist(ctx context.Context, artistID int) ([]*models.Concert, error) {
	concerts, err := r.query(ctx, listConcertsByArtistQuery, artistID)
	if err != nil {
		return nil, fmt.Errorf("list concerts by artist: %w", err)
	}
	return concerts, nil
}

func (r *concertRepository) query(ctx context.Context, query string, args ...any) ([]*models.Concert, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	concerts := []*models.Concert{}
	for rows.Next() {
		var concert models.Concert
		var rowJSON, artistsJSON, tariffsJSON []byte
		if err := rows.Scan(
			&concert.ID, &concert.SceneID, &concert.Date, &rowJSON,
			&concert.SceneName, &concert.Location, &concert.Capacity,
			&artistsJSON, &tariffsJSON,
		); err != nil {
			return nil, fmt.Errorf("scan concert: %w", err)
		}

		if concert.Attributes, err = decodeAttributes(rowJSON); err != nil {
			return nil, fmt.Errorf("unmarshal row of concert %d: %w", concert.ID, err)
		}
		if concert.Artists, err = decodeArtists(artistsJSON); err != nil {
			return nil, fmt.Errorf("unmarshal artistes of concert %d: %w", concert.ID, err)
		}
		if concert.Tariffs, err = decodeTariffs(tariffsJSON); err != nil {
			return nil, fmt.Errorf("unmarshal tarifs of concert %d: %w", concert.ID, err)
		}

		concerts = append(concerts, &concert)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return concerts, nil
}

// decodeAttributes keeps the CONCERTS columns that have no typed field.
func decodeAttributes(raw []byte) (map[string]json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var attrs map[string]json.RawMessage
	if err := json.Unmarshal(raw, &attrs); err != nil {
		return nil, err
	}
	for _, col := range modelledColumns {
		delete(attrs, col)
	}
	if len(attrs) == 0 {
		return nil, nil
	}
	return attrs, nil
}

func decodeArtists(raw []byte) ([]models.Artist, error) {
	artists := []models.Artist{}
	if len(raw) == 0 {
		return artists, nil
	}
	if err := json.Unmarshal(raw, &artists); err != nil {
		return nil, err
	}
	if artists == nil {
		artists = []models.Artist{}
	}
	sort.SliceStable(artists, func(i, j int) bool {
		if artists[i].Name != artists[j].Name {
			return artists[i].Name < artists[j].Name
		}
		return artists[i].ID < artists[j].ID
	})
	return artists, nil
}

func decodeTariffs(raw []byte) ([]models.Tariff, error) {
	tariffs := []models.Tariff{}
	if len(raw) == 0 {
		return tariffs, nil
	}
	if err := json.Unmarshal(raw, &tariffs); err != nil {
		return nil, err
	}
	if tariffs == nil {
		tariffs = []models.Tariff{}
	}
	sort.SliceStable(tariffs, func(i, j int) bool {
		if tariffs[i].Type != tariffs[j].Type {
			return tariffs[i].Type < tariffs[j].Type
		}
		return tariffs[i].Price < tariffs[j].Price
	})
	return tariffs, nil
}
