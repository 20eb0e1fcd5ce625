package repository

import (
	"context"
	"database/sql"
	"fmt"

	"francofolies/internal/interfaces"
	"francofolies/internal/models"
)

type sceneRepository struct {
	db *sql.DB
}

func NewSceneRepository(db *sql.DB) interfaces.SceneRepository {
	return &sceneRepository{db: db}
}

func (r *sceneRepository) List(ctx context.Context) ([]*models.Scene, error) {
	query := `SELECT id_scenes, nom_scene, lieu, capacité
			  FROM SCENES ORDER BY id_scenes`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	defer rows.Close()

	scenes := []*models.Scene{}
	for rows.Next() {
		var scene models.Scene
		if err := rows.Scan(&scene.ID, &scene.Name, &scene.Location, &scene.Capacity); err != nil {
			return nil, fmt.Errorf("scan scene: %w", err)
		}
		scenes = append(scenes, &scene)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scenes: %w", err)
	}

	return scenes, nil
}
