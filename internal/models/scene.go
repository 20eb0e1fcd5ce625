package models

type Scene struct {
	ID       int     `json:"id_scenes" db:"id_scenes"`
	Name     string  `json:"nom_scene" db:"nom_scene"`
	Location *string `json:"lieu" db:"lieu"`
	Capacity *int    `json:"capacité" db:"capacité"`
}
