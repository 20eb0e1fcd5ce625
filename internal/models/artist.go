package models

type Artist struct {
	ID   int    `json:"id_artistes" db:"id_artistes"`
	Name string `json:"nom_artistes" db:"nom_artistes"`
}
