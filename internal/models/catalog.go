package models

import "time"

// CatalogSnapshot is the document uploaded by the catalog export.
type CatalogSnapshot struct {
	GeneratedAt time.Time  `json:"generated_at"`
	Concerts    []*Concert `json:"concerts"`
	Scenes      []*Scene   `json:"scenes"`
	Artists     []*Artist  `json:"artists"`
}
