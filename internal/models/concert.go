package models

import (
	"encoding/json"
	"time"
)

// Concert is one row of the CONCERTS table joined with its scene and
// collapsed over its artists and tariffs.
type Concert struct {
	ID        int       `json:"id_concert" db:"id_concert"`
	SceneID   int       `json:"id_scenes" db:"id_scenes"`
	Date      time.Time `json:"date_concert" db:"date_concert"`
	SceneName *string   `json:"nom_scene" db:"nom_scene"`
	Location  *string   `json:"lieu" db:"lieu"`
	Capacity  *int      `json:"capacité" db:"capacité"`
	Artists   []Artist  `json:"artistes"`
	Tariffs   []Tariff  `json:"tarifs"`

	// Attributes holds the other CONCERTS columns keyed by column name.
	// They are emitted next to the typed fields, which win on a clash.
	Attributes map[string]json.RawMessage `json:"-" db:"-"`
}

type concertFields Concert

func (c Concert) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(concertFields(c))
	if err != nil || len(c.Attributes) == 0 {
		return typed, err
	}

	merged := make(map[string]json.RawMessage, len(c.Attributes)+8)
	for k, v := range c.Attributes {
		merged[k] = v
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(typed, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// Tariff is a named price tier of a concert
type Tariff struct {
	Type  string  `json:"type_tarif" db:"type_tarif"`
	Price float64 `json:"prix" db:"prix"`
}
