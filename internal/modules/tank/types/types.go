package types

import "time"

// Reading is one observation of a water tank. Rows are written by the
// external collector; this service never mutates them.
type Reading struct {
	TankID      int       `json:"id_caixa"`
	RecordedAt  time.Time `json:"data_registro"`
	Level       float64   `json:"nivel"`
	Temperature float64   `json:"temperatura"`
	Purity      float64   `json:"pureza"`
}

// Average is the reduced record for one period bucket.
type Average struct {
	Period      string  `json:"periodo"`
	Level       float64 `json:"nivel_medio"`
	Temperature float64 `json:"temperatura_media"`
	Purity      float64 `json:"pureza_media"`
}
