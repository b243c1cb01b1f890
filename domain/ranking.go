package domain

import (
	"time"

	"gorm.io/datatypes"
)

// RankedProduct attaches a transient score to a product for sorting.
// Scores are recomputed on every query and never persisted.
type RankedProduct struct {
	Product Product `json:"product"`
	Score   float64 `json:"score"`
}

// FitmentCheck is the answer for a single product/vehicle pair on the
// product page: the hard yes/no plus the soft discovery score.
type FitmentCheck struct {
	ProductID    uint64  `json:"product_id"`
	Compatible   bool    `json:"compatible"`
	FitmentScore float64 `json:"fitment_score"`
}

// CREATE TABLE public.search_events (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     query      TEXT,
//     context    JSONB,
//     results    BIGINT,
//     created_at TIMESTAMPTZ DEFAULT NOW()
// );

// SearchEvent records what buyers searched for and how many listings
// survived filtering. Written best-effort, ranking never depends on it.
type SearchEvent struct {
	ID        uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	Query     string            `gorm:"column:query;type:text" json:"query"`
	Context   datatypes.JSONMap `gorm:"column:context" json:"context,omitempty"`
	Results   int               `gorm:"column:results" json:"results"`
	CreatedAt time.Time         `gorm:"column:created_at" json:"created_at"`
}

func (SearchEvent) TableName() string {
	return "search_events"
}
