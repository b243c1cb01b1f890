package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.products (
//     id                    BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     store_id              BIGINT,
//     store_name            TEXT,
//     product_name          TEXT,
//     description           TEXT,
//     product_category      TEXT,
//     tags                  JSONB,
//     price                 NUMERIC,
//     compare_at_price      NUMERIC,
//     sold_count            BIGINT DEFAULT 0,
//     view_count            BIGINT DEFAULT 0,
//     rating_average        NUMERIC DEFAULT 0,
//     ratings_count         BIGINT DEFAULT 0,
//     vehicle_compatibility JSONB,
//     vehicle_fitment       JSONB,
//     created_at            TIMESTAMPTZ DEFAULT NOW(),
//     updated_at            TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID                   uint64                      `gorm:"primaryKey;autoIncrement" json:"id"`
	StoreID              uint                        `gorm:"column:store_id" json:"store_id"`
	StoreName            string                      `gorm:"column:store_name;type:text" json:"store_name"`
	ProductName          string                      `gorm:"column:product_name;type:text" json:"product_name"`
	Description          string                      `gorm:"column:description;type:text" json:"description"`
	ProductCategory      string                      `gorm:"column:product_category;type:text" json:"product_category"`
	Tags                 datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	Price                float64                     `gorm:"column:price;type:numeric" json:"price"`
	CompareAtPrice       *float64                    `gorm:"column:compare_at_price;type:numeric" json:"compare_at_price,omitempty"`
	SoldCount            int64                       `gorm:"column:sold_count;default:0" json:"sold_count"`
	ViewCount            int64                       `gorm:"column:view_count;default:0" json:"view_count"`
	RatingAverage        float64                     `gorm:"column:rating_average;default:0" json:"rating_average"`
	RatingsCount         int64                       `gorm:"column:ratings_count;default:0" json:"ratings_count"`
	VehicleCompatibility *CompatibilityRule          `gorm:"column:vehicle_compatibility;type:jsonb;serializer:json" json:"vehicle_compatibility,omitempty"`
	VehicleFitment       *VehicleFitment             `gorm:"column:vehicle_fitment;type:jsonb;serializer:json" json:"vehicle_fitment,omitempty"`
	CreatedAt            time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// YearRange bounds the model years a part fits. To == 0 leaves the
// upper bound open.
type YearRange struct {
	From int `json:"from"`
	To   int `json:"to,omitempty"`
}

// CompatibilityRule is the hard fitment declaration on a listing. Every
// field left empty imposes no constraint; an empty rule fits everything.
type CompatibilityRule struct {
	IsUniversalFit bool       `json:"is_universal_fit,omitempty"`
	Type           string     `json:"type,omitempty"`
	Makes          []string   `json:"makes,omitempty"`
	Models         []string   `json:"models,omitempty"`
	YearRange      *YearRange `json:"year_range,omitempty"`
	Trims          []string   `json:"trims,omitempty"`
	Engines        []string   `json:"engines,omitempty"`
}

// VehicleFitment is the soft discovery metadata, kept separate from
// CompatibilityRule. It only influences sort order, never filtering.
type VehicleFitment struct {
	VehicleTypes []string `json:"vehicle_types,omitempty"`
	Styles       []string `json:"styles,omitempty"`
	Categories   []string `json:"categories,omitempty"`
}
