package domain

import "time"

type Category struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:text" json:"name"`
	Slug      string    `gorm:"column:slug;type:text;uniqueIndex" json:"slug"`
	ParentID  *uint64   `gorm:"column:parent_id" json:"parent_id,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
