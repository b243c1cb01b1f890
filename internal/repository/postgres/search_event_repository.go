package postgres

import (
	"context"
	"fmt"

	"partsHub/domain"

	"gorm.io/gorm"
)

type SearchEventRepository struct {
	DB *gorm.DB
}

func NewSearchEventRepository(db *gorm.DB) *SearchEventRepository {
	return &SearchEventRepository{
		DB: db,
	}
}

func (r *SearchEventRepository) SaveEvent(ctx context.Context, event domain.SearchEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save search event: %w", err)
	}

	return nil
}
