package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rannaghore/internal/domain/faq"
	"rannaghore/internal/infrastructure/persistence/mappers"
	"rannaghore/internal/infrastructure/persistence/models"
	"rannaghore/internal/shared/db"
)

// FAQRepository implements faq.FAQRepository with GORM.
type FAQRepository struct {
	db     *gorm.DB
	mapper mappers.FAQMapper
}

func NewFAQRepository(database *gorm.DB) faq.FAQRepository {
	return &FAQRepository{
		db:     database,
		mapper: mappers.NewFAQMapper(),
	}
}

func (r *FAQRepository) Search(ctx context.Context, query string, limit int) ([]*faq.FAQ, error) {
	if query == "" {
		return []*faq.FAQ{}, nil
	}

	pattern := "%" + query + "%"
	var modelList []*models.FAQModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("active = ?", true).
		Where("LOWER(question) LIKE LOWER(?) OR LOWER(answer) LIKE LOWER(?)", pattern, pattern).
		Order("position ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search FAQs: %w", err)
	}
	return r.mapper.ToDomainList(modelList)
}

func (r *FAQRepository) ListActive(ctx context.Context) ([]*faq.FAQ, error) {
	var modelList []*models.FAQModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("active = ?", true).
		Order("position ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list FAQs: %w", err)
	}
	return r.mapper.ToDomainList(modelList)
}

func (r *FAQRepository) ListByCategory(ctx context.Context, category string) ([]*faq.FAQ, error) {
	var modelList []*models.FAQModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("active = ? AND category = ?", true, category).
		Order("position ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list FAQs by category: %w", err)
	}
	return r.mapper.ToDomainList(modelList)
}
