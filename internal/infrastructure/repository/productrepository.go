package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rannaghore/internal/domain/product"
	"rannaghore/internal/infrastructure/persistence/mappers"
	"rannaghore/internal/infrastructure/persistence/models"
	"rannaghore/internal/shared/db"
	"rannaghore/internal/shared/errors"
)

// ProductRepository implements product.ProductRepository with GORM.
type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(database *gorm.DB) product.ProductRepository {
	return &ProductRepository{
		db:     database,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepository) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	var model models.ProductModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("product %d not found", id))
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ProductRepository) ListActive(ctx context.Context) ([]*product.Product, error) {
	var modelList []*models.ProductModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("active = ?", true).
		Order("name ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return r.mapper.ToDomainList(modelList)
}

func (r *ProductRepository) Search(ctx context.Context, query string) ([]*product.Product, error) {
	if query == "" {
		return r.ListActive(ctx)
	}

	// LOWER on both sides keeps the match case-insensitive regardless of the
	// column collation.
	pattern := "%" + query + "%"
	var modelList []*models.ProductModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("active = ?", true).
		Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(brand) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?) OR LOWER(short_description) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern,
		).
		Order("name ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return r.mapper.ToDomainList(modelList)
}

func (r *ProductRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProductModel{}).
		Where("active = ? AND category <> ''", true).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
