package mappers

import (
	"fmt"

	"rannaghore/internal/domain/product"
	"rannaghore/internal/infrastructure/persistence/models"
)

// ProductMapper converts between the product entity and its persistence
// model.
type ProductMapper interface {
	ToModel(entity *product.Product) *models.ProductModel
	ToDomain(model *models.ProductModel) (*product.Product, error)
	ToDomainList(models []*models.ProductModel) ([]*product.Product, error)
}

type productMapper struct{}

func NewProductMapper() ProductMapper {
	return &productMapper{}
}

func (m *productMapper) ToModel(entity *product.Product) *models.ProductModel {
	if entity == nil {
		return nil
	}
	return &models.ProductModel{
		ID:               entity.ID(),
		Name:             entity.Name(),
		Brand:            entity.Brand(),
		Category:         entity.Category(),
		ShortDescription: entity.ShortDescription(),
		Price:            entity.Price(),
		Active:           entity.IsActive(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *productMapper) ToDomain(model *models.ProductModel) (*product.Product, error) {
	if model == nil {
		return nil, fmt.Errorf("product model is nil")
	}
	return product.ReconstructProduct(
		model.ID,
		model.Name,
		model.Brand,
		model.Category,
		model.ShortDescription,
		model.Price,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *productMapper) ToDomainList(modelList []*models.ProductModel) ([]*product.Product, error) {
	entities := make([]*product.Product, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
