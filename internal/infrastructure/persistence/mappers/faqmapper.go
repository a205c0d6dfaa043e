package mappers

import (
	"fmt"

	"rannaghore/internal/domain/faq"
	"rannaghore/internal/infrastructure/persistence/models"
)

type FAQMapper interface {
	ToModel(entity *faq.FAQ) *models.FAQModel
	ToDomain(model *models.FAQModel) (*faq.FAQ, error)
	ToDomainList(models []*models.FAQModel) ([]*faq.FAQ, error)
}

type faqMapper struct{}

func NewFAQMapper() FAQMapper {
	return &faqMapper{}
}

func (m *faqMapper) ToModel(entity *faq.FAQ) *models.FAQModel {
	if entity == nil {
		return nil
	}
	return &models.FAQModel{
		ID:        entity.ID(),
		Question:  entity.Question(),
		Answer:    entity.Answer(),
		Category:  entity.Category(),
		Position:  entity.Position(),
		Active:    entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *faqMapper) ToDomain(model *models.FAQModel) (*faq.FAQ, error) {
	if model == nil {
		return nil, fmt.Errorf("faq model is nil")
	}
	return faq.ReconstructFAQ(
		model.ID,
		model.Question,
		model.Answer,
		model.Category,
		model.Position,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *faqMapper) ToDomainList(modelList []*models.FAQModel) ([]*faq.FAQ, error) {
	entities := make([]*faq.FAQ, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
