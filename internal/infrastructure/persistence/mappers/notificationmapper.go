package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"rannaghore/internal/domain/notification"
	"rannaghore/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToDomain(model *models.NotificationModel) (*notification.Notification, error)
	ToDomainList(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type notificationMapper struct{}

func NewNotificationMapper() NotificationMapper {
	return &notificationMapper{}
}

func (m *notificationMapper) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("notification entity is nil")
	}
	payload, err := json.Marshal(entity.Payload())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	return &models.NotificationModel{
		ID:        entity.ID(),
		Kind:      entity.Kind().String(),
		Recipient: entity.Recipient(),
		Payload:   datatypes.JSON(payload),
		Status:    string(entity.Status()),
		Attempts:  entity.Attempts(),
		LastError: entity.LastError(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *notificationMapper) ToDomain(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, fmt.Errorf("notification model is nil")
	}
	payload := map[string]string{}
	if len(model.Payload) > 0 {
		if err := json.Unmarshal(model.Payload, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification payload: %w", err)
		}
	}
	return notification.ReconstructNotification(
		model.ID,
		notification.Kind(model.Kind),
		model.Recipient,
		payload,
		notification.Status(model.Status),
		model.Attempts,
		model.LastError,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *notificationMapper) ToDomainList(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	entities := make([]*notification.Notification, 0, len(modelList))
	for _, model := range modelList {
		entity, err := m.ToDomain(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
