package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rannaghore/internal/domain/notification"
	"rannaghore/internal/infrastructure/persistence/mappers"
	"rannaghore/internal/infrastructure/persistence/models"
	"rannaghore/internal/shared/db"
	"rannaghore/internal/shared/errors"
)

// NotificationRepository implements notification.NotificationRepository with
// GORM.
type NotificationRepository struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewNotificationRepository(database *gorm.DB) notification.NotificationRepository {
	return &NotificationRepository{
		db:     database,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *NotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	if n.ID() == 0 {
		return n.SetID(model.ID)
	}
	return nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		return err
	}
	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel
	err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError(fmt.Sprintf("notification %d not found", id))
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *NotificationRepository) ListPending(ctx context.Context, limit int) ([]*notification.Notification, error) {
	var modelList []*models.NotificationModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("status = ?", string(notification.StatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending notifications: %w", err)
	}
	return r.mapper.ToDomainList(modelList)
}
