package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rannaghore/internal/infrastructure/persistence/models"
	"rannaghore/internal/shared/db"
	"rannaghore/internal/shared/id"
)

const orderSequenceName = "orders"

// OrderNumberAllocator hands out sequential display numbers backed by a
// single counter row. The row is locked for update, so two concurrent
// checkouts in separate transactions can never read the same value.
type OrderNumberAllocator struct {
	db *gorm.DB
}

func NewOrderNumberAllocator(database *gorm.DB) *OrderNumberAllocator {
	return &OrderNumberAllocator{db: database}
}

func (a *OrderNumberAllocator) Next(ctx context.Context) (string, error) {
	tx := db.GetTxFromContext(ctx, a.db)

	var seq models.OrderSequenceModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", orderSequenceName).
		First(&seq).Error
	if err == gorm.ErrRecordNotFound {
		seq = models.OrderSequenceModel{Name: orderSequenceName, Value: 0}
		if err := tx.Create(&seq).Error; err != nil {
			return "", fmt.Errorf("failed to create order sequence: %w", err)
		}
	} else if err != nil {
		return "", fmt.Errorf("failed to read order sequence: %w", err)
	}

	seq.Value++
	if err := tx.Model(&models.OrderSequenceModel{}).
		Where("id = ?", seq.ID).
		Update("value", seq.Value).Error; err != nil {
		return "", fmt.Errorf("failed to advance order sequence: %w", err)
	}

	return id.FormatOrderNumber(seq.Value), nil
}
