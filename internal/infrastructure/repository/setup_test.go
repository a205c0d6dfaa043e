package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rannaghore/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ProductModel{},
		&models.CartItemModel{},
		&models.OrderModel{},
		&models.OrderSequenceModel{},
		&models.TicketModel{},
		&models.FAQModel{},
		&models.UserModel{},
		&models.OAuthAccountModel{},
		&models.NotificationModel{},
	)
	require.NoError(t, err)

	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, brand, category string, price int64, active bool) uint {
	t.Helper()

	model := &models.ProductModel{
		Name:     name,
		Brand:    brand,
		Category: category,
		Price:    price,
		Active:   active,
	}
	require.NoError(t, db.Create(model).Error)
	return model.ID
}
