// Package migration manages the database schema. Development environments
// use GORM AutoMigrate; everything else runs the versioned SQL migrations
// embedded in this package through goose.
package migration

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"rannaghore/internal/infrastructure/persistence/models"
	"rannaghore/internal/shared/logger"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

const envDevelopment = "development"

// AutoMigrateModels lists every persistence model in schema order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.OAuthAccountModel{},
		&models.ProductModel{},
		&models.CartItemModel{},
		&models.OrderModel{},
		&models.OrderSequenceModel{},
		&models.TicketModel{},
		&models.FAQModel{},
		&models.NotificationModel{},
	}
}

// Runner applies migrations with the strategy matching the environment.
type Runner struct {
	env    string
	logger logger.Interface
}

func NewRunner(env string) *Runner {
	return &Runner{
		env:    strings.ToLower(env),
		logger: logger.NewLogger().With("component", "migration"),
	}
}

func (r *Runner) Up(db *gorm.DB) error {
	if r.env == envDevelopment {
		r.logger.Infow("running gorm auto-migration", "env", r.env)
		if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	r.logger.Infow("running sql migrations", "env", r.env)
	if err := goose.Up(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (r *Runner) Down(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Down(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

func (r *Runner) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(scriptsFS)
	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Status(sqlDB, "scripts"); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}
