package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/coachfit-inc/coachfit/internal/infrastructure/persistence/models"
	"github.com/coachfit-inc/coachfit/internal/shared/logger"
)

// AutoMigrateModels returns every model the schema covers, in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.ProfileModel{},
		&models.ProgramModel{},
		&models.PaymentOrderModel{},
		&models.SubscriptionModel{},
	}
}

// GormAutoMigrateStrategy derives the schema from the model structs. Only for
// development; versioned SQL scripts own the schema everywhere else.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		s.logger.Errorw("auto-migration failed", "error", err)
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}

	s.logger.Infow("auto-migration completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}
