package database

import (
	"context"

	"github.com/Behyna/sms-services/templateconsole/internal/config"
	"github.com/Behyna/sms-services/templateconsole/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewConnection opens the journal database described by cfg.Database.
func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return NewConnectionContext(context.Background(), cfg, logger)
}

func NewConnectionContext(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(ctx, cfg.Database, logger)
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
