package backoffice

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/grocerly/appcore/pkg/config"
	"github.com/grocerly/appcore/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects the mock API storage: sqlite by default (in-memory when no
// DSN is set), postgres when a DSN is configured with sqlite disabled.
func Open(ctx context.Context, cfg config.MockAPIConfig, logg *logger.Logger) (*gorm.DB, error) {
	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)
	gormCfg := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	}

	var dialector gorm.Dialector
	switch {
	case cfg.UseSQLite:
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = "file::memory:?cache=shared"
		}
		dialector = sqlite.Open(dsn)
	case cfg.DBDSN != "":
		dialector = postgres.New(postgres.Config{
			DSN:                  cfg.DBDSN,
			PreferSimpleProtocol: true,
		})
	default:
		return nil, fmt.Errorf("database DSN is required when sqlite is disabled")
	}

	conn, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("opening db connection: %w", err)
	}

	if err := conn.AutoMigrate(
		&User{},
		&Product{},
		&CartItem{},
		&WishlistItem{},
		&Order{},
		&OrderItem{},
		&ContactMessage{},
	); err != nil {
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "storefront database ready")
	}
	return conn, nil
}
