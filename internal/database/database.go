package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/mx-space/blog/internal/config"
	"github.com/mx-space/blog/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table owned by this module, parents before children.
func Models() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.CategoryModel{},
		&models.TagModel{},
		&models.ArticleModel{},
		&models.LinkModel{},
		&models.SideBarModel{},
		&models.BlogSettingModel{},
	}
}

// Connect opens the configured database and optionally runs auto-migration.
func Connect(cfg *config.AppConfig, autoMigrate bool) (*gorm.DB, error) {
	db, err := Open(cfg.Database.Driver, cfg.DSN, resolveLogLevel(cfg))
	if err != nil {
		return nil, err
	}

	if autoMigrate {
		if err := Migrate(db); err != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				_ = sqlDB.Close()
			}
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}
	return db, nil
}

// EnsureSchema applies database migration in a short-lived setup connection.
func EnsureSchema(cfg *config.AppConfig) error {
	db, err := Open(cfg.Database.Driver, cfg.DSN, resolveLogLevel(cfg))
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("resolve sql db: %w", err)
	}
	defer sqlDB.Close()

	if err := Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func resolveLogLevel(cfg *config.AppConfig) logger.LogLevel {
	if cfg.IsDev() {
		return logger.Info
	}
	return logger.Warn
}

// Open connects with the dialector for driver.
func Open(driver, dsn string, logLevel logger.LogLevel) (*gorm.DB, error) {
	dialector, err := dialectorFor(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if driver == config.DriverSQLite {
		// SQLite only enforces ON DELETE CASCADE when this pragma is on for the connection.
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("enable sqlite foreign keys: %w", err)
		}
	}
	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverMySQL, "":
		return mysql.New(mysql.Config{
			DSN:               dsn,
			DefaultStringSize: 191,
		}), nil
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// Migrate runs GORM auto-migration for all models, including the article_tags join table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
