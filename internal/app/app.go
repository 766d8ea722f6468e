package app

import (
	"errors"
	"fmt"

	"github.com/mx-space/blog/internal/config"
	"github.com/mx-space/blog/internal/database"
	"github.com/mx-space/blog/internal/modules/auth/user"
	"github.com/mx-space/blog/internal/modules/content/article"
	"github.com/mx-space/blog/internal/modules/content/category"
	"github.com/mx-space/blog/internal/modules/content/link"
	"github.com/mx-space/blog/internal/modules/content/sidebar"
	"github.com/mx-space/blog/internal/modules/content/tag"
	"github.com/mx-space/blog/internal/modules/system/core/setting"
	pkgredis "github.com/mx-space/blog/internal/pkg/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the opened resources and the services built on them.
type App struct {
	cfg    *config.AppConfig
	db     *gorm.DB
	redis  *pkgredis.Client
	logger *zap.Logger

	Users      *user.Service
	Categories *category.Service
	Tags       *tag.Service
	Articles   *article.Service
	Links      *link.Service
	SideBars   *sidebar.Service
	Settings   *setting.Service
}

// New initializes the application: config → DB → Redis → services.
func New(logger *zap.Logger, cfg *config.AppConfig, autoMigrate bool) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := database.Connect(cfg, autoMigrate)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	settingOpts := []setting.Option{setting.WithLogger(logger.Named("setting"))}
	var rc *pkgredis.Client
	if cfg.Redis.Enable {
		rc, err = pkgredis.Connect(cfg.RedisURL)
		if err != nil {
			closeDB(db)
			return nil, fmt.Errorf("redis: %w", err)
		}
		settingOpts = append(settingOpts, setting.WithCache(rc, cfg.CacheKeyPrefix, cfg.SettingCacheTTL))
	}

	logger.Debug("application ready",
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("redis", rc != nil),
	)

	return &App{
		cfg:        cfg,
		db:         db,
		redis:      rc,
		logger:     logger,
		Users:      user.NewService(db),
		Categories: category.NewService(db),
		Tags:       tag.NewService(db),
		Articles:   article.NewService(db),
		Links:      link.NewService(db),
		SideBars:   sidebar.NewService(db),
		Settings:   setting.NewService(db, settingOpts...),
	}, nil
}

func (a *App) Config() *config.AppConfig { return a.cfg }

func (a *App) DB() *gorm.DB { return a.db }

func (a *App) Logger() *zap.Logger { return a.logger }

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var errs []error
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	if sqlDB, err := a.db.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	} else {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
