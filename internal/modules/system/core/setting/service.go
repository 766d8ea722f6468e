package setting

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/pkg/dberr"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const cacheKey = "setting"

// Service manages the single BlogSetting row.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger

	mu     sync.RWMutex
	cached *models.BlogSettingModel

	cache Cache
	key   string
	ttl   time.Duration
}

type Option func(*Service)

// WithCache shares the setting through c under prefix+"setting" for ttl.
func WithCache(c Cache, prefix string, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.key = prefix + cacheKey
		s.ttl = ttl
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

func NewService(db *gorm.DB, opts ...Option) *Service {
	s := &Service{db: db, logger: zap.NewNop(), key: cacheKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the effective setting, creating the default row on first use.
func (s *Service) Get(ctx context.Context) (*models.BlogSettingModel, error) {
	s.mu.RLock()
	if s.cached != nil {
		out := *s.cached
		s.mu.RUnlock()
		return &out, nil
	}
	s.mu.RUnlock()

	if m := s.fromCache(ctx); m != nil {
		s.remember(m)
		return m, nil
	}
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) (*models.BlogSettingModel, error) {
	db := s.db.WithContext(ctx)
	var m models.BlogSettingModel
	err := db.First(&m, models.SettingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = models.DefaultBlogSetting()
		res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
		if res.Error != nil {
			return nil, dberr.Classify(res.Error)
		}
		if res.RowsAffected == 0 {
			// Another writer inserted the row first.
			m = models.BlogSettingModel{}
			if err := db.First(&m, models.SettingID).Error; err != nil {
				return nil, err
			}
		}
	} else if err != nil {
		return nil, err
	}

	s.remember(&m)
	s.toCache(ctx, &m)
	out := m
	return &out, nil
}

// Create stores the setting row. It fails with ErrSingleton when one already exists.
func (s *Service) Create(ctx context.Context, dto *SettingDTO) (*models.BlogSettingModel, error) {
	m := models.DefaultBlogSetting()
	dto.apply(&m)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		want := m
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&m)
		if res.Error != nil {
			return dberr.Classify(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrSingleton
		}

		// Zero values in these columns were swapped for the column default on insert.
		want.ID = m.ID
		cols := models.ZeroDefaultColumns[m.TableName()]
		if err := tx.Model(&m).Select(cols).UpdateColumns(&want).Error; err != nil {
			return err
		}
		m = want
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.remember(&m)
	s.toCache(ctx, &m)
	out := m
	return &out, nil
}

// Update writes the non-nil fields to the setting row, creating it first if needed.
func (s *Service) Update(ctx context.Context, dto *SettingDTO) (*models.BlogSettingModel, error) {
	s.Invalidate(ctx)
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	dto.apply(current)
	if err := s.db.WithContext(ctx).Save(current).Error; err != nil {
		s.Invalidate(ctx)
		return nil, dberr.Classify(err)
	}

	s.remember(current)
	s.toCache(ctx, current)
	out := *current
	return &out, nil
}

// Invalidate drops the cached setting, forcing a reload on the next Get.
func (s *Service) Invalidate(ctx context.Context) {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()

	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.key); err != nil {
		s.logger.Warn("setting cache delete failed", zap.Error(err))
	}
}

func (s *Service) remember(m *models.BlogSettingModel) {
	cp := *m
	s.mu.Lock()
	s.cached = &cp
	s.mu.Unlock()
}

func (s *Service) fromCache(ctx context.Context) *models.BlogSettingModel {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("setting cache read failed", zap.Error(err))
		return nil
	}
	if raw == "" {
		return nil
	}
	var m models.BlogSettingModel
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		s.logger.Warn("setting cache entry is corrupt", zap.Error(err))
		return nil
	}
	return &m
}

func (s *Service) toCache(ctx context.Context, m *models.BlogSettingModel) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(m)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.key, string(data), s.ttl); err != nil {
		s.logger.Warn("setting cache write failed", zap.Error(err))
	}
}
