package tag

import (
	"errors"

	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/modules/content/cascade"
	"github.com/mx-space/blog/internal/pkg/dberr"
	"github.com/mx-space/blog/internal/pkg/pagination"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List(q pagination.Query) ([]models.TagModel, pagination.Pagination, error) {
	tx := s.db.Model(&models.TagModel{}).Scopes(models.Ordered(models.TagModel{}))
	var items []models.TagModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(id uint) (*models.TagModel, error) {
	return s.first("id = ?", id)
}

func (s *Service) GetByName(name string) (*models.TagModel, error) {
	return s.first("name = ?", name)
}

func (s *Service) GetBySlug(slug string) (*models.TagModel, error) {
	return s.first("slug = ?", slug)
}

func (s *Service) first(query interface{}, args ...interface{}) (*models.TagModel, error) {
	var t models.TagModel
	if err := s.db.Where(query, args...).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (s *Service) Create(dto *CreateTagDTO) (*models.TagModel, error) {
	t := models.TagModel{Name: dto.Name, Slug: dto.Slug}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return &t, nil
}

// GetOrCreate returns the tag named name, creating it when missing.
func (s *Service) GetOrCreate(name string) (*models.TagModel, error) {
	t, err := s.GetByName(name)
	if err != nil || t != nil {
		return t, err
	}
	return s.Create(&CreateTagDTO{Name: name})
}

func (s *Service) Update(id uint, dto *UpdateTagDTO) (*models.TagModel, error) {
	t, err := s.GetByID(id)
	if err != nil || t == nil {
		return t, err
	}
	if dto.Name != nil {
		t.Name = *dto.Name
	}
	if dto.Slug != nil {
		t.Slug = *dto.Slug
	}
	t.Touch()
	if err := s.db.Save(t).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return t, nil
}

// Delete removes the tag and its article links. Articles are kept.
func (s *Service) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := cascade.UnlinkTags(tx, "tag_id", []uint{id}); err != nil {
			return err
		}
		return dberr.Classify(tx.Delete(&models.TagModel{}, "id = ?", id).Error)
	})
}

// ArticleCount returns how many articles carry the tag.
func (s *Service) ArticleCount(id uint) (int64, error) {
	var n int64
	err := s.db.Table(models.ArticleTagsTable).Where("tag_id = ?", id).Count(&n).Error
	return n, err
}
