package link

import (
	"errors"

	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/pkg/dberr"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns every link by sequence.
func (s *Service) List() ([]models.LinkModel, error) {
	var items []models.LinkModel
	err := s.db.Scopes(models.Ordered(models.LinkModel{})).Find(&items).Error
	return items, err
}

// ListVisible returns the enabled links shown in the given page context.
// Site-wide links appear everywhere; the links page shows every enabled link.
func (s *Service) ListVisible(showType models.LinkShowType) ([]models.LinkModel, error) {
	tx := s.db.Where("is_enable IS NULL OR is_enable = ?", true)
	if showType != models.LinkShowLinksPage {
		tx = tx.Where("show_type IN ?", []models.LinkShowType{showType, models.LinkShowAll})
	}
	var items []models.LinkModel
	err := tx.Scopes(models.Ordered(models.LinkModel{})).Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.LinkModel, error) {
	var l models.LinkModel
	if err := s.db.First(&l, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (s *Service) Create(dto *CreateLinkDTO) (*models.LinkModel, error) {
	l := models.LinkModel{
		Name:     dto.Name,
		Link:     dto.Link,
		IsEnable: dto.IsEnable,
		ShowType: dto.ShowType,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if dto.Sequence != nil {
			l.Sequence = *dto.Sequence
		} else {
			next, err := nextSequence(tx, &models.LinkModel{})
			if err != nil {
				return err
			}
			l.Sequence = next
		}
		return dberr.Classify(tx.Create(&l).Error)
	})
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Service) Update(id uint, dto *UpdateLinkDTO) (*models.LinkModel, error) {
	l, err := s.GetByID(id)
	if err != nil || l == nil {
		return l, err
	}
	if dto.Name != nil {
		l.Name = *dto.Name
	}
	if dto.Link != nil {
		l.Link = *dto.Link
	}
	if dto.Sequence != nil {
		l.Sequence = *dto.Sequence
	}
	if dto.IsEnable != nil {
		enable := *dto.IsEnable
		l.IsEnable = &enable
	}
	if dto.ShowType != nil {
		l.ShowType = *dto.ShowType
	}
	l.Touch()
	if err := s.db.Save(l).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return l, nil
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.LinkModel{}, "id = ?", id).Error
}

// nextSequence returns one past the highest sequence in model's table.
func nextSequence(tx *gorm.DB, model interface{}) (int, error) {
	var max int
	if err := tx.Model(model).Select("COALESCE(MAX(sequence), 0)").Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}
