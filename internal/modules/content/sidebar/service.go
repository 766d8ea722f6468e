package sidebar

import (
	"errors"

	"github.com/mx-space/blog/internal/models"
	"github.com/mx-space/blog/internal/pkg/dberr"
	"gorm.io/gorm"
)

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.SideBarModel, error) {
	var items []models.SideBarModel
	err := s.db.Scopes(models.Ordered(models.SideBarModel{})).Find(&items).Error
	return items, err
}

// ListEnabled returns the blocks to render, by sequence.
func (s *Service) ListEnabled() ([]models.SideBarModel, error) {
	var items []models.SideBarModel
	err := s.db.Where("is_enable = ?", true).
		Scopes(models.Ordered(models.SideBarModel{})).
		Find(&items).Error
	return items, err
}

func (s *Service) GetByID(id uint) (*models.SideBarModel, error) {
	var sb models.SideBarModel
	if err := s.db.First(&sb, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sb, nil
}

func (s *Service) Create(dto *CreateSideBarDTO) (*models.SideBarModel, error) {
	enable := dto.IsEnable == nil || *dto.IsEnable
	sb := models.SideBarModel{Name: dto.Name, Content: dto.Content, IsEnable: &enable}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if dto.Sequence != nil {
			sb.Sequence = *dto.Sequence
		} else {
			var max int
			if err := tx.Model(&models.SideBarModel{}).Select("COALESCE(MAX(sequence), 0)").Scan(&max).Error; err != nil {
				return err
			}
			sb.Sequence = max + 1
		}
		return dberr.Classify(tx.Create(&sb).Error)
	})
	if err != nil {
		return nil, err
	}
	return &sb, nil
}

func (s *Service) Update(id uint, dto *UpdateSideBarDTO) (*models.SideBarModel, error) {
	sb, err := s.GetByID(id)
	if err != nil || sb == nil {
		return sb, err
	}
	if dto.Name != nil {
		sb.Name = *dto.Name
	}
	if dto.Content != nil {
		sb.Content = *dto.Content
	}
	if dto.Sequence != nil {
		sb.Sequence = *dto.Sequence
	}
	if dto.IsEnable != nil {
		enable := *dto.IsEnable
		sb.IsEnable = &enable
	}
	sb.Touch()
	if err := s.db.Save(sb).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return sb, nil
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.SideBarModel{}, "id = ?", id).Error
}
