package user

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

// List returns one page of users, newest first.
func (s *Service) List(q pagination.Query) ([]models.UserModel, pagination.Pagination, error) {
	tx := s.db.Model(&models.UserModel{}).Scopes(models.Ordered(models.UserModel{}))
	var items []models.UserModel
	pag, err := pagination.Paginate(tx, q, &items)
	return items, pag, err
}

func (s *Service) GetByID(id uint) (*models.UserModel, error) {
	return s.first("id = ?", id)
}

func (s *Service) GetByUsername(username string) (*models.UserModel, error) {
	return s.first("username = ?", username)
}

func (s *Service) first(query interface{}, args ...interface{}) (*models.UserModel, error) {
	var u models.UserModel
	if err := s.db.Where(query, args...).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// Create stores a new account. An empty password leaves the account unable to log in.
func (s *Service) Create(dto *CreateUserDTO) (*models.UserModel, error) {
	u := models.UserModel{
		Username:    dto.Username,
		Email:       dto.Email,
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Nickname:    dto.Nickname,
		Source:      dto.Source,
		IsStaff:     dto.IsStaff,
		IsSuperuser: dto.IsSuperuser,
		IsActive:    dto.IsActive == nil || *dto.IsActive,
	}
	if dto.Password != "" {
		if err := u.SetPassword(dto.Password); err != nil {
			return nil, err
		}
	}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return &u, nil
}

// CreateSuperuser stores an active staff account with every permission.
func (s *Service) CreateSuperuser(username, email, password string) (*models.UserModel, error) {
	return s.Create(&CreateUserDTO{
		Username:    username,
		Email:       email,
		Password:    password,
		IsStaff:     true,
		IsSuperuser: true,
		Source:      "cli",
	})
}

// Update applies the non-nil fields and stamps last_mod_time.
func (s *Service) Update(id uint, dto *UpdateUserDTO) (*models.UserModel, error) {
	u, err := s.GetByID(id)
	if err != nil || u == nil {
		return u, err
	}
	if dto.Email != nil {
		u.Email = *dto.Email
	}
	if dto.FirstName != nil {
		u.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		u.LastName = *dto.LastName
	}
	if dto.Nickname != nil {
		u.Nickname = *dto.Nickname
	}
	if dto.Source != nil {
		u.Source = *dto.Source
	}
	if dto.IsStaff != nil {
		u.IsStaff = *dto.IsStaff
	}
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}
	if dto.IsSuperuser != nil {
		u.IsSuperuser = *dto.IsSuperuser
	}
	u.LastModTime = models.Now()

	if err := s.db.Save(u).Error; err != nil {
		return nil, dberr.Classify(err)
	}
	return u, nil
}

// SetPassword replaces the password without checking the old one.
func (s *Service) SetPassword(id uint, raw string) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return dberr.ErrNotFound
	}
	return s.storePassword(u, raw)
}

func (s *Service) ChangePassword(id uint, oldPwd, newPwd string) error {
	u, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return dberr.ErrNotFound
	}
	if !u.CheckPassword(oldPwd) {
		return ErrWrongPassword
	}
	if u.CheckPassword(newPwd) {
		return ErrPasswordSameAsOld
	}
	return s.storePassword(u, newPwd)
}

func (s *Service) storePassword(u *models.UserModel, raw string) error {
	if err := u.SetPassword(raw); err != nil {
		return err
	}
	now := models.Now()
	return s.db.Model(u).UpdateColumns(map[string]interface{}{
		"password":      u.Password,
		"last_mod_time": now,
	}).Error
}

// Authenticate checks the credentials and records the login time.
func (s *Service) Authenticate(username, password string) (*models.UserModel, error) {
	u, err := s.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil || !u.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInactive
	}

	now := models.Now()
	if err := s.db.Model(u).UpdateColumn("last_login", now).Error; err != nil {
		return nil, err
	}
	u.LastLogin = &now
	return u, nil
}

// Delete removes the user together with every article they wrote.
func (s *Service) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := cascade.DeleteArticles(tx, "author_id = ?", id); err != nil {
			return dberr.Classify(err)
		}
		return dberr.Classify(tx.Delete(&models.UserModel{}, "id = ?", id).Error)
	})
}
