package models

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// unusablePasswordPrefix marks accounts that cannot log in with a password.
const unusablePasswordPrefix = "!"

var ErrEmptyPassword = errors.New("password is empty")

// UserModel is a blog account: the identity fields plus nickname and creation source.
type UserModel struct {
	ID          uint       `json:"id"           gorm:"primaryKey;autoIncrement"`
	Username    string     `json:"username"     gorm:"size:150;uniqueIndex;not null" validate:"required,max=150"`
	Email       string     `json:"email"        gorm:"size:254"                      validate:"omitempty,email,max=254"`
	Password    string     `json:"-"            gorm:"size:128;not null"              validate:"max=128"`
	FirstName   string     `json:"first_name"   gorm:"size:150"                      validate:"max=150"`
	LastName    string     `json:"last_name"    gorm:"size:150"                      validate:"max=150"`
	IsStaff     bool       `json:"is_staff"     gorm:"not null;default:false"`
	IsActive    bool       `json:"is_active"    gorm:"not null"`
	IsSuperuser bool       `json:"is_superuser" gorm:"not null;default:false"`
	DateJoined  time.Time  `json:"date_joined"  gorm:"not null"`
	LastLogin   *time.Time `json:"last_login"`

	Nickname    string    `json:"nickname"      gorm:"size:100" validate:"max=100"`
	CreatedTime time.Time `json:"created_time"  gorm:"not null"`
	LastModTime time.Time `json:"last_mod_time" gorm:"not null"`
	Source      string    `json:"source"        gorm:"size:100" validate:"max=100"`
}

func (UserModel) TableName() string { return "users" }

func (UserModel) DefaultOrder() []clause.OrderByColumn {
	return []clause.OrderByColumn{desc("id")}
}

// String returns the email, which is how accounts are displayed.
func (u UserModel) String() string { return u.Email }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	now := Now()
	if u.CreatedTime.IsZero() {
		u.CreatedTime = now
	}
	if u.LastModTime.IsZero() {
		u.LastModTime = u.CreatedTime
	}
	if u.DateJoined.IsZero() {
		u.DateJoined = now
	}
	if u.Password == "" {
		u.SetUnusablePassword()
	}
	return nil
}

func (u *UserModel) BeforeSave(tx *gorm.DB) error {
	return Validate(u)
}

// SetPassword stores a bcrypt hash of raw.
func (u *UserModel) SetPassword(raw string) error {
	if raw == "" {
		return ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

func (u *UserModel) SetUnusablePassword() {
	u.Password = unusablePasswordPrefix
}

func (u *UserModel) HasUsablePassword() bool {
	return u.Password != "" && !strings.HasPrefix(u.Password, unusablePasswordPrefix)
}

// CheckPassword reports whether raw matches the stored hash.
func (u *UserModel) CheckPassword(raw string) bool {
	if !u.HasUsablePassword() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(raw)) == nil
}

// DisplayName prefers the nickname over the username.
func (u *UserModel) DisplayName() string {
	if strings.TrimSpace(u.Nickname) != "" {
		return u.Nickname
	}
	return u.Username
}
