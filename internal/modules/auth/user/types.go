package user

import "errors"

type CreateUserDTO struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Nickname    string `json:"nickname"`
	Source      string `json:"source"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
	// IsActive defaults to true when nil.
	IsActive *bool `json:"is_active"`
}

type UpdateUserDTO struct {
	Email       *string `json:"email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Nickname    *string `json:"nickname"`
	Source      *string `json:"source"`
	IsStaff     *bool   `json:"is_staff"`
	IsActive    *bool   `json:"is_active"`
	IsSuperuser *bool   `json:"is_superuser"`
}

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInactive           = errors.New("user is inactive")
	ErrWrongPassword      = errors.New("wrong password")
	ErrPasswordSameAsOld  = errors.New("new password must differ from the old one")
)
