package models

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkModel is a friendship link shown in one page context.
// IsEnable is nullable; a nil value counts as enabled.
type LinkModel struct {
	ID       uint         `json:"id"        gorm:"primaryKey;autoIncrement"`
	Name     string       `json:"name"      gorm:"size:30;uniqueIndex;not null"   validate:"required,max=30"`
	Link     string       `json:"link"      gorm:"size:200;not null"              validate:"required,url,max=200"`
	Sequence int          `json:"sequence"  gorm:"uniqueIndex;not null"`
	IsEnable *bool        `json:"is_enable" gorm:"default:true"`
	ShowType LinkShowType `json:"show_type" gorm:"size:1;not null;default:'i'"    validate:"choice"`
	Timestamps
}

func (LinkModel) TableName() string { return "links" }

func (LinkModel) DefaultOrder() []clause.OrderByColumn {
	return []clause.OrderByColumn{asc("sequence")}
}

func (l *LinkModel) BeforeSave(tx *gorm.DB) error {
	if l.ShowType == "" {
		l.ShowType = LinkShowHome
	}
	return Validate(l)
}

func (l *LinkModel) Enabled() bool { return l.IsEnable == nil || *l.IsEnable }

func (l LinkModel) String() string { return l.Name }

// SideBarModel is an HTML block rendered in the sidebar.
// A nil IsEnable is left to the column default, which enables the block.
type SideBarModel struct {
	ID       uint   `json:"id"        gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name"      gorm:"size:100;not null"   validate:"required,max=100"`
	Content  string `json:"content"   gorm:"size:4294967295;not null"`
	Sequence int    `json:"sequence"  gorm:"uniqueIndex;not null"`
	IsEnable *bool  `json:"is_enable" gorm:"not null;default:true"`
	Timestamps
}

func (SideBarModel) TableName() string { return "sidebars" }

func (SideBarModel) DefaultOrder() []clause.OrderByColumn {
	return []clause.OrderByColumn{asc("sequence")}
}

func (s *SideBarModel) BeforeSave(tx *gorm.DB) error {
	return Validate(s)
}

func (s *SideBarModel) Enabled() bool { return s.IsEnable == nil || *s.IsEnable }

func (s SideBarModel) String() string { return s.Name }
