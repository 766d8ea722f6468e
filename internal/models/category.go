package models

import (
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlaceholderSlug is the column default for categories and tags saved without a slug.
const PlaceholderSlug = "no-slug"

// CategoryModel is an article category. Categories form a tree through ParentCategoryID.
type CategoryModel struct {
	BaseModel
	Name             string         `json:"name"               gorm:"size:30;uniqueIndex;not null" validate:"required,max=30"`
	ParentCategoryID *uint          `json:"parent_category_id" gorm:"index"`
	ParentCategory   *CategoryModel `json:"parent_category,omitempty" gorm:"foreignKey:ParentCategoryID;constraint:OnDelete:CASCADE" validate:"-"`
	Slug             string         `json:"slug"               gorm:"size:60;default:'no-slug'" validate:"max=60"`
	Index            int            `json:"index"              gorm:"column:index;not null;default:0"`
}

func (CategoryModel) TableName() string { return "categories" }

// DefaultOrder lists heavier categories first.
func (CategoryModel) DefaultOrder() []clause.OrderByColumn {
	return []clause.OrderByColumn{desc("index")}
}

func (c *CategoryModel) BeforeSave(tx *gorm.DB) error {
	c.Slug = resolveSlug(c.Slug, c.Name)
	return Validate(c)
}

func (c CategoryModel) String() string { return c.Name }

// TagModel is a free-form article label.
type TagModel struct {
	BaseModel
	Name string `json:"name" gorm:"size:30;uniqueIndex;not null" validate:"required,max=30"`
	Slug string `json:"slug" gorm:"size:60;default:'no-slug'"    validate:"max=60"`
}

func (TagModel) TableName() string { return "tags" }

func (TagModel) DefaultOrder() []clause.OrderByColumn {
	return []clause.OrderByColumn{asc("name")}
}

func (t *TagModel) BeforeSave(tx *gorm.DB) error {
	t.Slug = resolveSlug(t.Slug, t.Name)
	return Validate(t)
}

func (t TagModel) String() string { return t.Name }

// resolveSlug derives a slug from name when current is empty or the placeholder.
func resolveSlug(current, name string) string {
	current = strings.TrimSpace(current)
	if current != "" && current != PlaceholderSlug {
		return current
	}
	derived := slug.Make(name)
	if derived == "" {
		return PlaceholderSlug
	}
	if len(derived) > 60 {
		derived = strings.TrimRight(derived[:60], "-")
	}
	return derived
}
