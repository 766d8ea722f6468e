package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ArticleTagsTable joins articles to tags.
const ArticleTagsTable = "article_tags"

// ArticleModel is a post or standalone page.
// Body's size is above 2^24 so it maps to LONGTEXT on MySQL and TEXT on PostgreSQL and SQLite.
type ArticleModel struct {
	BaseModel
	Title         string         `json:"title"          gorm:"size:200;uniqueIndex;not null"      validate:"required,max=200"`
	Body          string         `json:"body"           gorm:"size:4294967295;not null"`
	PubTime       *time.Time     `json:"pub_time"       gorm:"index"`
	Status        ArticleStatus  `json:"status"         gorm:"size:1;not null;default:'p'"         validate:"choice"`
	CommentStatus CommentStatus  `json:"comment_status" gorm:"size:1;not null;default:'o'"         validate:"choice"`
	Type          ArticleType    `json:"type"           gorm:"size:1;not null;default:'a'"         validate:"choice"`
	Views         uint           `json:"views"          gorm:"not null;default:0"`
	AuthorID      uint           `json:"author_id"      gorm:"index;not null"                     validate:"required"`
	Author        *UserModel     `json:"author,omitempty"   gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"   validate:"-"`
	ArticleOrder  int            `json:"article_order"  gorm:"not null;default:0"`
	ShowTOC       bool           `json:"show_toc"       gorm:"column:show_toc;not null;default:false"`
	CategoryID    uint           `json:"category_id"    gorm:"index;not null"                     validate:"required"`
	Category      *CategoryModel `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" validate:"-"`
	Tags          []TagModel     `json:"tags,omitempty" gorm:"many2many:article_tags;joinForeignKey:ArticleID;joinReferences:TagID;constraint:OnDelete:CASCADE"    validate:"-"`
}

func (ArticleModel) TableName() string { return "articles" }

// DefaultOrder puts higher article_order first, then the most recently published.
func (ArticleModel) DefaultOrder() []clause.OrderByColumn {
	return []clause.OrderByColumn{desc("article_order"), desc("pub_time")}
}

func (a *ArticleModel) BeforeCreate(tx *gorm.DB) error {
	if err := a.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if a.PubTime == nil {
		t := a.CreatedTime
		a.PubTime = &t
	}
	return nil
}

func (a *ArticleModel) BeforeSave(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = ArticlePublished
	}
	if a.CommentStatus == "" {
		a.CommentStatus = CommentOpen
	}
	if a.Type == "" {
		a.Type = ArticlePost
	}
	return Validate(a)
}

func (a ArticleModel) String() string { return a.Title }

// TagNames returns the names of the loaded tags.
func (a *ArticleModel) TagNames() []string {
	names := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		names = append(names, t.Name)
	}
	return names
}
