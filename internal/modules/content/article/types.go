package article

import (
	"errors"
	"time"

	"github.com/mx-space/blog/internal/models"
)

type CreateArticleDTO struct {
	Title         string               `json:"title"`
	Body          string               `json:"body"`
	PubTime       *time.Time           `json:"pub_time"`
	Status        models.ArticleStatus `json:"status"`
	CommentStatus models.CommentStatus `json:"comment_status"`
	Type          models.ArticleType   `json:"type"`
	ArticleOrder  int                  `json:"article_order"`
	ShowTOC       bool                 `json:"show_toc"`
	AuthorID      uint                 `json:"author_id"`
	CategoryID    uint                 `json:"category_id"`
	TagIDs        []uint               `json:"tag_ids"`
}

// UpdateArticleDTO changes only the non-nil fields. A non-nil TagIDs replaces the whole tag set.
type UpdateArticleDTO struct {
	Title         *string               `json:"title"`
	Body          *string               `json:"body"`
	PubTime       *time.Time            `json:"pub_time"`
	Status        *models.ArticleStatus `json:"status"`
	CommentStatus *models.CommentStatus `json:"comment_status"`
	Type          *models.ArticleType   `json:"type"`
	ArticleOrder  *int                  `json:"article_order"`
	ShowTOC       *bool                 `json:"show_toc"`
	AuthorID      *uint                 `json:"author_id"`
	CategoryID    *uint                 `json:"category_id"`
	TagIDs        *[]uint               `json:"tag_ids"`
}

// ListFilter narrows List. Zero-valued fields are ignored.
type ListFilter struct {
	Status     models.ArticleStatus
	Type       models.ArticleType
	CategoryID uint
	// WithSubCategories also matches articles filed under descendants of CategoryID.
	WithSubCategories bool
	TagID             uint
	AuthorID          uint
	Keyword           string
}

var ErrTagNotFound = errors.New("one or more tags do not exist")
