package category

import (
	"errors"

	"github.com/mx-space/blog/internal/models"
)

type CreateCategoryDTO struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	ParentCategoryID *uint  `json:"parent_category_id"`
	Index            *int   `json:"index"`
}

// UpdateCategoryDTO changes only the non-nil fields. ClearParent moves the category to the top level.
type UpdateCategoryDTO struct {
	Name             *string `json:"name"`
	Slug             *string `json:"slug"`
	ParentCategoryID *uint   `json:"parent_category_id"`
	ClearParent      bool    `json:"clear_parent"`
	Index            *int    `json:"index"`
}

// Node is one category with its sub-categories.
type Node struct {
	Category models.CategoryModel `json:"category"`
	Children []Node               `json:"children,omitempty"`
}

var (
	ErrCycle          = errors.New("category cannot be placed under itself or its descendants")
	ErrParentNotFound = errors.New("parent category does not exist")
)
