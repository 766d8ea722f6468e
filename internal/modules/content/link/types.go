package link

import "github.com/mx-space/blog/internal/models"

// CreateLinkDTO creates a link. A nil Sequence appends the link after the current last one.
type CreateLinkDTO struct {
	Name     string              `json:"name"`
	Link     string              `json:"link"`
	Sequence *int                `json:"sequence"`
	IsEnable *bool               `json:"is_enable"`
	ShowType models.LinkShowType `json:"show_type"`
}

type UpdateLinkDTO struct {
	Name     *string              `json:"name"`
	Link     *string              `json:"link"`
	Sequence *int                 `json:"sequence"`
	IsEnable *bool                `json:"is_enable"`
	ShowType *models.LinkShowType `json:"show_type"`
}
